package chess

// Board represents a chess board with all state needed for the game.
type Board struct {
	// The board squares, indexed [row][col].
	squares [BoardSize][BoardSize]Piece

	// Who has the next move.
	ToMove Side

	// Castling options still available to either side.
	Castling CastleRights

	// The square a pawn skipped over on the previous move, NoSquare if the
	// previous move was not a double step.
	EnPassant Square

	// Keep track of where the two kings are for check detection.
	kings [3]Square

	// Moves played so far, oldest first.
	log []Move
}

// NewBoard creates a new empty board with White to move.
func NewBoard() *Board {
	return &Board{
		ToMove:    Player1,
		EnPassant: NoSquare,
		kings:     [3]Square{NoSquare, NoSquare, NoSquare},
	}
}

// backRank is the piece order along row 0 and row 7, col 0 first.
var backRank = [BoardSize]Kind{Rook, Knight, Bishop, King, Queen, Bishop, Knight, Rook}

// SetupInitialPosition sets up the standard chess starting position.
func (b *Board) SetupInitialPosition() {
	b.Clear()
	for col := 0; col < BoardSize; col++ {
		b.Set(Sq(Player1.HomeRow(), col), NewPiece(Player1, backRank[col]))
		b.Set(Sq(Player1.PawnRow(), col), NewPiece(Player1, Pawn))
		b.Set(Sq(Player2.PawnRow(), col), NewPiece(Player2, Pawn))
		b.Set(Sq(Player2.HomeRow(), col), NewPiece(Player2, backRank[col]))
	}
	b.ToMove = Player1
	b.Castling = AllCastling
	b.EnPassant = NoSquare
}

// Clear empties the board and forgets all state.
func (b *Board) Clear() {
	b.squares = [BoardSize][BoardSize]Piece{}
	b.kings = [3]Square{NoSquare, NoSquare, NoSquare}
	b.ToMove = Player1
	b.Castling = NoCastling
	b.EnPassant = NoSquare
	b.log = nil
}

// Get returns the piece on sq, NoPiece if sq is empty or off the board.
func (b *Board) Get(sq Square) Piece {
	if !sq.Valid() {
		return NoPiece
	}
	return b.squares[sq.Row][sq.Col]
}

// Set places a piece on sq. Placing a king moves that side's king cache.
func (b *Board) Set(sq Square, p Piece) {
	if !sq.Valid() {
		return
	}
	b.squares[sq.Row][sq.Col] = p
	if p.Kind == King {
		b.kings[p.Side] = sq
	}
}

// Piece returns the piece at (row, col), NoPiece when off the board.
func (b *Board) Piece(row, col int) Piece {
	return b.Get(Sq(row, col))
}

// IsValidPiece returns true if (row, col) is on the board and occupied.
func (b *Board) IsValidPiece(row, col int) bool {
	return !b.Get(Sq(row, col)).IsEmpty()
}

// WhoseTurn returns true when Player 1 (White) is to move.
func (b *Board) WhoseTurn() bool {
	return b.ToMove == Player1
}

// King returns the cached square of side's king.
func (b *Board) King(side Side) Square {
	if side != Player1 && side != Player2 {
		return NoSquare
	}
	return b.kings[side]
}

// Log returns the moves played so far, oldest first. Callers must not
// modify the returned slice.
func (b *Board) Log() []Move {
	return b.log
}

// Ply returns the number of moves in the log.
func (b *Board) Ply() int {
	return len(b.log)
}

// LastMove returns the most recent move, if any.
func (b *Board) LastMove() (Move, bool) {
	if len(b.log) == 0 {
		return Move{}, false
	}
	return b.log[len(b.log)-1], true
}

// Push appends a move to the log.
func (b *Board) Push(m Move) {
	b.log = append(b.log, m)
}

// Pop removes and returns the most recent move.
func (b *Board) Pop() (Move, bool) {
	m, ok := b.LastMove()
	if ok {
		b.log = b.log[:len(b.log)-1]
	}
	return m, ok
}

// Copy creates a deep copy of the board, including its move log.
func (b *Board) Copy() *Board {
	newBoard := &Board{}
	*newBoard = *b
	if b.log != nil {
		newBoard.log = make([]Move, len(b.log), cap(b.log))
		copy(newBoard.log, b.log)
	}
	return newBoard
}

// BoardState captures the position part of the board: everything undo
// must restore. It is comparable, so two states can be tested with ==.
type BoardState struct {
	Squares   [BoardSize][BoardSize]Piece
	ToMove    Side
	Castling  CastleRights
	EnPassant Square
	Kings     [3]Square
}

// SaveState captures the current board state.
func (b *Board) SaveState() BoardState {
	return BoardState{
		Squares:   b.squares,
		ToMove:    b.ToMove,
		Castling:  b.Castling,
		EnPassant: b.EnPassant,
		Kings:     b.kings,
	}
}
