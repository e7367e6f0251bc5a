// Package chess provides core chess types and operations.
package chess

import "fmt"

// Side represents the owner of a piece or the player to move.
type Side int

const (
	NoSide Side = iota // Empty squares belong to no side
	Player1
	Player2
)

// White and Black name the two players the way the board is drawn:
// Player 1 owns rows 0 and 1 and moves first.
const (
	White = Player1
	Black = Player2
)

// String returns the string representation of a side.
func (s Side) String() string {
	switch s {
	case Player1:
		return "White"
	case Player2:
		return "Black"
	}
	return "None"
}

// Opponent returns the other side. NoSide has no opponent.
func (s Side) Opponent() Side {
	switch s {
	case Player1:
		return Player2
	case Player2:
		return Player1
	}
	return NoSide
}

// Forward returns the row direction pawns of this side move in.
func (s Side) Forward() int {
	switch s {
	case Player1:
		return 1
	case Player2:
		return -1
	}
	return 0
}

// HomeRow returns the back rank of the side.
func (s Side) HomeRow() int {
	if s == Player2 {
		return BoardSize - 1
	}
	return 0
}

// PawnRow returns the row the side's pawns start on.
func (s Side) PawnRow() int {
	return s.HomeRow() + s.Forward()
}

// LastRow returns the row on which the side's pawns promote.
func (s Side) LastRow() int {
	return s.Opponent().HomeRow()
}

// Kind represents a chess piece type.
type Kind int

const (
	Empty Kind = iota // Empty square
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	NumKinds
)

// String returns the string representation of a piece kind.
func (k Kind) String() string {
	names := []string{"Empty", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if k >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Code returns the short lowercase name code of the kind.
func (k Kind) Code() byte {
	codes := []byte{' ', 'p', 'n', 'b', 'r', 'q', 'k'}
	if k >= 0 && int(k) < len(codes) {
		return codes[k]
	}
	return '?'
}

// KindFromCode converts a name code (either case) to a kind.
func KindFromCode(c byte) Kind {
	switch c {
	case 'p', 'P':
		return Pawn
	case 'n', 'N':
		return Knight
	case 'b', 'B':
		return Bishop
	case 'r', 'R':
		return Rook
	case 'q', 'Q':
		return Queen
	case 'k', 'K':
		return King
	}
	return Empty
}

// Piece is the content of a board cell. The zero value is an empty square.
type Piece struct {
	Kind Kind
	Side Side
}

// NoPiece is the empty square sentinel.
var NoPiece = Piece{}

// NewPiece creates a piece of the given side and kind.
func NewPiece(side Side, kind Kind) Piece {
	if kind == Empty {
		return NoPiece
	}
	return Piece{Kind: kind, Side: side}
}

// IsEmpty returns true for the empty square sentinel.
func (p Piece) IsEmpty() bool {
	return p.Kind == Empty
}

// Is returns true if the piece belongs to side.
func (p Piece) Is(side Side) bool {
	return !p.IsEmpty() && p.Side == side
}

// Name returns the piece's short name code, e.g. "n" for a knight.
func (p Piece) Name() string {
	if p.IsEmpty() {
		return ""
	}
	return string(p.Kind.Code())
}

// Letter returns the FEN letter: uppercase for White, lowercase for Black.
func (p Piece) Letter() byte {
	if p.IsEmpty() {
		return '.'
	}
	c := p.Kind.Code()
	if p.Side == Player1 {
		c -= 'a' - 'A'
	}
	return c
}

// String returns a readable name such as "White Knight".
func (p Piece) String() string {
	if p.IsEmpty() {
		return "Empty"
	}
	return fmt.Sprintf("%s %s", p.Side, p.Kind)
}

// BoardSize is the number of rows and columns on the board.
const BoardSize = 8

// Square is a (row, col) board coordinate. Row 0 is White's back rank and
// col 0 is the h-file, so the kings start on col 3.
type Square struct {
	Row int
	Col int
}

// NoSquare marks an absent square, e.g. no en passant target.
var NoSquare = Square{Row: -1, Col: -1}

// Sq is shorthand for Square{Row: row, Col: col}.
func Sq(row, col int) Square {
	return Square{Row: row, Col: col}
}

// Valid returns true if the square lies on the board.
func (s Square) Valid() bool {
	return s.Row >= 0 && s.Row < BoardSize && s.Col >= 0 && s.Col < BoardSize
}

// Add returns the square offset by dr rows and dc columns.
func (s Square) Add(dr, dc int) Square {
	return Square{Row: s.Row + dr, Col: s.Col + dc}
}

// File returns the algebraic file letter of the square.
func (s Square) File() byte {
	return byte('h' - s.Col)
}

// Rank returns the algebraic rank digit of the square.
func (s Square) Rank() byte {
	return byte('1' + s.Row)
}

// String returns the algebraic name of the square, e.g. "e2".
func (s Square) String() string {
	if !s.Valid() {
		return "-"
	}
	return string([]byte{s.File(), s.Rank()})
}

// ParseSquare converts an algebraic square name such as "e2" to a Square.
func ParseSquare(text string) (Square, bool) {
	if len(text) != 2 {
		return NoSquare, false
	}
	file, rank := text[0], text[1]
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return NoSquare, false
	}
	return Square{Row: int(rank - '1'), Col: int('h' - file)}, true
}

// CastleRights is a bit set of the four castling options.
type CastleRights uint8

const (
	Player1Short CastleRights = 1 << iota // White king with the h-file rook
	Player1Long                           // White king with the a-file rook
	Player2Short                          // Black king with the h-file rook
	Player2Long                           // Black king with the a-file rook

	NoCastling  CastleRights = 0
	AllCastling              = Player1Short | Player1Long | Player2Short | Player2Long
)

// ShortCastle returns the short castling right of side.
func ShortCastle(side Side) CastleRights {
	if side == Player2 {
		return Player2Short
	}
	return Player1Short
}

// LongCastle returns the long castling right of side.
func LongCastle(side Side) CastleRights {
	if side == Player2 {
		return Player2Long
	}
	return Player1Long
}

// Has returns true if every right in r is present.
func (c CastleRights) Has(r CastleRights) bool {
	return c&r == r
}

// String returns the rights in FEN form, e.g. "KQkq" or "-".
func (c CastleRights) String() string {
	var out []byte
	if c.Has(Player1Short) {
		out = append(out, 'K')
	}
	if c.Has(Player1Long) {
		out = append(out, 'Q')
	}
	if c.Has(Player2Short) {
		out = append(out, 'k')
	}
	if c.Has(Player2Long) {
		out = append(out, 'q')
	}
	if len(out) == 0 {
		return "-"
	}
	return string(out)
}

// Outcome classifies a position for the side to move. The numeric values
// of the finished states are part of the shell interface.
type Outcome int

const (
	BlackWins Outcome = iota
	WhiteWins
	Stalemate
	Ongoing
)

// String returns the announcement for the outcome.
func (o Outcome) String() string {
	switch o {
	case BlackWins:
		return "Black wins."
	case WhiteWins:
		return "White wins."
	case Stalemate:
		return "Stalemate."
	}
	return "Ongoing"
}

// Finished returns true for checkmate and stalemate.
func (o Outcome) Finished() bool {
	return o != Ongoing
}

// Position is the read-only view of a board that piece move generation needs.
type Position interface {
	// Get returns the piece on sq, or NoPiece for empty or off-board squares.
	Get(sq Square) Piece
}
