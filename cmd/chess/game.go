package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/lgbarn/minimax-chess-go/internal/chess"
	"github.com/lgbarn/minimax-chess-go/internal/config"
	"github.com/lgbarn/minimax-chess-go/internal/engine"
	"github.com/lgbarn/minimax-chess-go/internal/errors"
	"github.com/lgbarn/minimax-chess-go/internal/notation"
	"github.com/lgbarn/minimax-chess-go/internal/output"
	"github.com/lgbarn/minimax-chess-go/internal/search"
)

const helpText = `Enter a move as e2e4 or in SAN (Nf3, exd5, O-O).
  moves <square>  list the legal destinations of a piece
  u               undo
  r               restart
  fen             print the position as FEN
  q               quit`

// Session runs games in the terminal: it reads commands from in, draws
// the board on the configured output and logs to the configured log.
type Session struct {
	cfg      *config.Config
	in       *bufio.Scanner
	out      io.Writer
	log      *gameLogger
	board    *chess.Board
	searcher *search.Searcher
}

// NewSession creates a session reading commands from in.
func NewSession(cfg *config.Config, in io.Reader) *Session {
	return &Session{
		cfg:      cfg,
		in:       bufio.NewScanner(in),
		out:      cfg.OutputFile,
		log:      newGameLogger(cfg.LogFile),
		searcher: search.New(cfg.Search),
	}
}

// readLine prompts and returns the next trimmed input line. It returns
// io.EOF when input runs out.
func (s *Session) readLine(prompt string) (string, error) {
	fmt.Fprint(s.out, prompt)
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(s.in.Text()), nil
}

// Setup asks for whatever the flags left open: the number of players and,
// against the AI, the human's colour.
func (s *Session) Setup() error {
	game := s.cfg.Game
	for game.Players != 1 && game.Players != 2 {
		line, err := s.readLine("How many players (1 or 2)?\n")
		if err != nil {
			return err
		}
		if n, err := strconv.Atoi(line); err == nil && (n == 1 || n == 2) {
			game.Players = n
			break
		}
		fmt.Fprintln(s.out, "Enter 1 or 2.")
	}

	if game.Players == 2 {
		game.HumanSide = chess.White
	}
	for game.HumanSide != chess.White && game.HumanSide != chess.Black {
		line, err := s.readLine("What color do you want to play (w or b)?\n")
		if err != nil {
			return err
		}
		if side, ok := parseSide(line); ok {
			game.HumanSide = side
			break
		}
		fmt.Fprintln(s.out, "Enter w or b.")
	}
	return s.cfg.Validate()
}

// newBoard creates the starting board.
func (s *Session) newBoard() (*chess.Board, error) {
	if s.cfg.Game.StartFEN == "" {
		return engine.NewInitialBoard(), nil
	}
	return notation.ParseFEN(s.cfg.Game.StartFEN)
}

// logStart logs who makes the first move.
func (s *Session) logStart() {
	switch {
	case s.cfg.Game.Players == 2:
		s.log.Info("White player start")
	case s.cfg.Game.HumanSide == chess.White:
		s.log.Info("Human player start")
	default:
		s.log.Info("AI player start")
	}
}

// Run plays until the game ends, the user quits or input runs out, then
// logs the end-of-game report. An illegal AI move stops the session with
// an error.
func (s *Session) Run() error {
	board, err := s.newBoard()
	if err != nil {
		return err
	}
	s.board = board
	s.logStart()

	err = s.loop()
	status := engine.Status(s.board)
	for _, line := range output.NewReport(s.board, status).Lines() {
		s.log.Info("%s", line)
	}
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

// errQuit ends the loop at the user's request.
var errQuit = fmt.Errorf("quit")

func (s *Session) loop() error {
	for {
		s.draw()

		if status := engine.Status(s.board); status.Finished() {
			fmt.Fprintln(s.out, status)
			return nil
		}

		if !s.cfg.Game.IsHuman(s.board.ToMove) {
			if err := s.playAI(); err != nil {
				return err
			}
			continue
		}

		line, err := s.readLine(fmt.Sprintf("%s to move: ", s.board.ToMove))
		if err != nil {
			return err
		}
		if err := s.command(line); err != nil {
			if errors.Is(err, errQuit) {
				return nil
			}
			return err
		}
	}
}

// command handles one line of human input.
func (s *Session) command(line string) error {
	tokens := strings.Fields(line)
	if len(tokens) == 0 {
		return nil
	}

	switch strings.ToLower(tokens[0]) {
	case "q", "quit":
		return errQuit
	case "u", "undo":
		s.undo()
	case "r", "restart":
		board, err := s.newBoard()
		if err != nil {
			return err
		}
		s.board = board
		s.log.newSession()
		s.log.Info("Game restarted")
		s.logStart()
	case "fen":
		fmt.Fprintln(s.out, notation.FEN(s.board))
	case "moves":
		s.showMoves(tokens[1:])
	case "h", "help", "?":
		fmt.Fprintln(s.out, helpText)
	default:
		s.playHuman(line)
	}
	return nil
}

// undo takes back the last move. Against the AI it takes back the AI's
// reply as well, so the human is to move again.
func (s *Session) undo() {
	if !engine.UndoMove(s.board) {
		fmt.Fprintln(s.out, "Nothing to undo.")
		return
	}
	if !s.cfg.Game.IsHuman(s.board.ToMove) {
		engine.UndoMove(s.board)
	}
	s.log.Info("Undo, %d moves in the log", s.board.Ply())
}

func (s *Session) showMoves(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(s.out, "usage: moves <square>")
		return
	}
	from, ok := chess.ParseSquare(strings.ToLower(args[0]))
	if !ok {
		fmt.Fprintf(s.out, "Not a square: %s\n", args[0])
		return
	}
	targets := engine.ValidMoves(s.board, from)
	if len(targets) == 0 {
		fmt.Fprintf(s.out, "No legal moves from %s.\n", from)
		return
	}
	names := make([]string, len(targets))
	for i, sq := range targets {
		names[i] = sq.String()
	}
	fmt.Fprintf(s.out, "%s: %s\n", from, strings.Join(names, " "))
}

func (s *Session) playHuman(text string) {
	p, err := notation.ParseMove(s.board, text)
	if err == nil {
		_, err = engine.MovePiece(s.board, p.From, p.To, false)
	}
	if err != nil {
		s.log.Warning("Illegal move %s by %s: %v", text, s.board.ToMove, err)
		fmt.Fprintf(s.out, "Illegal move: %s\n", text)
		return
	}
	if last, ok := s.board.LastMove(); ok && last.InCheck {
		fmt.Fprintln(s.out, "Check.")
	}
}

// playAI searches and applies the AI's move.
func (s *Session) playAI() error {
	side := s.board.ToMove
	res, err := s.searcher.BestMove(s.board, side)
	if err != nil {
		s.log.Error("AI search failed: %v", err)
		return err
	}

	text := s.moveText(chess.Move{From: res.From, To: res.To})
	if _, err := engine.MovePiece(s.board, res.From, res.To, true); err != nil {
		s.log.Error("AI made an illegal move: %v", err)
		return err
	}
	s.log.Info("AI (%s) played %s, score %d, %d nodes", side, text, res.Score, res.Nodes)
	fmt.Fprintf(s.out, "AI plays %s\n", text)
	return nil
}

// moveText renders a move of the current position in the configured
// notation.
func (s *Session) moveText(m chess.Move) string {
	if s.cfg.Output.Notation == config.Coordinate {
		return m.String()
	}
	return notation.SAN(s.board, m)
}

func (s *Session) draw() {
	fmt.Fprintln(s.out)
	output.RenderBoard(s.out, s.board, s.cfg.Output)
	if s.cfg.Output.ShowMoveList && s.board.Ply() > 0 {
		moves := notation.History(s.board, s.cfg.Output.Notation == config.SAN)
		output.WriteMoveList(s.out, moves, output.DefaultLineLength)
	}
}
