package cli

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"othello/internal/othello"
)

// Session runs one human vs computer game on a console.
type Session struct {
	id       uuid.UUID
	game     *othello.Game
	human    othello.Disc
	strategy othello.Strategy
	in       *bufio.Scanner
	out      io.Writer
	log      *slog.Logger
}

// NewSession creates a game session. The human plays humanColor, the
// computer plays the other color with the given strategy. A nil
// strategy makes Run show an interactive strategy menu first.
func NewSession(humanColor othello.Disc, strategy othello.Strategy, in io.Reader, out io.Writer) *Session {
	id := uuid.New()
	return &Session{
		id:       id,
		game:     othello.NewGame(),
		human:    humanColor,
		strategy: strategy,
		in:       bufio.NewScanner(in),
		out:      out,
		log:      slog.With("session", id),
	}
}

// Run plays the game until neither side has a move, then prints the
// final score. It returns early without error when the human quits.
func (s *Session) Run() error {
	if s.strategy == nil {
		s.strategy = s.chooseStrategy()
	}

	s.log.Info("Game started", "strategy", s.strategy.Name(), "human", s.human)

	fmt.Fprintf(s.out, "Othello: you play %s, the computer plays %s (%s)\n",
		s.human, s.human.Opponent(), s.strategy.Name())
	s.render()

	for !s.game.Board().IsGameOver() {
		turn := s.game.Turn()

		if !s.game.Board().HasMoves(turn) {
			fmt.Fprintf(s.out, "%s has no legal move, turn skipped\n", turn)
			s.log.Info("Turn skipped", "turn", turn)
			if err := s.game.PushMove(othello.PassMove); err != nil {
				return fmt.Errorf("failed to pass: %w", err)
			}
			continue
		}

		if turn == s.human {
			move, quit, err := s.readHumanMove(turn)
			if err != nil {
				return err
			}
			if quit {
				fmt.Fprintln(s.out, "Game aborted")
				return nil
			}
			if move == othello.PassMove {
				// Undo was handled inside readHumanMove.
				s.render()
				continue
			}
			if err := s.game.PushMove(move); err != nil {
				return fmt.Errorf("failed to apply human move: %w", err)
			}
			s.log.Info("Human moved", "move", move)
		} else {
			move, ok := othello.SelectMove(s.game.Board(), turn, s.strategy)
			if !ok {
				// Unreachable: HasMoves was checked above.
				return fmt.Errorf("strategy %s found no move for %s", s.strategy.Name(), turn)
			}
			fmt.Fprintf(s.out, "Computer plays %s\n", move)
			if err := s.game.PushMove(move); err != nil {
				return fmt.Errorf("failed to apply computer move: %w", err)
			}
			s.log.Info("Computer moved", "move", move, "strategy", s.strategy.Name())
		}

		s.render()
	}

	s.printResult()
	return nil
}

// chooseStrategy shows the strategy menu and reads a choice. Anything
// but 1-3 falls back to random, like the original menu did.
func (s *Session) chooseStrategy() othello.Strategy {
	fmt.Fprintln(s.out, "Othello: human vs computer")
	fmt.Fprintln(s.out, "Choose the computer's strategy:")
	fmt.Fprintln(s.out, "1. random")
	fmt.Fprintln(s.out, "2. maxflip")
	fmt.Fprintln(s.out, "3. weighted")
	fmt.Fprint(s.out, "Enter a number (1-3): ")

	choice := ""
	if s.in.Scan() {
		choice = strings.TrimSpace(s.in.Text())
	}

	names := map[string]string{"1": "random", "2": "maxflip", "3": "weighted"}
	if name, ok := names[choice]; ok {
		if strategy, err := othello.NewStrategy(name); err == nil {
			return strategy
		}
	}

	fmt.Fprintln(s.out, "Invalid choice, defaulting to random")
	return othello.NewRandomStrategy()
}

// readHumanMove prompts until it gets a legal move, a quit or an undo.
// After an undo it returns PassMove as a "nothing to apply" marker.
func (s *Session) readHumanMove(turn othello.Disc) (othello.Move, bool, error) {
	for {
		fmt.Fprintf(s.out, "Your turn (%s), enter \"row col\" (or q to quit, u to undo): ", turn)

		if !s.in.Scan() {
			if err := s.in.Err(); err != nil {
				return othello.Move{}, false, fmt.Errorf("failed to read input: %w", err)
			}
			// EOF counts as quitting.
			return othello.Move{}, true, nil
		}

		input := strings.TrimSpace(s.in.Text())
		switch strings.ToLower(input) {
		case "":
			continue
		case "q", "quit":
			return othello.Move{}, true, nil
		case "u", "undo":
			s.undo()
			return othello.PassMove, false, nil
		}

		move, err := parseMove(input)
		if err != nil {
			fmt.Fprintln(s.out, err)
			continue
		}

		if !s.game.Board().IsValidMove(move.Row, move.Col, turn) {
			fmt.Fprintf(s.out, "%s is not a legal move\n", move)
			continue
		}

		return move, false, nil
	}
}

// undo takes back the human's last move and the computer's reply.
func (s *Session) undo() {
	before := len(s.game.Moves())
	s.game.PopMove()
	s.game.PopMove()

	if len(s.game.Moves()) == before {
		fmt.Fprintln(s.out, "Nothing to undo")
		return
	}

	fmt.Fprintln(s.out, "Last move pair undone")
	s.log.Info("Undo", "movesLeft", len(s.game.Moves()))
}

// parseMove parses "row col" with both values in [0,7].
func parseMove(input string) (othello.Move, error) {
	fields := strings.Fields(input)
	if len(fields) != 2 {
		return othello.Move{}, fmt.Errorf("expected two numbers, got %q", input)
	}

	row, err := strconv.Atoi(fields[0])
	if err != nil {
		return othello.Move{}, fmt.Errorf("invalid row %q", fields[0])
	}

	col, err := strconv.Atoi(fields[1])
	if err != nil {
		return othello.Move{}, fmt.Errorf("invalid column %q", fields[1])
	}

	if row < 0 || row >= othello.Size || col < 0 || col >= othello.Size {
		return othello.Move{}, fmt.Errorf("(%d, %d) is outside the board", row, col)
	}

	return othello.Move{Row: row, Col: col}, nil
}

// render prints the board with move hints for the side to move, plus
// the running score.
func (s *Session) render() {
	board := s.game.Board()

	fmt.Fprintln(s.out)
	for _, line := range board.ASCIIArtLines(s.game.Turn()) {
		fmt.Fprintln(s.out, line)
	}
	fmt.Fprintf(s.out, "● black %d - %d white ○\n\n",
		board.CountDiscs(othello.Black), board.CountDiscs(othello.White))
}

// printResult prints the final score and the winner.
func (s *Session) printResult() {
	board := s.game.Board()
	black := board.CountDiscs(othello.Black)
	white := board.CountDiscs(othello.White)

	fmt.Fprintln(s.out, "Game over")
	fmt.Fprintf(s.out, "black: %d, white: %d\n", black, white)

	var winner othello.Disc
	switch {
	case black > white:
		winner = othello.Black
	case white > black:
		winner = othello.White
	}

	switch winner {
	case othello.Empty:
		fmt.Fprintln(s.out, "Draw!")
	case s.human:
		fmt.Fprintf(s.out, "You win as %s!\n", winner)
	default:
		fmt.Fprintf(s.out, "The computer wins as %s!\n", winner)
	}

	s.log.Info("Game finished", "black", black, "white", white, "winner", winner)
}
