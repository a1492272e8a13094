package othello

import "fmt"

// Game represents an Othello game in progress. It tracks the move
// history on top of a start board, so moves can be undone.
type Game struct {
	// start is the board before any move is played. This allows custom
	// start positions for testing and debugging.
	start Board

	// startTurn is the color to move on the start board.
	startTurn Disc

	// moves is the list of moves in the game. Pass moves are added
	// automatically.
	moves []Move
}

// NewGameWithStart creates a new empty game with a custom start board.
func NewGameWithStart(start Board, turn Disc) *Game {
	return &Game{
		start:     start,
		startTurn: turn,
		moves:     make([]Move, 0),
	}
}

// NewGame creates a new game from the standard start position, black
// to move.
func NewGame() *Game {
	return NewGameWithStart(NewBoardStart(), Black)
}

// Board returns the board after all moves in the game.
func (g *Game) Board() Board {
	return g.getBoard(len(g.moves))
}

// getBoard returns the board after doing the moves up to moveIndex.
func (g *Game) getBoard(moveIndex int) Board {
	board := g.start
	turn := g.startTurn

	for i := range moveIndex {
		if g.moves[i] != PassMove {
			board = board.DoMove(g.moves[i].Row, g.moves[i].Col, turn)
		}
		turn = turn.Opponent()
	}
	return board
}

// Turn returns the color to move.
func (g *Game) Turn() Disc {
	if len(g.moves)%2 == 0 {
		return g.startTurn
	}
	return g.startTurn.Opponent()
}

// Moves returns a copy of the moves played so far.
func (g *Game) Moves() []Move {
	moves := make([]Move, len(g.moves))
	copy(moves, g.moves)
	return moves
}

// PushMove appends a move for the color to move. Passing is only legal
// when that color has no move. After a regular move a pass is inserted
// automatically when the opponent is stuck but the mover is not.
func (g *Game) PushMove(move Move) error {
	board := g.Board()
	turn := g.Turn()

	if move == PassMove {
		if board.HasMoves(turn) {
			return fmt.Errorf("cannot pass: %s has a legal move", turn)
		}

		// Prevent double pass: the game is over instead.
		if n := len(g.moves); n > 0 && g.moves[n-1] == PassMove {
			return nil
		}

		g.moves = append(g.moves, move)
		return nil
	}

	if !board.IsValidMove(move.Row, move.Col, turn) {
		return fmt.Errorf("invalid move for %s: %s", turn, move)
	}

	g.moves = append(g.moves, move)

	// Add a pass move if the opponent is stuck but we still have moves.
	board = g.Board()
	if !board.HasMoves(turn.Opponent()) && board.HasMoves(turn) {
		g.moves = append(g.moves, PassMove)
	}

	return nil
}

// PopMove undoes the last move, removing a trailing automatic pass
// along with it.
func (g *Game) PopMove() {
	if len(g.moves) == 0 {
		return
	}

	poppedMoves := 1
	// Prevent leaving a pass as the last move.
	if g.moves[len(g.moves)-1] == PassMove && len(g.moves) > 1 {
		poppedMoves = 2
	}

	g.moves = g.moves[:len(g.moves)-poppedMoves]
}
