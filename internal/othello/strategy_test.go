package othello

import (
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewStrategy(t *testing.T) {
	for _, name := range []string{"random", "maxflip", "weighted"} {
		strategy, err := NewStrategy(name)
		require.NoError(t, err)
		require.Equal(t, name, strategy.Name())
	}

	_, err := NewStrategy("minimax")
	require.Error(t, err)
}

func TestLegalMoves(t *testing.T) {
	moves := LegalMoves(NewBoardStart(), Black)

	// Row-major enumeration order
	require.Equal(t, []Move{{2, 3}, {3, 2}, {4, 5}, {5, 4}}, moves)

	require.Empty(t, LegalMoves(NewBoardEmpty(), Black))
}

func TestSelectMove_NoMoves(t *testing.T) {
	board := NewBoardEmpty()

	for _, name := range []string{"random", "maxflip", "weighted"} {
		strategy, err := NewStrategy(name)
		require.NoError(t, err)

		_, ok := SelectMove(board, Black, strategy)
		require.False(t, ok, "strategy %s should report no move", name)
	}
}

func TestSelectMove_Legality(t *testing.T) {
	strategies := []Strategy{
		newRandomStrategy(rand.New(rand.NewPCG(42, 0))),
		maxFlipStrategy{},
		weightedStrategy{},
	}

	// Play a few plies from the start and check every pick is legal.
	for _, strategy := range strategies {
		board := NewBoardStart()
		turn := Black

		for range 20 {
			if board.IsGameOver() {
				break
			}
			if !board.HasMoves(turn) {
				turn = turn.Opponent()
				continue
			}

			move, ok := SelectMove(board, turn, strategy)
			require.True(t, ok)
			require.True(t, board.IsValidMove(move.Row, move.Col, turn),
				"strategy %s picked illegal move %s", strategy.Name(), move)

			board = board.DoMove(move.Row, move.Col, turn)
			turn = turn.Opponent()
		}
	}
}

func TestRandomStrategy_SeedDeterminism(t *testing.T) {
	board := NewBoardStart()

	first := newRandomStrategy(rand.New(rand.NewPCG(7, 7)))
	second := newRandomStrategy(rand.New(rand.NewPCG(7, 7)))

	// Same seed, same sequence of picks
	for range 10 {
		moveA, okA := SelectMove(board, Black, first)
		moveB, okB := SelectMove(board, Black, second)
		require.True(t, okA)
		require.True(t, okB)
		require.Equal(t, moveA, moveB)
	}
}

func TestMaxFlipStrategy(t *testing.T) {
	// (0,0) flips one disc, (4,0) flips two
	board, err := NewBoardFromString(
		".ox....." + strings.Repeat(".", 24) + ".oox...." + strings.Repeat(".", 24))
	require.NoError(t, err)
	require.Equal(t, []Move{{0, 0}, {4, 0}}, LegalMoves(board, Black))

	move, ok := SelectMove(board, Black, maxFlipStrategy{})
	require.True(t, ok)
	require.Equal(t, Move{Row: 4, Col: 0}, move)
}

func TestMaxFlipStrategy_TieBreak(t *testing.T) {
	// All four opening moves flip one disc: first in row-major order wins
	board := NewBoardStart()

	for range 5 {
		move, ok := SelectMove(board, Black, maxFlipStrategy{})
		require.True(t, ok)
		require.Equal(t, Move{Row: 2, Col: 3}, move)
	}
}

func TestWeightedStrategy(t *testing.T) {
	// The corner (0,0) outweighs (4,0) even though it flips fewer discs
	board, err := NewBoardFromString(
		".ox....." + strings.Repeat(".", 24) + ".oox...." + strings.Repeat(".", 24))
	require.NoError(t, err)

	move, ok := SelectMove(board, Black, weightedStrategy{})
	require.True(t, ok)
	require.Equal(t, Move{Row: 0, Col: 0}, move)
}

func TestWeightedStrategy_TieBreak(t *testing.T) {
	// The four opening moves all sit on zero-weight cells
	board := NewBoardStart()

	for _, move := range LegalMoves(board, Black) {
		require.Equal(t, 0, weights[move.Row][move.Col])
	}

	for range 5 {
		move, ok := SelectMove(board, Black, weightedStrategy{})
		require.True(t, ok)
		require.Equal(t, Move{Row: 2, Col: 3}, move)
	}
}

func TestWeights_Symmetry(t *testing.T) {
	// The positional table is symmetric under mirroring both axes
	for row := range Size {
		for col := range Size {
			require.Equal(t, weights[row][col], weights[col][row])
			require.Equal(t, weights[row][col], weights[Size-1-row][col])
			require.Equal(t, weights[row][col], weights[row][Size-1-col])
		}
	}
}

func TestMove_String(t *testing.T) {
	require.Equal(t, "(2, 3)", Move{Row: 2, Col: 3}.String())
	require.Equal(t, "pass", PassMove.String())
}
