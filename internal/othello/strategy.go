package othello

import (
	"fmt"
	"math/rand/v2"
)

// Move is a board coordinate.
type Move struct {
	Row int
	Col int
}

// PassMove represents a turn skip in game records.
var PassMove = Move{Row: -1, Col: -1}

// String returns the move as "(row, col)".
func (m Move) String() string {
	if m == PassMove {
		return "pass"
	}
	return fmt.Sprintf("(%d, %d)", m.Row, m.Col)
}

// Strategy picks the computer's move from a non-empty list of legal
// moves. The set of implementations is closed: Random, MaxFlip and
// Weighted.
type Strategy interface {
	// Name returns the strategy name as accepted by NewStrategy.
	Name() string

	pick(b Board, disc Disc, legal []Move) Move
}

// NewStrategy creates the strategy with the given name, one of
// "random", "maxflip" or "weighted".
func NewStrategy(name string) (Strategy, error) {
	switch name {
	case "random":
		return NewRandomStrategy(), nil
	case "maxflip":
		return maxFlipStrategy{}, nil
	case "weighted":
		return weightedStrategy{}, nil
	}
	return nil, fmt.Errorf("unknown strategy: %q", name)
}

// LegalMoves returns all legal moves for disc in row-major order.
func LegalMoves(b Board, disc Disc) []Move {
	moves := make([]Move, 0)
	for row := range Size {
		for col := range Size {
			if b.IsValidMove(row, col, disc) {
				moves = append(moves, Move{Row: row, Col: col})
			}
		}
	}
	return moves
}

// SelectMove picks a legal move for disc using the given strategy. The
// second return value is false when disc has no legal move.
func SelectMove(b Board, disc Disc, s Strategy) (Move, bool) {
	legal := LegalMoves(b, disc)
	if len(legal) == 0 {
		return Move{}, false
	}
	return s.pick(b, disc, legal), true
}

// randomStrategy picks uniformly among the legal moves.
type randomStrategy struct {
	rng *rand.Rand
}

// NewRandomStrategy creates a random strategy seeded once at
// construction. Reseeding per move would repeat picks when moves
// happen within the same clock tick.
func NewRandomStrategy() Strategy {
	return newRandomStrategy(rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())))
}

func newRandomStrategy(rng *rand.Rand) Strategy {
	return &randomStrategy{rng: rng}
}

func (randomStrategy) Name() string {
	return "random"
}

func (s *randomStrategy) pick(_ Board, _ Disc, legal []Move) Move {
	return legal[s.rng.IntN(len(legal))]
}

// maxFlipStrategy picks the move flipping the most discs. Ties go to
// the first candidate in row-major order.
type maxFlipStrategy struct{}

func (maxFlipStrategy) Name() string {
	return "maxflip"
}

func (maxFlipStrategy) pick(b Board, disc Disc, legal []Move) Move {
	best := legal[0]
	bestFlips := -1

	for _, move := range legal {
		flips := b.CountFlippable(move.Row, move.Col, disc)
		if flips > bestFlips {
			best = move
			bestFlips = flips
		}
	}
	return best
}

// weights scores board cells by position: corners are strong, cells
// next to corners hand the corner to the opponent.
var weights = [Size][Size]int{
	{100, -20, 10, 5, 5, 10, -20, 100},
	{-20, -50, -2, -2, -2, -2, -50, -20},
	{10, -2, 0, 0, 0, 0, -2, 10},
	{5, -2, 0, 0, 0, 0, -2, 5},
	{5, -2, 0, 0, 0, 0, -2, 5},
	{10, -2, 0, 0, 0, 0, -2, 10},
	{-20, -50, -2, -2, -2, -2, -50, -20},
	{100, -20, 10, 5, 5, 10, -20, 100},
}

// weightedStrategy picks the move with the highest positional weight.
// Ties go to the first candidate in row-major order.
type weightedStrategy struct{}

func (weightedStrategy) Name() string {
	return "weighted"
}

func (weightedStrategy) pick(_ Board, _ Disc, legal []Move) Move {
	best := legal[0]
	bestScore := weights[best.Row][best.Col]

	for _, move := range legal[1:] {
		if score := weights[move.Row][move.Col]; score > bestScore {
			best = move
			bestScore = score
		}
	}
	return best
}
