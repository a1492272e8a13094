package othello

import (
	"fmt"
	"strings"
)

// Size is the width and height of the board.
const Size = 8

// Disc is the content of a single board cell.
type Disc int

const (
	Empty Disc = iota
	Black
	White
)

// Opponent returns the opposing color. Empty is its own opponent.
func (d Disc) Opponent() Disc {
	switch d {
	case Black:
		return White
	case White:
		return Black
	}
	return Empty
}

// String returns the name of the disc color.
func (d Disc) String() string {
	switch d {
	case Black:
		return "black"
	case White:
		return "white"
	}
	return "empty"
}

// ParseDisc parses a color name, "black" or "white".
func ParseDisc(name string) (Disc, error) {
	switch strings.ToLower(name) {
	case "black":
		return Black, nil
	case "white":
		return White, nil
	}
	return Empty, fmt.Errorf("unknown color: %q", name)
}

// directions are the 8 scan offsets used for outflank detection.
var directions = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Board represents an Othello board as an 8x8 grid of cells.
type Board struct {
	grid [Size][Size]Disc
}

// NewBoardStart creates a new board with the starting position.
func NewBoardStart() Board {
	var b Board
	b.grid[3][3] = White
	b.grid[3][4] = Black
	b.grid[4][3] = Black
	b.grid[4][4] = White
	return b
}

// NewBoardEmpty creates a new board without any discs.
func NewBoardEmpty() Board {
	return Board{}
}

// NewBoardFromString creates a new board from a string representation:
// 64 cells in row-major order, '.' empty, 'x' black, 'o' white.
func NewBoardFromString(s string) (Board, error) {
	if len(s) != Size*Size {
		return Board{}, fmt.Errorf("board string must be %d characters long, got %d", Size*Size, len(s))
	}

	var b Board
	for i, c := range s {
		switch c {
		case '.':
			// Cells are Empty by default.
		case 'x':
			b.grid[i/Size][i%Size] = Black
		case 'o':
			b.grid[i/Size][i%Size] = White
		default:
			return Board{}, fmt.Errorf("invalid board character %q at offset %d", c, i)
		}
	}
	return b, nil
}

// inBounds checks whether (row, col) is on the board.
func inBounds(row, col int) bool {
	return row >= 0 && row < Size && col >= 0 && col < Size
}

// Get returns the disc at (row, col). The second return value is false
// for out-of-range coordinates.
func (b Board) Get(row, col int) (Disc, bool) {
	if !inBounds(row, col) {
		return Empty, false
	}
	return b.grid[row][col], true
}

// IsValidMove checks if placing disc at (row, col) is a legal move.
// Out-of-range coordinates are never legal.
func (b Board) IsValidMove(row, col int, disc Disc) bool {
	if !inBounds(row, col) || b.grid[row][col] != Empty {
		return false
	}

	opponent := disc.Opponent()
	for _, dir := range directions {
		x, y := row+dir[0], col+dir[1]
		foundOpponent := false

		for inBounds(x, y) {
			if b.grid[x][y] == opponent {
				foundOpponent = true
			} else if b.grid[x][y] == disc && foundOpponent {
				return true
			} else {
				break
			}
			x += dir[0]
			y += dir[1]
		}
	}
	return false
}

// HasMoves checks if disc has at least one legal move.
func (b Board) HasMoves(disc Disc) bool {
	for row := range Size {
		for col := range Size {
			if b.IsValidMove(row, col, disc) {
				return true
			}
		}
	}
	return false
}

// DoMove places disc at (row, col), flips all outflanked discs and
// returns the new board. If the move is illegal the board is returned
// unchanged: callers are expected to check IsValidMove first.
func (b Board) DoMove(row, col int, disc Disc) Board {
	if !b.IsValidMove(row, col, disc) {
		return b
	}

	b.grid[row][col] = disc

	opponent := disc.Opponent()
	for _, dir := range directions {
		x, y := row+dir[0], col+dir[1]

		for inBounds(x, y) && b.grid[x][y] == opponent {
			x += dir[0]
			y += dir[1]
		}

		// Only flip runs that are closed off by one of our own discs.
		if !inBounds(x, y) || b.grid[x][y] != disc {
			continue
		}

		x, y = row+dir[0], col+dir[1]
		for b.grid[x][y] == opponent {
			b.grid[x][y] = disc
			x += dir[0]
			y += dir[1]
		}
	}
	return b
}

// IsGameOver checks if neither color has a legal move left.
func (b Board) IsGameOver() bool {
	return !b.HasMoves(Black) && !b.HasMoves(White)
}

// CountDiscs returns the number of cells holding disc.
func (b Board) CountDiscs(disc Disc) int {
	count := 0
	for row := range Size {
		for col := range Size {
			if b.grid[row][col] == disc {
				count++
			}
		}
	}
	return count
}

// CountFlippable returns how many discs would flip if disc were placed
// at (row, col). It does not mutate the board and returns 0 for
// occupied or out-of-range cells.
func (b Board) CountFlippable(row, col int, disc Disc) int {
	if !inBounds(row, col) || b.grid[row][col] != Empty {
		return 0
	}

	opponent := disc.Opponent()
	total := 0
	for _, dir := range directions {
		x, y := row+dir[0], col+dir[1]
		run := 0

		for inBounds(x, y) && b.grid[x][y] == opponent {
			run++
			x += dir[0]
			y += dir[1]
		}

		if run > 0 && inBounds(x, y) && b.grid[x][y] == disc {
			total += run
		}
	}
	return total
}

// ASCIIArtLines returns the ascii art lines for the board. Legal moves
// for turn are marked with a dot hint.
func (b Board) ASCIIArtLines(turn Disc) []string {
	lines := make([]string, Size+2)

	lines[0] = "+-0-1-2-3-4-5-6-7-+"
	for row := range Size {
		line := fmt.Sprintf("%d ", row)

		for col := range Size {
			switch {
			case b.grid[row][col] == White:
				line += "○ "
			case b.grid[row][col] == Black:
				line += "● "
			case turn != Empty && b.IsValidMove(row, col, turn):
				line += "· "
			default:
				line += "  "
			}
		}

		lines[row+1] = line + "|"
	}

	lines[Size+1] = "+-----------------+"
	return lines
}

// Print prints the board to the console. This is used for debugging.
func (b Board) Print(turn Disc) {
	for _, line := range b.ASCIIArtLines(turn) {
		fmt.Println(line)
	}
}

// String returns the string representation of the board.
func (b Board) String() string {
	var sb strings.Builder
	sb.Grow(Size * Size)

	for row := range Size {
		for col := range Size {
			switch b.grid[row][col] {
			case Black:
				sb.WriteByte('x')
			case White:
				sb.WriteByte('o')
			default:
				sb.WriteByte('.')
			}
		}
	}
	return sb.String()
}
