package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
)

// Cell - state of a single board position.
type Cell string

const (
	EmptyCell Cell = ""
	PlayerX   Cell = "X"
	PlayerO   Cell = "O"
)

const (
	BoardSize = 3

	BorderMin = 0
	BorderMax = BoardSize - 1
)

// Move - a (row, column) pair, both in [BorderMin, BorderMax].
type Move struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (that Move) String() string {
	return fmt.Sprintf("%d %d", that.Row, that.Col)
}

// Board - fixed 3x3 grid stored row-major.
type Board [BoardSize][BoardSize]Cell

func NewBoard() *Board {
	return &Board{}
}

// Get - returns the cell at (row, col).
func (that *Board) Get(row, col int) (Cell, error) {
	if !inRange(row) || !inRange(col) {
		return EmptyCell, fmt.Errorf("%w: %d %d", apperror.ErrInvalidCoordinate, row, col)
	}

	return that[row][col], nil
}

// Set - writes cell at (row, col). Emptiness is the caller's concern.
func (that *Board) Set(row, col int, cell Cell) {
	that[row][col] = cell
}

// Count - number of positions holding cell.
func (that *Board) Count(cell Cell) int {
	count := 0
	for _, row := range that {
		for _, c := range row {
			if c == cell {
				count++
			}
		}
	}

	return count
}

// Render - text grid with index headers; empty cells are shown as a space.
func (that *Board) Render() string {
	return that.RenderWith(func(cell Cell) string { return string(cell) })
}

// RenderWith - like Render, but every mark goes through style.
func (that *Board) RenderWith(style func(Cell) string) string {
	var sb strings.Builder

	sb.WriteString("  0 1 2\n")
	for i, row := range that {
		fmt.Fprintf(&sb, "%d ", i)
		for _, cell := range row {
			if cell == EmptyCell {
				sb.WriteString("  ")
				continue
			}
			sb.WriteString(style(cell))
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

func inRange(v int) bool {
	return v >= BorderMin && v <= BorderMax
}
