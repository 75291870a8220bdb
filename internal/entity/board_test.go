package entity

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoard_Get(t *testing.T) {
	t.Run("Returns the stored cell", func(t *testing.T) {
		// Given: a board with X in the center
		board := NewBoard()
		board.Set(1, 1, PlayerX)

		// When: reading the center
		cell, err := board.Get(1, 1)

		// Then: X is returned
		require.NoError(t, err)
		assert.Equal(t, PlayerX, cell)
	})

	t.Run("Out of range coordinates", func(t *testing.T) {
		board := NewBoard()

		for _, coords := range [][2]int{{-1, 0}, {0, -1}, {3, 0}, {0, 3}, {5, 5}} {
			// When: reading outside the grid
			_, err := board.Get(coords[0], coords[1])

			// Then: ErrInvalidCoordinate should be returned
			require.ErrorIs(t, err, apperror.ErrInvalidCoordinate)
		}
	})
}

func TestBoard_Count(t *testing.T) {
	// Given: two X marks and one O mark
	board := NewBoard()
	board.Set(0, 0, PlayerX)
	board.Set(2, 2, PlayerX)
	board.Set(1, 1, PlayerO)

	// Then: counts reflect every cell state
	assert.Equal(t, 2, board.Count(PlayerX))
	assert.Equal(t, 1, board.Count(PlayerO))
	assert.Equal(t, 6, board.Count(EmptyCell))
}

func TestBoard_Render(t *testing.T) {
	t.Run("Empty board", func(t *testing.T) {
		// When: rendering an empty board
		text := NewBoard().Render()

		// Then: headers are present and empty cells are spaces
		expected := "  0 1 2\n" +
			"0       \n" +
			"1       \n" +
			"2       \n"
		assert.Equal(t, expected, text)
	})

	t.Run("Board with marks", func(t *testing.T) {
		// Given: a few marks on the board
		board := NewBoard()
		board.Set(0, 0, PlayerX)
		board.Set(1, 1, PlayerO)
		board.Set(2, 1, PlayerX)

		// When: rendering it
		text := board.Render()

		// Then: each row lists its cells separated by spaces
		expected := "  0 1 2\n" +
			"0 X     \n" +
			"1   O   \n" +
			"2   X   \n"
		assert.Equal(t, expected, text)
	})

	t.Run("Styled marks", func(t *testing.T) {
		board := NewBoard()
		board.Set(0, 1, PlayerO)

		text := board.RenderWith(func(cell Cell) string { return "[" + string(cell) + "]" })

		assert.Contains(t, text, "0   [O]   \n")
	})
}

func TestMove_String(t *testing.T) {
	assert.Equal(t, "1 2", Move{Row: 1, Col: 2}.String())
}
