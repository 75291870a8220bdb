package tictactoe

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	x = entity.PlayerX
	o = entity.PlayerO
	e = entity.EmptyCell
)

func TestHasWon(t *testing.T) {
	tests := []struct {
		name  string
		board entity.Board
		mark  entity.Cell
		want  bool
	}{
		{name: "Empty board", board: entity.Board{}, mark: x, want: false},
		{name: "Empty mark never wins", board: entity.Board{}, mark: e, want: false},
		{name: "X first row", board: entity.Board{{x, x, x}, {e, o, e}, {e, e, o}}, mark: x, want: true},
		{name: "X second row", board: entity.Board{{o, e, o}, {x, x, x}, {e, e, e}}, mark: x, want: true},
		{name: "O third row", board: entity.Board{{x, e, x}, {e, x, e}, {o, o, o}}, mark: o, want: true},
		{name: "O first column", board: entity.Board{{o, x, e}, {o, x, e}, {o, e, x}}, mark: o, want: true},
		{name: "O second column", board: entity.Board{{x, o, e}, {x, o, e}, {e, o, e}}, mark: o, want: true},
		{name: "X third column", board: entity.Board{{o, e, x}, {o, e, x}, {e, e, x}}, mark: x, want: true},
		{name: "X main diagonal", board: entity.Board{{x, e, e}, {e, x, e}, {e, e, x}}, mark: x, want: true},
		{name: "O anti-diagonal", board: entity.Board{{e, e, o}, {e, o, e}, {o, e, e}}, mark: o, want: true},
		{name: "Line of the other mark", board: entity.Board{{x, x, x}, {e, o, e}, {e, e, o}}, mark: o, want: false},
		{name: "Two in a row is not a win", board: entity.Board{{x, x, e}, {o, o, e}, {e, e, e}}, mark: x, want: false},
		{name: "Full board without a line", board: entity.Board{{x, o, x}, {x, o, o}, {o, x, x}}, mark: x, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// When: checking for a win
			got := HasWon(&tt.board, tt.mark)

			// Then: the result matches the line enumeration
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHasWon_MatchesEveryCombo(t *testing.T) {
	for _, combo := range WinCombos {
		// Given: a board where only this line is filled with O
		board := entity.Board{}
		for _, move := range combo {
			board.Set(move.Row, move.Col, o)
		}

		// Then: O has won and X has not
		assert.True(t, HasWon(&board, o), combo)
		assert.False(t, HasWon(&board, x), combo)
	}
}

func TestIsDraw(t *testing.T) {
	t.Run("Empty board", func(t *testing.T) {
		assert.False(t, IsDraw(&entity.Board{}))
	})

	t.Run("Partial board", func(t *testing.T) {
		board := entity.Board{{x, o, x}, {x, o, o}, {o, x, e}}
		assert.False(t, IsDraw(&board))
	})

	t.Run("Full board without winner", func(t *testing.T) {
		// Given: alternating marks with no complete line
		board := entity.Board{{x, o, x}, {x, o, o}, {o, x, x}}

		// Then: nobody won and the board is a draw
		require.False(t, HasWon(&board, x))
		require.False(t, HasWon(&board, o))
		assert.True(t, IsDraw(&board))
	})
}

func TestLegalMoves(t *testing.T) {
	t.Run("Empty board returns all cells in row-major order", func(t *testing.T) {
		moves := LegalMoves(&entity.Board{})

		require.Len(t, moves, 9)
		for i, move := range moves {
			assert.Equal(t, entity.Move{Row: i / 3, Col: i % 3}, move)
		}
	})

	t.Run("Returns exactly the empty cells", func(t *testing.T) {
		// Given: four moves made
		board := entity.Board{{x, e, o}, {e, x, e}, {e, e, o}}

		// When: enumerating legal moves
		moves := LegalMoves(&board)

		// Then: 9 - 4 moves remain, in row-major order
		expected := []entity.Move{
			{Row: 0, Col: 1},
			{Row: 1, Col: 0}, {Row: 1, Col: 2},
			{Row: 2, Col: 0}, {Row: 2, Col: 1},
		}
		assert.Equal(t, expected, moves)
		assert.Len(t, moves, 9-board.Count(x)-board.Count(o))
	})

	t.Run("Full board", func(t *testing.T) {
		board := entity.Board{{x, o, x}, {x, o, o}, {o, x, x}}
		assert.Empty(t, LegalMoves(&board))
	})
}

func TestValidateMove(t *testing.T) {
	// Given: X in the center
	board := entity.Board{}
	board.Set(1, 1, x)

	t.Run("Empty cell", func(t *testing.T) {
		require.NoError(t, ValidateMove(&board, entity.Move{Row: 0, Col: 0}))
	})

	t.Run("Occupied cell", func(t *testing.T) {
		err := ValidateMove(&board, entity.Move{Row: 1, Col: 1})
		require.ErrorIs(t, err, apperror.ErrCellOccupied)
	})

	t.Run("Out of range", func(t *testing.T) {
		err := ValidateMove(&board, entity.Move{Row: 5, Col: 5})
		require.ErrorIs(t, err, apperror.ErrInvalidCoordinate)
	})
}
