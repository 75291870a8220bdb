package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

// WinCombos - the 8 winning lines: rows, columns, diagonals.
var WinCombos = [8][3]entity.Move{
	{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}},
	{{Row: 1, Col: 0}, {Row: 1, Col: 1}, {Row: 1, Col: 2}},
	{{Row: 2, Col: 0}, {Row: 2, Col: 1}, {Row: 2, Col: 2}},
	{{Row: 0, Col: 0}, {Row: 1, Col: 0}, {Row: 2, Col: 0}},
	{{Row: 0, Col: 1}, {Row: 1, Col: 1}, {Row: 2, Col: 1}},
	{{Row: 0, Col: 2}, {Row: 1, Col: 2}, {Row: 2, Col: 2}},
	{{Row: 0, Col: 0}, {Row: 1, Col: 1}, {Row: 2, Col: 2}},
	{{Row: 0, Col: 2}, {Row: 1, Col: 1}, {Row: 2, Col: 0}},
}

// HasWon - true iff some line is entirely filled with mark.
func HasWon(board *entity.Board, mark entity.Cell) bool {
	if mark == entity.EmptyCell {
		return false
	}

	for _, combo := range WinCombos {
		a, b, c := board[combo[0].Row][combo[0].Col], board[combo[1].Row][combo[1].Col], board[combo[2].Row][combo[2].Col]
		if a == mark && b == mark && c == mark {
			return true
		}
	}

	return false
}

// IsDraw - true iff no empty cell remains. Check HasWon first.
func IsDraw(board *entity.Board) bool {
	return board.Count(entity.EmptyCell) == 0
}

// LegalMoves - every empty cell in row-major order.
func LegalMoves(board *entity.Board) []entity.Move {
	moves := make([]entity.Move, 0, entity.MaxTurns)
	for r, row := range board {
		for c, cell := range row {
			if cell == entity.EmptyCell {
				moves = append(moves, entity.Move{Row: r, Col: c})
			}
		}
	}

	return moves
}

// ValidateMove - the move must be on the board and target an empty cell.
func ValidateMove(board *entity.Board, move entity.Move) error {
	cell, err := board.Get(move.Row, move.Col)
	if err != nil {
		return err
	}

	if cell != entity.EmptyCell {
		return fmt.Errorf("%w: %s", apperror.ErrCellOccupied, move)
	}

	return nil
}
