package service

import (
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/rocketscienceinc/tictactoe-console/internal/tictactoe"
)

const (
	winScore     = 10
	loseScore    = -10
	neutralScore = 0

	initialBestScore = -1000
)

type BotService interface {
	SelectMove(board *entity.Board, computer, opponent entity.Cell) (entity.Move, error)
}

type botService struct {
	logger *slog.Logger
	rnd    *rand.Rand
	out    io.Writer
}

// NewBotService - rnd is owned by the caller and seeded once per process.
func NewBotService(logger *slog.Logger, rnd *rand.Rand, out io.Writer) BotService {
	return &botService{
		logger: logger.With("component", "bot"),
		rnd:    rnd,
		out:    out,
	}
}

// SelectMove - one-ply greedy choice: every legal move is tried with the
// computer's mark, scored and undone; a uniform pick among the best wins.
// It takes an immediate win when one exists and never blocks the opponent.
func (that *botService) SelectMove(board *entity.Board, computer, opponent entity.Cell) (entity.Move, error) {
	moves := tictactoe.LegalMoves(board)
	if len(moves) == 0 {
		return entity.Move{}, apperror.ErrNoAvailableMoves
	}

	bestScore := initialBestScore
	bestMoves := make([]entity.Move, 0, len(moves))

	for _, move := range moves {
		score := scoreMove(board, move, computer, opponent)

		switch {
		case score > bestScore:
			bestScore = score
			bestMoves = append(bestMoves[:0], move)
		case score == bestScore:
			bestMoves = append(bestMoves, move)
		}
	}

	chosen := bestMoves[that.rnd.IntN(len(bestMoves))]

	that.logger.Debug("move selected", "move", chosen.String(), "score", bestScore, "candidates", len(bestMoves))

	if _, err := fmt.Fprintf(that.out, "Computer (%s) plays at %d %d\n", computer, chosen.Row, chosen.Col); err != nil {
		return entity.Move{}, fmt.Errorf("failed to announce move: %w", err)
	}

	return chosen, nil
}

// scoreMove - places computer at move, scores the position and restores the cell.
func scoreMove(board *entity.Board, move entity.Move, computer, opponent entity.Cell) int {
	board.Set(move.Row, move.Col, computer)
	defer board.Set(move.Row, move.Col, entity.EmptyCell)

	switch {
	case tictactoe.HasWon(board, computer):
		return winScore
	// Placing the computer's own mark cannot complete an opponent line, so this
	// branch never fires at one ply. It becomes meaningful with deeper search.
	case tictactoe.HasWon(board, opponent):
		return loseScore
	default:
		return neutralScore
	}
}
