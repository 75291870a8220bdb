package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/rocketscienceinc/tictactoe-console/internal/tictactoe"
)

const (
	msgWelcome        = "Welcome to Tic-Tac-Toe!"
	msgVersusComputer = "You are playing against the computer."
	msgVersusPlayer   = "You are playing against another player."
	msgInvalidMove    = "Invalid move. Please try again."
	msgDraw           = "It's a draw!"

	promptMove = "Player %s, enter row (0-2) and column (0-2),( by using space between them):"
)

type gameConsole interface {
	Println(text string) error
	RenderBoard(board *entity.Board) error
	ReadMove(prompt string) (entity.Move, error)
}

type botService interface {
	SelectMove(board *entity.Board, computer, opponent entity.Cell) (entity.Move, error)
}

type gameService interface {
	CreateGame(settings entity.Settings) *entity.Game
	SaveGame(ctx context.Context, game *entity.Game) error
}

// GameManager - runs one game: alternates move sources and checks the rules
// after every move until the game is won or drawn.
type GameManager struct {
	logger *slog.Logger

	console     gameConsole
	botService  botService
	gameService gameService
}

func NewGameManager(logger *slog.Logger, console gameConsole, botService botService, gameService gameService) *GameManager {
	return &GameManager{
		logger: logger.With("component", "game_manager"),

		console:     console,
		botService:  botService,
		gameService: gameService,
	}
}

// Play - runs a game to its end. The returned game is in StatusWon or
// StatusDraw unless an error is returned.
func (that *GameManager) Play(ctx context.Context, settings entity.Settings) (*entity.Game, error) {
	game := that.gameService.CreateGame(settings)
	log := that.logger.With("method", "Play", "game_id", game.ID, "mode", settings.Mode)

	if err := that.announceStart(settings); err != nil {
		return game, err
	}

	// IsDraw ends the game first; the cap only guards the loop.
	for range entity.MaxTurns {
		if err := ctx.Err(); err != nil {
			return game, fmt.Errorf("game interrupted: %w", err)
		}

		if err := that.console.RenderBoard(&game.Board); err != nil {
			return game, err
		}

		move, err := that.nextMove(game, settings)
		if err != nil {
			return game, fmt.Errorf("failed to get move: %w", err)
		}

		game.Apply(move)
		log.Debug("move applied", "mark", game.Turn, "move", move.String())

		switch {
		case tictactoe.HasWon(&game.Board, game.Turn):
			game.Status = entity.StatusWon
			game.Winner = game.Turn

			return game, that.finish(ctx, log, game, that.winMessage(game))
		case tictactoe.IsDraw(&game.Board):
			game.Status = entity.StatusDraw

			return game, that.finish(ctx, log, game, msgDraw)
		default:
			game.SwitchTurn()
		}
	}

	return game, apperror.ErrTurnLimitExceeded
}

func (that *GameManager) announceStart(settings entity.Settings) error {
	if err := that.console.Println(msgWelcome); err != nil {
		return err
	}

	if settings.Mode == entity.ModeHumanVsComputer {
		return that.console.Println(msgVersusComputer)
	}

	return that.console.Println(msgVersusPlayer)
}

func (that *GameManager) nextMove(game *entity.Game, settings entity.Settings) (entity.Move, error) {
	if settings.IsHumanTurn(game.Turn) {
		return that.humanMove(game)
	}

	move, err := that.botService.SelectMove(&game.Board, game.Turn, entity.ToggleMark(game.Turn))
	if err != nil {
		return entity.Move{}, fmt.Errorf("computer failed to move: %w", err)
	}

	return move, nil
}

// humanMove - re-prompts until the input names an empty cell on the board.
func (that *GameManager) humanMove(game *entity.Game) (entity.Move, error) {
	prompt := fmt.Sprintf(promptMove, game.Turn)

	for {
		move, err := that.console.ReadMove(prompt)
		if err != nil && !errors.Is(err, apperror.ErrMalformedMove) {
			return entity.Move{}, err
		}

		if err == nil {
			if err = tictactoe.ValidateMove(&game.Board, move); err == nil {
				return move, nil
			}
		}

		that.logger.Debug("move rejected", "mark", game.Turn, "error", err)

		if err = that.console.Println(msgInvalidMove); err != nil {
			return entity.Move{}, err
		}
	}
}

func (that *GameManager) finish(ctx context.Context, log *slog.Logger, game *entity.Game, message string) error {
	if err := that.console.RenderBoard(&game.Board); err != nil {
		return err
	}

	if err := that.console.Println(message); err != nil {
		return err
	}

	log.Info("game finished", "status", game.Status, "winner", game.Winner, "moves", len(game.Moves))

	// the journal is best effort and never ends a game
	if err := that.gameService.SaveGame(ctx, game); err != nil {
		log.Error("failed to save game", "error", err)
	}

	return nil
}

func (that *GameManager) winMessage(game *entity.Game) string {
	if player := game.Player(game.Winner); player != nil && player.IsComputer() {
		return fmt.Sprintf("Computer (%s) wins!", game.Winner)
	}

	return fmt.Sprintf("Player %s wins!", game.Winner)
}
