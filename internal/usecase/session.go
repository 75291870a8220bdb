package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

const (
	promptMode   = "Do you want to play against another player or the computer? (p/c): "
	promptReplay = "Do you want to play again? (y/n): "

	msgInvalidMode = "Invalid choice. Please select 'p' for player vs player or 'c' for player vs computer."
	msgFarewell    = "Thank you for playing!"
)

type sessionConsole interface {
	Println(text string) error
	Prompt(prompt string) (string, error)
}

type gamePlayer interface {
	Play(ctx context.Context, settings entity.Settings) (*entity.Game, error)
}

// Session - the outer loop: mode selection, one game, replay question.
type Session struct {
	logger *slog.Logger

	console   sessionConsole
	player    gamePlayer
	humanMark entity.Cell
}

func NewSession(logger *slog.Logger, console sessionConsole, player gamePlayer, humanMark entity.Cell) *Session {
	return &Session{
		logger:    logger.With("component", "session"),
		console:   console,
		player:    player,
		humanMark: humanMark,
	}
}

// Run - loops until the replay answer is anything but y/Y.
func (that *Session) Run(ctx context.Context) error {
	for {
		if err := that.playRound(ctx); err != nil {
			return err
		}

		answer, err := that.console.Prompt(promptReplay)
		if err != nil {
			return err
		}

		if !wantsReplay(answer) {
			break
		}
	}

	return that.console.Println(msgFarewell)
}

// playRound - an invalid mode skips the game without re-prompting.
func (that *Session) playRound(ctx context.Context) error {
	token, err := that.console.Prompt(promptMode)
	if err != nil {
		return err
	}

	mode, err := entity.ParseGameMode(token)
	if err != nil {
		that.logger.Debug("game mode rejected", "error", err)
		return that.console.Println(msgInvalidMode)
	}

	if _, err = that.player.Play(ctx, entity.NewSettings(mode, that.humanMark)); err != nil {
		return fmt.Errorf("failed to play game: %w", err)
	}

	return nil
}

// wantsReplay - only the first character of the answer counts, so "yes" replays.
func wantsReplay(answer string) bool {
	return strings.HasPrefix(answer, "y") || strings.HasPrefix(answer, "Y")
}
