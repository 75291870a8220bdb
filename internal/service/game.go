package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

type GameService interface {
	CreateGame(settings entity.Settings) *entity.Game
	SaveGame(ctx context.Context, game *entity.Game) error
}

type gameRepo interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
}

type gameService struct {
	gameRepo gameRepo
}

func NewGameService(gameRepo gameRepo) GameService {
	return &gameService{
		gameRepo: gameRepo,
	}
}

// CreateGame - a fresh in-memory game; nothing is stored until SaveGame.
func (that *gameService) CreateGame(settings entity.Settings) *entity.Game {
	return entity.NewGame(uuid.NewString(), settings)
}

func (that *gameService) SaveGame(ctx context.Context, game *entity.Game) error {
	if err := that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return fmt.Errorf("failed to save game to journal: %w", err)
	}
	return nil
}
