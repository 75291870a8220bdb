package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

type sqliteGame struct {
	conn *sqlx.DB
}

type gameRow struct {
	ID      string `db:"id"`
	Mode    string `db:"mode"`
	Status  string `db:"status"`
	Winner  string `db:"winner"`
	Payload string `db:"payload"`
}

func NewSQLiteGameRepository(conn *sqlx.DB) GameRepository {
	return &sqliteGame{
		conn: conn,
	}
}

func (that *sqliteGame) CreateOrUpdate(ctx context.Context, game *entity.Game) error {
	payload, err := json.Marshal(game)
	if err != nil {
		return fmt.Errorf("could not marshal game: %w", err)
	}

	row := gameRow{
		ID:      game.ID,
		Mode:    string(game.Mode),
		Status:  game.Status,
		Winner:  string(game.Winner),
		Payload: string(payload),
	}

	query := `INSERT OR REPLACE INTO games (id, mode, status, winner, payload)
		VALUES (:id, :mode, :status, :winner, :payload)`

	if _, err = that.conn.NamedExecContext(ctx, query, row); err != nil {
		return fmt.Errorf("can't save game: %w", err)
	}

	return nil
}

func (that *sqliteGame) GetByID(ctx context.Context, id string) (*entity.Game, error) {
	query := `SELECT id, mode, status, winner, payload FROM games WHERE id = ?`

	var row gameRow

	err := that.conn.GetContext(ctx, &row, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrGameNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("can't find game: %w", err)
	}

	var existingGame entity.Game
	if err = json.Unmarshal([]byte(row.Payload), &existingGame); err != nil {
		return nil, fmt.Errorf("failed to unmarshal game: %w", err)
	}

	return &existingGame, nil
}
