package storage

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	// import the pure-Go SQLite driver to register it with the database/sql package.
	_ "github.com/glebarez/go-sqlite"
)

const sqliteDriver = "sqlite"

type Storage struct {
	Connection *sqlx.DB
}

func NewSQLiteStorage(path string) (*Storage, error) {
	conn, err := sqlx.Open(sqliteDriver, path)
	if err != nil {
		return nil, fmt.Errorf("can't open database: %w", err)
	}

	if err = conn.Ping(); err != nil {
		return nil, fmt.Errorf("can't connect to database: %w", err)
	}

	return &Storage{Connection: conn}, nil
}

func (that *Storage) Init(ctx context.Context) error {
	query := `CREATE TABLE IF NOT EXISTS games (
		id      TEXT PRIMARY KEY,
		mode    TEXT NOT NULL,
		status  TEXT NOT NULL,
		winner  TEXT NOT NULL,
		payload TEXT NOT NULL
	)`

	_, err := that.Connection.ExecContext(ctx, query)
	if err != nil {
		return fmt.Errorf("can't create table: %w", err)
	}

	return nil
}

func (that *Storage) Close() error {
	return that.Connection.Close()
}
