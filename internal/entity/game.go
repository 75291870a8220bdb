package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
)

const (
	StatusAwaitingMove = "awaiting-move"
	StatusInProgress   = "in-progress"
	StatusWon          = "won"
	StatusDraw         = "draw"
)

const MaxTurns = BoardSize * BoardSize

type GameMode string

const (
	ModeHumanVsHuman    GameMode = "p"
	ModeHumanVsComputer GameMode = "c"
)

// ParseGameMode - only the first character of the answer counts, so "computer" is "c".
func ParseGameMode(token string) (GameMode, error) {
	if token == "" {
		return "", fmt.Errorf("%w: empty answer", apperror.ErrInvalidMode)
	}

	switch mode := GameMode(token[:1]); mode {
	case ModeHumanVsHuman, ModeHumanVsComputer:
		return mode, nil
	default:
		return "", fmt.Errorf("%w: %q", apperror.ErrInvalidMode, token)
	}
}

// Settings - who plays which mark. Immutable for the duration of a game.
type Settings struct {
	Mode         GameMode
	HumanMark    Cell
	ComputerMark Cell
}

func NewSettings(mode GameMode, humanMark Cell) Settings {
	return Settings{
		Mode:         mode,
		HumanMark:    humanMark,
		ComputerMark: ToggleMark(humanMark),
	}
}

// IsHumanTurn - every turn is human in HumanVsHuman, otherwise only HumanMark's.
func (that Settings) IsHumanTurn(mover Cell) bool {
	return that.Mode == ModeHumanVsHuman || mover == that.HumanMark
}

type Game struct {
	ID      string    `json:"id"`
	Mode    GameMode  `json:"mode"`
	Board   Board     `json:"board"`
	Turn    Cell      `json:"turn"`
	Winner  Cell      `json:"winner"`
	Status  string    `json:"status"`
	Moves   []Move    `json:"moves"`
	Players []*Player `json:"players"`
}

func NewGame(id string, settings Settings) *Game {
	players := []*Player{
		{Mark: PlayerX, Kind: KindHuman},
		{Mark: PlayerO, Kind: KindHuman},
	}

	if settings.Mode == ModeHumanVsComputer {
		for _, player := range players {
			if player.Mark == settings.ComputerMark {
				player.Kind = KindComputer
			}
		}
	}

	return &Game{
		ID:      id,
		Mode:    settings.Mode,
		Turn:    PlayerX,
		Status:  StatusAwaitingMove,
		Moves:   make([]Move, 0, MaxTurns),
		Players: players,
	}
}

// Player - returns the participant playing mark.
func (that *Game) Player(mark Cell) *Player {
	for _, player := range that.Players {
		if player.Mark == mark {
			return player
		}
	}

	return nil
}

// Apply - places the current mover's mark and records the move.
func (that *Game) Apply(move Move) {
	that.Board.Set(move.Row, move.Col, that.Turn)
	that.Moves = append(that.Moves, move)
	that.Status = StatusInProgress
}

func (that *Game) SwitchTurn() {
	that.Turn = ToggleMark(that.Turn)
	that.Status = StatusAwaitingMove
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusWon || that.Status == StatusDraw
}

func ToggleMark(mark Cell) Cell {
	if mark == PlayerX {
		return PlayerO
	}
	return PlayerX
}
