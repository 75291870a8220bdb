package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

const (
	DriverNone   = "none"
	DriverRedis  = "redis"
	DriverSQLite = "sqlite"

	ColorAuto  = "auto"
	ColorNever = "never"
)

type Config struct {
	LogLevel  string  `yaml:"log-level" env:"LOG_LEVEL" env-default:"error"`
	Seed      uint64  `yaml:"seed" env:"SEED" env-default:"0"`
	Color     string  `yaml:"color" env:"COLOR" env-default:"auto"`
	HumanMark string  `yaml:"human-mark" env:"HUMAN_MARK" env-default:"X"`
	Journal   Journal `yaml:"journal"`
}

type Journal struct {
	Driver     string `yaml:"driver" env:"JOURNAL_DRIVER" env-default:"none"`
	Redis      Redis  `yaml:"redis"`
	SQLitePath string `yaml:"sqlite-path" env:"JOURNAL_SQLITE_PATH" env-default:"journal.db"`
}

type Redis struct {
	Host string `yaml:"host" env:"JOURNAL_REDIS_HOST" env-default:"localhost"`
	Port string `yaml:"port" env:"JOURNAL_REDIS_PORT" env-default:"6379"`
}

// MustLoad - load configuration from the given yml file, or from the environment when the file is absent.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	_, err := os.Stat(path)
	switch {
	case err == nil:
		if err = cleanenv.ReadConfig(path, config); err != nil {
			return nil, fmt.Errorf("unable to load config file: %w", err)
		}
	case errors.Is(err, os.ErrNotExist):
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to load config from environment: %w", err)
		}
	default:
		return nil, fmt.Errorf("unable to stat config file: %w", err)
	}

	if err = config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate rejects values the application cannot run with.
func (that *Config) Validate() error {
	if _, err := that.Mark(); err != nil {
		return err
	}

	switch that.Color {
	case ColorAuto, ColorNever:
	default:
		return fmt.Errorf("%w: color %q", apperror.ErrInvalidConfig, that.Color)
	}

	switch that.Journal.Driver {
	case DriverNone, DriverRedis, DriverSQLite:
	default:
		return fmt.Errorf("%w: %q", apperror.ErrUnknownDriver, that.Journal.Driver)
	}

	return nil
}

// Mark - the human's mark in games against the computer.
func (that *Config) Mark() (entity.Cell, error) {
	switch mark := entity.Cell(that.HumanMark); mark {
	case entity.PlayerX, entity.PlayerO:
		return mark, nil
	default:
		return entity.EmptyCell, fmt.Errorf("%w: human-mark %q", apperror.ErrInvalidConfig, that.HumanMark)
	}
}

func (that *Config) ColorEnabled() bool {
	return that.Color != ColorNever
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
