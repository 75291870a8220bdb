package console

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/muesli/termenv"
	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

const (
	colorX = "9"  // bright red
	colorO = "12" // bright blue
)

// Console - line-oriented terminal I/O for the game.
type Console struct {
	scanner *bufio.Scanner
	out     *termenv.Output
}

type Option func(*options)

type options struct {
	color bool
}

// WithColor - colour marks when the output is a terminal that supports it.
func WithColor(enabled bool) Option {
	return func(o *options) {
		o.color = enabled
	}
}

func New(in io.Reader, out io.Writer, opts ...Option) *Console {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	var outputOpts []termenv.OutputOption
	if !o.color {
		outputOpts = append(outputOpts, termenv.WithProfile(termenv.Ascii))
	}

	return &Console{
		scanner: bufio.NewScanner(in),
		out:     termenv.NewOutput(out, outputOpts...),
	}
}

func (that *Console) Print(text string) error {
	if _, err := io.WriteString(that.out, text); err != nil {
		return fmt.Errorf("failed to write to console: %w", err)
	}

	return nil
}

func (that *Console) Println(text string) error {
	return that.Print(text + "\n")
}

// Writer - the underlying output, for components that print on their own.
func (that *Console) Writer() io.Writer {
	return that.out
}

// RenderBoard - prints the board with coloured marks when enabled.
func (that *Console) RenderBoard(board *entity.Board) error {
	return that.Print(board.RenderWith(that.styleMark))
}

// Prompt - prints text and returns the first token of the next non-blank line.
func (that *Console) Prompt(text string) (string, error) {
	if err := that.Print(text); err != nil {
		return "", err
	}

	fields, err := that.readFields()
	if err != nil {
		return "", err
	}

	return fields[0], nil
}

// ReadMove - prints text and parses "<row> <col>". A lone row waits for the
// column on the next non-blank line. Anything after the column is discarded.
// Range and occupancy are not checked here.
func (that *Console) ReadMove(text string) (entity.Move, error) {
	if err := that.Print(text); err != nil {
		return entity.Move{}, err
	}

	fields, err := that.readFields()
	if err != nil {
		return entity.Move{}, err
	}

	row, err := strconv.Atoi(fields[0])
	if err != nil {
		return entity.Move{}, fmt.Errorf("%w: row %q", apperror.ErrMalformedMove, fields[0])
	}

	if fields = fields[1:]; len(fields) == 0 {
		if fields, err = that.readFields(); err != nil {
			return entity.Move{}, err
		}
	}

	col, err := strconv.Atoi(fields[0])
	if err != nil {
		return entity.Move{}, fmt.Errorf("%w: column %q", apperror.ErrMalformedMove, fields[0])
	}

	return entity.Move{Row: row, Col: col}, nil
}

func (that *Console) readFields() ([]string, error) {
	for that.scanner.Scan() {
		if fields := strings.Fields(that.scanner.Text()); len(fields) > 0 {
			return fields, nil
		}
	}

	if err := that.scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read from console: %w", err)
	}

	return nil, apperror.ErrInputClosed
}

func (that *Console) styleMark(cell entity.Cell) string {
	if that.out.Profile == termenv.Ascii {
		return string(cell)
	}

	color := colorO
	if cell == entity.PlayerX {
		color = colorX
	}

	return that.out.String(string(cell)).Foreground(that.out.Color(color)).Bold().String()
}
