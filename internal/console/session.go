// Package console is a line-oriented text front end for the board engine.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/vancomm/sweeper/internal/mines"
)

// Session is one player's sequence of games. The session, not the board,
// keeps the wall clock.
type Session struct {
	ID        uuid.UUID
	Params    mines.Params
	Board     *mines.Board
	StartedAt time.Time
	EndedAt   time.Time

	logger *slog.Logger
	opts   []mines.Option
	now    func() time.Time
	quit   bool
}

func NewSession(logger *slog.Logger, params mines.Params, opts ...mines.Option) (*Session, error) {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Session{
		logger: logger,
		opts:   opts,
		now:    time.Now,
	}
	if err := s.NewGame(params); err != nil {
		return nil, err
	}
	return s, nil
}

// NewGame discards the current board and starts over with params.
func (s *Session) NewGame(params mines.Params) error {
	if err := params.ValidateSafeZone(); err != nil {
		return err
	}
	board, err := mines.NewFromParams(params, s.opts...)
	if err != nil {
		return err
	}

	s.ID = uuid.New()
	s.Params = params
	s.Board = board
	s.StartedAt = s.now().UTC()
	s.EndedAt = time.Time{}

	s.logger.Info(
		"new game",
		slog.String("session", s.ID.String()),
		slog.String("params", params.String()),
	)
	return nil
}

// Elapsed is the time from the start of the game to its end, or to now if
// it is still in progress.
func (s *Session) Elapsed() time.Duration {
	if s.EndedAt.IsZero() {
		return s.now().UTC().Sub(s.StartedAt)
	}
	return s.EndedAt.Sub(s.StartedAt)
}

func (s *Session) Done() bool {
	return s.quit
}

func (s *Session) afterMove(status mines.Status) string {
	if status == mines.InProgress || !s.EndedAt.IsZero() {
		return ""
	}
	s.EndedAt = s.now().UTC()
	s.logger.Info(
		"game over",
		slog.String("session", s.ID.String()),
		slog.String("status", status.String()),
		slog.Duration("elapsed", s.Elapsed()),
	)
	if status == mines.Won {
		return fmt.Sprintf("cleared in %s!", s.Elapsed().Round(time.Second))
	}
	return "BOOM! game over"
}

// ExecuteLine runs every ';'-separated command on the line, stopping at the
// first error or when the game ends.
func (s *Session) ExecuteLine(line string) (messages []string, err error) {
	for _, piece := range byPiece(strings.TrimSpace(line), ";") {
		before := s.Board.Status()
		msg, err := s.Execute(strings.TrimSpace(piece))
		if msg != "" {
			messages = append(messages, msg)
		}
		if err != nil {
			return messages, err
		}
		if s.quit || before == mines.InProgress && s.Board.Status() != mines.InProgress {
			break
		}
	}
	return messages, nil
}

// Run reads commands from r until EOF, quit or cancellation, rendering the
// board to w after every line.
func (s *Session) Run(ctx context.Context, r io.Reader, w io.Writer) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan string)
	scanErr := make(chan error, 1)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		scanErr <- scanner.Err()
	}()

	if err := s.Render(w); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case line, ok := <-lines:
			if !ok {
				select {
				case err := <-scanErr:
					return err
				default:
					return ctx.Err()
				}
			}
			if strings.TrimSpace(line) == "" {
				continue
			}

			messages, err := s.ExecuteLine(line)
			if err != nil {
				s.logger.Debug(
					"command rejected",
					slog.String("session", s.ID.String()),
					slog.Any("error", err),
				)
				messages = append(messages, "error: "+err.Error())
			}
			if s.quit {
				return nil
			}
			if err := s.Render(w); err != nil {
				return err
			}
			for _, m := range messages {
				if _, err := fmt.Fprintln(w, m); err != nil {
					return err
				}
			}
		}
	}
}
