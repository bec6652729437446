package console

import (
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"
	"strings"

	"github.com/gorilla/schema"

	"github.com/vancomm/sweeper/internal/mines"
	"github.com/vancomm/sweeper/internal/solver"
)

type command string

const (
	cmdNoop    command = "g"
	cmdOpen    command = "o"
	cmdFlag    command = "f"
	cmdChord   command = "c"
	cmdHint    command = "h"
	cmdSolve   command = "s"
	cmdForfeit command = "r"
	cmdNew     command = "n"
	cmdQuit    command = "q"
	cmdHelp    command = "?"
)

// Maps known commands to number of arguments; -1 means zero or one.
var commandNargs = map[command]int{
	cmdNoop:    0,
	cmdOpen:    2,
	cmdFlag:    2,
	cmdChord:   2,
	cmdHint:    0,
	cmdSolve:   0,
	cmdForfeit: 0,
	cmdNew:     -1,
	cmdQuit:    0,
	cmdHelp:    0,
}

const helpText = `commands:
  o ROW COL   reveal a cell
  f ROW COL   toggle a flag
  c ROW COL   reveal the neighbours of a satisfied number
  h           suggest a certain move
  s           play every certain move
  r           give up
  n [QUERY]   new game, e.g. n rows=16&cols=30&mines=99
  g           redraw
  q           quit
several commands can be joined with ';'`

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrBadArgs        = errors.New("invalid arguments")
)

var paramsDecoder = schema.NewDecoder()

func init() {
	paramsDecoder.IgnoreUnknownKeys(true)
}

func parseXY(args []string) (row int, col int, err error) {
	if row, err = strconv.Atoi(args[0]); err != nil {
		err = fmt.Errorf("%w: row must be an int", ErrBadArgs)
		return
	}
	if col, err = strconv.Atoi(args[1]); err != nil {
		err = fmt.Errorf("%w: column must be an int", ErrBadArgs)
		return
	}
	return
}

// decodeParams reads query-style game params (rows=9&cols=9&mines=10).
func decodeParams(query string) (mines.Params, error) {
	var p mines.Params
	values, err := url.ParseQuery(query)
	if err != nil {
		return p, fmt.Errorf("%w: %w", ErrBadArgs, err)
	}
	if err := paramsDecoder.Decode(&p, values); err != nil {
		return p, fmt.Errorf("%w: %w", ErrBadArgs, err)
	}
	return p, nil
}

func parseCommand(line string) (command, []string, error) {
	tokens := strings.Fields(line)
	if len(tokens) == 0 {
		return cmdNoop, nil, nil
	}
	cmd, args := command(strings.ToLower(tokens[0])), tokens[1:]
	nargs, ok := commandNargs[cmd]
	if !ok {
		return "", nil, fmt.Errorf("%w %q", ErrUnknownCommand, tokens[0])
	}
	if (nargs >= 0 && nargs != len(args)) || (nargs < 0 && len(args) > 1) {
		return "", nil, fmt.Errorf(
			"%w: %q takes %s", ErrBadArgs, cmd, describeNargs(nargs),
		)
	}
	return cmd, args, nil
}

func describeNargs(n int) string {
	switch n {
	case -1:
		return "at most one argument"
	case 0:
		return "no arguments"
	case 1:
		return "one argument"
	default:
		return strconv.Itoa(n) + " arguments"
	}
}

// Execute runs a single command against the session and returns a message
// for the player, if any.
func (s *Session) Execute(line string) (string, error) {
	cmd, args, err := parseCommand(line)
	if err != nil {
		return "", err
	}

	s.logger.Debug(
		"command",
		slog.String("session", s.ID.String()),
		slog.String("line", line),
	)

	switch cmd {
	case cmdNoop:
		return "", nil
	case cmdHelp:
		return helpText, nil
	case cmdQuit:
		s.quit = true
		return "", nil
	case cmdNew:
		params := s.Params
		if len(args) == 1 {
			if params, err = decodeParams(args[0]); err != nil {
				return "", err
			}
		}
		if err := s.NewGame(params); err != nil {
			return "", err
		}
		return "new game " + params.String(), nil
	}

	if s.Board.Status() != mines.InProgress {
		return "the game is over, n starts a new one", nil
	}

	switch cmd {
	case cmdOpen, cmdChord:
		row, col, err := parseXY(args)
		if err != nil {
			return "", err
		}
		var out mines.RevealOutcome
		if cmd == cmdOpen {
			out, err = s.Board.Reveal(row, col)
		} else {
			out, err = s.Board.Chord(row, col)
		}
		if err != nil {
			return "", err
		}
		return s.afterMove(out.Status), nil
	case cmdFlag:
		row, col, err := parseXY(args)
		if err != nil {
			return "", err
		}
		out, err := s.Board.ToggleFlag(row, col)
		if err != nil {
			return "", err
		}
		if !out.Changed && out.State == mines.Hidden {
			return "no flags left", nil
		}
		return "", nil
	case cmdHint:
		hint, ok := solver.Next(s.Board)
		if !ok {
			return "no certain move, time to guess", nil
		}
		return "try: " + hint.String(), nil
	case cmdSolve:
		status, err := solver.New(s.Board, s.logger).Solve()
		if err != nil {
			return "", err
		}
		if status == mines.InProgress {
			return "no more certain moves", nil
		}
		return s.afterMove(status), nil
	case cmdForfeit:
		return s.afterMove(s.Board.Forfeit().Status), nil
	}

	return "", fmt.Errorf("%w %q", ErrUnknownCommand, cmd)
}
