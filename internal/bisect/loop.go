package bisect

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/gkwa/wackywolffish/internal/logging"
)

const usageLine = "Commands: n=bisect right (later), p=bisect left (earlier), r [count]=undo last move(s), q=quit"

// Loop reads commands from in and applies them to the session until quit or
// end of input. Session reports go to out, errors and warnings to errOut.
type Loop struct {
	session *Session
	viewer  Viewer
	out     io.Writer
	errOut  io.Writer
	logger  *slog.Logger
}

// NewLoop wires a command loop around an existing session. logger may be nil.
func NewLoop(session *Session, viewer Viewer, out, errOut io.Writer, logger *slog.Logger) *Loop {
	return &Loop{
		session: session,
		viewer:  viewer,
		out:     out,
		errOut:  errOut,
		logger:  logging.NewComponentLogger(logger, "bisect"),
	}
}

// Run prints the opening banner, surfaces the starting frame, and processes
// commands one per line. End of input terminates cleanly, like quit.
func (l *Loop) Run(in io.Reader) error {
	fmt.Fprintf(l.out, "Loaded %d images\n", l.session.Len())
	fmt.Fprintln(l.out, usageLine)
	l.report()

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		command := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if command == "q" {
			return nil
		}
		l.apply(command)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read command: %w", err)
	}
	return nil
}

func (l *Loop) apply(command string) {
	switch {
	case command == "n":
		l.narrow(l.session.Later)
	case command == "p":
		l.narrow(l.session.Earlier)
	case command == "r" || command == "u" || strings.HasPrefix(command, "r ") || strings.HasPrefix(command, "u "):
		l.undo(command)
	default:
		fmt.Fprintf(l.errOut, "Unknown command. %s\n", usageLine)
	}
}

func (l *Loop) narrow(move func() error) {
	if err := move(); err != nil {
		if errors.Is(err, ErrExhausted) {
			fmt.Fprintln(l.errOut, "Cannot bisect further")
			return
		}
		fmt.Fprintln(l.errOut, err)
		return
	}
	l.report()
}

func (l *Loop) undo(command string) {
	count := 1
	if fields := strings.Fields(command); len(fields) > 1 {
		parsed, err := strconv.Atoi(fields[1])
		if err != nil {
			fmt.Fprintln(l.errOut, "Invalid undo count. Use 'r' or 'r <number>'")
			return
		}
		count = parsed
	}

	if err := l.session.Undo(count); err != nil {
		fmt.Fprintln(l.errOut, err)
		return
	}
	fmt.Fprintf(l.out, "Undid %d move(s)\n", count)
	l.report()
}

// report surfaces the current frame and prints the window and position lines.
func (l *Loop) report() {
	frame := l.session.Frame()
	if err := l.viewer.Display(frame.Path); err != nil {
		fmt.Fprintf(l.errOut, "Warning: could not display %s: %v\n", frame.Path, err)
		l.logger.Warn("viewer failed", logging.Args(logging.String("path", frame.Path), logging.Error(err))...)
	}
	state := l.session.State()
	fmt.Fprintf(l.out, "Range: [%d, %d], Current: %d\n", state.Low, state.High, state.Current)
	fmt.Fprintf(l.out, "[%d/%d] %s\n", state.Current+1, l.session.Len(), frame.Path)
}
