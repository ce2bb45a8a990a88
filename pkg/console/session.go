// Package console runs an interactive read-answer-print loop over a line
// oriented reader.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/rs/zerolog"

	"cryptohomeboy/pkg/logging"
)

// Handler answers one line of input.
type Handler interface {
	ProcessTask(ctx context.Context, task string) (string, error)
}

// Options configures the text around the conversation.
type Options struct {
	BotName  string
	Banner   []string
	Farewell string
	Prompt   string
	// IsExit reports whether a line ends the session.
	IsExit   func(line string) bool
	Color    bool
}

// Session is one console conversation.
type Session struct {
	in      io.Reader
	out     io.Writer
	handler Handler
	opts    Options
	log     zerolog.Logger

	bot    *color.Color
	prompt *color.Color
}

// NewSession creates a session reading from in and writing to out.
func NewSession(in io.Reader, out io.Writer, handler Handler, opts Options, logger zerolog.Logger) *Session {
	if opts.Prompt == "" {
		opts.Prompt = "You: "
	}
	if opts.IsExit == nil {
		opts.IsExit = func(string) bool { return false }
	}

	s := &Session{
		in:      in,
		out:     out,
		handler: handler,
		opts:    opts,
		log:     logging.Component(logger, "console"),
		bot:     color.New(color.FgGreen, color.Bold),
		prompt:  color.New(color.FgCyan),
	}
	if opts.Color {
		s.bot.EnableColor()
		s.prompt.EnableColor()
	} else {
		s.bot.DisableColor()
		s.prompt.DisableColor()
	}
	return s
}

// Run greets the user and answers lines until an exit word, end of input or
// ctx cancellation (interrupt). All three end the session without error.
func (s *Session) Run(ctx context.Context) error {
	for _, line := range s.opts.Banner {
		fmt.Fprintln(s.out, line)
	}

	lines := make(chan string)
	readErr := make(chan error, 1)
	done := make(chan struct{})
	defer close(done)
	go s.readLines(lines, readErr, done)

	for {
		fmt.Fprint(s.out, "\n"+s.prompt.Sprint(s.opts.Prompt))

		select {
		case <-ctx.Done():
			s.log.Debug().Msg("interrupted")
			fmt.Fprintln(s.out, "\n"+s.opts.Farewell)
			return nil
		case err := <-readErr:
			if err != nil {
				s.log.Warn().Err(err).Msg("read failed")
			}
			fmt.Fprintln(s.out, "\n"+s.opts.Farewell)
			return nil
		case line := <-lines:
			user := strings.TrimSpace(line)
			if s.opts.IsExit(user) {
				fmt.Fprintln(s.out, s.opts.Farewell)
				return nil
			}

			reply, err := s.handler.ProcessTask(ctx, user)
			if err != nil {
				return fmt.Errorf("answer %q: %w", user, err)
			}
			fmt.Fprintf(s.out, "%s %s\n", s.bot.Sprint(s.opts.BotName+":"), reply)
		}
	}
}

// readLines feeds lines until EOF or done; a nil error on readErr means EOF.
func (s *Session) readLines(lines chan<- string, readErr chan<- error, done <-chan struct{}) {
	scanner := bufio.NewScanner(s.in)
	for scanner.Scan() {
		select {
		case lines <- scanner.Text():
		case <-done:
			return
		}
	}
	readErr <- scanner.Err()
}
