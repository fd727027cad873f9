// Blueprint for new Go projects
// Author: Christi Mahu – https://christimahu.dev
// Part of the dev repo: https://github.com/christimahu/dev/
// This file is part of a minimal idiomatic Go blueprint for creating new applications.
//
// session.go - Runs one conversation: greets, reads lines until an exit,
// collects located items and hands the shopping list to an exporter.

package chatbot

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"strings"

	"go.uber.org/zap"
)

// State is the dialogue loop's position.
type State int

const (
	StateGreeting State = iota
	StateAwaitingInput
	StateProcessing
	StateExit
	StateExport
	StateTerminal
)

func (s State) String() string {
	switch s {
	case StateGreeting:
		return "greeting"
	case StateAwaitingInput:
		return "awaiting_input"
	case StateProcessing:
		return "processing"
	case StateExit:
		return "exit"
	case StateExport:
		return "export"
	case StateTerminal:
		return "terminal"
	default:
		return "unknown"
	}
}

// DefaultExportNotice is printed before the shopping list is exported.
const DefaultExportNotice = "Generating your shopping list PDF..."

// Exporter receives the shopping list once the conversation ends.
type Exporter interface {
	Export(items []string) error
}

// Session is a single conversation. It is not safe for concurrent use.
type Session struct {
	bot      *Bot
	in       *bufio.Reader
	out      io.Writer
	exporter Exporter
	notice   string
	pick     func(n int) int
	logger   *zap.Logger

	state State
	list  []string
}

// Option configures a Session.
type Option func(*Session)

// WithExporter sets where the shopping list goes at the end. Without one the
// list is discarded.
func WithExporter(e Exporter) Option {
	return func(s *Session) { s.exporter = e }
}

// WithExportNotice replaces DefaultExportNotice.
func WithExportNotice(notice string) Option {
	return func(s *Session) { s.notice = notice }
}

// WithPicker sets how the greeting is chosen. pick(n) must return a value
// in [0, n).
func WithPicker(pick func(n int) int) Option {
	return func(s *Session) { s.pick = pick }
}

// WithLogger sets the diagnostic logger.
func WithLogger(l *zap.Logger) Option {
	return func(s *Session) { s.logger = l }
}

// NewSession returns a Session reading lines from in and writing replies
// to out.
func NewSession(bot *Bot, in io.Reader, out io.Writer, opts ...Option) *Session {
	s := &Session{
		bot:    bot,
		in:     bufio.NewReader(in),
		out:    out,
		notice: DefaultExportNotice,
		pick:   rand.Intn,
		logger: zap.NewNop(),
		state:  StateGreeting,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// State returns the loop's current state.
func (s *Session) State() State { return s.state }

// ShoppingList returns a copy of the items collected so far.
func (s *Session) ShoppingList() []string {
	out := make([]string, len(s.list))
	copy(out, s.list)
	return out
}

// Run drives the conversation to completion. End of input ends the
// conversation like an exit command, minus the goodbye. ctx is checked
// before each read, never during one; a cancelled ctx skips the export.
func (s *Session) Run(ctx context.Context) error {
	s.say(s.bot.Greeting(s.pick))

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		s.state = StateAwaitingInput
		s.say(s.bot.Prompt)
		line, ok, err := s.readLine()
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}
		if !ok {
			s.logger.Debug("input closed")
			break
		}

		s.state = StateProcessing
		turn := s.bot.Respond(line)
		for _, line := range turn.Lines {
			s.say(line)
		}
		s.list = append(s.list, turn.Found...)
		s.logger.Debug("turn",
			zap.Stringer("intent", turn.Intent),
			zap.Strings("found", turn.Found),
			zap.Bool("exit", turn.Exit),
		)
		if turn.Exit {
			break
		}
	}

	s.state = StateExit
	if err := s.export(); err != nil {
		return err
	}
	s.state = StateTerminal
	return nil
}

func (s *Session) export() error {
	if len(s.list) == 0 || s.exporter == nil {
		return nil
	}
	s.state = StateExport
	s.say(s.notice)
	if err := s.exporter.Export(s.ShoppingList()); err != nil {
		return fmt.Errorf("failed to export shopping list: %w", err)
	}
	return nil
}

// readLine returns the next line without its terminator. Lines have no
// length limit. ok is false once input is exhausted.
func (s *Session) readLine() (line string, ok bool, err error) {
	line, err = s.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", false, err
		}
		if line == "" {
			return "", false, nil
		}
	}
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line, true, nil
}

func (s *Session) say(line string) {
	fmt.Fprintln(s.out, line)
}
