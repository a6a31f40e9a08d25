// Released under an MIT license. See LICENSE.

// Package ui provides an interactive prompt for the jasper language.
package ui

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"

	"github.com/peterh/liner"
	"go.uber.org/zap"
	"golang.org/x/exp/slices"

	"github.com/michaelmacinnis/jasper/internal/common/failure"
	"github.com/michaelmacinnis/jasper/internal/interface/cell"
	"github.com/michaelmacinnis/jasper/internal/interface/literal"
	"github.com/michaelmacinnis/jasper/internal/reader"
	"github.com/michaelmacinnis/jasper/internal/system/history"
)

const (
	prompt       = "> "
	continuation = ". "
)

// Evaluator is the interface for things that evaluate jasper source.
type Evaluator interface {
	Evaluate(text string) (cell.T, error)
	Names() []string
}

// Run prompts for input and passes each complete form to e until the
// user ends input.
func Run(e Evaluator) error {
	cli := liner.NewLiner()
	defer cli.Close()

	cli.SetCtrlCAborts(true)
	cli.SetWordCompleter(func(line string, pos int) (string, []string, string) {
		return complete(e.Names(), line, pos)
	})

	if err := history.Load(cli.ReadHistory); err != nil {
		zap.S().Warnw("cannot load history", "error", err)
	}

	s := &session{evaluator: e, output: os.Stdout}

	for {
		p := prompt
		if s.pending() {
			p = continuation
		}

		line, err := cli.Prompt(p)

		switch {
		case err == nil:
		case errors.Is(err, liner.ErrPromptAborted):
			s.reset()

			continue
		case errors.Is(err, io.EOF):
			fmt.Fprintln(os.Stdout)
			save(cli)

			return nil
		default:
			return err
		}

		if s.feed(line) {
			cli.AppendHistory(s.last)
		}
	}
}

func save(cli *liner.State) {
	if err := history.Save(cli.WriteHistory); err != nil {
		zap.S().Warnw("cannot save history", "error", err)
	}
}

// session accumulates lines until they form complete source text.
type session struct {
	buffer    strings.Builder
	evaluator Evaluator
	last      string
	output    io.Writer
}

// feed adds line to the pending text. When the text is complete, or
// cannot be completed by further input, it is evaluated and the result
// or error written to the output. It returns true if text was evaluated.
func (s *session) feed(line string) bool {
	s.buffer.WriteString(line)
	s.buffer.WriteString("\n")

	text := s.buffer.String()
	if strings.TrimSpace(text) == "" {
		s.reset()

		return false
	}

	_, err := reader.Read("repl", text)
	if errors.Is(err, failure.ErrUnterminatedForm) {
		return false
	}

	s.reset()
	s.last = strings.TrimSpace(text)

	v, err := s.evaluator.Evaluate(text)
	if err != nil {
		fmt.Fprintf(s.output, "error: %v\n", err)
	} else {
		fmt.Fprintln(s.output, literal.String(v))
	}

	return true
}

func (s *session) pending() bool {
	return s.buffer.Len() > 0
}

func (s *session) reset() {
	s.buffer.Reset()
}

// complete returns the names that could complete the word ending at pos.
func complete(names []string, line string, pos int) (string, []string, string) {
	head, tail := line[:pos], line[pos:]

	start := strings.LastIndexFunc(head, func(r rune) bool {
		return r == '(' || r == ')' || unicode.IsSpace(r)
	}) + 1

	prefix := head[start:]
	if prefix == "" {
		return head, nil, tail
	}

	completions := []string{}

	for _, k := range names {
		if strings.HasPrefix(k, prefix) {
			completions = append(completions, k)
		}
	}

	slices.Sort(completions)

	return head[:start], completions, tail
}
