package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/asticode/go-astilog"
)

// Prompter asks questions on a line based terminal
type Prompter struct {
	s *bufio.Scanner
	w io.Writer
}

// NewPrompter creates a new prompter
func NewPrompter(r io.Reader, w io.Writer) *Prompter {
	return &Prompter{
		s: bufio.NewScanner(r),
		w: w,
	}
}

// line prints the label and returns the next trimmed line. ok is false once the input is exhausted.
func (p *Prompter) line(label string) (l string, ok bool) {
	fmt.Fprint(p.w, label)
	if !p.s.Scan() {
		return
	}
	return strings.TrimSpace(p.s.Text()), true
}

// String asks for a string
func (p *Prompter) String(label string) string {
	l, _ := p.line(label)
	return l
}

// Int asks for an integer and falls back to the default on empty or non numeric input
func (p *Prompter) Int(label string, def int) int {
	l, _ := p.line(label)
	if l == "" {
		return def
	}
	i, err := strconv.Atoi(l)
	if err != nil {
		astilog.Warnf("main: %q is not a number, using %d", l, def)
		return def
	}
	return i
}

// OptionalInt asks for an integer and returns nil on empty or non numeric input
func (p *Prompter) OptionalInt(label string) *int {
	l, _ := p.line(label)
	if l == "" {
		return nil
	}
	i, err := strconv.Atoi(l)
	if err != nil {
		astilog.Warnf("main: %q is not a number, using the default", l)
		return nil
	}
	return &i
}

// WaitQuit blocks until "q" is entered or the input is exhausted and returns whether "q" was entered.
// An exhausted input, like /dev/null when running detached, is not a request to quit.
func (p *Prompter) WaitQuit() bool {
	for {
		l, ok := p.line("Press q to quit\n")
		if !ok {
			return false
		}
		if l == "q" {
			return true
		}
	}
}
