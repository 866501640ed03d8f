// File: prompter.go
// Title: Terminal Prompt Loops
// Description: Line-oriented prompts that re-ask until the answer parses,
//              bounded by an attempt limit and by context cancellation.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-13
// Modified: 2025-02-13
//
// Change History:
// - 2025-02-13 v0.1.0: Initial implementation

package inputx

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"

	mdwerrors "github.com/msto63/libutils/foundation/core/errors"
	mdwlog "github.com/msto63/libutils/foundation/core/log"
	"github.com/msto63/libutils/foundation/utils/stringx"
)

const (
	// MsgNotAllowed is printed when a number is outside the accepted range.
	MsgNotAllowed = "That choice isn't allowed!"

	// MsgPressEnter is printed by WaitForEnter.
	MsgPressEnter = "Press 'Enter' to continue..."
)

type lineResult struct {
	line string
	err  error
}

// Prompter reads answers from an input stream and writes prompts to an
// output stream. A Prompter is not safe for concurrent use.
type Prompter struct {
	in          *bufio.Reader
	out         io.Writer
	maxAttempts int
	timeout     time.Duration
	warn        *color.Color
	logger      *mdwlog.Logger

	// pending holds the result of a read that was abandoned on
	// cancellation; the next read collects it before touching in.
	pending chan lineResult
}

// Option configures a Prompter.
type Option func(*Prompter)

// WithMaxAttempts limits how many answers a prompt loop accepts before it
// gives up. Zero means unlimited.
func WithMaxAttempts(n int) Option {
	return func(p *Prompter) {
		if n >= 0 {
			p.maxAttempts = n
		}
	}
}

// WithTimeout bounds every prompt call. Zero means no timeout.
func WithTimeout(d time.Duration) Option {
	return func(p *Prompter) {
		if d >= 0 {
			p.timeout = d
		}
	}
}

// WithLogger sets the logger used for rejected answers.
func WithLogger(logger *mdwlog.Logger) Option {
	return func(p *Prompter) {
		if logger != nil {
			p.logger = logger.WithName("inputx")
		}
	}
}

// New creates a Prompter reading from r and writing to w.
func New(r io.Reader, w io.Writer, opts ...Option) *Prompter {
	p := &Prompter{
		in:     bufio.NewReader(r),
		out:    w,
		warn:   color.New(color.FgYellow),
		logger: mdwlog.NewNop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Stdio creates a Prompter on the process standard input and output.
func Stdio(opts ...Option) *Prompter {
	return New(os.Stdin, os.Stdout, opts...)
}

// MaxAttempts returns the configured attempt limit (0 = unlimited).
func (p *Prompter) MaxAttempts() int {
	return p.maxAttempts
}

// IntInRange asks until the answer is an integer within [min, max].
// Answers that do not parse are asked again without comment; numbers out of
// range print MsgNotAllowed first. An empty range (min > max) is rejected
// without asking.
func (p *Prompter) IntInRange(ctx context.Context, prompt string, min, max int64) (int64, error) {
	if min > max {
		return 0, mdwerrors.InvalidInput(mdwerrors.ModuleInputx, "int_in_range",
			fmt.Sprintf("%d..%d", min, max), "min not above max")
	}

	var result int64
	err := p.loop(ctx, prompt, func(answer string) (bool, string) {
		n, err := strconv.ParseInt(answer, 10, 64)
		if err != nil {
			return false, "not an integer"
		}
		if n < min || n > max {
			p.warnf(MsgNotAllowed)
			return false, "out of range"
		}
		result = n
		return true, ""
	})
	return result, err
}

// String asks once and returns the trimmed answer.
func (p *Prompter) String(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := p.withTimeout(ctx)
	defer cancel()

	p.print(prompt)
	return p.readLine(ctx, prompt)
}

// Char asks until the answer is non-empty and returns its first rune.
func (p *Prompter) Char(ctx context.Context, prompt string) (rune, error) {
	var result rune
	err := p.loop(ctx, prompt, func(answer string) (bool, string) {
		r, ok := stringx.FirstRune(answer)
		if !ok {
			return false, "empty answer"
		}
		result = r
		return true, ""
	})
	return result, err
}

// Bool asks until the answer is one of the accepted yes/no words, compared
// without regard to case.
func (p *Prompter) Bool(ctx context.Context, prompt string) (bool, error) {
	var result bool
	err := p.loop(ctx, prompt, func(answer string) (bool, string) {
		v, ok := ParseBool(answer)
		if !ok {
			p.warnf("Please enter one of %s", strings.Join(BoolAnswers(), ", "))
			return false, "not a yes/no answer"
		}
		result = v
		return true, ""
	})
	return result, err
}

// WaitForEnter prints MsgPressEnter and consumes one line.
func (p *Prompter) WaitForEnter(ctx context.Context) error {
	ctx, cancel := p.withTimeout(ctx)
	defer cancel()

	fmt.Fprintln(p.out, MsgPressEnter)
	_, err := p.readLine(ctx, MsgPressEnter)
	return err
}

// Number asks until the answer parses as T. It is a function rather than a
// method because methods cannot have type parameters.
func Number[T Numeric](ctx context.Context, p *Prompter, prompt string) (T, error) {
	var result T
	err := p.loop(ctx, prompt, func(answer string) (bool, string) {
		v, err := ParseNumber[T](answer)
		if err != nil {
			return false, err.Error()
		}
		result = v
		return true, ""
	})
	return result, err
}

// loop prints prompt and feeds trimmed answers to accept until it returns
// true, the attempt limit is reached, or reading fails.
func (p *Prompter) loop(ctx context.Context, prompt string, accept func(string) (bool, string)) error {
	ctx, cancel := p.withTimeout(ctx)
	defer cancel()

	for attempt := 1; ; attempt++ {
		p.print(prompt)
		answer, err := p.readLine(ctx, prompt)
		if err != nil {
			return err
		}
		ok, reason := accept(answer)
		if ok {
			return nil
		}

		p.logger.Debug("answer rejected", mdwlog.Fields{
			"prompt":  prompt,
			"attempt": attempt,
			"reason":  reason,
		})
		if p.maxAttempts > 0 && attempt >= p.maxAttempts {
			return mdwerrors.InputxAttemptsExceeded(prompt, attempt)
		}
	}
}

// readLine returns the next line without its line ending and surrounding
// whitespace. A final line without newline is returned as is; io.EOF is
// only reported when nothing was read.
func (p *Prompter) readLine(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", mdwerrors.InputxCanceled(prompt, err)
	}

	ch := p.pending
	p.pending = nil
	if ch == nil {
		ch = make(chan lineResult, 1)
		go func() {
			line, err := p.in.ReadString('\n')
			ch <- lineResult{line: line, err: err}
		}()
	}

	select {
	case res := <-ch:
		if res.err != nil && !(errors.Is(res.err, io.EOF) && res.line != "") {
			return "", mdwerrors.InputxReadFailed(prompt, res.err)
		}
		return strings.TrimSpace(res.line), nil
	case <-ctx.Done():
		p.pending = ch
		return "", mdwerrors.InputxCanceled(prompt, ctx.Err())
	}
}

func (p *Prompter) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if p.timeout > 0 {
		return context.WithTimeout(ctx, p.timeout)
	}
	return context.WithCancel(ctx)
}

func (p *Prompter) print(prompt string) {
	fmt.Fprint(p.out, prompt)
}

func (p *Prompter) warnf(format string, args ...interface{}) {
	fmt.Fprintln(p.out)
	fmt.Fprintln(p.out, p.warn.Sprintf(format, args...))
}
