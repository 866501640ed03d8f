package tui

import (
	"context"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	mdwerror "github.com/msto63/libutils/foundation/core/error"
	mdwerrors "github.com/msto63/libutils/foundation/core/errors"
)

// ErrAborted matches, via errors.Is, the error Select returns when the user
// cancels the menu.
var ErrAborted = mdwerror.New("selection aborted").WithCode(mdwerror.Code(mdwerrors.CodeTUIAborted))

type selectOptions struct {
	input  io.Reader
	output io.Writer
	cursor int
}

// Option configures Select
type Option func(*selectOptions)

// WithInput reads keys from r instead of the terminal
func WithInput(r io.Reader) Option {
	return func(o *selectOptions) { o.input = r }
}

// WithOutput renders to w instead of stdout
func WithOutput(w io.Writer) Option {
	return func(o *selectOptions) { o.output = w }
}

// WithCursor starts the menu with the cursor on the 0-based index i
func WithCursor(i int) Option {
	return func(o *selectOptions) { o.cursor = i }
}

// Select shows prompt above items and returns the 1-based number of the
// chosen item. Cancelling returns an error matching ErrAborted; an empty
// item list fails without starting the program.
func Select(ctx context.Context, prompt string, items []string, opts ...Option) (int, error) {
	if len(items) == 0 {
		return 0, mdwerrors.TUINoItems(prompt)
	}

	var o selectOptions
	for _, opt := range opts {
		opt(&o)
	}

	progOpts := []tea.ProgramOption{tea.WithContext(ctx)}
	if o.input != nil {
		progOpts = append(progOpts, tea.WithInput(o.input))
	}
	if o.output != nil {
		progOpts = append(progOpts, tea.WithOutput(o.output))
	}

	p := tea.NewProgram(NewMenuModel(prompt, items).WithCursor(o.cursor), progOpts...)
	final, err := p.Run()
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return 0, mdwerrors.TUIRunFailed(prompt, ctxErr)
		}
		return 0, mdwerrors.TUIRunFailed(prompt, err)
	}

	m, ok := final.(MenuModel)
	if !ok || m.Aborted() {
		return 0, mdwerrors.TUIAborted(prompt)
	}
	choice, ok := m.Choice()
	if !ok {
		return 0, mdwerrors.TUIAborted(prompt)
	}
	return choice, nil
}
