package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/msto63/libutils/foundation/utils/slicex"
)

const cursorMark = "> "

// MenuModel is a single-choice list. The zero value is not usable; create
// one with NewMenuModel.
type MenuModel struct {
	title   string
	items   []string
	cursor  int
	chosen  int
	aborted bool
	width   int

	keys KeyMap
	help help.Model
}

// NewMenuModel creates a menu over items with the cursor on the first one
func NewMenuModel(title string, items []string) MenuModel {
	return MenuModel{
		title:  title,
		items:  items,
		chosen: -1,
		width:  slicex.LongestWidth(items),
		keys:   DefaultKeyMap(),
		help:   help.New(),
	}
}

// WithCursor returns a copy with the cursor on index i, clamped to the items
func (m MenuModel) WithCursor(i int) MenuModel {
	m.cursor = clamp(i, 0, len(m.items)-1)
	return m
}

// Init initializes the model
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.Done() {
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		// Runes typed faster than a read arrive as one message.
		if msg.Type == tea.KeyRunes && len(msg.Runes) > 1 {
			return m.updateEachRune(msg)
		}

		switch {
		case key.Matches(msg, m.keys.Quit):
			m.aborted = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Select):
			if len(m.items) == 0 {
				return m, nil
			}
			m.chosen = m.cursor
			return m, tea.Quit

		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}

		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.items)-1 {
				m.cursor++
			}
		}

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
	}

	return m, nil
}

func (m MenuModel) updateEachRune(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	for _, r := range msg.Runes {
		next, c := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}, Alt: msg.Alt})
		m = next.(MenuModel)
		if c != nil {
			cmd = c
		}
		if m.Done() {
			break
		}
	}
	return m, cmd
}

// View renders the menu. Nothing is drawn once a choice was made.
func (m MenuModel) View() string {
	if m.Done() {
		return ""
	}

	var b strings.Builder
	if m.title != "" {
		b.WriteString(RenderTitle(m.title))
		b.WriteString("\n")
	}

	for i, item := range m.items {
		if i == m.cursor {
			b.WriteString(CursorStyle.Render(cursorMark))
			b.WriteString(SelectedMenuItemStyle.Width(m.width).Render(item))
		} else {
			b.WriteString(MenuItemStyle.Width(m.width + len(cursorMark)).Render(item))
		}
		b.WriteString("\n")
	}

	b.WriteString(HelpStyle.Render(m.help.View(m.keys)))
	b.WriteString("\n")
	return b.String()
}

// Cursor returns the 0-based index under the cursor
func (m MenuModel) Cursor() int {
	return m.cursor
}

// Choice returns the confirmed choice, 1-based. ok is false until enter was
// pressed.
func (m MenuModel) Choice() (choice int, ok bool) {
	if m.chosen < 0 {
		return 0, false
	}
	return m.chosen + 1, true
}

// Aborted reports whether the user cancelled the menu
func (m MenuModel) Aborted() bool {
	return m.aborted
}

// Done reports whether the menu has finished
func (m MenuModel) Done() bool {
	return m.aborted || m.chosen >= 0
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
