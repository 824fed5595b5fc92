package ui

import (
	"fmt"
	"unicode"

	"github.com/atomicstack/toolbox/internal/catalog"
	"github.com/atomicstack/toolbox/internal/logging/events"
	uistate "github.com/atomicstack/toolbox/internal/ui/state"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func (m *Model) updateFilterCursorModel(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.filterCursor, cmd = m.filterCursor.Update(msg)
	return cmd
}

func (m *Model) styleFilterCursor() {
	if m.styles == nil {
		return
	}
	if m.styles.Cursor != nil {
		m.filterCursor.Style = m.styles.Cursor.Copy()
	}
	if m.styles.Filter != nil {
		m.filterCursor.TextStyle = m.styles.Filter.Copy()
	}
}

// openSearch switches to the Search screen with an empty query and every
// program listed.
func (m *Model) openSearch() {
	matches := m.catalog.Search("")
	m.matches = make(map[string]catalog.Match, len(matches))
	items := make([]uistate.Item, 0, len(matches))
	for _, match := range matches {
		id := fmt.Sprintf("%d:%d", match.CategoryIndex, match.ProgramIndex)
		m.matches[id] = match
		items = append(items, uistate.Item{ID: id, Label: match.Program, Favorite: match.Favorite})
	}
	m.search.ClearFilter()
	m.search.UpdateItems(items)
	m.filterCursorDirty = true
	m.setScreen(ScreenSearch)
}

func (m *Model) closeSearch() {
	m.search.ClearFilter()
	m.filterCursorDirty = true
	m.setScreen(ScreenCategories)
}

func (m *Model) handleTextInput(msg tea.KeyMsg) bool {
	switch msg.String() {
	case "ctrl+u":
		if m.search.Filter == "" {
			return false
		}
		m.search.ClearFilter()
		events.Search.Backspace(m.search.Filter)
		m.afterFilterEdit()
		return true
	case "ctrl+w":
		if !m.search.DeleteFilterWordBackward() {
			return false
		}
		events.Search.Backspace(m.search.Filter)
		m.afterFilterEdit()
		return true
	}
	switch msg.Type {
	case tea.KeyBackspace, tea.KeyCtrlH:
		if !m.search.DeleteFilterRuneBackward() {
			return false
		}
		events.Search.Backspace(m.search.Filter)
		m.afterFilterEdit()
		return true
	case tea.KeySpace:
		return m.appendToFilter(" ")
	case tea.KeyRunes:
		if msg.Alt || len(msg.Runes) == 0 {
			return false
		}
		for _, r := range msg.Runes {
			if unicode.IsControl(r) {
				return false
			}
		}
		return m.appendToFilter(string(msg.Runes))
	}
	return false
}

func (m *Model) appendToFilter(text string) bool {
	if !m.search.InsertFilterText(text) {
		return false
	}
	events.Search.Append(m.search.Filter)
	m.afterFilterEdit()
	return true
}

func (m *Model) afterFilterEdit() {
	m.filterCursorDirty = true
	m.errMsg = ""
	m.forceClearInfo()
	m.syncViewport(m.search)
}

// selectedMatch resolves the search cursor to its catalog entry.
func (m *Model) selectedMatch() (catalog.Match, bool) {
	item, ok := m.search.Selected()
	if !ok {
		return catalog.Match{}, false
	}
	match, ok := m.matches[item.ID]
	return match, ok
}

func (m *Model) filterPrompt() string {
	render := func(style *lipgloss.Style, value string) string {
		if style == nil || value == "" {
			return value
		}
		return style.Render(value)
	}
	prompt := "» "
	if m.styles.FilterPrompt != nil {
		prompt = m.styles.FilterPrompt.Render(prompt)
	}
	if m.screen != ScreenSearch {
		return prompt + render(m.styles.FilterPlaceholder, "press / to search")
	}
	text := m.search.Filter
	if text == "" {
		placeholder := []rune("type to search")
		if m.styles.FilterPlaceholder != nil {
			m.filterCursor.TextStyle = m.styles.FilterPlaceholder.Copy()
		}
		caret := m.renderFilterCursor(string(placeholder[0]))
		m.styleFilterCursor()
		return prompt + caret + render(m.styles.FilterPlaceholder, string(placeholder[1:]))
	}
	return prompt + render(m.styles.Filter, text) + m.renderFilterCursor(" ")
}

func (m *Model) renderFilterCursor(char string) string {
	if char == "" {
		char = " "
	}
	m.filterCursor.SetChar(char)

	base := m.filterCursor.TextStyle.Copy()
	base = base.Inline(true)

	if m.filterCursor.Blink {
		return base.Render(char)
	}

	if m.styles.Cursor != nil {
		cursorStyle := m.styles.Cursor.Copy().Inline(true)
		base = base.Inherit(cursorStyle).Blink(false)
		return base.Render(char)
	}

	return base.Reverse(true).Render(char)
}
