package ui

import (
	"fmt"
	"strconv"

	"github.com/atomicstack/toolbox/internal/logging/events"
	"github.com/atomicstack/toolbox/internal/theme"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const quitPrompt = "Press 'y' to confirm quit, any other key to cancel"

func itemID(i int) string {
	return strconv.Itoa(i)
}

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if key.Matches(keyMsg, m.keys.ForceQuit) {
		return tea.Quit
	}
	if m.loading() {
		return nil
	}
	m.errMsg = ""
	if m.pendingQuit {
		m.pendingQuit = false
		if key.Matches(keyMsg, m.keys.Confirm) {
			return tea.Quit
		}
		events.UI.QuitCancel()
		m.setInfo("Quit cancelled")
		return nil
	}
	m.clearInfo()
	switch {
	case key.Matches(keyMsg, m.keys.Theme):
		return m.cycleTheme()
	case key.Matches(keyMsg, m.keys.Quit):
		m.pendingQuit = true
		m.forceClearInfo()
		events.UI.QuitArm()
		return nil
	case key.Matches(keyMsg, m.keys.Help):
		m.toggleScreen(ScreenHelp)
		return nil
	case key.Matches(keyMsg, m.keys.Info):
		m.toggleScreen(ScreenSystemInfo)
		return nil
	}
	switch m.screen {
	case ScreenCategories:
		return m.handleCategoriesKey(keyMsg)
	case ScreenPrograms:
		return m.handleProgramsKey(keyMsg)
	case ScreenSearch:
		return m.handleSearchKey(keyMsg)
	case ScreenHelp:
		if key.Matches(keyMsg, m.keys.CloseHelp) {
			m.setScreen(ScreenCategories)
		}
	case ScreenSystemInfo:
		if key.Matches(keyMsg, m.keys.CloseInfo) {
			m.setScreen(ScreenCategories)
		}
	}
	return nil
}

func (m *Model) handleCategoriesKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Search):
		m.openSearch()
	case key.Matches(msg, m.keys.Up):
		m.moveCursorUp(m.categories)
	case key.Matches(msg, m.keys.Down):
		m.moveCursorDown(m.categories)
	case key.Matches(msg, m.keys.Home):
		m.moveCursorHome(m.categories)
	case key.Matches(msg, m.keys.End):
		m.moveCursorEnd(m.categories)
	case key.Matches(msg, m.keys.PageUp):
		m.moveCursorPageUp(m.categories)
	case key.Matches(msg, m.keys.PageDown):
		m.moveCursorPageDown(m.categories)
	case key.Matches(msg, m.keys.Select):
		m.enterPrograms()
	case key.Matches(msg, m.keys.QuickSelect):
		index := int(msg.Runes[0]-'0') - 1
		m.selectCategory(index)
	}
	return nil
}

func (m *Model) handleProgramsKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Search):
		m.openSearch()
	case key.Matches(msg, m.keys.Up):
		m.moveCursorUp(m.programs)
	case key.Matches(msg, m.keys.Down):
		m.moveCursorDown(m.programs)
	case key.Matches(msg, m.keys.Home):
		m.moveCursorHome(m.programs)
	case key.Matches(msg, m.keys.End):
		m.moveCursorEnd(m.programs)
	case key.Matches(msg, m.keys.PageUp):
		m.moveCursorPageUp(m.programs)
	case key.Matches(msg, m.keys.PageDown):
		m.moveCursorPageDown(m.programs)
	case key.Matches(msg, m.keys.Run):
		return m.runSelectedProgram()
	case key.Matches(msg, m.keys.Favorite):
		m.toggleFavorite()
	case key.Matches(msg, m.keys.Back):
		m.programs.MoveCursorHome()
		m.setScreen(ScreenCategories)
	}
	return nil
}

func (m *Model) handleSearchKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.closeSearch()
		return nil
	case key.Matches(msg, m.keys.Run):
		return m.runSelectedMatch()
	case key.Matches(msg, m.keys.Up):
		m.moveCursorUp(m.search)
		return nil
	case key.Matches(msg, m.keys.Down):
		m.moveCursorDown(m.search)
		return nil
	}
	m.handleTextInput(msg)
	return nil
}

func (m *Model) setScreen(next Screen) {
	if next == m.screen {
		return
	}
	events.UI.ScreenChange(m.screen.String(), next.String())
	m.screen = next
	m.quote = randomQuote()
}

// toggleScreen enters target, or returns to Categories when target is
// already active.
func (m *Model) toggleScreen(target Screen) {
	if m.screen == target {
		m.setScreen(ScreenCategories)
		return
	}
	m.setScreen(target)
}

// enterPrograms opens the selected category. Categories without programs are
// refused so the program cursor always indexes a real entry.
func (m *Model) enterPrograms() {
	item, ok := m.categories.Selected()
	if !ok {
		return
	}
	m.programs.UpdateItems(programItems(m.catalog, m.categories.Cursor))
	m.programs.MoveCursorHome()
	m.syncViewport(m.programs)
	if m.programs.Len() == 0 {
		m.setInfo(fmt.Sprintf("%s has no programs", item.Label))
		return
	}
	m.setScreen(ScreenPrograms)
}

// selectCategory moves the category cursor to index and refreshes the program
// list. An empty category cannot stay open on the Programs screen.
func (m *Model) selectCategory(index int) bool {
	if !m.categories.MoveCursorTo(index) && m.categories.Cursor != index {
		return false
	}
	events.UI.Cursor(m.categories.ID, m.categories.Cursor)
	m.syncViewport(m.categories)
	m.programs.UpdateItems(programItems(m.catalog, m.categories.Cursor))
	m.programs.MoveCursorHome()
	m.syncViewport(m.programs)
	if m.screen == ScreenPrograms && m.programs.Len() == 0 {
		m.setScreen(ScreenCategories)
	}
	return true
}

func (m *Model) refreshPrograms() {
	cursor := m.programs.Cursor
	m.programs.UpdateItems(programItems(m.catalog, m.categories.Cursor))
	m.programs.MoveCursorTo(cursor)
}

func (m *Model) toggleFavorite() {
	ci, pi := m.categories.Cursor, m.programs.Cursor
	favorite, err := m.catalog.ToggleFavorite(ci, pi)
	if err != nil {
		return
	}
	p, _ := m.catalog.Program(ci, pi)
	c, _ := m.catalog.Category(ci)
	events.UI.Favorite(c.Name, p.Name, favorite)
	if favorite {
		m.setInfo(fmt.Sprintf("Added to %s favorites", p.Name))
	} else {
		m.setInfo(fmt.Sprintf("Removed from %s favorites", p.Name))
	}
	m.refreshPrograms()
}

func (m *Model) cycleTheme() tea.Cmd {
	from := m.themeID
	m.applyTheme(theme.Next(from))
	events.UI.Theme(from, m.themeID)
	return m.saveThemeCmd(m.themeID)
}

func (m *Model) moveCursorUp(l *level) {
	if l.MoveCursorUp() {
		events.UI.Cursor(l.ID, l.Cursor)
		m.afterCursorMove(l)
	}
	m.syncViewport(l)
}

func (m *Model) moveCursorDown(l *level) {
	if l.MoveCursorDown() {
		events.UI.Cursor(l.ID, l.Cursor)
		m.afterCursorMove(l)
	}
	m.syncViewport(l)
}

func (m *Model) moveCursorPageUp(l *level) {
	if l.MoveCursorPageUp(m.maxVisibleItems()) {
		events.UI.Cursor(l.ID, l.Cursor)
		m.afterCursorMove(l)
	}
	m.syncViewport(l)
}

func (m *Model) moveCursorPageDown(l *level) {
	if l.MoveCursorPageDown(m.maxVisibleItems()) {
		events.UI.Cursor(l.ID, l.Cursor)
		m.afterCursorMove(l)
	}
	m.syncViewport(l)
}

func (m *Model) moveCursorHome(l *level) {
	if l.MoveCursorHome() {
		events.UI.Cursor(l.ID, l.Cursor)
		m.afterCursorMove(l)
	}
	m.syncViewport(l)
}

func (m *Model) moveCursorEnd(l *level) {
	if l.MoveCursorEnd() {
		events.UI.Cursor(l.ID, l.Cursor)
		m.afterCursorMove(l)
	}
	m.syncViewport(l)
}

// afterCursorMove keeps the program panel showing the highlighted category.
func (m *Model) afterCursorMove(l *level) {
	if l != m.categories {
		return
	}
	m.programs.UpdateItems(programItems(m.catalog, m.categories.Cursor))
	m.programs.MoveCursorHome()
	m.syncViewport(m.programs)
}

// activeList returns the list that scroll gestures move on the current screen.
func (m *Model) activeList() *level {
	switch m.screen {
	case ScreenCategories:
		return m.categories
	case ScreenPrograms:
		return m.programs
	case ScreenSearch:
		return m.search
	default:
		return nil
	}
}

func (m *Model) syncViewport(l *level) {
	if l == nil {
		return
	}
	l.EnsureCursorVisible(m.maxVisibleItems())
}
