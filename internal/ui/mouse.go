package ui

import tea "github.com/charmbracelet/bubbletea"

const (
	titleRows         = 3
	searchRows        = 3
	osRows            = 3
	footerRows        = 3
	quoteRows         = 3
	minMainRows       = 10
	categoriesPercent = 40
	defaultWidth      = 80
	defaultHeight     = 30
)

// layout is the screen geometry shared by rendering and pointer hit-testing.
type layout struct {
	width      int
	height     int
	mainTop    int
	mainHeight int
	leftWidth  int
	rightWidth int
}

func (m *Model) layout() layout {
	w, h := m.width, m.height
	if w <= 0 {
		w = defaultWidth
	}
	if h <= 0 {
		h = defaultHeight
	}
	mainH := h - (titleRows + searchRows + osRows + footerRows + quoteRows)
	if mainH < minMainRows {
		mainH = minMainRows
	}
	left := w * categoriesPercent / 100
	return layout{
		width:      w,
		height:     h,
		mainTop:    titleRows + searchRows,
		mainHeight: mainH,
		leftWidth:  left,
		rightWidth: w - left,
	}
}

// rowAt maps a screen row inside the main panels to an item row, skipping
// the top border.
func (l layout) rowAt(y int) (int, bool) {
	if y < l.mainTop || y >= l.mainTop+l.mainHeight {
		return 0, false
	}
	row := y - l.mainTop - 1
	if row < 0 || row >= l.mainHeight-2 {
		return 0, false
	}
	return row, true
}

func (m *Model) maxVisibleItems() int {
	rows := m.layout().mainHeight - 2
	if rows < 1 {
		return 1
	}
	return rows
}

func (m *Model) handleMouseMsg(msg tea.Msg) tea.Cmd {
	ev, ok := msg.(tea.MouseMsg)
	if !ok {
		return nil
	}
	if m.loading() || m.pendingQuit || !m.screen.listBearing() {
		return nil
	}
	if ev.Action == tea.MouseActionPress {
		m.errMsg = ""
	}
	switch ev.Button {
	case tea.MouseButtonWheelUp:
		if l := m.activeList(); l != nil {
			m.moveCursorUp(l)
		}
		return nil
	case tea.MouseButtonWheelDown:
		if l := m.activeList(); l != nil {
			m.moveCursorDown(l)
		}
		return nil
	case tea.MouseButtonLeft:
		if ev.Action != tea.MouseActionPress {
			return nil
		}
	default:
		return nil
	}
	geo := m.layout()
	row, ok := geo.rowAt(ev.Y)
	if !ok || ev.X < 0 || ev.X >= geo.width {
		return nil
	}
	if ev.X < geo.leftWidth {
		m.clickCategory(row)
		return nil
	}
	return m.clickProgram(row)
}

// clickCategory selects the category under the pointer and, from the
// Categories screen, opens it.
func (m *Model) clickCategory(row int) {
	index := m.categories.ViewportOffset + row
	if !m.selectCategory(index) {
		return
	}
	if m.screen == ScreenCategories {
		m.enterPrograms()
	}
}

// clickProgram selects the program or match under the pointer and runs it.
func (m *Model) clickProgram(row int) tea.Cmd {
	switch m.screen {
	case ScreenPrograms:
		if !m.selectRow(m.programs, row) {
			return nil
		}
		return m.runSelectedProgram()
	case ScreenSearch:
		if !m.selectRow(m.search, row) {
			return nil
		}
		return m.runSelectedMatch()
	default:
		return nil
	}
}

func (m *Model) selectRow(l *level, row int) bool {
	index := l.ViewportOffset + row
	if index < 0 || index >= l.Len() {
		return false
	}
	l.MoveCursorTo(index)
	m.syncViewport(l)
	return true
}
