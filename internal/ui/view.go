package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/atomicstack/toolbox/internal/theme"
	uistate "github.com/atomicstack/toolbox/internal/ui/state"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

const (
	appName        = "Linux Toolbox"
	appAuthor      = "Tech Logicals"
	infoTTL        = 5 * time.Second
	loadingBarSize = 20
	cursorMarker   = ">> "
	plainMarker    = "   "
)

var helpScreenLines = []string{
	appName + " Help",
	"",
	"Navigation:",
	"↑↓ or Mouse Wheel: Move selection",
	"Mouse Click or Enter: Select/Run program",
	"Esc/Backspace: Go back",
	"",
	"Shortcuts:",
	"/: Search",
	"Tab: Change color scheme",
	"h: Toggle help screen",
	"q: Quit",
	"1-9: Quick select category",
	"Home: Back to top",
	"f: Toggle favorite",
	"i: View system information",
}

type styledLine struct {
	text          string
	style         *lipgloss.Style
	prefixStyle   *lipgloss.Style
	highlightFrom int
	raw           bool // text contains ANSI escapes; skip style wrapping, use ANSI-aware truncation
}

// View implements tea.Model.
func (m *Model) View() string {
	geo := m.layout()
	sections := []string{
		m.renderTitle(geo),
		m.renderPanel("Search", []styledLine{{text: m.filterPrompt(), raw: true}}, geo.width, searchRows, m.screen == ScreenSearch),
		m.renderMain(geo),
		m.renderPanel("OS", []styledLine{{text: m.system.OSLine(), style: m.styles.Item}}, geo.width, osRows, false),
		m.renderFooter(geo),
		m.renderPanel("", []styledLine{m.centered(m.styles.Quote.Render(m.quote), geo.width-2)}, geo.width, quoteRows, false),
	}
	return strings.Join(sections, "\n")
}

func (m *Model) renderTitle(geo layout) string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render(appName + " "))
	b.WriteString(m.styles.Version.Render("v" + m.version))
	b.WriteString(" by " + appAuthor + " | ")
	b.WriteString(m.styles.Date.Render(time.Now().Format("2006-01-02")))
	b.WriteString(" | Theme: ")
	b.WriteString(m.styles.Info.Render(theme.Resolve(m.themeID).Name))
	if m.newVersion != "" {
		b.WriteString(" | ")
		b.WriteString(m.styles.Update.Render(fmt.Sprintf("Update v%s available", m.newVersion)))
	}
	return m.renderPanel("", []styledLine{m.centered(b.String(), geo.width-2)}, geo.width, titleRows, false)
}

func (m *Model) renderMain(geo layout) string {
	switch m.screen {
	case ScreenHelp:
		lines := make([]styledLine, 0, len(helpScreenLines))
		for _, line := range helpScreenLines {
			lines = append(lines, styledLine{text: line, style: m.styles.Item})
		}
		return m.renderPanel("Help", lines, geo.width, geo.mainHeight, true)
	case ScreenSystemInfo:
		var lines []styledLine
		for _, line := range strings.Split(m.system.String(), "\n") {
			lines = append(lines, styledLine{text: line, style: m.styles.Item})
		}
		return m.renderPanel("System Information", lines, geo.width, geo.mainHeight, true)
	}
	rows := geo.mainHeight - 2
	left := m.renderPanel(
		m.categories.Title,
		m.listLines(m.categories, rows, geo.leftWidth-2, categoryMarker, "(no categories)"),
		geo.leftWidth, geo.mainHeight, m.screen == ScreenCategories,
	)
	var body []styledLine
	if m.screen == ScreenSearch {
		empty := fmt.Sprintf("No matches for %q", m.search.Filter)
		body = m.listLines(m.search, rows, geo.rightWidth-2, m.searchLabel, empty)
	} else {
		body = m.listLines(m.programs, rows, geo.rightWidth-2, programMarker, "(no programs)")
	}
	right := m.renderPanel(
		m.programs.Title, body, geo.rightWidth, geo.mainHeight,
		m.screen == ScreenPrograms || m.screen == ScreenSearch,
	)
	return lipgloss.JoinHorizontal(lipgloss.Top, left, right)
}

func (m *Model) renderFooter(geo layout) string {
	inner := geo.width - 2
	var line styledLine
	switch {
	case m.loading():
		dots := strings.Repeat(".", m.indicator.Step())
		m.bar.Width = loadingBarSize
		text := m.styles.Loading.Render(fmt.Sprintf("Loading %-*s", m.indicator.Steps(), dots)) + " " + m.bar.ViewAs(m.indicator.Percent())
		line = m.centered(text, inner)
	case m.pendingQuit:
		line = m.centered(m.styles.Info.Render(quitPrompt), inner)
	case m.errMsg != "":
		line = m.centered(m.styles.Error.Render(m.errMsg), inner)
	case m.currentInfo() != "":
		line = m.centered(m.styles.Info.Render(m.infoMsg), inner)
	default:
		m.help.Width = inner
		hints := m.help.ShortHelpView(m.keys.bindingsFor(m.screen))
		if m.screen == ScreenSearch {
			hints = m.styles.Footer.Render(searchHint) + m.help.ShortSeparator + hints
		}
		line = m.centered(hints, inner)
	}
	return m.renderPanel("", []styledLine{line}, geo.width, footerRows, false)
}

func (m *Model) centered(text string, width int) styledLine {
	if width > 0 {
		text = lipgloss.PlaceHorizontal(width, lipgloss.Center, text)
	}
	return styledLine{text: text, raw: true}
}

func categoryMarker(item uistate.Item) string {
	return "• " + item.Label
}

func programMarker(item uistate.Item) string {
	if item.Favorite {
		return "★ " + item.Label
	}
	return "▶ " + item.Label
}

func (m *Model) searchLabel(item uistate.Item) string {
	label := programMarker(item)
	if match, ok := m.matches[item.ID]; ok {
		label += " (" + match.Category + ")"
	}
	return label
}

// listLines renders the visible window of l.
func (m *Model) listLines(l *level, rows, width int, label func(uistate.Item) string, empty string) []styledLine {
	if l.Len() == 0 {
		return []styledLine{{text: empty, style: m.styles.Info}}
	}
	l.EnsureCursorVisible(rows)
	end := l.ViewportOffset + rows
	if end > l.Len() {
		end = l.Len()
	}
	lines := make([]styledLine, 0, end-l.ViewportOffset)
	for idx := l.ViewportOffset; idx < end; idx++ {
		lines = append(lines, m.buildItemLine(label(l.Items[idx]), idx == l.Cursor, width))
	}
	return lines
}

// buildItemLine constructs a single styledLine for a list item. width is the
// target column width; the selected item is padded so its background spans
// the panel.
func (m *Model) buildItemLine(label string, selected bool, width int) styledLine {
	indicator := plainMarker
	lineStyle := m.styles.Item
	indicatorStyle := m.styles.ItemIndicator
	if selected {
		indicator = cursorMarker
		lineStyle = m.styles.SelectedItem
		indicatorStyle = m.styles.SelectedItemIndicator
	}
	fullText := indicator + label
	if selected && width > 0 {
		if pad := width - len([]rune(fullText)); pad > 0 {
			fullText += strings.Repeat(" ", pad)
		}
	}
	return styledLine{
		text:          fullText,
		style:         lineStyle,
		prefixStyle:   indicatorStyle,
		highlightFrom: len([]rune(indicator)),
	}
}

// renderPanel draws a bordered box of exactly height rows and width columns
// with the title set into the top border.
func (m *Model) renderPanel(title string, body []styledLine, width, height int, active bool) string {
	const (
		tlc = "╭"
		trc = "╮"
		blc = "╰"
		brc = "╯"
		hz  = "─"
		vt  = "│"
	)
	border := m.styles.Border
	if active {
		border = m.styles.ActiveBorder
	}
	innerW := width - 2
	innerH := height - 2
	if innerW < 1 {
		innerW = 1
	}
	if innerH < 1 {
		innerH = 1
	}

	title = truncateText(title, innerW)
	dashes := innerW - len([]rune(title))
	if dashes < 0 {
		dashes = 0
	}
	topLine := border.Render(tlc) + m.styles.PanelTitle.Render(title) + border.Render(strings.Repeat(hz, dashes)+trc)
	bottomLine := border.Render(blc + strings.Repeat(hz, innerW) + brc)

	body = applyWidth(limitHeight(body, innerH, innerW), innerW)
	rows := make([]string, 0, height)
	rows = append(rows, topLine)
	for i := 0; i < innerH; i++ {
		var content string
		if i < len(body) {
			content = renderLines(body[i : i+1])
		}
		if w := lipgloss.Width(content); w < innerW {
			content += strings.Repeat(" ", innerW-w)
		}
		rows = append(rows, border.Render(vt)+content+border.Render(vt))
	}
	rows = append(rows, bottomLine)
	return strings.Join(rows, "\n")
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	m.syncViewport(m.categories)
	m.syncViewport(m.programs)
	m.syncViewport(m.search)
	return nil
}

func (m *Model) setInfo(message string) {
	m.infoMsg = message
	m.infoExpire = time.Now().Add(infoTTL)
}

func (m *Model) clearInfo() {
	if m.infoMsg == "" {
		return
	}
	if !m.infoExpire.IsZero() && time.Now().Before(m.infoExpire) {
		return
	}
	m.infoMsg = ""
	m.infoExpire = time.Time{}
}

func (m *Model) forceClearInfo() {
	m.infoMsg = ""
	m.infoExpire = time.Time{}
}

func (m *Model) currentInfo() string {
	if m.infoMsg != "" && !m.infoExpire.IsZero() && time.Now().After(m.infoExpire) {
		m.infoMsg = ""
		m.infoExpire = time.Time{}
	}
	return m.infoMsg
}

func limitHeight(lines []styledLine, height, width int) []styledLine {
	if height <= 0 || len(lines) <= height {
		return lines
	}
	if height == 1 {
		return []styledLine{{text: truncateText("…", width)}}
	}
	trimmed := make([]styledLine, 0, height)
	trimmed = append(trimmed, lines[:height-1]...)
	trimmed = append(trimmed, styledLine{text: truncateText("…", width)})
	return trimmed
}

func applyWidth(lines []styledLine, width int) []styledLine {
	if width <= 0 {
		return lines
	}
	result := make([]styledLine, len(lines))
	for i, line := range lines {
		text := line.text
		if line.raw {
			if w := lipgloss.Width(text); w > width {
				text = truncate.StringWithTail(text, uint(width-1), "…")
			}
		} else {
			text = truncateText(text, width)
		}
		result[i] = styledLine{
			text:          text,
			style:         line.style,
			prefixStyle:   line.prefixStyle,
			highlightFrom: line.highlightFrom,
			raw:           line.raw,
		}
	}
	return result
}

func renderLines(lines []styledLine) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		text := line.text
		if line.raw {
			out[i] = text
			continue
		}
		runes := []rune(text)
		if line.highlightFrom > 0 && line.highlightFrom < len(runes) {
			head := string(runes[:line.highlightFrom])
			tail := string(runes[line.highlightFrom:])
			if line.prefixStyle != nil {
				head = line.prefixStyle.Render(head)
			}
			if line.style != nil {
				tail = line.style.Render(tail)
			}
			text = head + tail
		} else if line.style != nil {
			text = line.style.Render(text)
		}
		out[i] = text
	}
	return strings.Join(out, "\n")
}

func truncateText(text string, width int) string {
	if width <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= width {
		return text
	}
	if width == 1 {
		return string(runes[:1])
	}
	return string(runes[:width-1]) + "…"
}
