package theme

import "github.com/charmbracelet/lipgloss"

// Styles describes reusable Lip Gloss styles shared across the UI.
type Styles struct {
	Title                 *lipgloss.Style
	Version               *lipgloss.Style
	Date                  *lipgloss.Style
	Update                *lipgloss.Style
	Border                *lipgloss.Style
	ActiveBorder          *lipgloss.Style
	PanelTitle            *lipgloss.Style
	Item                  *lipgloss.Style
	ItemIndicator         *lipgloss.Style
	SelectedItemIndicator *lipgloss.Style
	SelectedItem          *lipgloss.Style
	Favorite              *lipgloss.Style
	Error                 *lipgloss.Style
	Info                  *lipgloss.Style
	InfoLabel             *lipgloss.Style
	Footer                *lipgloss.Style
	Quote                 *lipgloss.Style
	Loading               *lipgloss.Style
	Filter                *lipgloss.Style
	FilterPrompt          *lipgloss.Style
	FilterPlaceholder     *lipgloss.Style
	Cursor                *lipgloss.Style
}

// Styles builds the style set for the scheme.
func (s Scheme) Styles() *Styles {
	border := lipgloss.NewStyle().Foreground(s.Foreground).Background(s.Background)
	return &Styles{
		Title: ptr(
			lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true),
		),
		Version: ptr(
			lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		),
		Date: ptr(
			lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
		),
		Update: ptr(
			lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
		),
		Border: ptr(border),
		ActiveBorder: ptr(
			border.Foreground(s.Highlight).Bold(true),
		),
		PanelTitle: ptr(
			lipgloss.NewStyle().Foreground(s.Highlight).Bold(true),
		),
		Item: ptr(
			lipgloss.NewStyle().Foreground(s.Foreground),
		),
		ItemIndicator: ptr(
			lipgloss.NewStyle().Foreground(s.Highlight),
		),
		SelectedItemIndicator: ptr(
			lipgloss.NewStyle().Foreground(s.Highlight).Bold(true),
		),
		SelectedItem: ptr(
			lipgloss.NewStyle().Foreground(s.Background).Background(s.Highlight).Bold(true),
		),
		Favorite: ptr(
			lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		),
		Error: ptr(
			lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		),
		Info: ptr(
			lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
		),
		InfoLabel: ptr(
			lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true),
		),
		Footer: ptr(
			lipgloss.NewStyle().Foreground(s.Foreground),
		),
		Quote: ptr(
			lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Italic(true),
		),
		Loading: ptr(
			lipgloss.NewStyle().Foreground(s.Highlight).Italic(true),
		),
		Filter: ptr(
			lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
		),
		FilterPrompt: ptr(
			lipgloss.NewStyle().Foreground(s.Highlight).Bold(true),
		),
		FilterPlaceholder: ptr(
			lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		),
		Cursor: ptr(
			lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(s.Highlight).Blink(true),
		),
	}
}

var defaultStyles = Resolve(DefaultID).Styles()

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return defaultStyles
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
