package ui

import "github.com/charmbracelet/bubbles/key"

const searchHint = "Type to search"

type keyMap struct {
	Up          key.Binding
	Down        key.Binding
	Home        key.Binding
	End         key.Binding
	PageUp      key.Binding
	PageDown    key.Binding
	Select      key.Binding
	Run         key.Binding
	Back        key.Binding
	Cancel      key.Binding
	Search      key.Binding
	Theme       key.Binding
	Help        key.Binding
	Info        key.Binding
	Quit        key.Binding
	Confirm     key.Binding
	ForceQuit   key.Binding
	Favorite    key.Binding
	QuickSelect key.Binding
	CloseHelp   key.Binding
	CloseInfo   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:          key.NewBinding(key.WithKeys("up"), key.WithHelp("Mouse/↑↓", "Move")),
		Down:        key.NewBinding(key.WithKeys("down")),
		Home:        key.NewBinding(key.WithKeys("home")),
		End:         key.NewBinding(key.WithKeys("end")),
		PageUp:      key.NewBinding(key.WithKeys("pgup")),
		PageDown:    key.NewBinding(key.WithKeys("pgdown")),
		Select:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("Enter/Click", "Select")),
		Run:         key.NewBinding(key.WithKeys("enter"), key.WithHelp("Enter/Click", "Run")),
		Back:        key.NewBinding(key.WithKeys("esc", "backspace"), key.WithHelp("Esc", "Back")),
		Cancel:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("Esc", "Cancel")),
		Search:      key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "Search")),
		Theme:       key.NewBinding(key.WithKeys("tab"), key.WithHelp("Tab", "Theme")),
		Help:        key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "Help")),
		Info:        key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "Info")),
		Quit:        key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "Quit")),
		Confirm:     key.NewBinding(key.WithKeys("y")),
		ForceQuit:   key.NewBinding(key.WithKeys("ctrl+c")),
		Favorite:    key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "Favorite")),
		QuickSelect: key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"), key.WithHelp("1-9", "Quick Select")),
		CloseHelp:   key.NewBinding(key.WithKeys("h", "esc"), key.WithHelp("h/Esc", "Return")),
		CloseInfo:   key.NewBinding(key.WithKeys("i", "esc"), key.WithHelp("i/Esc", "Return")),
	}
}

// bindingsFor lists the footer hints for a screen. Search prefixes its hints
// with searchHint in the footer since typing has no single binding.
func (k keyMap) bindingsFor(s Screen) []key.Binding {
	switch s {
	case ScreenCategories:
		return []key.Binding{k.Up, k.Select, k.Search, k.Theme, k.Help, k.Info, k.Quit, k.QuickSelect}
	case ScreenPrograms:
		return []key.Binding{k.Up, k.Run, k.Back, k.Favorite, k.Search, k.Help, k.Info, k.Quit}
	case ScreenSearch:
		return []key.Binding{k.Select, k.Cancel, k.Theme, k.Help, k.Info}
	case ScreenHelp:
		return []key.Binding{k.CloseHelp}
	case ScreenSystemInfo:
		return []key.Binding{k.CloseInfo}
	default:
		return nil
	}
}
