package ui

// Screen is the active modal state of the launcher.
type Screen int

const (
	ScreenCategories Screen = iota
	ScreenPrograms
	ScreenSearch
	ScreenHelp
	ScreenSystemInfo
)

func (s Screen) String() string {
	switch s {
	case ScreenCategories:
		return "categories"
	case ScreenPrograms:
		return "programs"
	case ScreenSearch:
		return "search"
	case ScreenHelp:
		return "help"
	case ScreenSystemInfo:
		return "system-info"
	default:
		return "unknown"
	}
}

// listBearing reports whether the screen drives one of the list cursors.
func (s Screen) listBearing() bool {
	switch s {
	case ScreenCategories, ScreenPrograms, ScreenSearch:
		return true
	default:
		return false
	}
}
