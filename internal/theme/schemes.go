package theme

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// DefaultID identifies the scheme used when no preference is stored.
const DefaultID = "default"

// Scheme is a named colour triple: panel background, text and highlight.
type Scheme struct {
	ID         string
	Name       string
	Background lipgloss.TerminalColor
	Foreground lipgloss.TerminalColor
	Highlight  lipgloss.TerminalColor
}

func scheme(id, name string, bg, fg, hl lipgloss.TerminalColor) Scheme {
	return Scheme{ID: id, Name: name, Background: bg, Foreground: fg, Highlight: hl}
}

type hex = lipgloss.Color

// schemes is the fixed cycle order; Next wraps from the last back to the first.
var schemes = []Scheme{
	scheme("default", "Default", lipgloss.NoColor{}, hex("7"), hex("6")),
	scheme("dark", "Dark", hex("0"), hex("7"), hex("3")),
	scheme("light", "Light", hex("15"), hex("0"), hex("4")),
	scheme("ocean", "Ocean", hex("#006994"), hex("#ffffff"), hex("#00ffff")),
	scheme("forest", "Forest", hex("#228b22"), hex("#ffffff"), hex("#ffd700")),
	scheme("sunset", "Sunset", hex("#ff6347"), hex("#ffffff"), hex("#ffd700")),
	scheme("neon", "Neon", hex("0"), hex("#ff00ff"), hex("#00ff00")),
	scheme("pastel", "Pastel", hex("#fff0f5"), hex("#4682b4"), hex("#ffb6c1")),
	scheme("monochrome", "Monochrome", hex("0"), hex("7"), hex("8")),
	scheme("autumn", "Autumn", hex("#8b4513"), hex("#ffffff"), hex("#ff8c00")),
	scheme("winter", "Winter", hex("#4169e1"), hex("#ffffff"), hex("#b0e0e6")),
	scheme("spring", "Spring", hex("#90ee90"), hex("#000000"), hex("#ff69b4")),
	scheme("summer", "Summer", hex("#ffd700"), hex("#000000"), hex("#00bfff")),
	scheme("cyberpunk", "Cyberpunk", hex("0"), hex("#00ffff"), hex("#ff00ff")),
	scheme("retro", "Retro", hex("#404040"), hex("#00ff00"), hex("#ffa500")),
	scheme("desert", "Desert", hex("#d2b48c"), hex("#000000"), hex("#ff4500")),
	scheme("space", "Space", hex("#191970"), hex("#ffffff"), hex("#ffd700")),
	scheme("candy", "Candy", hex("#ffc0cb"), hex("#000000"), hex("#7fffd4")),
	scheme("earth", "Earth", hex("#8b4513"), hex("#ffffff"), hex("#228b22")),
	scheme("midnight", "Midnight", hex("#191970"), hex("#ffffff"), hex("#8a2be2")),
	scheme("matrix", "Matrix", hex("0"), hex("#00ff00"), hex("#00c800")),
	scheme("nordic", "Nordic", hex("#2e3440"), hex("#d8dee9"), hex("#5e81ac")),
	scheme("dracula", "Dracula", hex("#282a36"), hex("#f8f8f2"), hex("#ff79c6")),
	scheme("solarized", "Solarized", hex("#002b36"), hex("#839496"), hex("#b58900")),
	scheme("monokai", "Monokai", hex("#272822"), hex("#f8f8f2"), hex("#f92672")),
	scheme("gruvbox", "Gruvbox", hex("#282828"), hex("#ebdbb2"), hex("#fb4934")),
	scheme("tokyo", "Tokyo Night", hex("#1a1b26"), hex("#a9b1d6"), hex("#bb9af7")),
	scheme("synthwave", "Synthwave", hex("#271740"), hex("#ffecff"), hex("#ff52c5")),
	scheme("coffee", "Coffee", hex("#3b2314"), hex("#edddb9"), hex("#bf8040")),
	scheme("nature", "Nature", hex("#2a3d2c"), hex("#e9edc9"), hex("#8bbd8b")),
}

// Schemes returns every scheme in cycle order.
func Schemes() []Scheme {
	return append([]Scheme(nil), schemes...)
}

// Lookup finds a scheme by id or display name, ignoring case.
func Lookup(id string) (Scheme, bool) {
	id = strings.TrimSpace(id)
	for _, s := range schemes {
		if strings.EqualFold(s.ID, id) || strings.EqualFold(s.Name, id) {
			return s, true
		}
	}
	return Scheme{}, false
}

// Resolve returns the scheme for id, or the default scheme when id is unknown.
func Resolve(id string) Scheme {
	if s, ok := Lookup(id); ok {
		return s
	}
	return schemes[0]
}

// Next returns the id following id in the cycle. Unknown ids restart the
// cycle at the first scheme.
func Next(id string) string {
	for i, s := range schemes {
		if strings.EqualFold(s.ID, id) {
			return schemes[(i+1)%len(schemes)].ID
		}
	}
	return schemes[0].ID
}
