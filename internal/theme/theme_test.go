package theme

import "testing"

func TestNextVisitsEverySchemeOnce(t *testing.T) {
	seen := map[string]bool{}
	id := DefaultID
	for i := 0; i < len(schemes); i++ {
		if seen[id] {
			t.Fatalf("scheme %q repeated after %d steps", id, i)
		}
		seen[id] = true
		id = Next(id)
	}
	if id != DefaultID {
		t.Fatalf("expected cycle to return to %q after %d steps, got %q", DefaultID, len(schemes), id)
	}
	if len(seen) != 30 {
		t.Fatalf("expected 30 schemes, got %d", len(seen))
	}
}

func TestNextUnknownRestartsCycle(t *testing.T) {
	if got := Next("no-such-theme"); got != DefaultID {
		t.Fatalf("expected %q, got %q", DefaultID, got)
	}
	if got := Next("nature"); got != DefaultID {
		t.Fatalf("expected wrap to %q, got %q", DefaultID, got)
	}
}

func TestLookupAndResolve(t *testing.T) {
	if s, ok := Lookup("Tokyo Night"); !ok || s.ID != "tokyo" {
		t.Fatalf("expected lookup by display name, got %+v %v", s, ok)
	}
	if s, ok := Lookup("DRACULA"); !ok || s.Name != "Dracula" {
		t.Fatalf("expected case-insensitive lookup, got %+v %v", s, ok)
	}
	if s := Resolve("missing"); s.ID != DefaultID {
		t.Fatalf("expected default fallback, got %q", s.ID)
	}
}

func TestSchemeStylesPopulated(t *testing.T) {
	for _, s := range Schemes() {
		st := s.Styles()
		if st.SelectedItem == nil || st.Border == nil || st.Quote == nil {
			t.Fatalf("scheme %q produced incomplete styles", s.ID)
		}
	}
	if Default() == nil {
		t.Fatalf("expected default styles")
	}
}
