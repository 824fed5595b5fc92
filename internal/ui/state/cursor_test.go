package state

import "testing"

func newTestLevel(ids ...string) *Level {
	items := make([]Item, len(ids))
	for i, id := range ids {
		items[i] = Item{ID: id, Label: id}
	}
	return NewLevel("test", "Test", items)
}

func TestNewLevelStartsAtFirstItem(t *testing.T) {
	l := newTestLevel("a", "b")
	if l.Cursor != 0 {
		t.Fatalf("expected cursor 0, got %d", l.Cursor)
	}
	item, ok := l.Selected()
	if !ok || item.ID != "a" {
		t.Fatalf("expected first item selected, got %#v", item)
	}
	if _, ok := newTestLevel().Selected(); ok {
		t.Fatalf("expected no selection for empty level")
	}
}

func TestMoveCursorUpDownClamps(t *testing.T) {
	l := newTestLevel("a", "b", "c")
	if l.MoveCursorUp() {
		t.Fatalf("expected no movement above first item")
	}
	for i := 0; i < 10; i++ {
		l.MoveCursorDown()
		if l.Cursor < 0 || l.Cursor >= len(l.Items) {
			t.Fatalf("cursor escaped bounds: %d", l.Cursor)
		}
	}
	if l.Cursor != 2 {
		t.Fatalf("expected cursor clamped at 2, got %d", l.Cursor)
	}
	if l.MoveCursorDown() {
		t.Fatalf("expected no movement past last item")
	}
	if !l.MoveCursorUp() || l.Cursor != 1 {
		t.Fatalf("expected cursor 1, got %d", l.Cursor)
	}
}

func TestMoveCursorTo(t *testing.T) {
	l := newTestLevel("a", "b", "c")
	if !l.MoveCursorTo(2) || l.Cursor != 2 {
		t.Fatalf("expected cursor 2, got %d", l.Cursor)
	}
	if l.MoveCursorTo(3) || l.MoveCursorTo(-1) {
		t.Fatalf("expected out of range moves to be ignored")
	}
	if l.Cursor != 2 {
		t.Fatalf("expected cursor unchanged, got %d", l.Cursor)
	}
}

func TestMoveCursorHome(t *testing.T) {
	l := newTestLevel("a", "b", "c")
	l.Cursor = 2
	if !l.MoveCursorHome() {
		t.Fatalf("expected move when items exist")
	}
	if l.Cursor != 0 {
		t.Fatalf("expected cursor 0, got %d", l.Cursor)
	}

	empty := newTestLevel()
	empty.Cursor = 5
	if empty.MoveCursorHome() {
		t.Fatalf("expected no movement for empty level")
	}
	if empty.Cursor != 0 {
		t.Fatalf("expected cursor reset to 0, got %d", empty.Cursor)
	}
}

func TestMoveCursorEnd(t *testing.T) {
	l := newTestLevel("a", "b", "c")
	if !l.MoveCursorEnd() {
		t.Fatalf("expected movement to end")
	}
	if l.Cursor != 2 {
		t.Fatalf("expected cursor 2, got %d", l.Cursor)
	}

	empty := newTestLevel()
	if empty.MoveCursorEnd() {
		t.Fatalf("expected no movement for empty level")
	}
}

func TestMoveCursorPaging(t *testing.T) {
	l := newTestLevel("a", "b", "c", "d", "e")
	if !l.MoveCursorPageDown(2) || l.Cursor != 2 {
		t.Fatalf("expected cursor 2 after page down, got %d", l.Cursor)
	}
	l.MoveCursorPageDown(2)
	l.MoveCursorPageDown(2)
	if l.Cursor != 4 {
		t.Fatalf("expected cursor clamped at 4, got %d", l.Cursor)
	}
	l.MoveCursorPageUp(3)
	if l.Cursor != 1 {
		t.Fatalf("expected cursor 1 after page up, got %d", l.Cursor)
	}
}

func TestEnsureCursorVisible(t *testing.T) {
	l := newTestLevel("a", "b", "c", "d", "e", "f")
	l.Cursor = 5
	l.EnsureCursorVisible(3)
	if l.ViewportOffset != 3 {
		t.Fatalf("expected offset 3, got %d", l.ViewportOffset)
	}
	l.Cursor = 1
	l.EnsureCursorVisible(3)
	if l.ViewportOffset != 1 {
		t.Fatalf("expected offset 1, got %d", l.ViewportOffset)
	}
	l.EnsureCursorVisible(0)
	if l.ViewportOffset != 0 {
		t.Fatalf("expected offset reset, got %d", l.ViewportOffset)
	}
}

func TestUpdateItemsClampsCursor(t *testing.T) {
	l := newTestLevel("a", "b", "c")
	l.Cursor = 2
	l.UpdateItems([]Item{{ID: "a", Label: "a"}})
	if l.Cursor != 0 {
		t.Fatalf("expected cursor clamped to 0, got %d", l.Cursor)
	}
	if l.IndexOf("a") != 0 || l.IndexOf("missing") != -1 || l.IndexOf("") != -1 {
		t.Fatalf("unexpected IndexOf results")
	}
}
