package state

// Item is one selectable row of a list.
type Item struct {
	ID       string
	Label    string
	Favorite bool
}

// CloneItems produces a shallow copy of the provided items.
func CloneItems(items []Item) []Item {
	dup := make([]Item, len(items))
	copy(dup, items)
	return dup
}
