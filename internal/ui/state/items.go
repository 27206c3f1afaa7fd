package state

// Item is one entry of the launcher page: a dialog the user can open.
type Item struct {
	ID          string
	Label       string
	Description string
}

// CloneItems produces a shallow copy of items.
func CloneItems(items []Item) []Item {
	dup := make([]Item, len(items))
	copy(dup, items)
	return dup
}
