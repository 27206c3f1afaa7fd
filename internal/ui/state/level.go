package state

// Page holds the scrollable launcher list behind the dialogs: its items, the
// filter applied to them, the cursor and the scroll offset.
type Page struct {
	ID           string
	Title        string
	Items        []Item
	Full         []Item
	Filter       string
	FilterCursor int
	Cursor       int
	LastCursor   int
	Offset       int
}

// NewPage constructs a page over items with the cursor on the first entry.
func NewPage(id, title string, items []Item) *Page {
	p := &Page{ID: id, Title: title, LastCursor: -1}
	p.SetItems(items)
	return p
}

// Current returns the item under the cursor.
func (p *Page) Current() (Item, bool) {
	if p.Cursor < 0 || p.Cursor >= len(p.Items) {
		return Item{}, false
	}
	return p.Items[p.Cursor], true
}

// IndexOf returns the position of id among the visible items, or -1.
func (p *Page) IndexOf(id string) int {
	for i, item := range p.Items {
		if item.ID == id {
			return i
		}
	}
	return -1
}

// SetItems replaces the page contents, keeping the filter and clamping the
// cursor and offset.
func (p *Page) SetItems(items []Item) {
	p.Full = CloneItems(items)
	p.applyFilter()
	if p.Offset < 0 || p.Offset >= len(p.Items) {
		p.Offset = 0
	}
}
