package state

// MoveCursor moves the cursor by delta, clamped to the item range. It
// reports whether the cursor moved.
func (p *Page) MoveCursor(delta int) bool {
	if len(p.Items) == 0 {
		p.Cursor = 0
		return false
	}
	old := p.Cursor
	p.Cursor = clamp(max(p.Cursor, 0)+delta, 0, len(p.Items)-1)
	return p.Cursor != old
}

// MoveCursorHome moves the cursor to the first item.
func (p *Page) MoveCursorHome() bool {
	return p.MoveCursor(-len(p.Items))
}

// MoveCursorEnd moves the cursor to the last item.
func (p *Page) MoveCursorEnd() bool {
	return p.MoveCursor(len(p.Items))
}

// MoveCursorPageUp moves the cursor up by one screen of rows.
func (p *Page) MoveCursorPageUp(visible int) bool {
	return p.MoveCursor(-p.pageSize(visible))
}

// MoveCursorPageDown moves the cursor down by one screen of rows.
func (p *Page) MoveCursorPageDown(visible int) bool {
	return p.MoveCursor(p.pageSize(visible))
}

func (p *Page) pageSize(visible int) int {
	if visible <= 0 || visible > len(p.Items) {
		return max(len(p.Items), 1)
	}
	return visible
}

// Scroll moves the viewport by delta rows without touching the cursor,
// unless the cursor would leave the viewport. It reports whether the offset
// changed.
func (p *Page) Scroll(delta, visible int) bool {
	if visible <= 0 || len(p.Items) <= visible {
		return false
	}
	old := p.Offset
	p.Offset = clamp(p.Offset+delta, 0, len(p.Items)-visible)
	if p.Cursor < p.Offset {
		p.Cursor = p.Offset
	}
	if p.Cursor > p.Offset+visible-1 {
		p.Cursor = p.Offset + visible - 1
	}
	return p.Offset != old
}

// EnsureCursorVisible adjusts the offset so the cursor is on screen.
func (p *Page) EnsureCursorVisible(visible int) {
	if len(p.Items) == 0 {
		p.Cursor, p.Offset = 0, 0
		return
	}
	p.Cursor = clamp(p.Cursor, 0, len(p.Items)-1)
	if visible <= 0 {
		p.Offset = 0
		return
	}
	p.Offset = clamp(p.Offset, 0, max(len(p.Items)-visible, 0))
	switch {
	case p.Cursor < p.Offset:
		p.Offset = p.Cursor
	case p.Cursor >= p.Offset+visible:
		p.Offset = p.Cursor - visible + 1
	}
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
