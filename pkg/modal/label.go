package modal

// Attributes are the accessibility properties of the dialog root.
type Attributes struct {
	Role       string
	Modal      bool
	ID         string
	TitleID    string
	Label      string
	LabelledBy string
	TabIndex   int
}

// deriveLabel picks exactly one of label or labelledBy, or neither:
// explicit labelledby, then explicit label, then the title region when the
// title is non-empty text.
func deriveLabel(id string, p Props) (label, labelledBy string) {
	if p.AriaLabelledBy != "" {
		return "", p.AriaLabelledBy
	}
	if p.AriaLabel != "" {
		return p.AriaLabel, ""
	}
	if t, ok := p.Title.(Text); ok && t != "" {
		return "", titleID(id)
	}
	return "", ""
}

// Attributes returns the dialog root's accessibility attributes.
func (m *Modal) Attributes() Attributes {
	label, labelledBy := deriveLabel(m.id, m.props)
	return Attributes{
		Role:       "dialog",
		Modal:      true,
		ID:         m.id,
		TitleID:    titleID(m.id),
		Label:      label,
		LabelledBy: labelledBy,
		TabIndex:   -1,
	}
}

// AccessibleName resolves the name assistive technology would announce. A
// labelledby reference to anything other than the dialog's own title cannot be
// resolved here and yields "".
func (m *Modal) AccessibleName() string {
	attrs := m.Attributes()
	if attrs.Label != "" {
		return attrs.Label
	}
	if attrs.LabelledBy == attrs.TitleID {
		if t, ok := m.props.Title.(Text); ok {
			return string(t)
		}
	}
	return ""
}

func titleID(id string) string   { return id + "__title" }
func contentID(id string) string { return id + "__content" }
func backID(id string) string    { return id + "__back" }
func closeID(id string) string   { return id + "__close" }
