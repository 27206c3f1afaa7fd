package modal

import (
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/muesli/termenv"
)

var (
	markdownStyleOnce sync.Once
	markdownStyle     string
)

func defaultMarkdownStyle() string {
	markdownStyleOnce.Do(func() {
		markdownStyle = "light"
		if termenv.HasDarkBackground() {
			markdownStyle = "dark"
		}
	})
	return markdownStyle
}

type markdown struct {
	src   string
	style string

	mu    sync.Mutex
	width int
	out   string
}

// Markdown returns content that renders src with glamour, word-wrapped to the
// dialog's width. The style follows the terminal background.
func Markdown(src string) Content {
	return &markdown{src: src, width: -1}
}

// MarkdownWithStyle is Markdown with an explicit glamour style name such as
// "dark", "light" or "notty".
func MarkdownWithStyle(src, style string) Content {
	return &markdown{src: src, style: style, width: -1}
}

func (md *markdown) Render(width int) string {
	md.mu.Lock()
	defer md.mu.Unlock()
	if width == md.width {
		return md.out
	}
	md.width = width
	md.out = md.render(width)
	return md.out
}

func (md *markdown) render(width int) string {
	style := md.style
	if style == "" {
		style = defaultMarkdownStyle()
	}
	opts := []glamour.TermRendererOption{glamour.WithStylePath(style)}
	if width > 0 {
		opts = append(opts, glamour.WithWordWrap(width))
	}
	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return md.src
	}
	out, err := r.Render(md.src)
	if err != nil {
		return md.src
	}
	return strings.Trim(out, "\n")
}
