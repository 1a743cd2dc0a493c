package topics

// Renderer turns raw topic content into what the terminal shows. The
// format argument is the topic file's extension (".md", ".txt"), so a
// renderer can treat markdown differently from plain text.
type Renderer interface {
	Render(content string, format string) string
}

// PlainRenderer passes content through untouched. It is the default when
// no renderer is configured.
type PlainRenderer struct{}

func (r *PlainRenderer) Render(content string, format string) string {
	return content
}
