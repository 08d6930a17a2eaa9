package topics

// Renderer turns the raw text of a topic file into what `help <topic>`
// prints. ext is the file extension with its dot, such as ".md".
type Renderer interface {
	Render(content string, ext string) string
}

// PlainRenderer prints topics verbatim. It is used when no renderer is
// configured.
type PlainRenderer struct{}

// Render returns content unchanged.
func (PlainRenderer) Render(content string, _ string) string {
	return content
}
