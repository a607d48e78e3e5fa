package presenter

import (
	"fmt"

	"github.com/charmbracelet/glamour"
	glamourstyles "github.com/charmbracelet/glamour/styles"
)

const guideWrap = 80

// Markdown renders a markdown document for the terminal. Coloured presenters
// use the dark theme; plain ones get the notty style with no escapes.
func (p *Presenter) Markdown(src string) error {
	style := glamourstyles.NoTTYStyle
	if p.colorize {
		style = glamourstyles.DarkStyle
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(guideWrap),
	)
	if err != nil {
		return fmt.Errorf("markdown renderer: %w", err)
	}
	out, err := renderer.Render(src)
	if err != nil {
		return fmt.Errorf("render markdown: %w", err)
	}
	_, err = fmt.Fprint(p.out, out)
	return err
}
