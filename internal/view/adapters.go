package view

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"maragu.dev/gomponents"
)

// The dashboard is rendered with gomponents, but a few pieces (the inline
// logo SVG, third-party snippets) arrive as templ components. These adapters
// bridge the two render contracts in either direction.

// GomponentToTemplAdapter wraps a gomponents.Node so it satisfies
// templ.Component.
type GomponentToTemplAdapter struct {
	Node gomponents.Node
}

func (a *GomponentToTemplAdapter) Render(ctx context.Context, w io.Writer) error {
	return a.Node.Render(w)
}

// AdaptGomponentToTempl converts a gomponents.Node into a templ.Component.
func AdaptGomponentToTempl(node gomponents.Node) templ.Component {
	return &GomponentToTemplAdapter{Node: node}
}

// TemplToGomponentAdapter wraps a templ.Component so it satisfies
// gomponents.Node. gomponents' Render carries no context, so the wrapped
// component renders with context.Background().
type TemplToGomponentAdapter struct {
	Component templ.Component
}

func (a *TemplToGomponentAdapter) Render(w io.Writer) error {
	return a.Component.Render(context.Background(), w)
}

// AdaptTemplToGomponent converts a templ.Component into a gomponents.Node.
func AdaptTemplToGomponent(component templ.Component) gomponents.Node {
	return &TemplToGomponentAdapter{Component: component}
}
