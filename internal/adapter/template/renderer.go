package template

import (
	"fmt"

	"github.com/flosch/pongo2/v6"
)

// Renderer implements the drift.Renderer port backed by pongo2. Variable
// lookup follows pongo2 semantics: unknown variables render empty rather
// than failing, while syntax and execution errors fail the render.
type Renderer struct{}

// NewRenderer constructs a pongo2-backed renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Render parses templateText and executes it against variables.
func (r *Renderer) Render(templateText string, variables map[string]any) (string, error) {
	tpl, err := pongo2.FromString(templateText)
	if err != nil {
		return "", fmt.Errorf("parse template: %w", err)
	}

	if variables == nil {
		variables = map[string]any{}
	}
	out, err := tpl.Execute(pongo2.Context(variables))
	if err != nil {
		return "", fmt.Errorf("execute template: %w", err)
	}
	return out, nil
}
