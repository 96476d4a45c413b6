package drift

import (
	"os"

	"github.com/driftcheck/driftcheck/internal/diff"
	"github.com/driftcheck/driftcheck/internal/domain"
)

// Generator produces line diffs between rendered templates and their
// target files.
type Generator struct {
	renderer Renderer
	aligner  Aligner
}

// NewGenerator constructs a Generator from its two collaborators.
func NewGenerator(renderer Renderer, aligner Aligner) *Generator {
	return &Generator{renderer: renderer, aligner: aligner}
}

// Generate reads the template source, applies the description's actions,
// renders the result against variables, reads the target file, and aligns
// target content (left, base) against rendered content (right, new).
//
// A missing target is a read failure at this layer; callers wanting
// "no target yet" semantics must check existence before calling.
func (g *Generator) Generate(tmpl domain.TemplateDescription, variables map[string]any) (diff.Diff, error) {
	raw, err := os.ReadFile(tmpl.Source)
	if err != nil {
		return nil, &ReadError{Path: tmpl.Source, Err: err}
	}

	content := tmpl.ApplyActions(string(raw))

	rendered, err := g.renderer.Render(content, variables)
	if err != nil {
		return nil, &RenderError{Source: tmpl.Source, Err: err}
	}

	target, err := os.ReadFile(tmpl.Target.Target)
	if err != nil {
		return nil, &ReadError{Path: tmpl.Target.Target, Err: err}
	}

	return g.aligner.Align(string(target), rendered), nil
}
