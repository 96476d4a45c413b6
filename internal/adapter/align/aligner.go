package align

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/driftcheck/driftcheck/internal/diff"
)

// Aligner implements the drift.Aligner port with a line-level LCS edit
// script computed by diffmatchpatch. Each line of the two inputs is mapped
// to a rune so the character diff operates on whole lines, then the result
// is decoded back to per-line operations.
type Aligner struct{}

// New constructs an Aligner.
func New() *Aligner {
	return &Aligner{}
}

// Align diffs base against updated, returning per-line operations in
// document order. Removed lines precede added lines at a replacement site,
// matching the underlying algorithm's minimal edit script.
func (a *Aligner) Align(base, updated string) diff.Diff {
	dmp := diffmatchpatch.New()

	baseRunes, updatedRunes, lines := dmp.DiffLinesToRunes(base, updated)
	chunks := dmp.DiffMainRunes(baseRunes, updatedRunes, false)
	chunks = dmp.DiffCleanupMerge(chunks)

	var d diff.Diff
	for _, chunk := range chunks {
		for _, r := range chunk.Text {
			idx := int(r)
			if idx < 0 || idx >= len(lines) {
				continue
			}
			line := strings.TrimSuffix(lines[idx], "\n")
			switch chunk.Type {
			case diffmatchpatch.DiffEqual:
				d = append(d, diff.Unchanged(line, line))
			case diffmatchpatch.DiffDelete:
				d = append(d, diff.Removed(line))
			case diffmatchpatch.DiffInsert:
				d = append(d, diff.Added(line))
			}
		}
	}
	return d
}
