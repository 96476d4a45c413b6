package align_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/driftcheck/driftcheck/internal/adapter/align"
	"github.com/driftcheck/driftcheck/internal/diff"
)

func TestAlignIdenticalTexts(t *testing.T) {
	a := align.New()
	d := a.Align("one\ntwo\nthree\n", "one\ntwo\nthree\n")

	require.Len(t, d, 3)
	for _, op := range d {
		assert.Equal(t, diff.LineUnchanged, op.Kind)
		assert.Equal(t, op.Left, op.Right)
	}
	assert.False(t, diff.NonEmpty(d))
}

func TestAlignSingleLineReplacement(t *testing.T) {
	a := align.New()
	d := a.Align("a\nb\nc\n", "a\nx\nc\n")

	assert.Equal(t, diff.Diff{
		diff.Unchanged("a", "a"),
		diff.Removed("b"),
		diff.Added("x"),
		diff.Unchanged("c", "c"),
	}, d)
}

func TestAlignPureInsertion(t *testing.T) {
	a := align.New()
	d := a.Align("a\nc\n", "a\nb\nc\n")

	assert.Equal(t, diff.Diff{
		diff.Unchanged("a", "a"),
		diff.Added("b"),
		diff.Unchanged("c", "c"),
	}, d)
}

func TestAlignPureDeletion(t *testing.T) {
	a := align.New()
	d := a.Align("a\nb\nc\n", "a\nc\n")

	assert.Equal(t, diff.Diff{
		diff.Unchanged("a", "a"),
		diff.Removed("b"),
		diff.Unchanged("c", "c"),
	}, d)
}

// Reconstruction: the left sides of unchanged+removed ops are the base
// lines; the right sides of unchanged+added ops are the updated lines.
func TestAlignReconstructsBothSides(t *testing.T) {
	base := "alpha\nbeta\ngamma\ndelta\n"
	updated := "alpha\nBETA\ngamma\nepsilon\ndelta\n"

	a := align.New()
	d := a.Align(base, updated)

	var left, right []string
	for _, op := range d {
		switch op.Kind {
		case diff.LineUnchanged:
			left = append(left, op.Left)
			right = append(right, op.Right)
		case diff.LineRemoved:
			left = append(left, op.Left)
		case diff.LineAdded:
			right = append(right, op.Right)
		}
	}

	assert.Equal(t, base, strings.Join(left, "\n")+"\n")
	assert.Equal(t, updated, strings.Join(right, "\n")+"\n")
}

func TestAlignEmptyInputs(t *testing.T) {
	a := align.New()
	assert.Empty(t, a.Align("", ""))

	d := a.Align("", "new\n")
	require.Len(t, d, 1)
	assert.Equal(t, diff.Added("new"), d[0])
}
