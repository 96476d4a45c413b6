package diff

// LineKind identifies how a single line participates in a comparison.
type LineKind int

const (
	// LineUnchanged is a line present in both documents.
	LineUnchanged LineKind = iota
	// LineRemoved is a line present only in the left (base) document.
	LineRemoved
	// LineAdded is a line present only in the right (updated) document.
	LineAdded
)

// LineOp is one line-level operation in a comparison. Removed ops carry
// Left only, added ops carry Right only, unchanged ops carry both sides
// (the same logical content, read from either document). Values are never
// mutated after construction.
type LineOp struct {
	Kind  LineKind
	Left  string
	Right string
}

// Removed constructs an operation for a line only the left document has.
func Removed(text string) LineOp {
	return LineOp{Kind: LineRemoved, Left: text}
}

// Added constructs an operation for a line only the right document has.
func Added(text string) LineOp {
	return LineOp{Kind: LineAdded, Right: text}
}

// Unchanged constructs an operation for a line both documents share.
func Unchanged(left, right string) LineOp {
	return LineOp{Kind: LineUnchanged, Left: left, Right: right}
}

// Diff is the full ordered sequence of line operations between two texts,
// in document order of the merged comparison.
type Diff []LineOp

// NonEmpty reports whether d contains at least one removed or added line,
// i.e. whether the two documents actually differ.
func NonEmpty(d Diff) bool {
	for _, op := range d {
		if op.Kind != LineUnchanged {
			return true
		}
	}
	return false
}
