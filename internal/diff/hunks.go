package diff

// Hunk is a contiguous group of operations padded with nearby unchanged
// lines. StartLeft and StartRight are the number of complete lines already
// consumed from each document when the hunk opens, so the first operation
// of the hunk is line Start+1 on whichever side it touches. Ops is never
// empty.
type Hunk struct {
	StartLeft  int
	StartRight int
	Ops        []LineOp
}

// ExtractHunks groups d into ordered, non-overlapping hunks, keeping up to
// contextLines unchanged lines on either side of every removed or added
// line. Unchanged lines farther from any change are dropped; a stretch of
// dropped lines is what separates two consecutive hunks. An empty or
// all-unchanged diff yields no hunks.
func ExtractHunks(d Diff, contextLines int) []Hunk {
	var hunks []Hunk
	var current *Hunk

	left, right := 0, 0
	for i, op := range d {
		// Anchor for a hunk opening on this operation: lines consumed
		// before the operation itself.
		anchorLeft, anchorRight := left, right

		switch op.Kind {
		case LineRemoved:
			left++
		case LineAdded:
			right++
		case LineUnchanged:
			left++
			right++
		}

		if op.Kind != LineUnchanged {
			if current == nil {
				current = &Hunk{StartLeft: anchorLeft, StartRight: anchorRight}
			}
			current.Ops = append(current.Ops, op)
			continue
		}

		// An unchanged line is kept only while a change sits within the
		// context window. The forward check includes the line itself and
		// alone can open a hunk; the backward check looks strictly behind
		// and can only extend one. Together they keep contextLines of
		// padding on both sides of every change.
		switch {
		case hasChange(d, i, i+contextLines):
			if current == nil {
				current = &Hunk{StartLeft: anchorLeft, StartRight: anchorRight}
			}
			current.Ops = append(current.Ops, op)
		case current != nil && hasChange(d, i-contextLines, i-1):
			current.Ops = append(current.Ops, op)
		case current != nil:
			hunks = append(hunks, *current)
			current = nil
		}
	}

	if current != nil {
		hunks = append(hunks, *current)
	}
	return hunks
}

// hasChange reports whether d[from..to], clipped to valid indices, contains
// a removed or added operation.
func hasChange(d Diff, from, to int) bool {
	if from < 0 {
		from = 0
	}
	if to > len(d)-1 {
		to = len(d) - 1
	}
	for i := from; i <= to; i++ {
		if d[i].Kind != LineUnchanged {
			return true
		}
	}
	return false
}
