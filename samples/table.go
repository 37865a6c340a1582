package samples

import "fmt"

// Table stores a fixed set of samples and exposes ordered, random-access
// (input, target) pairing by position.
//
// Samples are stored in flat contiguous float32 buffers with per-sample
// dimension metadata. Construction copies the caller's slices, so the table
// never references external mutable state. A table built without targets is
// self-paired: At returns the input sample for both elements of the pair.
//
// The returned sample slices alias the table's internal buffers and must be
// treated as read-only.
type Table struct {
	inputs  []float32
	targets []float32

	n          int
	inputDim   int
	targetDim  int
	selfPaired bool
}

var _ Collection = (*Table)(nil)

// NewTable builds a table from input samples and optional target samples.
// targets may be nil, in which case each input sample doubles as its own
// target. All samples within a sequence must share one dimension.
//
// Errors wrap ErrInvalidArgument when inputs is nil, when targets is non-nil
// with a length different from inputs, or when sample dimensions are ragged.
func NewTable(inputs, targets [][]float32) (*Table, error) {
	if inputs == nil {
		return nil, fmt.Errorf("%w: inputs must not be nil", ErrInvalidArgument)
	}
	if targets != nil && len(targets) != len(inputs) {
		return nil, fmt.Errorf("%w: targets length %d does not match inputs length %d",
			ErrInvalidArgument, len(targets), len(inputs))
	}

	t := &Table{
		n:          len(inputs),
		selfPaired: targets == nil,
	}

	var err error
	t.inputs, t.inputDim, err = flattenSamples(inputs, "input")
	if err != nil {
		return nil, err
	}
	if t.selfPaired {
		t.targets = t.inputs
		t.targetDim = t.inputDim
	} else {
		t.targets, t.targetDim, err = flattenSamples(targets, "target")
		if err != nil {
			return nil, err
		}
	}
	return t, nil
}

// flattenSamples copies rows into one contiguous buffer, checking that every
// row has the dimension of the first.
func flattenSamples(rows [][]float32, what string) ([]float32, int, error) {
	if len(rows) == 0 {
		return nil, 0, nil
	}
	dim := len(rows[0])
	flat := make([]float32, len(rows)*dim)
	for i, row := range rows {
		if len(row) != dim {
			return nil, 0, fmt.Errorf("%w: inconsistent %s dimensions at sample %d: expected %d, got %d",
				ErrInvalidArgument, what, i, dim, len(row))
		}
		copy(flat[i*dim:], row)
	}
	return flat, dim, nil
}

// Len returns the number of samples in the table.
func (t *Table) Len() int {
	return t.n
}

// InputDim returns the dimension of each input sample.
func (t *Table) InputDim() int {
	return t.inputDim
}

// TargetDim returns the dimension of each target sample. For a self-paired
// table this equals InputDim.
func (t *Table) TargetDim() int {
	return t.targetDim
}

// SelfPaired reports whether the table was constructed without targets.
func (t *Table) SelfPaired() bool {
	return t.selfPaired
}

// At returns the (input, target) pair at position i. For self-paired tables
// both elements are the input sample at i.
//
// The error wraps ErrIndexOutOfRange when i falls outside [0, Len()). A
// failed lookup leaves the table untouched.
func (t *Table) At(i int) (input, target []float32, err error) {
	if i < 0 || i >= t.n {
		return nil, nil, fmt.Errorf("%w: index %d out of range [0, %d)", ErrIndexOutOfRange, i, t.n)
	}
	input = t.inputs[i*t.inputDim : (i+1)*t.inputDim]
	target = t.targets[i*t.targetDim : (i+1)*t.targetDim]
	return input, target, nil
}

// Slice returns the pairs in the half-open range [lo, hi).
//
// lo > hi is a malformed selector and wraps ErrInvalidArgument; bounds
// outside [0, Len()] wrap ErrIndexOutOfRange.
func (t *Table) Slice(lo, hi int) (inputs, targets [][]float32, err error) {
	if lo > hi {
		return nil, nil, fmt.Errorf("%w: slice bounds [%d, %d)", ErrInvalidArgument, lo, hi)
	}
	if lo < 0 || hi > t.n {
		return nil, nil, fmt.Errorf("%w: slice [%d, %d) outside [0, %d]", ErrIndexOutOfRange, lo, hi, t.n)
	}
	inputs = make([][]float32, 0, hi-lo)
	targets = make([][]float32, 0, hi-lo)
	for i := lo; i < hi; i++ {
		x, y, _ := t.At(i)
		inputs = append(inputs, x)
		targets = append(targets, y)
	}
	return inputs, targets, nil
}

// Batch gathers pairs for the provided indices. Any invalid index fails the
// whole call; no partial results are returned.
func (t *Table) Batch(indices []int) (inputs, targets [][]float32, err error) {
	inputs = make([][]float32, len(indices))
	targets = make([][]float32, len(indices))
	for pos, idx := range indices {
		x, y, err := t.At(idx)
		if err != nil {
			return nil, nil, err
		}
		inputs[pos] = x
		targets[pos] = y
	}
	return inputs, targets, nil
}
