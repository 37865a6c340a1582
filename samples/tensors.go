package samples

import (
	"fmt"

	"github.com/gomlx/gomlx/pkg/core/tensors"
)

// Tensors gathers the pairs at the provided indices and returns them as
// gomlx tensors of shape [len(indices), InputDim] and
// [len(indices), TargetDim]. The samples are copied straight out of the
// table's flat buffers; the table is not touched otherwise.
//
// Errors wrap ErrIndexOutOfRange for invalid positions and
// ErrInvalidArgument when the table's samples have zero width (a zero-width
// side cannot form a rank-2 batch, and silently yielding empty tensors
// would drop the gathered samples).
func (t *Table) Tensors(indices []int) (inputs *tensors.Tensor, targets *tensors.Tensor, err error) {
	for _, idx := range indices {
		if idx < 0 || idx >= t.n {
			return nil, nil, fmt.Errorf("%w: index %d out of range [0, %d)", ErrIndexOutOfRange, idx, t.n)
		}
	}
	if len(indices) > 0 {
		if t.inputDim == 0 {
			return nil, nil, fmt.Errorf("%w: input samples have zero width, cannot batch", ErrInvalidArgument)
		}
		if t.targetDim == 0 {
			return nil, nil, fmt.Errorf("%w: target samples have zero width, cannot batch", ErrInvalidArgument)
		}
	}

	in := gatherRows(t.inputs, indices, t.inputDim)
	tgt := gatherRows(t.targets, indices, t.targetDim)
	return tensors.FromAnyValue(in), tensors.FromAnyValue(tgt), nil
}

// gatherRows copies the selected samples out of a flat buffer into one
// freshly allocated contiguous buffer and returns per-sample row views of
// it.
func gatherRows(flat []float32, indices []int, dim int) [][]float32 {
	buf := make([]float32, len(indices)*dim)
	rows := make([][]float32, len(indices))
	for pos, idx := range indices {
		copy(buf[pos*dim:(pos+1)*dim], flat[idx*dim:(idx+1)*dim])
		rows[pos] = buf[pos*dim : (pos+1)*dim]
	}
	return rows
}

// batchTensors converts rows gathered from an arbitrary Collection into a
// pair of rank-2 tensors. Unlike Table.Tensors it cannot rely on the
// fixed-shape guarantee of a table, so it validates the rows first: both
// sides must have the same batch size, consistent per-sample dimensions,
// and non-zero width.
func batchTensors(inputs, targets [][]float32) (*tensors.Tensor, *tensors.Tensor, error) {
	if len(inputs) != len(targets) {
		return nil, nil, fmt.Errorf("%w: gathered %d inputs but %d targets",
			ErrInvalidArgument, len(inputs), len(targets))
	}
	if err := checkRows(inputs, "input"); err != nil {
		return nil, nil, err
	}
	if err := checkRows(targets, "target"); err != nil {
		return nil, nil, err
	}
	return tensors.FromAnyValue(inputs), tensors.FromAnyValue(targets), nil
}

func checkRows(rows [][]float32, what string) error {
	if len(rows) == 0 {
		return nil
	}
	dim := len(rows[0])
	if dim == 0 {
		return fmt.Errorf("%w: %s samples have zero width, cannot batch", ErrInvalidArgument, what)
	}
	for i, row := range rows[1:] {
		if len(row) != dim {
			return fmt.Errorf("%w: inconsistent %s dimensions at position %d: expected %d, got %d",
				ErrInvalidArgument, what, i+1, dim, len(row))
		}
	}
	return nil
}
