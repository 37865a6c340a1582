package samples

import (
	"fmt"
	"io"

	"github.com/gomlx/gomlx/pkg/core/tensors"
)

// Loader walks a Collection in index order and yields fixed-size batches as
// gomlx tensors. It implements the method set of gomlx's train.Dataset
// (Name, Yield, Reset) so a gomlx training loop can drive it directly.
//
// Batches are yielded sequentially; the final batch of an epoch may be
// short. Once the collection is exhausted Yield returns io.EOF until Reset
// is called.
type Loader struct {
	// Source provides the (input, target) pairs.
	Source Collection

	// BatchSize for yielded batches.
	BatchSize int

	cursor int
}

// tensorBatcher is implemented by sources that can produce batch tensors
// directly, without going through per-sample At calls. *Table qualifies.
type tensorBatcher interface {
	Tensors(indices []int) (*tensors.Tensor, *tensors.Tensor, error)
}

// NewLoader creates a loader over c yielding batches of batchSize pairs.
// Errors wrap ErrInvalidArgument when c is nil or batchSize < 1.
func NewLoader(c Collection, batchSize int) (*Loader, error) {
	if c == nil {
		return nil, fmt.Errorf("%w: collection must not be nil", ErrInvalidArgument)
	}
	if batchSize < 1 {
		return nil, fmt.Errorf("%w: batch size must be >= 1, got %d", ErrInvalidArgument, batchSize)
	}
	return &Loader{Source: c, BatchSize: batchSize}, nil
}

// Name returns the name of the loader.
func (l *Loader) Name() string {
	return "SampleLoader"
}

// Reset rewinds the loader to the first batch for a new epoch.
func (l *Loader) Reset() {
	l.cursor = 0
}

// Yield returns the next batch of pairs as gomlx tensors. It returns io.EOF
// once the collection is exhausted. The cursor only advances on success, so
// a failed batch can be retried after the source recovers.
func (l *Loader) Yield() (spec any, inputs []*tensors.Tensor, labels []*tensors.Tensor, err error) {
	n := l.Source.Len()
	if l.cursor >= n {
		err = io.EOF
		return
	}

	end := l.cursor + l.BatchSize
	if end > n {
		end = n
	}

	var inT, tgtT *tensors.Tensor
	if tb, ok := l.Source.(tensorBatcher); ok {
		indices := make([]int, end-l.cursor)
		for i := range indices {
			indices[i] = l.cursor + i
		}
		inT, tgtT, err = tb.Tensors(indices)
		if err != nil {
			return
		}
	} else {
		ins := make([][]float32, 0, end-l.cursor)
		tgts := make([][]float32, 0, end-l.cursor)
		for i := l.cursor; i < end; i++ {
			x, y, atErr := l.Source.At(i)
			if atErr != nil {
				err = atErr
				return
			}
			ins = append(ins, x)
			tgts = append(tgts, y)
		}
		inT, tgtT, err = batchTensors(ins, tgts)
		if err != nil {
			return
		}
	}

	l.cursor = end
	inputs = []*tensors.Tensor{inT}
	labels = []*tensors.Tensor{tgtT}
	return nil, inputs, labels, nil
}
