package samples

import "errors"

// This package provides an in-memory paired sample store (Table) plus the
// glue needed to feed it into a batched training loop:
//
// Table
//   - Holds input samples and, optionally, target samples of the same length.
//   - When constructed without targets, lookups return the input sample as
//     its own target (autoencoder-style pairing).
//   - Immutable after construction; safe for concurrent readers.
//
// Loader
//   - Walks a Collection in index order and yields fixed-size batches as
//     gomlx tensors, matching the method set of gomlx's train.Dataset so a
//     gomlx training loop can consume it directly.
//
// FromCSV
//   - Materializes a Table from CSV files, resolving input and target
//     columns by name from the header.

// Collection is the minimal contract a batched loader needs from a paired
// sample store. Using a small interface here keeps consumers decoupled from
// the concrete Table type; anything exposing positional (input, target)
// pairs can be loaded.
type Collection interface {
	// Len returns the number of samples.
	Len() int

	// At returns the (input, target) pair at position i.
	At(i int) (input, target []float32, err error)
}

// Sentinel errors returned (wrapped) by Table and Loader operations.
// Callers can test for them with errors.Is.
var (
	// ErrInvalidArgument indicates a malformed construction argument or an
	// unsupported index selector.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrIndexOutOfRange indicates a position outside [0, Len()).
	ErrIndexOutOfRange = errors.New("index out of range")
)
