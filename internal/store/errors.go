package store

import (
	"errors"
	"fmt"

	"github.com/mesh-intelligence/stockroom/pkg/types"
)

// ErrFileNotFound reports a load from a path with no snapshot file.
var ErrFileNotFound = errors.New("snapshot file not found")

// DecodeError reports a snapshot that could not be parsed or that carries a
// malformed value. The whole load fails; nothing is partially applied.
type DecodeError struct {
	Format types.Format
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s snapshot: %v", e.Format, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// WriteError reports a failure writing a snapshot file.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write snapshot %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }
