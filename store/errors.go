package store

import (
	"errors"
	"fmt"
)

// ErrTimeout reports that a caller-supplied deadline expired before the
// query could run.
var ErrTimeout = errors.New("query deadline exceeded")

// ForeignKeyViolation reports a write referencing a parent record that
// does not exist.
type ForeignKeyViolation struct {
	Table string
	ID    uint
}

func (e *ForeignKeyViolation) Error() string {
	return fmt.Sprintf("%s %d does not exist", e.Table, e.ID)
}

// UniqueConstraintViolation reports a write that would duplicate a
// unique column.
type UniqueConstraintViolation struct {
	Field string
	Value string
}

func (e *UniqueConstraintViolation) Error() string {
	return fmt.Sprintf("%s %q is already taken", e.Field, e.Value)
}

// ReferentialConflict reports a delete blocked by records still
// referencing the target.
type ReferentialConflict struct {
	Table        string
	ID           uint
	ReferencedBy string
}

func (e *ReferentialConflict) Error() string {
	return fmt.Sprintf("cannot delete %s %d: still referenced by %s", e.Table, e.ID, e.ReferencedBy)
}

// InsufficientStock reports an order line asking for more units than the
// product has on hand.
type InsufficientStock struct {
	ProductID uint
	Requested int
	Available int
}

func (e *InsufficientStock) Error() string {
	return fmt.Sprintf("product %d: requested %d, only %d in stock", e.ProductID, e.Requested, e.Available)
}

// InvalidArgument reports a caller-supplied value that fails validation
// before anything is written.
type InvalidArgument struct {
	Reason string
}

func (e *InvalidArgument) Error() string {
	return e.Reason
}

func invalidArgf(format string, args ...interface{}) error {
	return &InvalidArgument{Reason: fmt.Sprintf(format, args...)}
}
