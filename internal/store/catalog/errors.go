package catalog

import (
	"errors"
	"fmt"
)

var ErrNotFound = errors.New("not found")

// StoreError wraps any failure of the underlying database.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string { return fmt.Sprintf("catalog %s: %v", e.Op, e.Err) }

func (e *StoreError) Unwrap() error { return e.Err }

func storeErr(op string, err error) error {
	if err == nil {
		return nil
	}
	return &StoreError{Op: op, Err: err}
}

// IsStoreError reports whether err came from the database layer.
func IsStoreError(err error) bool {
	var se *StoreError
	return errors.As(err, &se)
}
