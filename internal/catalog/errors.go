package catalog

import (
	"errors"
	"fmt"
)

// DataError reports a catalog that could not be fetched or decoded
type DataError struct {
	Op  string
	Err error
}

func (e *DataError) Error() string {
	return fmt.Sprintf("catalog %s: %v", e.Op, e.Err)
}

func (e *DataError) Unwrap() error {
	return e.Err
}

// IsDataError reports whether err wraps a DataError
func IsDataError(err error) bool {
	var de *DataError
	return errors.As(err, &de)
}

func dataError(op string, err error) error {
	return &DataError{Op: op, Err: err}
}
