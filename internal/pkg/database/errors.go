package database

import (
	"errors"
	"fmt"
)

// ErrStore marks failures of the underlying persistence engine
// (connection loss, I/O faults, driver errors).
var ErrStore = errors.New("store failure")

// StoreError wraps a driver error so that both errors.Is(err, ErrStore)
// and errors.Is(err, <driver error>) hold.
func StoreError(op string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w: %w", op, ErrStore, err)
}
