package db

import (
	"fmt"
)

type StoreError struct {
	Op        string
	SessionID string
	Err       error
}

func (e *StoreError) Error() string {
	if e.SessionID == "" {
		return fmt.Sprintf("session store %s failed: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("session store %s for %s failed: %v", e.Op, e.SessionID, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}
