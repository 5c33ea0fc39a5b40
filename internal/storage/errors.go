package storage

import (
	"errors"
	"fmt"

	"github.com/sandevgo/csbot/internal/core"
)

var (
	ErrNonMonotonicID = errors.New("message id must be greater than the last stored id")
	ErrInvalidSender  = errors.New("message sender must be user or bot")
)

// CheckAppend enforces the append-only invariants shared by all stores.
func CheckAppend(lastID int64, msg core.Message) error {
	if !msg.Sender.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidSender, msg.Sender)
	}
	if msg.ID <= lastID {
		return fmt.Errorf("%w: got %d after %d", ErrNonMonotonicID, msg.ID, lastID)
	}
	return nil
}
