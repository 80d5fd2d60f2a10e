package types

import "time"

// Snippet is a stored title/description pair. Identity is positional:
// display order is insertion order and the persisted file keeps that order.
type Snippet struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Event actions recorded in the history log.
const (
	ActionAdd    = "add"
	ActionDelete = "delete"
	ActionCopy   = "copy"
)

// Event is one row of the history log.
type Event struct {
	ID          int64
	Timestamp   time.Time
	Action      string
	Title       string
	Description string
}
