package store

import "github.com/oklog/ulid/v2"

// NewID returns a lexically sortable unique row ID.
func NewID() string {
	return ulid.Make().String()
}
