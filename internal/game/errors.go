package game

import "errors"

// ErrInvalidAction rejects an action that is illegal in the round's current
// state: double without exactly two cards, split on a non-pair, any action
// after resolution, and so on.
var ErrInvalidAction = errors.New("invalid_action")
