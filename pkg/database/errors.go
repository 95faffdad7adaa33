package database

import "errors"

// ErrNotReady wraps the driver error when the history database cannot be
// reached.
var ErrNotReady = errors.New("history database not ready")
