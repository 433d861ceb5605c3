// Package repository persists theatres, plays, casts and tickets.
// Writes are staged on a TheatreContext and flushed in one transaction;
// reads return entity graphs for the exporters.
package repository

import "errors"

// ErrCommit wraps any failure while flushing staged entities.  Nothing
// from the failed batch is persisted.
var ErrCommit = errors.New("commit failed")

// ErrInvalidGenre is returned when a stored play carries a genre value
// outside model.Genre.
var ErrInvalidGenre = errors.New("invalid stored genre")
