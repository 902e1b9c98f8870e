// Package repository holds the data access contracts and their in-memory
// implementations. State is process-lifetime only: collections live behind a
// mutex and repositories hand out copies, so services always operate on
// snapshots. Swapping in a durable backend later only requires satisfying the
// same interfaces.
package repository

import "errors"

// ErrNotFound is returned whenever a lookup misses. Callers that treat a
// dangling reference as a normal branch check for it with errors.Is.
var ErrNotFound = errors.New("registro no encontrado")
