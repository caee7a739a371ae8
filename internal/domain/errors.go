package domain

import "errors"

// ErrUnmigratedReferences is returned when the audit pass finds references
// that should have been migrated but were not. The CLI maps it to exit
// code 1; the run itself completed, so this is a data-quality signal, not
// a crash.
var ErrUnmigratedReferences = errors.New("unmigrated references remain")
