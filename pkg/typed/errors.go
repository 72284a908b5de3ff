package typed

import (
	"errors"
	"fmt"

	"github.com/LUDevNet/paradox-typed-db/pkg/fdb"
)

// Sentinel errors.
var (
	// ErrMissingColumn is matched by *MissingColumnError.
	ErrMissingColumn = errors.New("missing required column")
	// ErrMissingTable is matched by *MissingTableError.
	ErrMissingTable = errors.New("missing required table")
)

// MissingColumnError is returned when a non-nullable column is read but
// the physical table does not have it.
type MissingColumnError struct {
	Table  string
	Column string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("missing required column %s.%s", e.Table, e.Column)
}

// Is reports whether target is ErrMissingColumn.
func (e *MissingColumnError) Is(target error) bool {
	return target == ErrMissingColumn
}

// MissingTableError is returned when a required table is absent.
type MissingTableError struct {
	Table string
}

func (e *MissingTableError) Error() string {
	return fmt.Sprintf("missing required table %s", e.Table)
}

// Is reports whether target is ErrMissingTable or fdb.ErrTableNotFound.
func (e *MissingTableError) Is(target error) bool {
	return target == ErrMissingTable || target == fdb.ErrTableNotFound
}
