package diagnostic

import (
	"errors"
	"fmt"
)

// Sentinel errors, one per error kind. Use errors.Is to classify.
var (
	// ErrSchema is matched by every SchemaError.
	ErrSchema = errors.New("invalid schema")

	// ErrIO is matched by every IOError.
	ErrIO = errors.New("i/o failure")

	// ErrUnsupportedKind is matched by every UnsupportedKindError.
	ErrUnsupportedKind = errors.New("unsupported entity kind")
)

// SchemaReason classifies a SchemaError.
type SchemaReason string

const (
	MissingAppName    SchemaReason = "MissingAppName"
	MissingIntentName SchemaReason = "MissingIntentName"
	MissingEntityName SchemaReason = "MissingEntityName"
	Malformed         SchemaReason = "Malformed"
)

// SchemaError reports missing or invalid required fields in an export.
type SchemaError struct {
	Reason SchemaReason
	// Path locates the offending value, e.g. "intents[2].name".
	Path string
	Err  error
}

func (e *SchemaError) Error() string {
	msg := "schema error: " + string(e.Reason)
	if e.Path != "" {
		msg += " at " + e.Path
	}

	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}

	return msg
}

func (e *SchemaError) Is(target error) bool {
	return target == ErrSchema
}

func (e *SchemaError) Unwrap() error {
	return e.Err
}

// IOError reports a failure reading the input or writing an artifact.
type IOError struct {
	// Op is "read" or "write".
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("failed to %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Is(target error) bool {
	return target == ErrIO
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// UnsupportedKindError reports an entity whose kind cannot be mapped to a type.
type UnsupportedKindError struct {
	Entity string
	Kind   string
}

func (e *UnsupportedKindError) Error() string {
	return fmt.Sprintf("entity %q has unsupported kind %q", e.Entity, e.Kind)
}

func (e *UnsupportedKindError) Is(target error) bool {
	return target == ErrUnsupportedKind
}

// NewSchemaError creates a new SchemaError.
func NewSchemaError(reason SchemaReason, path string, err error) error {
	return &SchemaError{Reason: reason, Path: path, Err: err}
}

// NewIOError creates a new IOError.
func NewIOError(op, path string, err error) error {
	return &IOError{Op: op, Path: path, Err: err}
}

// NewUnsupportedKindError creates a new UnsupportedKindError.
func NewUnsupportedKindError(entity, kind string) error {
	return &UnsupportedKindError{Entity: entity, Kind: kind}
}

// IsSchemaError checks if an error is a schema error.
func IsSchemaError(err error) bool {
	return errors.Is(err, ErrSchema)
}

// IsIOError checks if an error is an I/O error.
func IsIOError(err error) bool {
	return errors.Is(err, ErrIO)
}

// IsUnsupportedKind checks if an error is an unsupported kind error.
func IsUnsupportedKind(err error) bool {
	return errors.Is(err, ErrUnsupportedKind)
}

// Reason returns the SchemaReason carried by err, or "" if err is not a
// SchemaError.
func Reason(err error) SchemaReason {
	var se *SchemaError
	if errors.As(err, &se) {
		return se.Reason
	}

	return ""
}
