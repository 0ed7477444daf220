package errors

import (
	"fmt"
)

// SchemaError reports a reference to a visual property, table column or
// style entity the remote service does not know about.
type SchemaError struct {
	Entity  string
	Name    string
	Message string
	Err     error
}

// NewSchemaError constructs a SchemaError for the given entity kind ("visual
// property", "column", "style") and name.
func NewSchemaError(entity, name, message string) error {
	return &SchemaError{Entity: entity, Name: name, Message: message}
}

func (e *SchemaError) Error() string {
	if e == nil {
		return ""
	}
	if e.Message != "" {
		return fmt.Sprintf("unknown %s %q: %s", e.Entity, e.Name, e.Message)
	}
	return fmt.Sprintf("unknown %s %q", e.Entity, e.Name)
}

// Unwrap exposes the underlying error.
func (e *SchemaError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ShapeError reports paired value sequences that cannot be reconciled into a
// mapping payload.
type ShapeError struct {
	ColumnCount   int
	PropertyCount int
	Message       string
}

// NewShapeError constructs a ShapeError for mismatched column/property value
// counts.
func NewShapeError(columnCount, propertyCount int, message string) error {
	return &ShapeError{ColumnCount: columnCount, PropertyCount: propertyCount, Message: message}
}

func (e *ShapeError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("shape error: %s (%d column values, %d property values)", e.Message, e.ColumnCount, e.PropertyCount)
}

// DomainError reports a property value that violates the target visual
// property's domain, such as an out-of-range opacity or a malformed color.
type DomainError struct {
	Property string
	Value    any
	Message  string
}

// NewDomainError constructs a DomainError.
func NewDomainError(property string, value any, message string) error {
	return &DomainError{Property: property, Value: value, Message: message}
}

func (e *DomainError) Error() string {
	if e == nil {
		return ""
	}
	if e.Property != "" {
		return fmt.Sprintf("domain error for %s: %s (got %v)", e.Property, e.Message, e.Value)
	}
	return fmt.Sprintf("domain error: %s (got %v)", e.Message, e.Value)
}

// RemoteError carries a failed HTTP exchange with the service, preserving the
// status and response body verbatim.
type RemoteError struct {
	Method string
	Path   string
	Status int
	Body   string
	Err    error
}

// NewRemoteError constructs a RemoteError for a failed request.
func NewRemoteError(method, path string, status int, body string, err error) error {
	return &RemoteError{Method: method, Path: path, Status: status, Body: body, Err: err}
}

func (e *RemoteError) Error() string {
	if e == nil {
		return ""
	}
	if e.Status > 0 {
		return fmt.Sprintf("remote error: %s %s: status %d: %s", e.Method, e.Path, e.Status, e.Body)
	}
	return fmt.Sprintf("remote error: %s %s: %v", e.Method, e.Path, e.Err)
}

// Unwrap exposes the transport error, if any.
func (e *RemoteError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// NotFoundError reports a mapping lookup for a property the style does not
// currently map.
type NotFoundError struct {
	Style    string
	Property string
}

// NewNotFoundError constructs a NotFoundError.
func NewNotFoundError(style, property string) error {
	return &NotFoundError{Style: style, Property: property}
}

func (e *NotFoundError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("property %q does not exist in style %q", e.Property, e.Style)
}
