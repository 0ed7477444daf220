// Package props provides one entry point per semantic visual property. Each
// façade validates its property-specific domain (hex colors, opacity ranges,
// supported mapping kinds), optionally pushes a style-wide default, then
// delegates to the builder and applier.
package props

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/go-cytoscape/cyrest/internal/logger"
	"github.com/go-cytoscape/cyrest/internal/mapping"
	"github.com/go-cytoscape/cyrest/internal/schema"
	"github.com/go-cytoscape/cyrest/internal/style"
	cyerrors "github.com/go-cytoscape/cyrest/pkg/errors"
)

// DefaultStyle is the style written to when a façade call names none.
const DefaultStyle = "default"

// Mapper exposes the property-specific façades over one service connection.
type Mapper struct {
	svc     schema.Service
	applier *style.Applier
	log     *logger.Logger
}

// New creates a Mapper that builds documents against svc and applies them
// through applier.
func New(svc schema.Service, applier *style.Applier, log *logger.Logger) *Mapper {
	if log == nil {
		log = logger.Discard()
	}
	return &Mapper{svc: svc, applier: applier, log: log.WithComponent("props")}
}

// ColorMapping maps column values to hex colors. Kind defaults to
// continuous; Default optionally sets the style-wide default color.
type ColorMapping struct {
	Column       string
	ColumnValues []any
	Colors       []string
	Kind         mapping.Kind
	Default      string
	Style        string
	Network      int64
}

// OpacityMapping maps column values to opacities in [0, 255]. Kind defaults
// to continuous; Default optionally sets the style-wide default opacity.
type OpacityMapping struct {
	Column       string
	ColumnValues []any
	Opacities    []int
	Kind         mapping.Kind
	Default      *int
	Style        string
	Network      int64
}

// NumericMapping maps column values to numeric property values such as
// widths or sizes. Kind defaults to continuous.
type NumericMapping struct {
	Column       string
	ColumnValues []any
	Values       []float64
	Kind         mapping.Kind
	Default      *float64
	Style        string
	Network      int64
}

// StringMapping maps column values to free-form string property values such
// as font specifications, shapes or line styles. Kind defaults vary by
// façade.
type StringMapping struct {
	Column       string
	ColumnValues []any
	Values       []string
	Kind         mapping.Kind
	Default      string
	Style        string
	Network      int64
}

// PassthroughMapping forwards a column's values to a property unchanged.
type PassthroughMapping struct {
	Column  string
	Style   string
	Network int64
}

// SubResult reports the outcome of one write inside a fan-out façade.
type SubResult struct {
	Property string
	Err      error
}

// ComboResult reports every sub-write of a fan-out façade so callers can
// detect partial failure. The sub-writes are not atomic: a failed write does
// not stop or roll back the others.
type ComboResult struct {
	Results []SubResult
}

// Err collapses the composite outcome into a single error, or nil when every
// sub-write succeeded.
func (r *ComboResult) Err() error {
	if r == nil {
		return nil
	}
	errs := make([]error, 0, len(r.Results))
	for _, sub := range r.Results {
		if sub.Err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", sub.Property, sub.Err))
		}
	}
	return errors.Join(errs...)
}

// target fixes one canonical property and its mapping-kind envelope.
type target struct {
	property    string
	defaultKind mapping.Kind
	supported   []mapping.Kind
}

var allKinds = []mapping.Kind{mapping.Continuous, mapping.Discrete, mapping.Passthrough}

func (m *Mapper) setMapping(ctx context.Context, t target, styleName string, network int64, column string, columnValues []any, propertyValues []string, kind mapping.Kind) error {
	if styleName == "" {
		styleName = DefaultStyle
	}
	if kind == "" {
		kind = t.defaultKind
	}
	if !kindSupported(t.supported, kind) {
		return cyerrors.NewDomainError(t.property, kind,
			fmt.Sprintf("%s mapping of %s values is not supported", kind, t.property))
	}

	req := mapping.Request{
		Property: t.property,
		Column:   column,
		Kind:     kind,
		Network:  network,
	}
	if kind != mapping.Passthrough {
		req.ColumnValues = columnValues
		req.PropertyValues = propertyValues
	}

	doc, err := mapping.Build(ctx, m.svc, req)
	if err != nil {
		return err
	}
	return m.applier.Apply(ctx, styleName, doc)
}

func (m *Mapper) setDefault(ctx context.Context, styleName, property string, value any) error {
	if styleName == "" {
		styleName = DefaultStyle
	}
	return m.applier.SetDefault(ctx, styleName, property, value)
}

// requireColumn fails fast with a SchemaError when the column is missing
// from the given per-entity table, short-circuiting all later work.
func (m *Mapper) requireColumn(ctx context.Context, network int64, table mapping.Table, column string) error {
	if network == 0 {
		resolved, err := m.svc.CurrentNetwork(ctx)
		if err != nil {
			return err
		}
		network = resolved
	}
	columns, err := m.svc.Columns(ctx, network, table)
	if err != nil {
		return err
	}
	for _, col := range columns {
		if col.Name == column {
			return nil
		}
	}
	return cyerrors.NewSchemaError("column", column, fmt.Sprintf("not present in %s table", table))
}

func kindSupported(supported []mapping.Kind, kind mapping.Kind) bool {
	for _, k := range supported {
		if k == kind {
			return true
		}
	}
	return false
}

// The service requires string property values on the wire.

func opacityStrings(opacities []int) []string {
	out := make([]string, len(opacities))
	for i, o := range opacities {
		out[i] = strconv.Itoa(o)
	}
	return out
}

func numericStrings(values []float64) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = strconv.FormatFloat(v, 'f', -1, 64)
	}
	return out
}
