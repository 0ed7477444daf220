package mapping

import (
	"context"
	"fmt"

	cyerrors "github.com/go-cytoscape/cyrest/pkg/errors"
)

// Oracle is the read-only slice of the service the builder needs: the set of
// valid visual property names and the columns of a network's tables.
type Oracle interface {
	VisualPropertyNames(ctx context.Context) ([]string, error)
	Columns(ctx context.Context, network int64, table Table) ([]Column, error)
	CurrentNetwork(ctx context.Context) (int64, error)
}

// Request carries the inputs for building a mapping document. Network 0
// means the service's current network. ColumnValues and PropertyValues are
// ignored for passthrough mappings.
type Request struct {
	Property       string
	Column         string
	Kind           Kind
	ColumnValues   []any
	PropertyValues []string
	Network        int64
}

// Build constructs a canonical mapping document, validating the property
// name and column against the live schema. The property name may be a
// friendly name or an alias; it is normalized before validation.
//
// For continuous mappings the property value count must equal the column
// value count, or exceed it by exactly two, in which case the first and last
// property values become the below-range and above-range extrapolation
// values. For discrete mappings the counts must be equal.
func Build(ctx context.Context, oracle Oracle, req Request) (*Document, error) {
	property := NormalizeProperty(req.Property)

	names, err := oracle.VisualPropertyNames(ctx)
	if err != nil {
		return nil, err
	}
	if !contains(names, property) {
		return nil, cyerrors.NewSchemaError("visual property", property, "run get visual property names to retrieve valid names")
	}

	network := req.Network
	if network == 0 {
		network, err = oracle.CurrentNetwork(ctx)
		if err != nil {
			return nil, err
		}
	}

	table := TableFor(property)
	columns, err := oracle.Columns(ctx, network, table)
	if err != nil {
		return nil, err
	}
	columnType := ""
	for _, col := range columns {
		if col.Name == req.Column {
			columnType = col.Type
			break
		}
	}
	if columnType == "" {
		return nil, cyerrors.NewSchemaError("column", req.Column, fmt.Sprintf("not present in %s table", table))
	}

	doc := &Document{
		Kind:       req.Kind,
		Column:     req.Column,
		ColumnType: columnType,
		Property:   property,
	}

	switch req.Kind {
	case Discrete:
		doc.Map, err = discretePairs(req.ColumnValues, req.PropertyValues)
	case Continuous:
		doc.Points, err = continuousPoints(property, req.ColumnValues, req.PropertyValues)
	case Passthrough:
		// no payload
	default:
		err = cyerrors.NewDomainError(property, req.Kind, "mapping kind not recognized; use continuous, discrete or passthrough")
	}
	if err != nil {
		return nil, err
	}
	return doc, nil
}

func discretePairs(columnValues []any, propertyValues []string) ([]Pair, error) {
	if len(columnValues) != len(propertyValues) {
		return nil, cyerrors.NewShapeError(len(columnValues), len(propertyValues),
			"discrete mapping requires one property value per column value")
	}
	pairs := make([]Pair, len(columnValues))
	for i, key := range columnValues {
		pairs[i] = Pair{Key: key, Value: propertyValues[i]}
	}
	return pairs, nil
}

func continuousPoints(property string, columnValues []any, propertyValues []string) ([]Waypoint, error) {
	breakpoints := make([]float64, len(columnValues))
	for i, v := range columnValues {
		f, ok := toFloat(v)
		if !ok {
			return nil, cyerrors.NewDomainError(property, v, "continuous mapping requires numeric column values")
		}
		breakpoints[i] = f
	}

	delta := len(propertyValues) - len(columnValues)
	switch delta {
	case 0:
		points := make([]Waypoint, len(breakpoints))
		for i, value := range breakpoints {
			pv := propertyValues[i]
			points[i] = Waypoint{Value: value, Lesser: pv, Equal: pv, Greater: pv}
		}
		return points, nil
	case 2:
		if len(breakpoints) == 0 {
			return nil, cyerrors.NewShapeError(0, len(propertyValues),
				"continuous mapping with extrapolation values requires at least one column value")
		}
		// First and last property values extrapolate beyond the outermost
		// breakpoints; the remainder pair 1:1 with column values.
		matched := propertyValues[1 : len(propertyValues)-1]
		points := make([]Waypoint, len(breakpoints))
		for i, value := range breakpoints {
			pv := matched[i]
			points[i] = Waypoint{Value: value, Lesser: pv, Equal: pv, Greater: pv}
		}
		points[0].Lesser = propertyValues[0]
		points[len(points)-1].Greater = propertyValues[len(propertyValues)-1]
		return points, nil
	default:
		return nil, cyerrors.NewShapeError(len(columnValues), len(propertyValues),
			"column values and property values don't match up")
	}
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}

func contains(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}
