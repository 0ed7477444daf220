package mapping_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-cytoscape/cyrest/internal/mapping"
	"github.com/go-cytoscape/cyrest/internal/schema"
	cyerrors "github.com/go-cytoscape/cyrest/pkg/errors"
)

func TestBuildDiscretePairsInInputOrder(t *testing.T) {
	t.Parallel()

	doc, err := mapping.Build(context.Background(), schema.NewFake(), mapping.Request{
		Property:       "node shape",
		Column:         "degree",
		Kind:           mapping.Discrete,
		ColumnValues:   []any{1, 2},
		PropertyValues: []string{"ellipse", "rectangle"},
	})
	require.NoError(t, err)

	require.Equal(t, mapping.Discrete, doc.Kind)
	require.Equal(t, "NODE_SHAPE", doc.Property)
	require.Equal(t, "degree", doc.Column)
	require.Equal(t, "Integer", doc.ColumnType)
	require.Empty(t, doc.Points)
	require.Equal(t, []mapping.Pair{
		{Key: 1, Value: "ellipse"},
		{Key: 2, Value: "rectangle"},
	}, doc.Map)
}

func TestBuildDiscreteRejectsMismatchedLengths(t *testing.T) {
	t.Parallel()

	_, err := mapping.Build(context.Background(), schema.NewFake(), mapping.Request{
		Property:       "node shape",
		Column:         "degree",
		Kind:           mapping.Discrete,
		ColumnValues:   []any{1, 2, 3},
		PropertyValues: []string{"ellipse", "rectangle"},
	})

	var shapeErr *cyerrors.ShapeError
	require.ErrorAs(t, err, &shapeErr)
	require.Equal(t, 3, shapeErr.ColumnCount)
	require.Equal(t, 2, shapeErr.PropertyCount)
}

func TestBuildContinuousEqualLengths(t *testing.T) {
	t.Parallel()

	doc, err := mapping.Build(context.Background(), schema.NewFake(), mapping.Request{
		Property:       "node fill color",
		Column:         "score",
		Kind:           mapping.Continuous,
		ColumnValues:   []any{-2.0, 0.0, 2.0},
		PropertyValues: []string{"#0000FF", "#FFFFFF", "#FF0000"},
	})
	require.NoError(t, err)

	require.Equal(t, "NODE_FILL_COLOR", doc.Property)
	require.Equal(t, "Double", doc.ColumnType)
	require.Len(t, doc.Points, 3)
	for i, expected := range []struct {
		value float64
		color string
	}{
		{-2.0, "#0000FF"},
		{0.0, "#FFFFFF"},
		{2.0, "#FF0000"},
	} {
		p := doc.Points[i]
		require.Equal(t, expected.value, p.Value)
		require.Equal(t, expected.color, p.Lesser)
		require.Equal(t, expected.color, p.Equal)
		require.Equal(t, expected.color, p.Greater)
	}
}

func TestBuildContinuousExtrapolationEndpoints(t *testing.T) {
	t.Parallel()

	doc, err := mapping.Build(context.Background(), schema.NewFake(), mapping.Request{
		Property:       "node fill color",
		Column:         "score",
		Kind:           mapping.Continuous,
		ColumnValues:   []any{-2.0, 0.0, 2.0},
		PropertyValues: []string{"#000000", "#0000FF", "#FFFFFF", "#FF0000", "#AA0000"},
	})
	require.NoError(t, err)
	require.Len(t, doc.Points, 3)

	first, last := doc.Points[0], doc.Points[2]
	require.Equal(t, "#000000", first.Lesser)
	require.Equal(t, "#0000FF", first.Equal)
	require.Equal(t, "#0000FF", first.Greater)

	middle := doc.Points[1]
	require.Equal(t, "#FFFFFF", middle.Lesser)
	require.Equal(t, "#FFFFFF", middle.Equal)
	require.Equal(t, "#FFFFFF", middle.Greater)

	require.Equal(t, "#FF0000", last.Lesser)
	require.Equal(t, "#FF0000", last.Equal)
	require.Equal(t, "#AA0000", last.Greater)
}

func TestBuildContinuousRejectsOtherDeltas(t *testing.T) {
	t.Parallel()

	for _, propertyValues := range [][]string{
		{"#0000FF"},
		{"#0000FF", "#FFFFFF"},
		{"#0000FF", "#FFFFFF", "#FF0000", "#AA0000"},
		{"#00F", "#FFF", "#F00", "#A00", "#B00", "#C00"},
	} {
		_, err := mapping.Build(context.Background(), schema.NewFake(), mapping.Request{
			Property:       "node fill color",
			Column:         "score",
			Kind:           mapping.Continuous,
			ColumnValues:   []any{-2.0, 0.0, 2.0},
			PropertyValues: propertyValues,
		})

		var shapeErr *cyerrors.ShapeError
		require.ErrorAs(t, err, &shapeErr, "%d property values", len(propertyValues))
	}
}

func TestBuildContinuousRejectsEmptyColumnValuesWithEndpoints(t *testing.T) {
	t.Parallel()

	_, err := mapping.Build(context.Background(), schema.NewFake(), mapping.Request{
		Property:       "node fill color",
		Column:         "score",
		Kind:           mapping.Continuous,
		ColumnValues:   []any{},
		PropertyValues: []string{"#0000FF", "#FF0000"},
	})

	var shapeErr *cyerrors.ShapeError
	require.ErrorAs(t, err, &shapeErr)
	require.Equal(t, 0, shapeErr.ColumnCount)
	require.Equal(t, 2, shapeErr.PropertyCount)
}

func TestBuildContinuousRejectsNonNumericColumnValues(t *testing.T) {
	t.Parallel()

	_, err := mapping.Build(context.Background(), schema.NewFake(), mapping.Request{
		Property:       "node fill color",
		Column:         "score",
		Kind:           mapping.Continuous,
		ColumnValues:   []any{"low", "high"},
		PropertyValues: []string{"#0000FF", "#FF0000"},
	})

	var domainErr *cyerrors.DomainError
	require.ErrorAs(t, err, &domainErr)
}

func TestBuildPassthroughHasNoPayload(t *testing.T) {
	t.Parallel()

	doc, err := mapping.Build(context.Background(), schema.NewFake(), mapping.Request{
		Property: "node label",
		Column:   "name",
		Kind:     mapping.Passthrough,
	})
	require.NoError(t, err)

	require.Equal(t, mapping.Passthrough, doc.Kind)
	require.Equal(t, "String", doc.ColumnType)
	require.Empty(t, doc.Points)
	require.Empty(t, doc.Map)
}

func TestBuildRejectsUnknownProperty(t *testing.T) {
	t.Parallel()

	_, err := mapping.Build(context.Background(), schema.NewFake(), mapping.Request{
		Property: "node glow color",
		Column:   "score",
		Kind:     mapping.Passthrough,
	})

	var schemaErr *cyerrors.SchemaError
	require.ErrorAs(t, err, &schemaErr)
	require.Equal(t, "visual property", schemaErr.Entity)
	require.Equal(t, "NODE_GLOW_COLOR", schemaErr.Name)
}

func TestBuildRejectsUnknownColumn(t *testing.T) {
	t.Parallel()

	_, err := mapping.Build(context.Background(), schema.NewFake(), mapping.Request{
		Property: "node label",
		Column:   "missing_column",
		Kind:     mapping.Passthrough,
	})

	var schemaErr *cyerrors.SchemaError
	require.ErrorAs(t, err, &schemaErr)
	require.Equal(t, "column", schemaErr.Entity)
	require.Contains(t, schemaErr.Message, "defaultnode")
}

func TestBuildResolvesAliasBeforeValidation(t *testing.T) {
	t.Parallel()

	doc, err := mapping.Build(context.Background(), schema.NewFake(), mapping.Request{
		Property: "edge color",
		Column:   "interaction",
		Kind:     mapping.Passthrough,
	})
	require.NoError(t, err)
	require.Equal(t, "EDGE_UNSELECTED_PAINT", doc.Property)
	require.Equal(t, "String", doc.ColumnType)
}

func TestBuildUsesEdgeTableForEdgeProperties(t *testing.T) {
	t.Parallel()

	_, err := mapping.Build(context.Background(), schema.NewFake(), mapping.Request{
		Property: "edge label",
		Column:   "name", // node column, not in edge table
		Kind:     mapping.Passthrough,
	})

	var schemaErr *cyerrors.SchemaError
	require.ErrorAs(t, err, &schemaErr)
	require.Contains(t, schemaErr.Message, "defaultedge")
}
