package props

import (
	"context"
	"errors"

	"github.com/go-cytoscape/cyrest/internal/mapping"
)

// EdgeColor maps table column values to edge stroke colors. The service
// renders unselected edges through two paint properties, so both receive the
// mapping and the optional default.
func (m *Mapper) EdgeColor(ctx context.Context, req ColorMapping) error {
	if err := checkColors("EDGE_UNSELECTED_PAINT", req.Colors); err != nil {
		return err
	}
	if req.Default != "" {
		if err := checkColors("EDGE_UNSELECTED_PAINT", []string{req.Default}); err != nil {
			return err
		}
		for _, property := range []string{"EDGE_UNSELECTED_PAINT", "EDGE_STROKE_UNSELECTED_PAINT"} {
			if err := m.setDefault(ctx, req.Style, property, req.Default); err != nil {
				return err
			}
		}
	}

	var errs []error
	for _, property := range []string{"EDGE_UNSELECTED_PAINT", "EDGE_STROKE_UNSELECTED_PAINT"} {
		t := target{property: property, defaultKind: mapping.Continuous, supported: allKinds}
		if err := m.setMapping(ctx, t, req.Style, req.Network, req.Column, req.ColumnValues, req.Colors, req.Kind); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// EdgeLineWidth maps table column values to edge line widths.
func (m *Mapper) EdgeLineWidth(ctx context.Context, req NumericMapping) error {
	return m.numericMapping(ctx, "EDGE_WIDTH", req)
}

// EdgeOpacity maps table column values to edge opacities in [0, 255].
func (m *Mapper) EdgeOpacity(ctx context.Context, req OpacityMapping) error {
	return m.opacityMapping(ctx, "EDGE_TRANSPARENCY", mapping.TableEdge, req)
}

// EdgeFontFace maps table column values to edge label fonts. Continuous
// mapping is not supported for fonts.
func (m *Mapper) EdgeFontFace(ctx context.Context, req StringMapping) error {
	return m.fontMapping(ctx, "EDGE_LABEL_FONT_FACE", mapping.TableEdge, req)
}

// EdgeLineStyle maps discrete table column values to edge line styles such
// as SOLID or LONG_DASH.
func (m *Mapper) EdgeLineStyle(ctx context.Context, req StringMapping) error {
	if req.Default != "" {
		if err := m.setDefault(ctx, req.Style, "EDGE_LINE_TYPE", req.Default); err != nil {
			return err
		}
	}
	t := target{property: "EDGE_LINE_TYPE", defaultKind: mapping.Discrete, supported: []mapping.Kind{mapping.Discrete}}
	return m.setMapping(ctx, t, req.Style, req.Network, req.Column, req.ColumnValues, req.Values, req.Kind)
}

// EdgeLabel passes a column's values through as edge labels.
func (m *Mapper) EdgeLabel(ctx context.Context, req PassthroughMapping) error {
	t := target{property: "EDGE_LABEL", defaultKind: mapping.Passthrough, supported: []mapping.Kind{mapping.Passthrough}}
	return m.setMapping(ctx, t, req.Style, req.Network, req.Column, nil, nil, mapping.Passthrough)
}
