package props

import (
	"context"
	"strconv"

	"github.com/go-cytoscape/cyrest/internal/mapping"
)

// NodeBorderColor maps table column values to node border colors.
func (m *Mapper) NodeBorderColor(ctx context.Context, req ColorMapping) error {
	return m.colorMapping(ctx, "NODE_BORDER_PAINT", req)
}

// NodeColor maps table column values to node fill colors.
func (m *Mapper) NodeColor(ctx context.Context, req ColorMapping) error {
	return m.colorMapping(ctx, "NODE_FILL_COLOR", req)
}

// NodeBorderOpacity maps table column values to the opacity of node borders
// only. Opacities are integers in [0, 255]; 0 is invisible.
func (m *Mapper) NodeBorderOpacity(ctx context.Context, req OpacityMapping) error {
	return m.opacityMapping(ctx, "NODE_BORDER_TRANSPARENCY", mapping.TableNode, req)
}

// NodeFillOpacity maps table column values to the opacity of node fill only.
func (m *Mapper) NodeFillOpacity(ctx context.Context, req OpacityMapping) error {
	return m.opacityMapping(ctx, "NODE_TRANSPARENCY", mapping.TableNode, req)
}

// NodeComboOpacity maps table column values to the opacity of node fill,
// border and label together. All three sub-writes are attempted even when an
// earlier one fails; the returned ComboResult reports each outcome.
func (m *Mapper) NodeComboOpacity(ctx context.Context, req OpacityMapping) (*ComboResult, error) {
	if err := m.requireColumn(ctx, req.Network, mapping.TableNode, req.Column); err != nil {
		return nil, err
	}
	if err := checkOpacities("NODE_TRANSPARENCY", req.Opacities); err != nil {
		return nil, err
	}

	comboProperties := []string{"NODE_TRANSPARENCY", "NODE_BORDER_TRANSPARENCY", "NODE_LABEL_TRANSPARENCY"}

	if req.Default != nil {
		if err := checkOpacity("NODE_TRANSPARENCY", *req.Default); err != nil {
			return nil, err
		}
		for _, property := range comboProperties {
			if err := m.setDefault(ctx, req.Style, property, strconv.Itoa(*req.Default)); err != nil {
				return nil, err
			}
		}
	}

	result := &ComboResult{}
	for _, property := range comboProperties {
		t := target{property: property, defaultKind: mapping.Continuous, supported: allKinds}
		err := m.setMapping(ctx, t, req.Style, req.Network, req.Column, req.ColumnValues, opacityStrings(req.Opacities), req.Kind)
		result.Results = append(result.Results, SubResult{Property: property, Err: err})
	}
	return result, nil
}

// NodeBorderWidth maps table column values to node border widths.
func (m *Mapper) NodeBorderWidth(ctx context.Context, req NumericMapping) error {
	return m.numericMapping(ctx, "NODE_BORDER_WIDTH", req)
}

// NodeSize maps table column values to node sizes.
func (m *Mapper) NodeSize(ctx context.Context, req NumericMapping) error {
	return m.numericMapping(ctx, "NODE_SIZE", req)
}

// NodeFontFace maps table column values to node label fonts, given as
// "face,style,size" specifications. Continuous mapping is not supported for
// fonts.
func (m *Mapper) NodeFontFace(ctx context.Context, req StringMapping) error {
	return m.fontMapping(ctx, "NODE_LABEL_FONT_FACE", mapping.TableNode, req)
}

// NodeShape maps discrete table column values to node shapes.
func (m *Mapper) NodeShape(ctx context.Context, req StringMapping) error {
	if req.Default != "" {
		if err := m.setDefault(ctx, req.Style, "NODE_SHAPE", req.Default); err != nil {
			return err
		}
	}
	t := target{property: "NODE_SHAPE", defaultKind: mapping.Discrete, supported: []mapping.Kind{mapping.Discrete}}
	return m.setMapping(ctx, t, req.Style, req.Network, req.Column, req.ColumnValues, req.Values, req.Kind)
}

// NodeLabel passes a column's values through as node labels.
func (m *Mapper) NodeLabel(ctx context.Context, req PassthroughMapping) error {
	t := target{property: "NODE_LABEL", defaultKind: mapping.Passthrough, supported: []mapping.Kind{mapping.Passthrough}}
	return m.setMapping(ctx, t, req.Style, req.Network, req.Column, nil, nil, mapping.Passthrough)
}

func (m *Mapper) colorMapping(ctx context.Context, property string, req ColorMapping) error {
	if err := checkColors(property, req.Colors); err != nil {
		return err
	}
	if req.Default != "" {
		if err := checkColors(property, []string{req.Default}); err != nil {
			return err
		}
		if err := m.setDefault(ctx, req.Style, property, req.Default); err != nil {
			return err
		}
	}
	t := target{property: property, defaultKind: mapping.Continuous, supported: allKinds}
	return m.setMapping(ctx, t, req.Style, req.Network, req.Column, req.ColumnValues, req.Colors, req.Kind)
}

func (m *Mapper) opacityMapping(ctx context.Context, property string, table mapping.Table, req OpacityMapping) error {
	if err := m.requireColumn(ctx, req.Network, table, req.Column); err != nil {
		return err
	}
	if err := checkOpacities(property, req.Opacities); err != nil {
		return err
	}
	if req.Default != nil {
		if err := checkOpacity(property, *req.Default); err != nil {
			return err
		}
		if err := m.setDefault(ctx, req.Style, property, strconv.Itoa(*req.Default)); err != nil {
			return err
		}
	}
	t := target{property: property, defaultKind: mapping.Continuous, supported: allKinds}
	return m.setMapping(ctx, t, req.Style, req.Network, req.Column, req.ColumnValues, opacityStrings(req.Opacities), req.Kind)
}

func (m *Mapper) numericMapping(ctx context.Context, property string, req NumericMapping) error {
	if req.Default != nil {
		if err := m.setDefault(ctx, req.Style, property, *req.Default); err != nil {
			return err
		}
	}
	t := target{property: property, defaultKind: mapping.Continuous, supported: allKinds}
	return m.setMapping(ctx, t, req.Style, req.Network, req.Column, req.ColumnValues, numericStrings(req.Values), req.Kind)
}

func (m *Mapper) fontMapping(ctx context.Context, property string, table mapping.Table, req StringMapping) error {
	if err := m.requireColumn(ctx, req.Network, table, req.Column); err != nil {
		return err
	}
	if req.Default != "" {
		if err := m.setDefault(ctx, req.Style, property, req.Default); err != nil {
			return err
		}
	}
	t := target{property: property, defaultKind: mapping.Discrete, supported: []mapping.Kind{mapping.Discrete, mapping.Passthrough}}
	return m.setMapping(ctx, t, req.Style, req.Network, req.Column, req.ColumnValues, req.Values, req.Kind)
}
