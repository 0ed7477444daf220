package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/go-cytoscape/cyrest/internal/mapping"
)

// MappingSpec is the YAML form of a mapping request consumed by the CLI's
// apply command.
//
//	style: galFiltered Style
//	property: node fill color
//	column: score
//	kind: continuous
//	column_values: [-2.0, 0.0, 2.0]
//	property_values: ["#0000FF", "#FFFFFF", "#FF0000"]
type MappingSpec struct {
	Style          string   `yaml:"style"`
	Property       string   `yaml:"property" validate:"required"`
	Column         string   `yaml:"column" validate:"required"`
	Kind           string   `yaml:"kind" validate:"required"`
	ColumnValues   []any    `yaml:"column_values"`
	PropertyValues []string `yaml:"property_values"`
	Network        int64    `yaml:"network"`
}

// LoadMappingSpec reads and validates a mapping spec file.
func LoadMappingSpec(path string) (*MappingSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read mapping spec: %w", err)
	}

	var spec MappingSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("parse mapping spec %s: %w", path, err)
	}
	if err := validatorInstance().Struct(spec); err != nil {
		return nil, fmt.Errorf("invalid mapping spec %s: %w", path, err)
	}
	if _, err := mapping.ParseKind(spec.Kind); err != nil {
		return nil, err
	}
	return &spec, nil
}

// Request converts the spec into a builder request.
func (s *MappingSpec) Request() (mapping.Request, error) {
	kind, err := mapping.ParseKind(s.Kind)
	if err != nil {
		return mapping.Request{}, err
	}
	return mapping.Request{
		Property:       s.Property,
		Column:         s.Column,
		Kind:           kind,
		ColumnValues:   s.ColumnValues,
		PropertyValues: s.PropertyValues,
		Network:        s.Network,
	}, nil
}

// StyleName returns the target style, falling back to the service default.
func (s *MappingSpec) StyleName() string {
	if s.Style == "" {
		return "default"
	}
	return s.Style
}
