// Package schema exposes the slice of the remote application's REST surface
// that the mapping subsystem depends on: the schema oracle (valid visual
// property names, table columns) and the style store (mapping CRUD plus the
// style-wide default side channel).
package schema

import (
	"context"

	"github.com/go-cytoscape/cyrest/internal/mapping"
)

// StyleDefault sets a style-wide default value for a visual property. It is
// a separate write path from mapping documents.
type StyleDefault struct {
	VisualProperty string `json:"visualProperty"`
	Value          any    `json:"value"`
}

// Service is the full contract against the remote application. The REST
// implementation talks to a live service; Fake backs tests with no network.
type Service interface {
	mapping.Oracle

	// Mappings returns the style's current mapping documents.
	Mappings(ctx context.Context, style string) ([]mapping.Document, error)
	// PostMapping adds a new mapping to the style.
	PostMapping(ctx context.Context, style string, doc mapping.Document) error
	// PutMapping replaces the style's existing mapping for the document's
	// property.
	PutMapping(ctx context.Context, style, property string, doc mapping.Document) error
	// DeleteMapping removes the style's mapping for the property.
	DeleteMapping(ctx context.Context, style, property string) error
	// SetDefault pushes a style-wide default value for a visual property.
	SetDefault(ctx context.Context, style string, def StyleDefault) error
}
