package schema

import (
	"context"
	"fmt"
	"net/url"

	"github.com/go-cytoscape/cyrest/internal/client"
	"github.com/go-cytoscape/cyrest/internal/mapping"
)

// REST implements Service against a live instance of the application.
type REST struct {
	c *client.Client
}

// NewREST wraps a configured client.
func NewREST(c *client.Client) *REST {
	return &REST{c: c}
}

var _ Service = (*REST)(nil)

// visualProperty is the service's descriptor for one renderable attribute.
// Only the identifier matters here.
type visualProperty struct {
	VisualProperty string `json:"visualProperty"`
}

// VisualPropertyNames lists the canonical identifiers of every visual
// property the service knows about.
func (r *REST) VisualPropertyNames(ctx context.Context) ([]string, error) {
	var props []visualProperty
	if err := r.c.Get(ctx, "styles/visualproperties", &props); err != nil {
		return nil, err
	}
	names := make([]string, len(props))
	for i, p := range props {
		names[i] = p.VisualProperty
	}
	return names, nil
}

// Columns lists the named table's columns for the given network.
func (r *REST) Columns(ctx context.Context, network int64, table mapping.Table) ([]mapping.Column, error) {
	var columns []mapping.Column
	path := fmt.Sprintf("networks/%d/tables/%s/columns", network, table)
	if err := r.c.Get(ctx, path, &columns); err != nil {
		return nil, err
	}
	return columns, nil
}

// CurrentNetwork reports the identifier of the network currently active in
// the application.
func (r *REST) CurrentNetwork(ctx context.Context) (int64, error) {
	var resp struct {
		Data struct {
			NetworkSUID int64 `json:"networkSUID"`
		} `json:"data"`
	}
	if err := r.c.Get(ctx, "networks/currentNetwork", &resp); err != nil {
		return 0, err
	}
	return resp.Data.NetworkSUID, nil
}

// Mappings returns the style's current mapping documents.
func (r *REST) Mappings(ctx context.Context, style string) ([]mapping.Document, error) {
	var docs []mapping.Document
	path := fmt.Sprintf("styles/%s/mappings", url.PathEscape(style))
	if err := r.c.Get(ctx, path, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

// PostMapping adds a new mapping to the style. The service expects a
// single-element array body.
func (r *REST) PostMapping(ctx context.Context, style string, doc mapping.Document) error {
	path := fmt.Sprintf("styles/%s/mappings", url.PathEscape(style))
	return r.c.Post(ctx, path, []mapping.Document{doc}, nil)
}

// PutMapping replaces the style's mapping for the given property.
func (r *REST) PutMapping(ctx context.Context, style, property string, doc mapping.Document) error {
	path := fmt.Sprintf("styles/%s/mappings/%s", url.PathEscape(style), url.PathEscape(property))
	return r.c.Put(ctx, path, []mapping.Document{doc}, nil)
}

// DeleteMapping removes the style's mapping for the given property.
func (r *REST) DeleteMapping(ctx context.Context, style, property string) error {
	path := fmt.Sprintf("styles/%s/mappings/%s", url.PathEscape(style), url.PathEscape(property))
	return r.c.Delete(ctx, path, nil)
}

// SetDefault pushes a style-wide default value for a visual property.
func (r *REST) SetDefault(ctx context.Context, style string, def StyleDefault) error {
	path := fmt.Sprintf("styles/%s/defaults", url.PathEscape(style))
	return r.c.Put(ctx, path, []StyleDefault{def}, nil)
}
