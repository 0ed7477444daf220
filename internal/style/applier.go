// Package style applies mapping documents to named styles: create-or-update
// dispatch, deletion with an absence signal, retrieval, and the style-wide
// default side channel.
package style

import (
	"context"
	"fmt"
	"time"

	"github.com/go-cytoscape/cyrest/internal/logger"
	"github.com/go-cytoscape/cyrest/internal/mapping"
	"github.com/go-cytoscape/cyrest/internal/schema"
	cyerrors "github.com/go-cytoscape/cyrest/pkg/errors"
)

// Applier owns the read-then-write mapping lifecycle against one service.
// delay is the propagation wait observed after every mapping write: the
// service acknowledges writes before open views have caught up, so callers
// must not treat the style as consistent until the wait has passed.
type Applier struct {
	svc   schema.Service
	delay time.Duration
	log   *logger.Logger
}

// NewApplier creates an Applier. Set delay to zero in tests to skip the
// propagation wait.
func NewApplier(svc schema.Service, delay time.Duration, log *logger.Logger) *Applier {
	if log == nil {
		log = logger.Discard()
	}
	return &Applier{svc: svc, delay: delay, log: log.WithComponent("applier")}
}

// Apply writes the document into the named style, replacing any existing
// mapping for the same visual property and creating one otherwise. It blocks
// for the configured propagation delay after the write is acknowledged.
func (a *Applier) Apply(ctx context.Context, styleName string, doc *mapping.Document) error {
	if doc == nil {
		return fmt.Errorf("nil mapping document")
	}

	exists, err := a.hasMapping(ctx, styleName, doc.Property)
	if err != nil {
		return err
	}

	log := a.log.WithFields(map[string]any{"style": styleName, "property": doc.Property})
	if exists {
		log.Debug("replacing existing mapping")
		err = a.svc.PutMapping(ctx, styleName, doc.Property, *doc)
	} else {
		log.Debug("creating mapping")
		err = a.svc.PostMapping(ctx, styleName, *doc)
	}
	if err != nil {
		return err
	}

	// The service acknowledges before views finish updating.
	time.Sleep(a.delay)
	return nil
}

// Delete removes the style's mapping for the property. When no mapping
// exists it reports (false, nil): absence is a signal, not a failure.
// Deleting twice in a row yields the same absence signal the second time.
func (a *Applier) Delete(ctx context.Context, styleName, property string) (bool, error) {
	property = mapping.NormalizeProperty(property)

	exists, err := a.hasMapping(ctx, styleName, property)
	if err != nil {
		return false, err
	}
	if !exists {
		a.log.WithFields(map[string]any{"style": styleName, "property": property}).Debug("no mapping to delete")
		return false, nil
	}

	if err := a.svc.DeleteMapping(ctx, styleName, property); err != nil {
		return false, err
	}
	return true, nil
}

// Get fetches the style's mapping for one property.
func (a *Applier) Get(ctx context.Context, styleName, property string) (*mapping.Document, error) {
	property = mapping.NormalizeProperty(property)

	docs, err := a.svc.Mappings(ctx, styleName)
	if err != nil {
		return nil, err
	}
	for i := range docs {
		if docs[i].Property == property {
			return &docs[i], nil
		}
	}
	return nil, cyerrors.NewNotFoundError(styleName, property)
}

// GetAll fetches every mapping the style currently holds.
func (a *Applier) GetAll(ctx context.Context, styleName string) ([]mapping.Document, error) {
	return a.svc.Mappings(ctx, styleName)
}

// SetDefault pushes a style-wide default value for a visual property. This
// is independent of any mapping document.
func (a *Applier) SetDefault(ctx context.Context, styleName, property string, value any) error {
	property = mapping.NormalizeProperty(property)
	return a.svc.SetDefault(ctx, styleName, schema.StyleDefault{VisualProperty: property, Value: value})
}

func (a *Applier) hasMapping(ctx context.Context, styleName, property string) (bool, error) {
	docs, err := a.svc.Mappings(ctx, styleName)
	if err != nil {
		return false, err
	}
	for _, doc := range docs {
		if doc.Property == property {
			return true, nil
		}
	}
	return false, nil
}
