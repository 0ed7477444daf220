package schema

import (
	"context"
	"sort"
	"sync"

	"github.com/go-cytoscape/cyrest/internal/mapping"
	cyerrors "github.com/go-cytoscape/cyrest/pkg/errors"
)

// Fake is an in-memory Service for tests. It records every write so tests
// can assert on exactly which remote calls a code path issued.
type Fake struct {
	mu sync.Mutex

	PropertyNames  []string
	TableColumns   map[mapping.Table][]mapping.Column
	NetworkSUID    int64
	MappingsByName map[string]map[string]mapping.Document

	PostCalls    int
	PutCalls     int
	DeleteCalls  int
	DefaultCalls int
	Defaults     map[string][]StyleDefault
}

// NewFake creates a Fake preloaded with a reasonable schema for tests.
func NewFake() *Fake {
	return &Fake{
		PropertyNames: []string{
			"NODE_BORDER_PAINT", "NODE_BORDER_TRANSPARENCY", "NODE_BORDER_WIDTH",
			"NODE_FILL_COLOR", "NODE_LABEL", "NODE_LABEL_FONT_FACE",
			"NODE_LABEL_TRANSPARENCY", "NODE_SHAPE", "NODE_SIZE", "NODE_TRANSPARENCY",
			"EDGE_LABEL", "EDGE_LABEL_FONT_FACE", "EDGE_LINE_TYPE",
			"EDGE_STROKE_UNSELECTED_PAINT", "EDGE_TRANSPARENCY",
			"EDGE_UNSELECTED_PAINT", "EDGE_WIDTH",
		},
		TableColumns: map[mapping.Table][]mapping.Column{
			mapping.TableNode: {
				{Name: "name", Type: "String"},
				{Name: "score", Type: "Double"},
				{Name: "degree", Type: "Integer"},
			},
			mapping.TableEdge: {
				{Name: "interaction", Type: "String"},
				{Name: "weight", Type: "Double"},
			},
			mapping.TableNetwork: {
				{Name: "title", Type: "String"},
			},
		},
		NetworkSUID:    52,
		MappingsByName: map[string]map[string]mapping.Document{},
		Defaults:       map[string][]StyleDefault{},
	}
}

var _ Service = (*Fake)(nil)

func (f *Fake) VisualPropertyNames(context.Context) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.PropertyNames...), nil
}

func (f *Fake) Columns(_ context.Context, _ int64, table mapping.Table) ([]mapping.Column, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]mapping.Column(nil), f.TableColumns[table]...), nil
}

func (f *Fake) CurrentNetwork(context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.NetworkSUID, nil
}

func (f *Fake) Mappings(_ context.Context, style string) ([]mapping.Document, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	byProp := f.MappingsByName[style]
	props := make([]string, 0, len(byProp))
	for prop := range byProp {
		props = append(props, prop)
	}
	sort.Strings(props)
	docs := make([]mapping.Document, 0, len(props))
	for _, prop := range props {
		docs = append(docs, byProp[prop])
	}
	return docs, nil
}

func (f *Fake) PostMapping(_ context.Context, style string, doc mapping.Document) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.PostCalls++
	if f.MappingsByName[style] == nil {
		f.MappingsByName[style] = map[string]mapping.Document{}
	}
	f.MappingsByName[style][doc.Property] = doc
	return nil
}

func (f *Fake) PutMapping(_ context.Context, style, property string, doc mapping.Document) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.PutCalls++
	if _, ok := f.MappingsByName[style][property]; !ok {
		return cyerrors.NewRemoteError("PUT", "styles/"+style+"/mappings/"+property, 404, "mapping does not exist", nil)
	}
	f.MappingsByName[style][property] = doc
	return nil
}

func (f *Fake) DeleteMapping(_ context.Context, style, property string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.DeleteCalls++
	if _, ok := f.MappingsByName[style][property]; !ok {
		return cyerrors.NewRemoteError("DELETE", "styles/"+style+"/mappings/"+property, 404, "mapping does not exist", nil)
	}
	delete(f.MappingsByName[style], property)
	return nil
}

func (f *Fake) SetDefault(_ context.Context, style string, def StyleDefault) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.DefaultCalls++
	f.Defaults[style] = append(f.Defaults[style], def)
	return nil
}

// WriteCalls reports the total number of mutating calls the fake has seen.
func (f *Fake) WriteCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.PostCalls + f.PutCalls + f.DeleteCalls + f.DefaultCalls
}
