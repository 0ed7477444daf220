package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-cytoscape/cyrest/internal/mapping"
	cyerrors "github.com/go-cytoscape/cyrest/pkg/errors"
)

// fakeService is a minimal HTTP double of the remote application covering
// the endpoints the CLI touches.
type fakeService struct {
	mu       sync.Mutex
	mappings map[string][]map[string]any
}

func newFakeService() *fakeService {
	return &fakeService{mappings: map[string][]map[string]any{}}
}

func (f *fakeService) handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /v1/styles/visualproperties", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, []map[string]string{
			{"visualProperty": "NODE_LABEL"},
			{"visualProperty": "NODE_FILL_COLOR"},
		})
	})
	mux.HandleFunc("GET /v1/networks/currentNetwork", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]any{"data": map[string]any{"networkSUID": 52}})
	})
	mux.HandleFunc("GET /v1/networks/52/tables/defaultnode/columns", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, []map[string]string{
			{"name": "name", "type": "String"},
			{"name": "score", "type": "Double"},
		})
	})
	mux.HandleFunc("GET /v1/styles/{style}/mappings", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		docs := f.mappings[r.PathValue("style")]
		if docs == nil {
			docs = []map[string]any{}
		}
		writeJSON(w, docs)
	})
	mux.HandleFunc("POST /v1/styles/{style}/mappings", func(w http.ResponseWriter, r *http.Request) {
		var body []map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		f.mu.Lock()
		defer f.mu.Unlock()
		style := r.PathValue("style")
		f.mappings[style] = append(f.mappings[style], body...)
	})
	mux.HandleFunc("DELETE /v1/styles/{style}/mappings/{property}", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		style, property := r.PathValue("style"), r.PathValue("property")
		kept := f.mappings[style][:0]
		for _, doc := range f.mappings[style] {
			if doc["visualProperty"] != property {
				kept = append(kept, doc)
			}
		}
		f.mappings[style] = kept
	})

	return mux
}

func writeJSON(w http.ResponseWriter, payload any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(payload)
}

func runCLI(t *testing.T, baseURL string, args ...string) string {
	t.Helper()

	configPath := filepath.Join(t.TempDir(), "cyrest.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("propagation_delay: 0s\n"), 0o644))

	root := newRootCmd()
	buf := &bytes.Buffer{}
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(append([]string{"--base-url", baseURL, "--config", configPath}, args...))

	require.NoError(t, root.Execute())
	return buf.String()
}

func TestApplyCommandCreatesMapping(t *testing.T) {
	fake := newFakeService()
	srv := httptest.NewServer(fake.handler())
	defer srv.Close()

	specPath := filepath.Join(t.TempDir(), "spec.yaml")
	require.NoError(t, os.WriteFile(specPath, []byte(strings.Join([]string{
		"property: node label",
		"column: name",
		"kind: passthrough",
	}, "\n")), 0o644))

	output := runCLI(t, srv.URL, "apply", "-f", specPath)
	require.Contains(t, output, "NODE_LABEL")

	fake.mu.Lock()
	defer fake.mu.Unlock()
	require.Len(t, fake.mappings["default"], 1)
	require.Equal(t, "passthrough", fake.mappings["default"][0]["mappingType"])
}

func TestGetCommandListsMappings(t *testing.T) {
	fake := newFakeService()
	fake.mappings["default"] = []map[string]any{{
		"mappingType": "passthrough", "mappingColumn": "name",
		"mappingColumnType": "String", "visualProperty": "NODE_LABEL",
	}}
	srv := httptest.NewServer(fake.handler())
	defer srv.Close()

	output := runCLI(t, srv.URL, "get")
	require.Contains(t, output, "NODE_LABEL")

	output = runCLI(t, srv.URL, "get", "node label")
	require.Contains(t, output, `"mappingColumn": "name"`)
}

func TestGetCommandMissingPropertyReturnsNotFound(t *testing.T) {
	fake := newFakeService()
	srv := httptest.NewServer(fake.handler())
	defer srv.Close()

	configPath := filepath.Join(t.TempDir(), "cyrest.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("propagation_delay: 0s\n"), 0o644))

	root := newRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{
		"--base-url", srv.URL, "--config", configPath,
		"get", "node label",
	})

	err := root.Execute()
	var notFound *cyerrors.NotFoundError
	require.ErrorAs(t, err, &notFound)
	require.Equal(t, "NODE_LABEL", notFound.Property)
}

func TestRenderMappingTable(t *testing.T) {
	t.Parallel()

	out := renderMappingTable([]mapping.Document{
		{
			Kind: mapping.Continuous, Column: "score", ColumnType: "Double",
			Property: "NODE_FILL_COLOR",
			Points: []mapping.Waypoint{
				{Value: -2, Lesser: "#0000FF", Equal: "#0000FF", Greater: "#0000FF"},
				{Value: 2, Lesser: "#FF0000", Equal: "#FF0000", Greater: "#FF0000"},
			},
		},
		{
			Kind: mapping.Passthrough, Column: "name", ColumnType: "String",
			Property: "NODE_LABEL",
		},
	})

	require.Contains(t, out, "PROPERTY")
	require.Contains(t, out, "NODE_FILL_COLOR")
	require.Contains(t, out, "score (Double), 2 waypoints")
	require.Contains(t, out, "name (String)")
}

func TestDeleteCommandReportsAbsenceWithoutFailing(t *testing.T) {
	fake := newFakeService()
	srv := httptest.NewServer(fake.handler())
	defer srv.Close()

	output := runCLI(t, srv.URL, "delete", "node label")
	require.Contains(t, output, "no mapping")
}

func TestDeleteCommandRemovesExistingMapping(t *testing.T) {
	fake := newFakeService()
	fake.mappings["default"] = []map[string]any{{
		"mappingType": "passthrough", "mappingColumn": "name",
		"mappingColumnType": "String", "visualProperty": "NODE_LABEL",
	}}
	srv := httptest.NewServer(fake.handler())
	defer srv.Close()

	output := runCLI(t, srv.URL, "delete", "node label")
	require.Contains(t, output, "deleted mapping")

	fake.mu.Lock()
	defer fake.mu.Unlock()
	require.Empty(t, fake.mappings["default"])
}

func TestSetNodeColorCommandRejectsBadHex(t *testing.T) {
	fake := newFakeService()
	srv := httptest.NewServer(fake.handler())
	defer srv.Close()

	configPath := filepath.Join(t.TempDir(), "cyrest.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("propagation_delay: 0s\n"), 0o644))

	root := newRootCmd()
	buf := &bytes.Buffer{}
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs([]string{
		"--base-url", srv.URL, "--config", configPath,
		"set", "node-color", "--column", "score",
		"--column-values=-2.0,2.0", "--colors", "blue,red",
	})

	err := root.Execute()
	require.Error(t, err)
	require.Contains(t, err.Error(), "hex")

	fake.mu.Lock()
	defer fake.mu.Unlock()
	require.Empty(t, fake.mappings["default"])
}
