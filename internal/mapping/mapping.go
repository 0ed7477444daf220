package mapping

import (
	"strings"

	cyerrors "github.com/go-cytoscape/cyrest/pkg/errors"
)

// Kind identifies how column values translate into visual property values.
type Kind string

const (
	// Continuous interpolates property values between numeric waypoints.
	Continuous Kind = "continuous"
	// Discrete pairs individual column values with property values.
	Discrete Kind = "discrete"
	// Passthrough forwards column values to the property unchanged.
	Passthrough Kind = "passthrough"
)

// ParseKind resolves a mapping kind from its long name, its single-letter
// shorthand, or the interpolate/lookup synonyms.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "c", "continuous", "interpolate":
		return Continuous, nil
	case "d", "discrete", "lookup":
		return Discrete, nil
	case "p", "passthrough":
		return Passthrough, nil
	}
	return "", cyerrors.NewDomainError("", s, "mapping kind not recognized; use continuous, discrete or passthrough")
}

// Table names one of the per-entity data tables backing a network.
type Table string

const (
	TableNode    Table = "defaultnode"
	TableEdge    Table = "defaultedge"
	TableNetwork Table = "defaultnetwork"
)

// Column describes a data table column as reported by the service.
type Column struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// propertyAliases maps common alternative property identifiers to the
// canonical names the service understands. Extend here, not at call sites.
var propertyAliases = map[string]string{
	"EDGE_COLOR":            "EDGE_UNSELECTED_PAINT",
	"EDGE_THICKNESS":        "EDGE_WIDTH",
	"NODE_BORDER_COLOR":     "NODE_BORDER_PAINT",
	"NODE_BORDER_LINE_TYPE": "NODE_BORDER_STROKE",
}

// NormalizeProperty converts a friendly visual property name ("node fill
// color") to its canonical identifier ("NODE_FILL_COLOR"), resolving aliases.
func NormalizeProperty(name string) string {
	canonical := strings.ToUpper(strings.Join(strings.Fields(name), "_"))
	if alias, ok := propertyAliases[canonical]; ok {
		return alias
	}
	return canonical
}

// TableFor resolves the backing table from a canonical property's category
// prefix (NODE_, EDGE_, NETWORK_).
func TableFor(property string) Table {
	prefix, _, _ := strings.Cut(property, "_")
	return Table("default" + strings.ToLower(prefix))
}

// Waypoint is a continuous-mapping breakpoint. Lesser and Greater only
// diverge from Equal on boundary waypoints carrying extrapolation values.
type Waypoint struct {
	Value   float64 `json:"value"`
	Lesser  string  `json:"lesser"`
	Equal   string  `json:"equal"`
	Greater string  `json:"greater"`
}

// Pair associates one column value with one property value in a discrete
// mapping.
type Pair struct {
	Key   any    `json:"key"`
	Value string `json:"value"`
}

// Document is the canonical visual property mapping in the service's wire
// shape. Exactly one of Points or Map is populated, depending on Kind;
// passthrough documents carry neither.
type Document struct {
	Kind       Kind       `json:"mappingType"`
	Column     string     `json:"mappingColumn"`
	ColumnType string     `json:"mappingColumnType"`
	Property   string     `json:"visualProperty"`
	Points     []Waypoint `json:"points,omitempty"`
	Map        []Pair     `json:"map,omitempty"`
}
