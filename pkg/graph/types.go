// Package graph holds the renderable dependency-graph model produced by the
// hierarchy exporter, plus Mermaid output and gonum-backed metrics.
package graph

// Node represents a node in the dependency graph.
type Node struct {
	ID   string   `json:"id" toon:"id"`
	Name string   `json:"name" toon:"name"`
	Type NodeType `json:"type" toon:"type"`
	File string   `json:"file,omitempty" toon:"file,omitempty"`
	Line uint32   `json:"line,omitempty" toon:"line,omitempty"`
}

// NodeType represents the type of graph node.
type NodeType string

const (
	NodeClass     NodeType = "class"
	NodeInterface NodeType = "interface"
	NodeModule    NodeType = "module"
)

// String returns the string representation.
func (n NodeType) String() string {
	return string(n)
}

// Edge represents a dependency between nodes.
type Edge struct {
	From  string   `json:"from" toon:"from"`
	To    string   `json:"to" toon:"to"`
	Type  EdgeType `json:"type" toon:"type"`
	Label string   `json:"label,omitempty" toon:"label,omitempty"`
}

// EdgeType represents the type of dependency.
type EdgeType string

const (
	EdgeInherit   EdgeType = "inherit"
	EdgeImplement EdgeType = "implement"
	EdgeReference EdgeType = "reference"
)

// String returns the string representation.
func (e EdgeType) String() string {
	return string(e)
}

// DependencyGraph represents the full graph structure.
type DependencyGraph struct {
	Nodes []Node `json:"nodes" toon:"nodes"`
	Edges []Edge `json:"edges" toon:"edges"`
}

// NewDependencyGraph creates an empty graph.
func NewDependencyGraph() *DependencyGraph {
	return &DependencyGraph{
		Nodes: make([]Node, 0),
		Edges: make([]Edge, 0),
	}
}

// AddNode adds a node to the graph.
func (g *DependencyGraph) AddNode(node Node) {
	g.Nodes = append(g.Nodes, node)
}

// AddEdge adds an edge to the graph.
func (g *DependencyGraph) AddEdge(edge Edge) {
	g.Edges = append(g.Edges, edge)
}

// MermaidDirection specifies the graph direction.
type MermaidDirection string

const (
	DirectionTD MermaidDirection = "TD" // Top-down
	DirectionLR MermaidDirection = "LR" // Left-right
	DirectionBT MermaidDirection = "BT" // Bottom-top
)

// ToMermaid generates Mermaid diagram syntax from the graph, top-down.
func (g *DependencyGraph) ToMermaid() string {
	return g.ToMermaidDirected(DirectionTD)
}

// ToMermaidDirected generates Mermaid diagram syntax with a given direction.
// Node labels come from the graph's name set; edge labels carry the subclass
// name when present.
func (g *DependencyGraph) ToMermaidDirected(direction MermaidDirection) string {
	if direction == "" {
		direction = DirectionTD
	}
	result := "graph " + string(direction) + "\n"

	for _, node := range g.Nodes {
		label := EscapeMermaidLabel(node.Name)
		if label == "" {
			label = EscapeMermaidLabel(node.ID)
		}
		result += "    " + SanitizeMermaidID(node.ID) + "[\"" + label + "\"]\n"
	}

	for _, edge := range g.Edges {
		from := SanitizeMermaidID(edge.From)
		to := SanitizeMermaidID(edge.To)
		if edge.Label != "" {
			result += "    " + from + " -->|" + EscapeMermaidLabel(edge.Label) + "| " + to + "\n"
		} else {
			result += "    " + from + " --> " + to + "\n"
		}
	}

	return result
}

// SanitizeMermaidID makes an ID safe for Mermaid diagrams.
func SanitizeMermaidID(id string) string {
	if id == "" {
		return "empty"
	}
	var result []byte
	for i := 0; i < len(id); i++ {
		c := id[i]
		if (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') {
			result = append(result, c)
		} else {
			result = append(result, '_')
		}
	}
	// Ensure ID doesn't start with a number
	if len(result) > 0 && result[0] >= '0' && result[0] <= '9' {
		result = append([]byte{'n'}, result...)
	}
	return string(result)
}

// EscapeMermaidLabel escapes special characters in labels for Mermaid.
func EscapeMermaidLabel(s string) string {
	var result []byte
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case '&':
			result = append(result, []byte("&amp;")...)
		case '"':
			result = append(result, []byte("&quot;")...)
		case '<':
			result = append(result, []byte("&lt;")...)
		case '>':
			result = append(result, []byte("&gt;")...)
		case '|':
			result = append(result, []byte("&#124;")...)
		case '[':
			result = append(result, []byte("&#91;")...)
		case ']':
			result = append(result, []byte("&#93;")...)
		default:
			result = append(result, c)
		}
	}
	return string(result)
}
