package graph

import (
	"gonum.org/v1/gonum/graph/network"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

// Metrics holds per-node and aggregate graph statistics.
type Metrics struct {
	NodeMetrics []NodeMetric `json:"node_metrics" toon:"node_metrics"`
	Summary     Summary      `json:"summary" toon:"summary"`
}

// NodeMetric represents computed metrics for a single node.
type NodeMetric struct {
	NodeID    string  `json:"node_id" toon:"node_id"`
	Name      string  `json:"name" toon:"name"`
	PageRank  float64 `json:"pagerank" toon:"pagerank"`
	InDegree  int     `json:"in_degree" toon:"in_degree"`
	OutDegree int     `json:"out_degree" toon:"out_degree"`
}

// Summary provides aggregate graph statistics.
type Summary struct {
	TotalNodes       int     `json:"total_nodes" toon:"total_nodes"`
	TotalEdges       int     `json:"total_edges" toon:"total_edges"`
	AvgDegree        float64 `json:"avg_degree" toon:"avg_degree"`
	Density          float64 `json:"density" toon:"density"`
	Components       int     `json:"components" toon:"components"`
	LargestComponent int     `json:"largest_component" toon:"largest_component"`
}

// gonumGraph holds the gonum representation and ID mappings.
type gonumGraph struct {
	directed   *simple.DirectedGraph
	undirected *simple.UndirectedGraph
	nodeIDToID map[string]int64
	idToNodeID map[int64]string
}

// toGonumGraph converts a DependencyGraph to gonum graph types.
func toGonumGraph(g *DependencyGraph) *gonumGraph {
	gg := &gonumGraph{
		directed:   simple.NewDirectedGraph(),
		undirected: simple.NewUndirectedGraph(),
		nodeIDToID: make(map[string]int64),
		idToNodeID: make(map[int64]string),
	}

	for i, node := range g.Nodes {
		id := int64(i)
		gg.nodeIDToID[node.ID] = id
		gg.idToNodeID[id] = node.ID
		gg.directed.AddNode(simple.Node(id))
		gg.undirected.AddNode(simple.Node(id))
	}

	// Skip self-loops, gonum simple graphs don't support them.
	for _, edge := range g.Edges {
		fromID, fromOK := gg.nodeIDToID[edge.From]
		toID, toOK := gg.nodeIDToID[edge.To]
		if fromOK && toOK && fromID != toID {
			gg.directed.SetEdge(simple.Edge{F: simple.Node(fromID), T: simple.Node(toID)})
			if !gg.undirected.HasEdgeBetween(fromID, toID) {
				gg.undirected.SetEdge(simple.Edge{F: simple.Node(fromID), T: simple.Node(toID)})
			}
		}
	}

	return gg
}

// CalculateMetrics computes PageRank, degree, and component metrics for a
// graph. Cycle analysis is deliberately out of scope: inheritance graphs
// are taken as acyclic on input and never validated.
func CalculateMetrics(g *DependencyGraph) *Metrics {
	metrics := &Metrics{
		NodeMetrics: make([]NodeMetric, 0, len(g.Nodes)),
		Summary: Summary{
			TotalNodes: len(g.Nodes),
			TotalEdges: len(g.Edges),
		},
	}

	if len(g.Nodes) == 0 {
		return metrics
	}

	gg := toGonumGraph(g)

	inDegree := make(map[string]int, len(g.Nodes))
	outDegree := make(map[string]int, len(g.Nodes))
	for _, node := range g.Nodes {
		inDegree[node.ID] = 0
		outDegree[node.ID] = 0
	}
	for _, edge := range g.Edges {
		inDegree[edge.To]++
		outDegree[edge.From]++
	}

	pageRankMap := network.PageRank(gg.directed, 0.85, 1e-6)
	pageRank := make(map[string]float64, len(g.Nodes))
	for id, nodeID := range gg.idToNodeID {
		pageRank[nodeID] = pageRankMap[id]
	}

	for _, node := range g.Nodes {
		metrics.NodeMetrics = append(metrics.NodeMetrics, NodeMetric{
			NodeID:    node.ID,
			Name:      node.Name,
			PageRank:  pageRank[node.ID],
			InDegree:  inDegree[node.ID],
			OutDegree: outDegree[node.ID],
		})
	}

	totalDegree := 0
	for _, node := range g.Nodes {
		totalDegree += inDegree[node.ID] + outDegree[node.ID]
	}
	metrics.Summary.AvgDegree = float64(totalDegree) / float64(len(g.Nodes))

	if len(g.Nodes) > 1 {
		maxEdges := len(g.Nodes) * (len(g.Nodes) - 1)
		metrics.Summary.Density = float64(len(g.Edges)) / float64(maxEdges)
	}

	components := topo.ConnectedComponents(gg.undirected)
	metrics.Summary.Components = len(components)
	largest := 0
	for _, comp := range components {
		if len(comp) > largest {
			largest = len(comp)
		}
	}
	metrics.Summary.LargestComponent = largest

	return metrics
}
