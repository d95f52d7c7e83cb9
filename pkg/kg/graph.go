package kg

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/onconav/oncograph/backend/pkg/logger"
)

// NodeType classifies a node in the oncology knowledge graph.
type NodeType string

const (
	NodeDisease   NodeType = "disease"
	NodeGene      NodeType = "gene"
	NodePathway   NodeType = "pathway"
	NodeBiomarker NodeType = "biomarker"
	NodeDrug      NodeType = "drug"
)

// Node is a single entity in the knowledge graph. Identity is the ID;
// labels are not guaranteed unique. Nodes are immutable after load.
//
// Properties is a free-form map. The loader and formatter understand the
// optional "description" (string) and "aliases" ([]string) keys.
type Node struct {
	ID         string         `json:"id"`
	Label      string         `json:"label"`
	Type       NodeType       `json:"type"`
	Properties map[string]any `json:"properties,omitempty"`
}

// Description returns the node's description property, if present.
func (n Node) Description() string {
	if n.Properties == nil {
		return ""
	}
	if d, ok := n.Properties["description"].(string); ok {
		return strings.TrimSpace(d)
	}
	return ""
}

// Aliases returns the node's alias list, if present.
func (n Node) Aliases() []string {
	if n.Properties == nil {
		return nil
	}
	raw, ok := n.Properties["aliases"]
	if !ok {
		return nil
	}
	switch v := raw.(type) {
	case []string:
		return v
	case []any:
		aliases := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok && s != "" {
				aliases = append(aliases, s)
			}
		}
		return aliases
	}
	return nil
}

// Edge is a directed, labeled relationship between two nodes. Multiple
// edges may connect the same pair. Edges are immutable after load.
type Edge struct {
	Source   string `json:"source"`
	Target   string `json:"target"`
	Relation string `json:"relation"`
}

// Meta describes the knowledge graph as a whole.
type Meta struct {
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
	Version     string `json:"version,omitempty"`
}

// Graph is the full node/edge set, loaded once at startup and read-only
// for the process lifetime.
type Graph struct {
	Meta  Meta   `json:"meta"`
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

// Subgraph is the ephemeral per-query result: a bounded node set plus the
// edges connecting members of that set. Every edge in a well-formed
// subgraph has both endpoints present in Nodes.
type Subgraph struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

// WithClosedEdges returns a copy of the subgraph with dangling edges
// removed, restoring the referential-closure invariant.
func (s Subgraph) WithClosedEdges() Subgraph {
	present := make(map[string]bool, len(s.Nodes))
	for _, n := range s.Nodes {
		present[n.ID] = true
	}
	edges := make([]Edge, 0, len(s.Edges))
	for _, e := range s.Edges {
		if present[e.Source] && present[e.Target] {
			edges = append(edges, e)
		}
	}
	nodes := s.Nodes
	if nodes == nil {
		nodes = []Node{}
	}
	return Subgraph{Nodes: nodes, Edges: edges}
}

// Load reads the knowledge graph from the JSON file at path. Data errors
// degrade gracefully: a missing or malformed file yields an empty graph
// with the problem logged, never a process failure.
func Load(path string) Graph {
	raw, err := os.ReadFile(path)
	if err != nil {
		logger.Error("[KG] Failed to read knowledge graph file, starting with an empty graph", "path", path, "err", err)
		return Graph{Nodes: []Node{}, Edges: []Edge{}}
	}

	var graph Graph
	if err := json.Unmarshal(raw, &graph); err != nil {
		logger.Error("[KG] Failed to parse knowledge graph file, starting with an empty graph", "path", path, "err", err)
		return Graph{Nodes: []Node{}, Edges: []Edge{}}
	}
	if graph.Nodes == nil {
		graph.Nodes = []Node{}
	}
	if graph.Edges == nil {
		graph.Edges = []Edge{}
	}

	logger.Info("[KG] Knowledge graph loaded", "path", path, "nodes", len(graph.Nodes), "edges", len(graph.Edges))
	return graph
}

// Store wraps the loaded graph and lexicon as an explicitly constructed
// service. Scans stay linear over the node and edge slices; at the current
// static-data scale that is cheaper than maintaining a full index, and the
// id lookup map covers the hot path of resolving edge endpoints.
type Store struct {
	graph   Graph
	lexicon Lexicon
	byID    map[string]*Node
}

// NewStore creates a Store over an already loaded graph and lexicon.
func NewStore(graph Graph, lexicon Lexicon) *Store {
	byID := make(map[string]*Node, len(graph.Nodes))
	for i := range graph.Nodes {
		byID[graph.Nodes[i].ID] = &graph.Nodes[i]
	}
	return &Store{
		graph:   graph,
		lexicon: lexicon,
		byID:    byID,
	}
}

// Graph returns the full loaded graph.
func (s *Store) Graph() Graph {
	return s.graph
}

// Lexicon returns the classification lexicon the store was built with.
func (s *Store) Lexicon() Lexicon {
	return s.lexicon
}

// ContextHeader builds the static descriptive header prepended to every
// formatted context block.
func (s *Store) ContextHeader() string {
	header := "The following entities and relationships come from a curated oncology knowledge graph."
	if desc := strings.TrimSpace(s.graph.Meta.Description); desc != "" {
		header += " " + desc
	}
	return header
}

func (s *Store) nodeByID(id string) (*Node, bool) {
	n, ok := s.byID[id]
	return n, ok
}

// connectingEdges returns every edge whose endpoints are both in the
// included set, preserving graph order.
func (s *Store) connectingEdges(included map[string]bool) []Edge {
	edges := make([]Edge, 0)
	for _, e := range s.graph.Edges {
		if included[e.Source] && included[e.Target] {
			edges = append(edges, e)
		}
	}
	return edges
}
