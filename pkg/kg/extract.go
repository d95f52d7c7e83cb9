package kg

import "strings"

// Connection caps. They exist purely to keep the rendered graph and the
// model prompt small; there is no ranking, first found in graph order wins.
const (
	capExplicitGene       = 3
	capExplicitGeneSingle = 2
	capAnchoredPerType    = 4
	capAnchoredTotal      = 10
	capFallbackTotal      = 8
)

// Extract walks one hop of relationships around the entities a query is
// about and returns a size-bounded, referentially closed subgraph. Queries
// that name explicit gene symbols (or ask for a single gene) take the
// gene-resolution path; everything else goes through anchor discovery.
func (s *Store) Extract(query string, intent Intent) Subgraph {
	if len(intent.GeneNames) > 0 || (intent.SingleResult && intent.WantedTypes[NodeGene]) {
		return s.extractByGenes(query, intent)
	}
	return s.extractByAnchor(query, intent)
}

// extractByGenes resolves the named gene symbols to gene nodes and collects
// their direct neighbors, capped per type. The per-type counters are shared
// across all resolved genes rather than reset per gene, so a second gene's
// neighbors can be starved by the first gene's matches; that quirk is kept
// as documented behavior.
func (s *Store) extractByGenes(query string, intent Intent) Subgraph {
	lowered := strings.ToLower(query)

	resolved := make([]Node, 0, len(intent.GeneNames))
	for _, name := range intent.GeneNames {
		for i := range s.graph.Nodes {
			n := s.graph.Nodes[i]
			if n.Type == NodeGene && strings.EqualFold(n.Label, name) {
				resolved = append(resolved, n)
				break
			}
		}
	}
	if intent.SingleResult && len(resolved) > 1 {
		resolved = resolved[:1]
	}

	if len(resolved) == 0 && intent.SingleResult && intent.WantedTypes[NodeGene] {
		if n, ok := s.diseaseFallbackGene(lowered); ok {
			resolved = append(resolved, n)
		}
	}

	included := make(map[string]bool)
	nodes := make([]Node, 0)
	add := func(n Node) {
		if !included[n.ID] {
			included[n.ID] = true
			nodes = append(nodes, n)
		}
	}

	for _, gene := range resolved {
		add(gene)
	}

	// A biomarker sharing a requested gene's name is intentional enrichment
	// (e.g. the HER2 protein marker next to the ERBB2/HER2 gene).
	if intent.WantedTypes[NodeBiomarker] {
		for _, name := range intent.GeneNames {
			for i := range s.graph.Nodes {
				n := s.graph.Nodes[i]
				if n.Type == NodeBiomarker && strings.EqualFold(n.Label, name) {
					add(n)
				}
			}
		}
	}

	capPerType := capExplicitGene
	if intent.SingleResult {
		capPerType = capExplicitGeneSingle
	}
	counters := make(map[NodeType]int)
	for _, gene := range resolved {
		for _, e := range s.graph.Edges {
			var otherID string
			switch gene.ID {
			case e.Source:
				otherID = e.Target
			case e.Target:
				otherID = e.Source
			default:
				continue
			}
			other, ok := s.nodeByID(otherID)
			if !ok || included[other.ID] {
				continue
			}
			if !intent.WantedTypes[other.Type] || counters[other.Type] >= capPerType {
				continue
			}
			counters[other.Type]++
			add(*other)
		}
	}

	return Subgraph{Nodes: nodes, Edges: s.connectingEdges(included)}
}

// diseaseFallbackGene resolves a singular gene question that named a cancer
// type instead of a symbol, via the static disease-to-gene table. The first
// configured gene present in the graph wins.
func (s *Store) diseaseFallbackGene(lowered string) (Node, bool) {
	for _, entry := range s.lexicon.DiseaseGenes {
		if !strings.Contains(lowered, strings.ToLower(entry.Disease)) {
			continue
		}
		for _, symbol := range entry.Genes {
			for i := range s.graph.Nodes {
				n := s.graph.Nodes[i]
				if n.Type == NodeGene && strings.EqualFold(n.Label, symbol) {
					return n, true
				}
			}
		}
	}
	return Node{}, false
}

// extractByAnchor finds one anchor node whose label or alias appears in the
// query and collects its direct neighbors of the wanted types. When no
// anchor (or no qualifying neighbor) is found it falls back to a naive
// direct-match scan over all node labels.
func (s *Store) extractByAnchor(query string, intent Intent) Subgraph {
	lowered := strings.ToLower(query)

	var anchor *Node
	for i := range s.graph.Nodes {
		n := &s.graph.Nodes[i]
		if intent.ContextKind == ContextDisease {
			if n.Type != NodeDisease {
				continue
			}
		} else if len(n.Label) <= 2 {
			continue
		}
		if nodeMentioned(n, lowered) {
			anchor = n
			break
		}
	}

	included := make(map[string]bool)
	nodes := make([]Node, 0)
	add := func(n Node) {
		if !included[n.ID] {
			included[n.ID] = true
			nodes = append(nodes, n)
		}
	}

	if anchor != nil && len(intent.WantedTypes) > 0 {
		total := 0
		if intent.IncludeAnchor {
			add(*anchor)
			total++
		}
		counters := make(map[NodeType]int)
		for _, e := range s.graph.Edges {
			if total >= capAnchoredTotal {
				break
			}
			var otherID string
			switch anchor.ID {
			case e.Source:
				otherID = e.Target
			case e.Target:
				otherID = e.Source
			default:
				continue
			}
			other, ok := s.nodeByID(otherID)
			if !ok || included[other.ID] {
				continue
			}
			if !intent.WantedTypes[other.Type] || counters[other.Type] >= capAnchoredPerType {
				continue
			}
			counters[other.Type]++
			total++
			add(*other)
		}
	}

	if len(nodes) == 0 {
		s.directMatchFallback(lowered, add, included)
		return Subgraph{Nodes: nodes, Edges: s.connectingEdges(included)}
	}

	return Subgraph{Nodes: nodes, Edges: s.connectingEdges(included)}
}

// directMatchFallback includes any node whose label appears verbatim in the
// query, then pads the set with direct neighbors of the matches, up to the
// fallback cap.
func (s *Store) directMatchFallback(lowered string, add func(Node), included map[string]bool) {
	count := func() int { return len(included) }

	for i := range s.graph.Nodes {
		if count() >= capFallbackTotal {
			return
		}
		n := s.graph.Nodes[i]
		if len(n.Label) > 2 && strings.Contains(lowered, strings.ToLower(n.Label)) {
			add(n)
		}
	}
	if count() == 0 {
		return
	}

	for _, e := range s.graph.Edges {
		if count() >= capFallbackTotal {
			return
		}
		var missingID string
		switch {
		case included[e.Source] && !included[e.Target]:
			missingID = e.Target
		case included[e.Target] && !included[e.Source]:
			missingID = e.Source
		default:
			continue
		}
		if other, ok := s.nodeByID(missingID); ok {
			add(*other)
		}
	}
}

// nodeMentioned reports whether the node's label or any alias appears as a
// substring of the lower-cased query.
func nodeMentioned(n *Node, lowered string) bool {
	if strings.Contains(lowered, strings.ToLower(n.Label)) {
		return true
	}
	for _, alias := range n.Aliases() {
		if len(alias) > 2 && strings.Contains(lowered, strings.ToLower(alias)) {
			return true
		}
	}
	return false
}
