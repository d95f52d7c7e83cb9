package kg

import (
	"fmt"
	"strings"

	"github.com/pkoukk/tiktoken-go"
)

// NoContextMessage is the fixed sentence emitted when a query produced an
// empty subgraph. The model receives it verbatim instead of an entity list.
const NoContextMessage = "No relevant information was found in the knowledge graph for this question."

// FormatContext serializes a subgraph into the plain-text block appended to
// the system prompt: the static header, one line per node, then one line
// per relationship. The output is treated as plain text, not markup, so no
// escaping is applied.
func FormatContext(sub Subgraph, header string) string {
	if len(sub.Nodes) == 0 && len(sub.Edges) == 0 {
		return NoContextMessage
	}

	var b strings.Builder
	if header != "" {
		b.WriteString(header)
		b.WriteString("\n\n")
	}

	b.WriteString("Entities:\n")
	labels := make(map[string]string, len(sub.Nodes))
	for _, n := range sub.Nodes {
		labels[n.ID] = n.Label
		fmt.Fprintf(&b, "%s: %s (%s)", strings.ToUpper(string(n.Type)), n.Label, n.ID)
		if desc := n.Description(); desc != "" {
			b.WriteString(" - ")
			b.WriteString(desc)
		}
		if aliases := n.Aliases(); len(aliases) > 0 {
			b.WriteString(" - also known as: ")
			b.WriteString(strings.Join(aliases, ", "))
		}
		b.WriteByte('\n')
	}

	if len(sub.Edges) > 0 {
		b.WriteString("\nRelationships:\n")
		for _, e := range sub.Edges {
			relation := strings.ReplaceAll(e.Relation, "_", " ")
			fmt.Fprintf(&b, "%s %s %s\n", labels[e.Source], relation, labels[e.Target])
		}
	}

	return b.String()
}

// CountTokens returns the token count of text under the o200k_base encoding,
// used for prompt-size accounting. Returns 0 if the encoding is unavailable.
func CountTokens(text string) int {
	enc, err := tiktoken.GetEncoding("o200k_base")
	if err != nil {
		return 0
	}
	return len(enc.Encode(text, nil, nil))
}
