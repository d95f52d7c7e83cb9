package kg

import "strings"

// ContextKind tells the extractor what kind of anchor a query is about.
type ContextKind string

const (
	ContextDisease  ContextKind = "disease"
	ContextSpecific ContextKind = "specific"
	ContextGeneral  ContextKind = "general"
)

// Intent is the classifier's structured guess at which entity types and
// cardinality the user wants.
type Intent struct {
	WantedTypes   map[NodeType]bool
	ContextKind   ContextKind
	IncludeAnchor bool
	GeneNames     []string
	SingleResult  bool
}

// ClassifyIntent inspects free-text query input and infers which entity
// types are wanted, whether specific gene symbols were named, and whether
// the user asked for exactly one result. It is a best-effort heuristic over
// the lexicon word lists and never fails: a query that matches nothing gets
// the show-everything default.
func ClassifyIntent(query string, lexicon Lexicon) Intent {
	lowered := strings.ToLower(query)
	tokens := tokenize(lowered)

	intent := Intent{
		WantedTypes: make(map[NodeType]bool),
		ContextKind: ContextGeneral,
	}

	for _, phrase := range lexicon.SingularPhrases {
		if strings.Contains(lowered, phrase) {
			intent.SingleResult = true
			break
		}
	}

	// Gene symbols are collected in allow-list order, not query order.
	for _, symbol := range lexicon.GeneSymbols {
		if tokens[strings.ToLower(symbol)] {
			intent.GeneNames = append(intent.GeneNames, symbol)
		}
	}
	if intent.SingleResult && len(intent.GeneNames) > 1 {
		intent.GeneNames = intent.GeneNames[:1]
	}

	matchedKeyword := false
	for _, family := range lexicon.KeywordFamilies {
		for _, keyword := range family.Keywords {
			if tokens[keyword] {
				intent.WantedTypes[family.Type] = true
				matchedKeyword = true
				break
			}
		}
	}

	for _, phrase := range lexicon.CancerPhrases {
		if strings.Contains(lowered, phrase) {
			intent.ContextKind = ContextDisease
			intent.IncludeAnchor = true
			break
		}
	}
	if intent.ContextKind != ContextDisease && (matchedKeyword || len(intent.GeneNames) > 0) {
		intent.ContextKind = ContextSpecific
	}

	// No type keyword means "show everything connected", both for queries
	// that named genes and for queries that matched nothing at all.
	if !matchedKeyword {
		intent.WantedTypes[NodeGene] = true
		intent.WantedTypes[NodePathway] = true
		intent.WantedTypes[NodeDrug] = true
		intent.WantedTypes[NodeBiomarker] = true
		if len(intent.GeneNames) == 0 {
			intent.IncludeAnchor = true
		}
	}

	return intent
}

// tokenize splits an already lower-cased query into a set of words with
// surrounding punctuation stripped, so "EGFR?" still matches the symbol.
func tokenize(lowered string) map[string]bool {
	tokens := make(map[string]bool)
	for _, field := range strings.Fields(lowered) {
		token := strings.TrimFunc(field, func(r rune) bool {
			return !isWordRune(r)
		})
		if token != "" {
			tokens[token] = true
		}
	}
	return tokens
}

func isWordRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z':
		return true
	case r >= '0' && r <= '9':
		return true
	}
	return false
}
