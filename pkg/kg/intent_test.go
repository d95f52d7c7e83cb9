package kg

import (
	"reflect"
	"testing"
)

func TestClassifyIntent(t *testing.T) {
	lexicon := DefaultLexicon()

	tests := []struct {
		name       string
		query      string
		wantTypes  []NodeType
		wantKind   ContextKind
		wantAnchor bool
		wantGenes  []string
		wantSingle bool
	}{
		{
			name:       "drug question about a disease",
			query:      "What drugs are used for lung cancer?",
			wantTypes:  []NodeType{NodeDrug},
			wantKind:   ContextDisease,
			wantAnchor: true,
		},
		{
			name:       "bare gene symbol gets all types",
			query:      "Tell me about EGFR",
			wantTypes:  []NodeType{NodeGene, NodePathway, NodeDrug, NodeBiomarker},
			wantKind:   ContextSpecific,
			wantAnchor: false,
			wantGenes:  []string{"EGFR"},
		},
		{
			name:       "gene symbol with trailing punctuation",
			query:      "EGFR?",
			wantTypes:  []NodeType{NodeGene, NodePathway, NodeDrug, NodeBiomarker},
			wantKind:   ContextSpecific,
			wantGenes:  []string{"EGFR"},
		},
		{
			name:       "singular gene question naming a disease",
			query:      "Name one gene related to breast cancer",
			wantTypes:  []NodeType{NodeGene},
			wantKind:   ContextDisease,
			wantAnchor: true,
			wantSingle: true,
		},
		{
			name:       "symbols collected in allow-list order",
			query:      "How do BRCA2 and BRCA1 mutations interact?",
			wantTypes:  []NodeType{NodeGene},
			wantKind:   ContextSpecific,
			wantGenes:  []string{"BRCA1", "BRCA2"},
		},
		{
			name:       "single result truncates the gene list",
			query:      "Which gene matters more, BRCA2 or BRCA1?",
			wantTypes:  []NodeType{NodeGene},
			wantKind:   ContextSpecific,
			wantGenes:  []string{"BRCA1"},
			wantSingle: true,
		},
		{
			name:       "pathway keyword",
			query:      "Which signaling pathways are involved in melanoma?",
			wantTypes:  []NodeType{NodePathway},
			wantKind:   ContextDisease,
			wantAnchor: true,
		},
		{
			name:       "no match falls back to everything",
			query:      "How is the weather today?",
			wantTypes:  []NodeType{NodeGene, NodePathway, NodeDrug, NodeBiomarker},
			wantKind:   ContextGeneral,
			wantAnchor: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ClassifyIntent(tc.query, lexicon)

			wantTypes := make(map[NodeType]bool)
			for _, typ := range tc.wantTypes {
				wantTypes[typ] = true
			}
			if !reflect.DeepEqual(got.WantedTypes, wantTypes) {
				t.Errorf("WantedTypes = %v, want %v", got.WantedTypes, wantTypes)
			}
			if got.ContextKind != tc.wantKind {
				t.Errorf("ContextKind = %q, want %q", got.ContextKind, tc.wantKind)
			}
			if got.IncludeAnchor != tc.wantAnchor {
				t.Errorf("IncludeAnchor = %v, want %v", got.IncludeAnchor, tc.wantAnchor)
			}
			if !reflect.DeepEqual(got.GeneNames, tc.wantGenes) {
				t.Errorf("GeneNames = %v, want %v", got.GeneNames, tc.wantGenes)
			}
			if got.SingleResult != tc.wantSingle {
				t.Errorf("SingleResult = %v, want %v", got.SingleResult, tc.wantSingle)
			}
		})
	}
}

func TestClassifyIntentNeverPanicsOnOddInput(t *testing.T) {
	lexicon := DefaultLexicon()
	for _, query := range []string{"", "   ", "???", "ß∂ƒ©", "gene"} {
		got := ClassifyIntent(query, lexicon)
		if len(got.WantedTypes) == 0 {
			t.Errorf("ClassifyIntent(%q) returned no wanted types", query)
		}
	}
}
