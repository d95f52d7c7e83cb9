package kg

import (
	"encoding/json"
	"os"

	"github.com/onconav/oncograph/backend/pkg/logger"
)

// KeywordFamily maps a group of query keywords to the node type they ask for.
type KeywordFamily struct {
	Type     NodeType `json:"type"`
	Keywords []string `json:"keywords"`
}

// DiseaseGenes is one entry of the static disease-to-gene lookup table used
// when a singular gene question names a cancer type instead of a symbol.
// The genes are tried in order and the first one present in the graph wins;
// that single-match policy is deliberate and kept from the original curation.
type DiseaseGenes struct {
	Disease string   `json:"disease"`
	Genes   []string `json:"genes"`
}

// Lexicon holds the curated word lists driving intent classification.
// It is data, not code: a deployment can replace it wholesale with its own
// JSON file. Order matters for GeneSymbols and DiseaseGenes (first match wins).
type Lexicon struct {
	GeneSymbols     []string        `json:"gene_symbols"`
	CancerPhrases   []string        `json:"cancer_phrases"`
	SingularPhrases []string        `json:"singular_phrases"`
	KeywordFamilies []KeywordFamily `json:"keyword_families"`
	DiseaseGenes    []DiseaseGenes  `json:"disease_genes"`
}

// DefaultLexicon returns the built-in lexicon used when no external file is
// configured or the configured file cannot be read.
func DefaultLexicon() Lexicon {
	return Lexicon{
		GeneSymbols: []string{
			"BRCA1", "BRCA2", "TP53", "EGFR", "KRAS", "NRAS", "BRAF",
			"ERBB2", "PIK3CA", "ESR1", "ALK", "ROS1", "MET", "RET",
			"PTEN", "RB1", "APC", "MLH1", "MSH2", "CDKN2A", "CDK4",
			"KIT", "MYC", "AR", "STK11", "NTRK1", "JAK2", "VEGFA", "BCL2",
		},
		CancerPhrases: []string{
			"breast cancer", "lung cancer", "colorectal cancer",
			"colon cancer", "prostate cancer", "ovarian cancer",
			"pancreatic cancer", "melanoma", "leukemia", "lymphoma",
			"glioblastoma",
		},
		SingularPhrases: []string{
			"one gene", "a single gene", "single gene",
			"which gene", "what gene",
		},
		KeywordFamilies: []KeywordFamily{
			{Type: NodeGene, Keywords: []string{"gene", "genes", "mutation", "mutations"}},
			{Type: NodeDrug, Keywords: []string{"drug", "drugs", "treatment", "treatments", "therapy", "therapies", "medication", "medications", "inhibitor", "inhibitors"}},
			{Type: NodePathway, Keywords: []string{"pathway", "pathways", "signaling", "signalling", "cascade"}},
			{Type: NodeBiomarker, Keywords: []string{"biomarker", "biomarkers", "marker", "markers"}},
		},
		DiseaseGenes: []DiseaseGenes{
			{Disease: "breast cancer", Genes: []string{"BRCA1", "BRCA2", "ERBB2", "PIK3CA", "ESR1", "TP53"}},
			{Disease: "lung cancer", Genes: []string{"EGFR", "KRAS", "ALK", "ROS1", "MET", "BRAF"}},
			{Disease: "colorectal cancer", Genes: []string{"APC", "KRAS", "TP53", "MLH1", "MSH2", "BRAF"}},
			{Disease: "colon cancer", Genes: []string{"APC", "KRAS", "TP53", "MLH1", "MSH2", "BRAF"}},
			{Disease: "ovarian cancer", Genes: []string{"BRCA1", "BRCA2", "TP53"}},
			{Disease: "prostate cancer", Genes: []string{"AR", "PTEN", "TP53"}},
			{Disease: "pancreatic cancer", Genes: []string{"KRAS", "CDKN2A", "TP53"}},
			{Disease: "melanoma", Genes: []string{"BRAF", "NRAS", "KIT", "CDKN2A"}},
		},
	}
}

// LoadLexicon reads the lexicon from the JSON file at path, falling back to
// the built-in defaults when the file is missing or malformed.
func LoadLexicon(path string) Lexicon {
	raw, err := os.ReadFile(path)
	if err != nil {
		logger.Debug("[KG] No lexicon file found, using built-in defaults", "path", path)
		return DefaultLexicon()
	}

	var lexicon Lexicon
	if err := json.Unmarshal(raw, &lexicon); err != nil {
		logger.Error("[KG] Failed to parse lexicon file, using built-in defaults", "path", path, "err", err)
		return DefaultLexicon()
	}

	logger.Info("[KG] Lexicon loaded", "path", path, "gene_symbols", len(lexicon.GeneSymbols))
	return lexicon
}
