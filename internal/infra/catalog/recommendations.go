package catalog

import (
	_ "embed"
	"fmt"
	"strings"

	"commerce-actions/internal/usecase/queries"

	"gopkg.in/yaml.v3"
)

//go:embed recommendations.yaml
var builtin []byte

type document struct {
	Default    []queries.Recommendation            `yaml:"default"`
	Categories map[string][]queries.Recommendation `yaml:"categories"`
}

// Recommendations is an immutable category → products table.
type Recommendations struct {
	byCategory map[string][]queries.Recommendation
	fallback   []queries.Recommendation
}

func NewBuiltinRecommendations() (*Recommendations, error) {
	return ParseRecommendations(builtin)
}

func ParseRecommendations(data []byte) (*Recommendations, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse recommendation catalog: %w", err)
	}
	if len(doc.Default) == 0 {
		return nil, fmt.Errorf("recommendation catalog has no default set")
	}

	byCategory := make(map[string][]queries.Recommendation, len(doc.Categories))
	for name, recs := range doc.Categories {
		byCategory[normalize(name)] = recs
	}
	return &Recommendations{byCategory: byCategory, fallback: doc.Default}, nil
}

func (r *Recommendations) Lookup(category string) ([]queries.Recommendation, bool) {
	recs, ok := r.byCategory[normalize(category)]
	if !ok {
		return nil, false
	}
	return append([]queries.Recommendation(nil), recs...), true
}

func (r *Recommendations) Default() []queries.Recommendation {
	return append([]queries.Recommendation(nil), r.fallback...)
}

func normalize(category string) string {
	return strings.ToLower(strings.TrimSpace(category))
}
