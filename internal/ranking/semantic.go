package ranking

import "strings"

// semanticEntry maps a canonical topic keyword to related terms.
// Weight scales the expansion bonus for the topic.
type semanticEntry struct {
	synonyms []string
	weight   float64
}

// semanticMap is the static query-expansion table. It is read-only after
// package initialization and safe for concurrent use.
var semanticMap = map[string]semanticEntry{
	"programming": {synonyms: []string{"coding", "software", "development", "javascript", "python"}, weight: 1.0},
	"react":       {synonyms: []string{"jsx", "hooks", "frontend", "component"}, weight: 0.9},
	"web":         {synonyms: []string{"html", "css", "http", "backend"}, weight: 0.8},
	"data":        {synonyms: []string{"sql", "database", "analytics", "pandas"}, weight: 0.9},
	"ai":          {synonyms: []string{"ml", "neural", "genai"}, weight: 1.0},
	"design":      {synonyms: []string{"ui", "ux", "figma", "typography"}, weight: 0.9},
	"math":        {synonyms: []string{"calculus", "algebra", "statistics", "geometry"}, weight: 1.0},
	"science":     {synonyms: []string{"physics", "chemistry", "biology", "lab"}, weight: 0.9},
	"business":    {synonyms: []string{"marketing", "finance", "startup", "economics"}, weight: 0.8},
	"language":    {synonyms: []string{"english", "spanish", "grammar", "vocabulary"}, weight: 0.7},
	"exam":        {synonyms: []string{"test", "quiz", "midterm", "finals"}, weight: 0.8},
	"study":       {synonyms: []string{"summary", "revision", "cheatsheet"}, weight: 0.6},
}

// expansionWeight sums the weights of every semantic entry the token relates
// to. A token relates to an entry when it contains the canonical keyword or
// any of its synonyms as a substring. The token must already be lowercase.
func expansionWeight(token string) float64 {
	var total float64
	for key, entry := range semanticMap {
		if strings.Contains(token, key) {
			total += entry.weight
			continue
		}
		for _, syn := range entry.synonyms {
			if strings.Contains(token, syn) {
				total += entry.weight
				break
			}
		}
	}
	return total
}
