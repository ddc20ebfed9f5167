// Package extract derives normalized skill tokens from free text such as
// job descriptions and candidate profiles.
package extract

import "strings"

// DefaultVocabulary is the ordered list of skill phrases recognized by the
// default extractor. Order matters: extracted tokens are returned in
// vocabulary order, which keeps every downstream result deterministic.
var DefaultVocabulary = []string{
	"java", "python", "javascript", "typescript", "react", "angular", "vue",
	"spring boot", "spring", "node.js", "express",
	"aws", "azure", "gcp", "docker", "kubernetes",
	"postgresql", "mysql", "mongodb", "redis",
	"git", "jenkins", "ci/cd", "microservices",
	"rest api", "graphql",
}

// Extractor matches a fixed skill vocabulary against free text. It holds
// no mutable state and is safe for concurrent use.
//
// Matching is a lower-cased substring scan, not a tokenized one: a phrase
// matches if it appears anywhere in the text. This over-matches on
// substrings ("java" matches inside "javascript") — a known limitation
// that is preserved deliberately.
type Extractor struct {
	vocabulary []string
}

// New creates an Extractor over the given vocabulary. Phrases are
// normalized to lower case; empty phrases are dropped. A nil or empty
// vocabulary falls back to DefaultVocabulary.
func New(vocabulary []string) *Extractor {
	if len(vocabulary) == 0 {
		vocabulary = DefaultVocabulary
	}
	normalized := make([]string, 0, len(vocabulary))
	for _, phrase := range vocabulary {
		phrase = Normalize(phrase)
		if phrase != "" {
			normalized = append(normalized, phrase)
		}
	}
	return &Extractor{vocabulary: normalized}
}

// Extract returns the canonical tokens of every vocabulary phrase found in
// the text, in vocabulary order. The result is empty, never nil, when
// nothing matches.
func (e *Extractor) Extract(text string) []string {
	lowered := strings.ToLower(text)
	tokens := make([]string, 0, len(e.vocabulary))
	for _, phrase := range e.vocabulary {
		if strings.Contains(lowered, phrase) {
			tokens = append(tokens, phrase)
		}
	}
	return tokens
}

// Normalize returns the canonical form of a skill token: lower-cased and
// trimmed. Equality elsewhere in the engine is exact match on this form.
func Normalize(token string) string {
	return strings.ToLower(strings.TrimSpace(token))
}

// Display re-capitalizes a canonical token for presentation by upper-casing
// the first letter of every space-separated word ("spring boot" → "Spring Boot").
func Display(token string) string {
	words := strings.Split(token, " ")
	for i, word := range words {
		if word == "" {
			continue
		}
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}

// DisplayAll maps Display over a token list, returning a new slice.
func DisplayAll(tokens []string) []string {
	out := make([]string, len(tokens))
	for i, token := range tokens {
		out[i] = Display(token)
	}
	return out
}

// SkillSet builds a canonical membership set from a list of skills.
// Input casing is irrelevant.
func SkillSet(skills []string) map[string]bool {
	set := make(map[string]bool, len(skills))
	for _, skill := range skills {
		normalized := Normalize(skill)
		if normalized != "" {
			set[normalized] = true
		}
	}
	return set
}
