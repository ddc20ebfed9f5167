package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtract_FindsVocabularyPhrases(t *testing.T) {
	e := New(nil)

	tokens := e.Extract("We need Java and Spring Boot experience, plus Docker.")

	assert.Equal(t, []string{"java", "spring boot", "spring", "docker"}, tokens)
}

func TestExtract_MultiWordPhraseMatchesAsSubstring(t *testing.T) {
	e := New(nil)

	tokens := e.Extract("Building REST API endpoints with GraphQL on the side")

	assert.Contains(t, tokens, "rest api")
	assert.Contains(t, tokens, "graphql")
}

func TestExtract_SubstringOverMatchIsPreserved(t *testing.T) {
	e := New(nil)

	// "java" matches inside "javascript" by design; the extractor does not
	// tokenize on word boundaries.
	tokens := e.Extract("Senior JavaScript developer")

	assert.Contains(t, tokens, "java")
	assert.Contains(t, tokens, "javascript")
}

func TestExtract_NoMatchesReturnsEmptyNotNil(t *testing.T) {
	e := New(nil)

	tokens := e.Extract("We sell artisanal cheese")

	assert.NotNil(t, tokens)
	assert.Empty(t, tokens)
}

func TestExtract_CustomVocabularyOrderIsPreserved(t *testing.T) {
	e := New([]string{"Erlang", "elixir", "OTP"})

	tokens := e.Extract("otp and elixir and erlang, in any order")

	assert.Equal(t, []string{"erlang", "elixir", "otp"}, tokens)
}

func TestExtract_IsDeterministic(t *testing.T) {
	e := New(nil)
	text := "Java, Python, AWS, Docker, Kubernetes, PostgreSQL"

	first := e.Extract(text)
	second := e.Extract(text)

	assert.Equal(t, first, second)
}

func TestDisplay_CapitalizesEachWord(t *testing.T) {
	assert.Equal(t, "Spring Boot", Display("spring boot"))
	assert.Equal(t, "Aws", Display("aws"))
	assert.Equal(t, "Rest Api", Display("rest api"))
	assert.Equal(t, "Node.js", Display("node.js"))
}

func TestNormalize_LowersAndTrims(t *testing.T) {
	assert.Equal(t, "spring boot", Normalize("  Spring Boot "))
	assert.Equal(t, "", Normalize("   "))
}

func TestSkillSet_CaseInsensitiveMembership(t *testing.T) {
	set := SkillSet([]string{"Java", "SPRING BOOT", ""})

	assert.True(t, set["java"])
	assert.True(t, set["spring boot"])
	assert.False(t, set[""])
	assert.Len(t, set, 2)
}
