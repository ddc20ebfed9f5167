// Package catalog provides the curated learning-resource and
// duration-estimate tables used by gap analysis.
package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/RAJVEER42/ai-job-portal/internal/extract"
	"github.com/RAJVEER42/ai-job-portal/internal/types"
)

//go:embed data/catalog.json
var defaultCatalogJSON []byte

//go:embed data/catalog_schema.json
var catalogSchemaJSON []byte

// DefaultLearningTime is the estimate used for skills absent from the
// duration table when the catalog itself does not override it.
const DefaultLearningTime = "2-4 weeks"

// LoadError represents an error loading or validating a catalog document.
type LoadError struct {
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("catalog load error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("catalog load error: %s", e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}

// skillEntry is the wire form of one catalog entry.
type skillEntry struct {
	EstimatedLearningTime string                   `json:"estimated_learning_time"`
	Resources             []types.LearningResource `json:"resources"`
}

// document is the wire form of a catalog file.
type document struct {
	DefaultLearningTime string                `json:"default_learning_time"`
	Skills              map[string]skillEntry `json:"skills"`
}

// Catalog maps canonical skill tokens to curated learning resources and
// duration estimates. Lookups for unknown skills degrade to generic
// fallbacks rather than empty answers. Read-only after load; safe for
// concurrent use.
type Catalog struct {
	resources       map[string][]types.LearningResource
	durations       map[string]string
	defaultDuration string
}

// Load parses and schema-validates a catalog JSON document.
func Load(data []byte) (*Catalog, error) {
	schemaLoader := gojsonschema.NewBytesLoader(catalogSchemaJSON)
	docLoader := gojsonschema.NewBytesLoader(data)

	result, err := gojsonschema.Validate(schemaLoader, docLoader)
	if err != nil {
		return nil, &LoadError{Message: "schema validation failed", Cause: err}
	}
	if !result.Valid() {
		messages := make([]string, 0, len(result.Errors()))
		for _, desc := range result.Errors() {
			messages = append(messages, fmt.Sprintf("%s: %s", desc.Field(), desc.Description()))
		}
		return nil, &LoadError{Message: "invalid catalog document: " + strings.Join(messages, "; ")}
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &LoadError{Message: "failed to parse catalog JSON", Cause: err}
	}

	c := &Catalog{
		resources:       make(map[string][]types.LearningResource, len(doc.Skills)),
		durations:       make(map[string]string, len(doc.Skills)),
		defaultDuration: doc.DefaultLearningTime,
	}
	for skill, entry := range doc.Skills {
		normalized := extract.Normalize(skill)
		if len(entry.Resources) > 0 {
			c.resources[normalized] = entry.Resources
		}
		c.durations[normalized] = entry.EstimatedLearningTime
	}
	if c.defaultDuration == "" {
		c.defaultDuration = DefaultLearningTime
	}
	return c, nil
}

// Default returns the catalog built from the embedded curated tables.
// The embedded document is validated at startup; failing to parse it is a
// build defect, so Default panics rather than returning an error.
func Default() *Catalog {
	c, err := Load(defaultCatalogJSON)
	if err != nil {
		panic(fmt.Sprintf("embedded catalog is invalid: %v", err))
	}
	return c
}

// Resources returns curated learning resources for a skill. Skills absent
// from the table get a single generic search-style video resource.
func (c *Catalog) Resources(skill string) []types.LearningResource {
	normalized := extract.Normalize(skill)
	if resources, ok := c.resources[normalized]; ok {
		return resources
	}
	return []types.LearningResource{genericResource(normalized)}
}

// LearningTime returns the estimated time to learn a skill, falling back
// to the catalog default for unknown skills.
func (c *Catalog) LearningTime(skill string) string {
	normalized := extract.Normalize(skill)
	if duration, ok := c.durations[normalized]; ok {
		return duration
	}
	return c.defaultDuration
}

// genericResource builds the fallback resource for a skill with no curated
// entries: a search into a public learning-video index.
func genericResource(skill string) types.LearningResource {
	query := strings.ReplaceAll(skill, " ", "+")
	return types.LearningResource{
		Title:    extract.Display(skill) + " Tutorial on YouTube",
		URL:      "https://www.youtube.com/results?search_query=" + query + "+tutorial",
		Duration: "Varies",
		Type:     types.ResourceVideo,
	}
}
