// Package catalog loads and validates the immutable question catalog.
//
// The catalog is a flat JSON document validated against a JSON schema on
// load. Questions carry no answer history; they are pure value records the
// scheduling and session-composition logic consumes.
package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// Provider supplies the full immutable question list. The study service
// depends on this interface rather than the concrete Catalog so tests can
// inject hand-built fixtures.
type Provider interface {
	Questions() []Question
}

// Catalog holds the validated question set.
type Catalog struct {
	questions []Question
	byID      map[string]Question
}

//go:embed seed.json
var seedJSON []byte

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

// compileSchema compiles the catalog schema once per process. The schema
// is a package constant, so a failure here is a programming error surfaced
// on first use rather than at init.
func compileSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		// The jsonschema library expects a parsed JSON value (any), not
		// raw bytes. Marshal then unmarshal to get a clean representation.
		defBytes, err := json.Marshal(catalogSchema)
		if err != nil {
			schemaErr = fmt.Errorf("marshal catalog schema: %w", err)
			return
		}
		var defParsed any
		if err := json.Unmarshal(defBytes, &defParsed); err != nil {
			schemaErr = fmt.Errorf("parse catalog schema: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		const schemaURL = "schema://catalog.json"
		if err := c.AddResource(schemaURL, defParsed); err != nil {
			schemaErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, schemaErr = c.Compile(schemaURL)
	})
	return compiledSchema, schemaErr
}

// catalogFile mirrors the on-disk document shape.
type catalogFile struct {
	Questions []Question `json:"questions"`
}

// Parse validates raw catalog JSON and returns the catalog.
func Parse(raw []byte) (*Catalog, error) {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("invalid catalog JSON: %w", err)
	}

	schema, err := compileSchema()
	if err != nil {
		return nil, err
	}
	if err := schema.Validate(parsed); err != nil {
		return nil, fmt.Errorf("catalog schema validation: %w", err)
	}

	var doc catalogFile
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	byID := make(map[string]Question, len(doc.Questions))
	for _, q := range doc.Questions {
		if _, dup := byID[q.ID]; dup {
			return nil, fmt.Errorf("duplicate question id %q", q.ID)
		}
		byID[q.ID] = q
	}

	return &Catalog{questions: doc.Questions, byID: byID}, nil
}

// Load reads and validates a catalog file from disk.
func Load(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	c, err := Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return c, nil
}

// Seed returns the embedded starter catalog shipped with the binary.
func Seed() (*Catalog, error) {
	return Parse(seedJSON)
}

// Questions returns the full question list in catalog order.
func (c *Catalog) Questions() []Question {
	return c.questions
}

// Get looks up a question by id.
func (c *Catalog) Get(id string) (Question, bool) {
	q, ok := c.byID[id]
	return q, ok
}

// Len returns the number of questions in the catalog.
func (c *Catalog) Len() int {
	return len(c.questions)
}
