package catalog

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/mod/semver"
)

// SupportedMajor is the seed document major version this build understands.
const SupportedMajor = "v1"

// ErrUnsupportedVersion is returned when a seed document declares a version
// this build cannot read.
var ErrUnsupportedVersion = errors.New("unsupported catalog version")

//go:embed seed.json
var seedJSON []byte

//go:embed schema.json
var schemaJSON []byte

const schemaURL = "schema://catalog.json"

type document struct {
	Version    string     `json:"version"`
	Categories []Category `json:"categories"`
}

var (
	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error

	defaultOnce sync.Once
	defaultCat  *Catalog
)

// Default returns the catalog built from the embedded seed. The seed ships
// with the binary, so a failure here is a build defect and panics.
func Default() *Catalog {
	defaultOnce.Do(func() {
		c, err := Load(seedJSON)
		if err != nil {
			panic(fmt.Sprintf("embedded catalog: %v", err))
		}
		defaultCat = c
	})
	return defaultCat
}

// Load parses a seed document, checks it against the catalog schema and its
// declared version, and validates the resulting hierarchy.
func Load(data []byte) (*Catalog, error) {
	schema, err := catalogSchema()
	if err != nil {
		return nil, err
	}

	// The jsonschema library validates a parsed JSON value (any), not raw bytes.
	var parsed any
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if err := schema.Validate(parsed); err != nil {
		return nil, fmt.Errorf("catalog schema validation failed: %w", err)
	}

	var doc document
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	if err := checkVersion(doc.Version); err != nil {
		return nil, err
	}

	c := New(doc.Categories)
	c.version = doc.Version
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// checkVersion accepts any valid semantic version with the supported major.
func checkVersion(v string) error {
	if !semver.IsValid(v) {
		return fmt.Errorf("%w: %q is not a semantic version", ErrUnsupportedVersion, v)
	}
	if semver.Major(v) != SupportedMajor {
		return fmt.Errorf("%w: %s (want %s.x.y)", ErrUnsupportedVersion, v, SupportedMajor)
	}
	return nil
}

// catalogSchema compiles the embedded schema once.
func catalogSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		var def any
		if err := json.Unmarshal(schemaJSON, &def); err != nil {
			compileErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaURL, def); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiled, compileErr = c.Compile(schemaURL)
		if compileErr != nil {
			compileErr = fmt.Errorf("compile: %w", compileErr)
		}
	})
	return compiled, compileErr
}
