// Package schema provides JSON schema validation for neartest fixture and configuration files.
package schema

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"

	schemafs "github.com/AndreyAkinshin/neartest/schema"
)

var (
	configSchema  *jsonschema.Schema
	fixtureSchema *jsonschema.Schema
	compileOnce   sync.Once
	compileErr    error
)

// compileSchemas compiles all embedded schemas once.
func compileSchemas() error {
	compileOnce.Do(func() {
		compiler := jsonschema.NewCompiler()

		for _, name := range []string{"config.schema.json", "fixture.schema.json"} {
			data, err := schemafs.FS.ReadFile(name)
			if err != nil {
				compileErr = fmt.Errorf("read %s: %w", name, err)
				return
			}
			doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
			if err != nil {
				compileErr = fmt.Errorf("unmarshal %s: %w", name, err)
				return
			}
			if err := compiler.AddResource(name, doc); err != nil {
				compileErr = fmt.Errorf("add %s resource: %w", name, err)
				return
			}
		}

		var err error
		configSchema, err = compiler.Compile("config.schema.json")
		if err != nil {
			compileErr = fmt.Errorf("compile config schema: %w", err)
			return
		}

		fixtureSchema, err = compiler.Compile("fixture.schema.json")
		if err != nil {
			compileErr = fmt.Errorf("compile fixture schema: %w", err)
			return
		}
	})

	return compileErr
}

// ValidateConfig validates JSON data against the config schema.
func ValidateConfig(data []byte) error {
	if err := compileSchemas(); err != nil {
		return err
	}

	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	if err := configSchema.Validate(v); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	return nil
}

// ValidateFixture validates JSON data against the fixture schema.
func ValidateFixture(data []byte) error {
	if err := compileSchemas(); err != nil {
		return err
	}

	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	return ValidateFixtureDocument(v)
}

// ValidateFixtureDocument validates an already-decoded fixture document.
// The document must use JSON-compatible types (map[string]any, []any,
// float64, string, bool, nil), as produced by encoding/json.
func ValidateFixtureDocument(doc any) error {
	if err := compileSchemas(); err != nil {
		return err
	}

	if err := fixtureSchema.Validate(doc); err != nil {
		return fmt.Errorf("fixture validation failed: %w", err)
	}

	return nil
}
