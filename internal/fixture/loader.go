package fixture

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/AndreyAkinshin/neartest/internal/schema"
	"github.com/AndreyAkinshin/neartest/pkg/neartest"
)

// Extensions lists the file extensions Load understands.
var Extensions = []string{".json", ".yaml", ".yml"}

// Load reads a single fixture file. JSON and YAML are supported, selected by
// file extension. The document is validated against the embedded fixture
// schema before decoding.
func Load(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	ext := strings.ToLower(filepath.Ext(path))
	var doc any
	switch ext {
	case ".json":
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("invalid JSON: %w", err)
		}
	case ".yaml", ".yml":
		var raw any
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("invalid YAML: %w", err)
		}
		doc, err = normalizeYAML(raw)
		if err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported fixture extension %q (want one of %s)", ext, strings.Join(Extensions, ", "))
	}

	if err := schema.ValidateFixtureDocument(doc); err != nil {
		return nil, err
	}

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	f, err := decode(doc, name)
	if err != nil {
		return nil, err
	}
	f.Path = path
	return f, nil
}

// LoadDir loads all fixtures in dir whose file names match pattern and
// carry one of Extensions, sorted by name.
func LoadDir(dir, pattern string) ([]Fixture, error) {
	info, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("fixture directory not found: %s", dir)
		}
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("not a directory: %s", dir)
	}

	files, err := globFixtures(dir, pattern)
	if err != nil {
		return nil, err
	}

	var fixtures []Fixture
	for _, path := range files {
		f, err := Load(path)
		if err != nil {
			return nil, fmt.Errorf("%w (file: %s)", err, path)
		}
		fixtures = append(fixtures, *f)
	}

	sort.Slice(fixtures, func(i, j int) bool {
		return fixtures[i].Name < fixtures[j].Name
	})

	return fixtures, nil
}

// LoadPaths loads fixtures from a mix of files and directories. Directories
// are expanded with LoadDir using pattern; files are loaded as given.
// Order follows paths, with each directory's fixtures sorted by name.
func LoadPaths(paths []string, pattern string) ([]Fixture, error) {
	var fixtures []Fixture
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, err
		}
		if info.IsDir() {
			dirFixtures, err := LoadDir(p, pattern)
			if err != nil {
				return nil, err
			}
			fixtures = append(fixtures, dirFixtures...)
			continue
		}
		f, err := Load(p)
		if err != nil {
			return nil, fmt.Errorf("%w (file: %s)", err, p)
		}
		fixtures = append(fixtures, *f)
	}
	return fixtures, nil
}

// decode converts a schema-valid document into a Fixture.
func decode(doc any, name string) (*Fixture, error) {
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}
	var d document
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, err
	}

	expected, err := decodeExpected(d.Expected, d.Grid)
	if err != nil {
		return nil, fmt.Errorf("expected: %w", err)
	}

	return &Fixture{
		Name:        name,
		Description: d.Description,
		Message:     d.Message,
		Query:       d.Query,
		Tolerance:   d.Tolerance,
		Skip:        d.Skip,
		Expected:    expected,
	}, nil
}

func decodeExpected(v any, grid bool) (neartest.Value[float64], error) {
	switch e := v.(type) {
	case float64:
		if grid {
			return neartest.Value[float64]{}, fmt.Errorf("grid requires a 2-D value, got a number")
		}
		return neartest.Scalar(e), nil
	case []any:
		if len(e) > 0 {
			if _, nested := e[0].([]any); nested {
				rows, err := toRows(e)
				if err != nil {
					return neartest.Value[float64]{}, err
				}
				if !grid {
					return neartest.Nested(rows), nil
				}
				g, err := neartest.GridFromRows(rows)
				if err != nil {
					return neartest.Value[float64]{}, fmt.Errorf("grid is not rectangular: %w", err)
				}
				return neartest.GridValue(g), nil
			}
		}
		if grid {
			return neartest.Value[float64]{}, fmt.Errorf("grid requires a 2-D value, got a flat array")
		}
		seq, err := toFloats(e)
		if err != nil {
			return neartest.Value[float64]{}, err
		}
		return neartest.Sequence(seq), nil
	default:
		return neartest.Value[float64]{}, fmt.Errorf("unsupported value of type %T", v)
	}
}

func toRows(items []any) ([][]float64, error) {
	rows := make([][]float64, len(items))
	for i, item := range items {
		row, ok := item.([]any)
		if !ok {
			return nil, fmt.Errorf("[%d]: expected array, got %T", i, item)
		}
		floats, err := toFloats(row)
		if err != nil {
			return nil, fmt.Errorf("[%d]%w", i, err)
		}
		rows[i] = floats
	}
	return rows, nil
}

func toFloats(items []any) ([]float64, error) {
	out := make([]float64, len(items))
	for i, item := range items {
		f, ok := item.(float64)
		if !ok {
			return nil, fmt.Errorf("[%d]: expected number, got %T", i, item)
		}
		out[i] = f
	}
	return out, nil
}

// normalizeYAML converts yaml.v3 output into the types encoding/json
// produces, so YAML and JSON fixtures share validation and decoding.
func normalizeYAML(v any) (any, error) {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			n, err := normalizeYAML(val)
			if err != nil {
				return nil, err
			}
			out[k] = n
		}
		return out, nil
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			key, ok := k.(string)
			if !ok {
				return nil, fmt.Errorf("non-string key %v in YAML mapping", k)
			}
			n, err := normalizeYAML(val)
			if err != nil {
				return nil, err
			}
			out[key] = n
		}
		return out, nil
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			n, err := normalizeYAML(val)
			if err != nil {
				return nil, err
			}
			out[i] = n
		}
		return out, nil
	case int:
		return float64(t), nil
	case int64:
		return float64(t), nil
	case uint64:
		return float64(t), nil
	default:
		return v, nil
	}
}

// ListFiles expands paths into fixture file paths without loading them.
// Directories contribute the fixture files matching pattern in lexical order.
func ListFiles(paths []string, pattern string) ([]string, error) {
	var files []string
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			files = append(files, p)
			continue
		}
		matches, err := globFixtures(p, pattern)
		if err != nil {
			return nil, err
		}
		files = append(files, matches...)
	}
	return files, nil
}

// globFixtures returns the regular files in dir matching pattern whose
// extension is one of Extensions, in lexical order.
func globFixtures(dir, pattern string) ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, pattern))
	if err != nil {
		return nil, fmt.Errorf("invalid fixture pattern %q: %w", pattern, err)
	}

	var files []string
	for _, m := range matches {
		if !slices.Contains(Extensions, strings.ToLower(filepath.Ext(m))) {
			continue
		}
		if info, err := os.Stat(m); err != nil || info.IsDir() {
			continue
		}
		files = append(files, m)
	}
	sort.Strings(files)
	return files, nil
}
