// Package schema holds the declarative table schema consumed by the binding
// compiler: table names, ordered columns, value kinds and nullability.
package schema

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/LUDevNet/paradox-typed-db/pkg/fdb"
)

// ErrInvalidSpec is wrapped by every validation failure.
var ErrInvalidSpec = errors.New("invalid schema")

// ColumnSpec declares one column.
type ColumnSpec struct {
	Name     string        `yaml:"name" json:"name"`
	Ty       fdb.ValueType `yaml:"ty" json:"ty"`
	Nullable bool          `yaml:"nullable" json:"nullable"`
}

// TableSpec declares one table. Column order defines enumeration and
// serialization order.
type TableSpec struct {
	Name     string       `yaml:"-" json:"name"`
	Optional bool         `yaml:"optional,omitempty" json:"optional,omitempty"`
	Columns  []ColumnSpec `yaml:"columns" json:"columns"`
}

// Column returns the declared column with the exact name.
func (t *TableSpec) Column(name string) (ColumnSpec, bool) {
	for _, c := range t.Columns {
		if c.Name == name {
			return c, true
		}
	}
	return ColumnSpec{}, false
}

// Spec maps table names to their declaration.
type Spec struct {
	Tables map[string]*TableSpec `yaml:"tables" json:"tables"`
}

// TableNames returns the table names in sorted order.
func (s *Spec) TableNames() []string {
	names := make([]string, 0, len(s.Tables))
	for name := range s.Tables {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Sorted returns the tables ordered by name.
func (s *Spec) Sorted() []*TableSpec {
	out := make([]*TableSpec, 0, len(s.Tables))
	for _, name := range s.TableNames() {
		out = append(out, s.Tables[name])
	}
	return out
}

// Table returns the table declaration with the exact name.
func (s *Spec) Table(name string) (*TableSpec, bool) {
	t, ok := s.Tables[name]
	return t, ok
}

// Load reads and validates a schema file.
func Load(path string) (*Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema: %w", err)
	}
	spec, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return spec, nil
}

// Decode reads a schema document from r.
func Decode(r io.Reader) (*Spec, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse parses a YAML (or JSON) schema document and validates it.
func Parse(data []byte) (*Spec, error) {
	var spec Spec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSpec, err)
	}
	if spec.Tables == nil {
		spec.Tables = make(map[string]*TableSpec)
	}
	for name, t := range spec.Tables {
		if t == nil {
			t = &TableSpec{}
			spec.Tables[name] = t
		}
		t.Name = name
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return &spec, nil
}

// Validate checks names are non-empty and unique within each table.
func (s *Spec) Validate() error {
	for _, name := range s.TableNames() {
		t := s.Tables[name]
		if name == "" {
			return fmt.Errorf("%w: empty table name", ErrInvalidSpec)
		}
		if len(t.Columns) == 0 {
			return fmt.Errorf("%w: table %s declares no columns", ErrInvalidSpec, name)
		}
		seen := make(map[string]struct{}, len(t.Columns))
		for i, c := range t.Columns {
			if c.Name == "" {
				return fmt.Errorf("%w: table %s column %d has no name", ErrInvalidSpec, name, i)
			}
			if !c.Ty.Valid() {
				return fmt.Errorf("%w: table %s column %s has invalid type", ErrInvalidSpec, name, c.Name)
			}
			if _, dup := seen[c.Name]; dup {
				return fmt.Errorf("%w: table %s declares column %s twice", ErrInvalidSpec, name, c.Name)
			}
			seen[c.Name] = struct{}{}
		}
	}
	return nil
}
