package merge

import (
	"bdotmerge/shape"
)

// Schema is ordered set of field definitions keyed by name. First insertion
// of a name fixes its position, later insertions replace definition only.
type Schema struct {
	names []string
	defs  map[string]shape.FieldDefn
}

func NewSchema() *Schema {
	return &Schema{defs: make(map[string]shape.FieldDefn)}
}

// Add inserts independent copy of the field definition.
func (s *Schema) Add(f shape.FieldDefn) {
	if _, ok := s.defs[f.Name]; !ok {
		s.names = append(s.names, f.Name)
	}
	s.defs[f.Name] = f.Clone()
}

func (s *Schema) Len() int {
	return len(s.names)
}

// Lookup returns current definition of named field.
func (s *Schema) Lookup(name string) (shape.FieldDefn, bool) {
	f, ok := s.defs[name]
	return f, ok
}

// Fields returns copies of all definitions in insertion order.
func (s *Schema) Fields() []shape.FieldDefn {
	fields := make([]shape.FieldDefn, 0, len(s.names))
	for _, name := range s.names {
		fields = append(fields, s.defs[name].Clone())
	}
	return fields
}

// Unify collects fields of all files into single schema. Files which cannot
// be opened are passed to skip and ignored.
func Unify(paths []string, fallbackCodePage string, skip func(path string, err error)) *Schema {
	schema := NewSchema()
	for _, path := range paths {
		src, err := shape.Open(path, fallbackCodePage)
		if err != nil {
			if skip != nil {
				skip(path, err)
			}
			continue
		}
		for _, f := range src.Fields() {
			schema.Add(f)
		}
		src.Close()
	}
	return schema
}
