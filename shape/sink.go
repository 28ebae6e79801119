package shape

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/jonas-p/go-shp"
	"go.uber.org/multierr"
)

// FieldError describes field which could not be created in the output.
type FieldError struct {
	Field FieldDefn
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("unable to create field %s: %v", e.Field.Name, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// ValueIssue describes attribute value which did not fit its field.
type ValueIssue struct {
	Field string
	Value string
	// Truncated is set when shortened value was written, otherwise value was
	// dropped.
	Truncated bool
}

// Sink is shapefile being created. Attribute values are always written as
// UTF-8 and .cpg says so.
type Sink struct {
	path   string
	w      *shp.Writer
	layer  GeometryType
	fields []FieldDefn
	index  map[string]int
	srs    []byte
	count  int
}

// Create creates new shapefile at path, existing files are truncated. Fields
// which could not be created are returned, the rest of the schema is created
// regardless. Spatial reference (.prj content) could be nil.
func Create(path string, layer GeometryType, fields []FieldDefn, srs []byte) (*Sink, []*FieldError, error) {
	if filepath.Ext(path) != ".shp" {
		return nil, nil, fmt.Errorf("not a shapefile: %s", path)
	}
	st, err := ShapeType(layer)
	if err != nil {
		return nil, nil, err
	}

	s := &Sink{
		path:  path,
		layer: layer,
		index: make(map[string]int, len(fields)),
		srs:   srs,
	}

	var (
		rejected []*FieldError
		dbf      = make([]shp.Field, 0, len(fields))
		names    = make(map[string]struct{}, len(fields))
	)
	for _, f := range fields {
		d, err := f.dbfField()
		if _, dup := names[strings.ToUpper(f.Name)]; err == nil && dup {
			err = fmt.Errorf("duplicate field name %q", f.Name)
		}
		if err != nil {
			rejected = append(rejected, &FieldError{Field: f, Err: err})
			continue
		}
		names[strings.ToUpper(f.Name)] = struct{}{}

		created := f.Clone()
		created.Width, created.Precision = int(d.Size), int(d.Precision)
		s.index[created.Name] = len(s.fields)
		s.fields = append(s.fields, created)
		dbf = append(dbf, d)
	}

	if s.w, err = shp.Create(path, st); err != nil {
		return nil, rejected, err
	}
	if err := s.w.SetFields(dbf); err != nil {
		s.w.Close()
		return nil, rejected, multierr.Append(err, RemoveRelated(path, nil))
	}
	return s, rejected, nil
}

func (s *Sink) LayerType() GeometryType {
	return s.layer
}

// Fields returns definitions of created fields in output order.
func (s *Sink) Fields() []FieldDefn {
	return s.fields
}

// FieldIndex returns position of named field or -1.
func (s *Sink) FieldIndex(name string) int {
	if i, ok := s.index[name]; ok {
		return i
	}
	return -1
}

// Count returns number of written features.
func (s *Sink) Count() int {
	return s.count
}

// Append writes geometry with attribute values aligned with Fields(), empty
// value stands for null. Values which do not fit are reported.
func (s *Sink) Append(geom shp.Shape, values []string) ([]ValueIssue, error) {
	if len(values) != len(s.fields) {
		return nil, fmt.Errorf("got %d values for %d fields", len(values), len(s.fields))
	}

	row := int(s.w.Write(geom))
	s.count++

	var issues []ValueIssue
	for i, f := range s.fields {
		text, issue := fit(f, values[i])
		if issue != nil {
			issues = append(issues, *issue)
		}
		if err := s.w.WriteAttribute(row, i, text); err != nil {
			return issues, fmt.Errorf("unable to write field %s of feature %d: %w", f.Name, row, err)
		}
	}
	return issues, nil
}

// fit pads value to field width. Text is cut on rune boundary, anything else
// which does not fit is replaced by null.
func fit(f FieldDefn, v string) (string, *ValueIssue) {
	if len(v) == 0 {
		return strings.Repeat(" ", f.Width), nil
	}

	var issue *ValueIssue
	if len(v) > f.Width {
		if f.Type != FieldTypeString {
			return strings.Repeat(" ", f.Width), &ValueIssue{Field: f.Name, Value: v}
		}
		v = truncate(v, f.Width)
		issue = &ValueIssue{Field: f.Name, Value: v, Truncated: true}
	}

	pad := strings.Repeat(" ", f.Width-len(v))
	if f.Justify == JustifyRight || (f.Justify == JustifyUndefined && f.Type.numeric()) {
		return pad + v, issue
	}
	return v + pad, issue
}

func truncate(s string, n int) string {
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}

// Close finalizes shapefile headers and writes .prj and .cpg.
func (s *Sink) Close() (err error) {
	if s == nil || s.w == nil {
		return nil
	}
	s.w.Close()
	s.w = nil

	if er := settleDBF(s.path); er != nil {
		err = multierr.Append(err, fmt.Errorf("unable to rename attribute table: %w", er))
	}

	if len(s.srs) > 0 {
		if er := os.WriteFile(sidecar(s.path, ".prj"), s.srs, 0644); er != nil {
			err = multierr.Append(err, fmt.Errorf("unable to write spatial reference: %w", er))
		}
	}
	if er := os.WriteFile(sidecar(s.path, ".cpg"), []byte(UTF8), 0644); er != nil {
		err = multierr.Append(err, fmt.Errorf("unable to write code page: %w", er))
	}
	return err
}

// settleDBF moves attribute table to its proper place. go-shp writer drops the
// dot before extension and creates "<name>dbf".
func settleDBF(path string) error {
	base := strings.TrimSuffix(path, filepath.Ext(path))
	if _, err := os.Stat(base + "dbf"); err != nil {
		return nil
	}
	return os.Rename(base+"dbf", base+".dbf")
}
