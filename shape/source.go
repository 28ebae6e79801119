package shape

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jonas-p/go-shp"
)

// Feature is a single record read from the source.
type Feature struct {
	// Row is zero based record number.
	Row      int
	Geometry shp.Shape
	Type     GeometryType
	// Values are decoded attribute values aligned with Source.Fields(), empty
	// string stands for null.
	Values []string
}

// Source is read-only shapefile opened for a single pass.
type Source struct {
	path     string
	r        *shp.Reader
	fields   []FieldDefn
	layer    GeometryType
	count    int
	codePage string
	unusable string
	text     *textDecoder
	cur      *Feature
}

// Open opens shapefile for reading. Attribute values are decoded from the code
// page found in .cpg or DBF header, fallback code page is used when neither
// is known. Caller must Close the source.
func Open(path, fallbackCodePage string) (*Source, error) {
	if !strings.HasSuffix(path, ".shp") {
		return nil, fmt.Errorf("not a shapefile: %s", path)
	}
	if _, err := os.Stat(path); err != nil {
		return nil, err
	}

	s := &Source{path: path, codePage: detectCodePage(path)}
	var err error
	if len(s.codePage) > 0 {
		s.text, err = newTextDecoder(s.codePage)
	}
	if s.text == nil {
		// nothing detected or detected value is not usable
		s.unusable = s.codePage
		if s.text, err = newTextDecoder(fallbackCodePage); err != nil {
			return nil, err
		}
		s.codePage = fallbackCodePage
	}

	if s.count, err = countRecords(path); err != nil {
		return nil, err
	}

	if s.r, err = shp.Open(path); err != nil {
		return nil, err
	}
	s.layer = LayerType(s.r.GeometryType)
	for _, f := range s.r.Fields() {
		s.fields = append(s.fields, fieldFromDBF(f))
	}
	return s, nil
}

// countRecords gets number of features from the index file, reading the whole
// geometry file only when index is absent.
func countRecords(path string) (int, error) {
	if fi, err := os.Stat(sidecar(path, ".shx")); err == nil {
		if n := (fi.Size() - 100) / 8; n > 0 {
			return int(n), nil
		}
		return 0, nil
	}
	r, err := shp.Open(path)
	if err != nil {
		return 0, err
	}
	defer r.Close()

	n := 0
	for r.Next() {
		n++
	}
	return n, r.Err()
}

// Fields returns attribute definitions in file order.
func (s *Source) Fields() []FieldDefn {
	return s.fields
}

// LayerType returns geometry type declared in the shapefile header.
func (s *Source) LayerType() GeometryType {
	return s.layer
}

// FeatureCount returns number of records.
func (s *Source) FeatureCount() int {
	return s.count
}

// CodePage returns code page attribute values are decoded from.
func (s *Source) CodePage() string {
	return s.codePage
}

// UnusableCodePage returns code page name found in the source which could not
// be used, empty when detection succeeded or found nothing.
func (s *Source) UnusableCodePage() string {
	return s.unusable
}

// SpatialRef returns content of .prj, nil when there is none.
func (s *Source) SpatialRef() []byte {
	data, err := os.ReadFile(sidecar(s.path, ".prj"))
	if err != nil {
		return nil
	}
	return data
}

// Next advances to the next feature.
func (s *Source) Next() bool {
	s.cur = nil
	if !s.r.Next() {
		return false
	}
	row, geom := s.r.Shape()
	f := &Feature{
		Row:      row,
		Geometry: geom,
		Type:     Classify(geom),
		Values:   make([]string, len(s.fields)),
	}
	if row < s.r.AttributeCount() {
		for i := range s.fields {
			f.Values[i] = s.text.decode(strings.Trim(s.r.ReadAttribute(row, i), " \x00"))
		}
	}
	s.cur = f
	return true
}

// Feature returns feature Next has advanced to.
func (s *Source) Feature() *Feature {
	return s.cur
}

// Err returns first error encountered while reading features.
func (s *Source) Err() error {
	if err := s.r.Err(); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func (s *Source) Close() error {
	if s == nil || s.r == nil {
		return nil
	}
	err := s.r.Close()
	s.r = nil
	return err
}
