package merge

import (
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/jonas-p/go-shp"

	"bdotmerge/shape"
)

func TestSchema_Add(t *testing.T) {
	s := NewSchema()
	s.Add(text("A", 10))
	s.Add(number("B", 5))
	s.Add(text("B", 20))
	s.Add(text("C", 1))

	want := []shape.FieldDefn{text("A", 10), text("B", 20), text("C", 1)}
	if diff := cmp.Diff(want, s.Fields()); diff != "" {
		t.Errorf("Fields() mismatch (-want +got):\n%s", diff)
	}
	if s.Len() != 3 {
		t.Errorf("Len() = %d, want 3", s.Len())
	}

	f, ok := s.Lookup("B")
	if !ok || f.Type != shape.FieldTypeString {
		t.Errorf("Lookup(B) = %v, %v", f, ok)
	}
	if _, ok := s.Lookup("D"); ok {
		t.Error("Lookup(D) should fail")
	}
}

func TestSchema_FieldsAreCopies(t *testing.T) {
	s := NewSchema()
	orig := text("A", 10)
	s.Add(orig)
	orig.Width = 1

	fields := s.Fields()
	fields[0].Width = 2
	if f, _ := s.Lookup("A"); f.Width != 10 {
		t.Errorf("schema definition changed through alias, width = %d", f.Width)
	}
}

func TestUnify(t *testing.T) {
	dir := t.TempDir()
	x := filepath.Join(dir, "X_L.shp")
	y := filepath.Join(dir, "Y_L.shp")
	writeShapefile(t, x, shape.GeometryLineString,
		[]shape.FieldDefn{text("A", 10), number("B", 5)}, []shp.Shape{line(0)}, [][]string{{"a", "1"}})
	writeShapefile(t, y, shape.GeometryLineString,
		[]shape.FieldDefn{text("C", 4), text("B", 20)}, nil, nil)

	var skipped []string
	schema := Unify([]string{x, filepath.Join(dir, "missing_L.shp"), y}, "windows-1250", func(path string, err error) {
		if err == nil {
			t.Error("skip called without error")
		}
		skipped = append(skipped, filepath.Base(path))
	})

	want := []shape.FieldDefn{text("A", 10), text("B", 20), text("C", 4)}
	opts := cmpopts.IgnoreFields(shape.FieldDefn{}, "Nullable")
	if diff := cmp.Diff(want, schema.Fields(), opts); diff != "" {
		t.Errorf("Unify() mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"missing_L.shp"}, skipped); diff != "" {
		t.Errorf("skipped files mismatch (-want +got):\n%s", diff)
	}
}

func TestUnify_NilSkip(t *testing.T) {
	schema := Unify([]string{filepath.Join(t.TempDir(), "missing_L.shp")}, "windows-1250", nil)
	if schema.Len() != 0 {
		t.Errorf("Len() = %d, want 0", schema.Len())
	}
}
