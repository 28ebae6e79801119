package shape

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jonas-p/go-shp"
)

// writeFixture creates shapefile with go-shp directly, values are written as
// raw bytes.
func writeFixture(t *testing.T, path string, st shp.ShapeType, fields []shp.Field, shapes []shp.Shape, values [][]string) {
	t.Helper()
	w, err := shp.Create(path, st)
	if err != nil {
		t.Fatalf("shp.Create() error = %v", err)
	}
	if err := w.SetFields(fields); err != nil {
		t.Fatalf("SetFields() error = %v", err)
	}
	for i, s := range shapes {
		row := int(w.Write(s))
		for j, v := range values[i] {
			if err := w.WriteAttribute(row, j, v); err != nil {
				t.Fatalf("WriteAttribute() error = %v", err)
			}
		}
	}
	w.Close()
	if err := settleDBF(path); err != nil {
		t.Fatalf("settleDBF() error = %v", err)
	}
}

func TestSource_Read(t *testing.T) {
	path := filepath.Join(t.TempDir(), "OT_SKDR_L.shp")
	writeFixture(t, path, shp.POLYLINE,
		[]shp.Field{shp.StringField("NAZWA", 10), shp.NumberField("KOD", 4)},
		[]shp.Shape{
			polyline([]shp.Point{{X: 0, Y: 0}, {X: 1, Y: 1}}),
			polyline([]shp.Point{{X: 0, Y: 0}, {X: 1, Y: 1}}, []shp.Point{{X: 2, Y: 2}, {X: 3, Y: 3}}),
		},
		[][]string{{"\xb3\xb9ka", "12"}, {"", ""}},
	)
	if err := os.WriteFile(sidecar(path, ".cpg"), []byte("1250"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(sidecar(path, ".prj"), []byte(`PROJCS["ETRF2000-PL / CS92"]`), 0644); err != nil {
		t.Fatal(err)
	}

	src, err := Open(path, "ISO-8859-2")
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer src.Close()

	if src.LayerType() != GeometryLineString {
		t.Errorf("LayerType() = %v, want Line String", src.LayerType())
	}
	if src.FeatureCount() != 2 {
		t.Errorf("FeatureCount() = %d, want 2", src.FeatureCount())
	}
	if src.CodePage() != "windows-1250" || src.UnusableCodePage() != "" {
		t.Errorf("CodePage() = %q, UnusableCodePage() = %q", src.CodePage(), src.UnusableCodePage())
	}
	if got := string(src.SpatialRef()); got != `PROJCS["ETRF2000-PL / CS92"]` {
		t.Errorf("SpatialRef() = %q", got)
	}
	if len(src.Fields()) != 2 || src.Fields()[0].Name != "NAZWA" || src.Fields()[1].Type != FieldTypeInteger {
		t.Errorf("Fields() = %v", src.Fields())
	}

	var features []*Feature
	for src.Next() {
		features = append(features, src.Feature())
	}
	if err := src.Err(); err != nil {
		t.Fatalf("Err() = %v", err)
	}
	if len(features) != 2 {
		t.Fatalf("read %d features, want 2", len(features))
	}
	if features[0].Type != GeometryLineString || features[1].Type != GeometryMultiLineString {
		t.Errorf("feature types = %v, %v", features[0].Type, features[1].Type)
	}
	if features[0].Values[0] != "łąka" || features[0].Values[1] != "12" {
		t.Errorf("first feature values = %q", features[0].Values)
	}
	if features[1].Values[0] != "" || features[1].Values[1] != "" {
		t.Errorf("empty record values = %q, want blanks", features[1].Values)
	}
	if features[1].Row != 1 {
		t.Errorf("Row = %d, want 1", features[1].Row)
	}
}

func TestSource_CodePageFallback(t *testing.T) {
	dir := t.TempDir()
	plain := filepath.Join(dir, "a_P.shp")
	writeFixture(t, plain, shp.POINT, []shp.Field{shp.StringField("N", 4)},
		[]shp.Shape{&shp.Point{X: 1, Y: 1}}, [][]string{{"\xb3"}})

	src, err := Open(plain, "windows-1250")
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if src.CodePage() != "windows-1250" || src.UnusableCodePage() != "" {
		t.Errorf("CodePage() = %q, UnusableCodePage() = %q", src.CodePage(), src.UnusableCodePage())
	}
	if !src.Next() || src.Feature().Values[0] != "ł" {
		t.Errorf("fallback decoding failed")
	}
	src.Close()

	if err := os.WriteFile(sidecar(plain, ".cpg"), []byte("KLINGON"), 0644); err != nil {
		t.Fatal(err)
	}
	src, err = Open(plain, "windows-1250")
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer src.Close()
	if src.UnusableCodePage() != "KLINGON" || src.CodePage() != "windows-1250" {
		t.Errorf("CodePage() = %q, UnusableCodePage() = %q", src.CodePage(), src.UnusableCodePage())
	}

	if _, err := Open(plain, "KLINGON"); err == nil {
		t.Error("Open() with unusable fallback expected error")
	}
}

func TestOpen_Errors(t *testing.T) {
	dir := t.TempDir()
	if _, err := Open(filepath.Join(dir, "missing.shp"), UTF8); err == nil {
		t.Error("Open() of missing file expected error")
	}
	if _, err := Open(filepath.Join(dir, "a.dbf"), UTF8); err == nil {
		t.Error("Open() of non .shp path expected error")
	}
}

func TestRemoveRelated(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"line_merged.shp", "line_merged.shx", "line_merged.dbf", "line_merged.cpg", "other.shp"} {
		if err := os.WriteFile(filepath.Join(dir, name), nil, 0644); err != nil {
			t.Fatal(err)
		}
	}

	path := filepath.Join(dir, "line_merged.shp")
	if !Exists(path) {
		t.Fatal("Exists() = false before removal")
	}

	var removed []string
	if err := RemoveRelated(path, func(name string) { removed = append(removed, filepath.Base(name)) }); err != nil {
		t.Fatalf("RemoveRelated() error = %v", err)
	}

	want := []string{"line_merged.shp", "line_merged.shx", "line_merged.dbf", "line_merged.cpg"}
	if len(removed) != len(want) {
		t.Fatalf("removed %v, want %v", removed, want)
	}
	for i := range want {
		if removed[i] != want[i] {
			t.Errorf("removed[%d] = %q, want %q", i, removed[i], want[i])
		}
	}
	if Exists(path) {
		t.Error("Exists() = true after removal")
	}
	if _, err := os.Stat(filepath.Join(dir, "other.shp")); err != nil {
		t.Errorf("unrelated file removed: %v", err)
	}
}
