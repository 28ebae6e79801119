package merge

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/jonas-p/go-shp"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"bdotmerge/config"
	"bdotmerge/locale"
	"bdotmerge/shape"
	"bdotmerge/state"
)

// setupTestEnv prepares context with default configuration, english messages
// and observed logger. Input and output directories are fresh temporary ones.
func setupTestEnv(t *testing.T) (context.Context, *state.LocalEnv, *observer.ObservedLogs) {
	t.Helper()
	cfg, err := config.LoadConfiguration("")
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	core, logs := observer.New(zap.DebugLevel)

	ctx := state.ContextWithEnv(context.Background())
	env := state.EnvFromContext(ctx)
	env.Cfg = cfg
	env.Log = zap.New(core)
	env.Msg = locale.NewPrinter("en")
	env.InputDir = filepath.Join(t.TempDir(), "bdot.shp")
	env.OutputDir = t.TempDir()
	if err := os.Mkdir(env.InputDir, 0755); err != nil {
		t.Fatalf("create input dir: %v", err)
	}
	return ctx, env, logs
}

func line(x float64) *shp.PolyLine {
	return shp.NewPolyLine([][]shp.Point{{{X: x, Y: 0}, {X: x + 1, Y: 1}}})
}

func multiLine(x float64) *shp.PolyLine {
	return shp.NewPolyLine([][]shp.Point{
		{{X: x, Y: 0}, {X: x + 1, Y: 1}},
		{{X: x + 2, Y: 2}, {X: x + 3, Y: 3}},
	})
}

func square(x float64) *shp.Polygon {
	return (*shp.Polygon)(shp.NewPolyLine([][]shp.Point{
		{{X: x, Y: 0}, {X: x, Y: 1}, {X: x + 1, Y: 1}, {X: x + 1, Y: 0}, {X: x, Y: 0}},
	}))
}

func text(name string, width int) shape.FieldDefn {
	return shape.FieldDefn{Name: name, Type: shape.FieldTypeString, Width: width}
}

func number(name string, width int) shape.FieldDefn {
	return shape.FieldDefn{Name: name, Type: shape.FieldTypeInteger, Width: width}
}

// writeShapefile creates input shapefile, rows hold values aligned with
// fields.
func writeShapefile(t *testing.T, path string, layer shape.GeometryType, fields []shape.FieldDefn, shapes []shp.Shape, rows [][]string) {
	t.Helper()
	sink, rejected, err := shape.Create(path, layer, fields, nil)
	if err != nil {
		t.Fatalf("create %s: %v", path, err)
	}
	if len(rejected) > 0 {
		t.Fatalf("create %s: rejected fields %v", path, rejected)
	}
	for i, s := range shapes {
		if _, err := sink.Append(s, rows[i]); err != nil {
			t.Fatalf("append to %s: %v", path, err)
		}
	}
	if err := sink.Close(); err != nil {
		t.Fatalf("close %s: %v", path, err)
	}
}

type output struct {
	fields []shape.FieldDefn
	layer  shape.GeometryType
	types  []shape.GeometryType
	rows   [][]string
}

func readOutput(t *testing.T, path string) output {
	t.Helper()
	src, err := shape.Open(path, shape.UTF8)
	if err != nil {
		t.Fatalf("open output %s: %v", path, err)
	}
	defer src.Close()

	out := output{fields: src.Fields(), layer: src.LayerType()}
	for src.Next() {
		f := src.Feature()
		out.types = append(out.types, f.Type)
		out.rows = append(out.rows, f.Values)
	}
	if err := src.Err(); err != nil {
		t.Fatalf("read output %s: %v", path, err)
	}
	return out
}

func fieldNames(fields []shape.FieldDefn) []string {
	names := make([]string, 0, len(fields))
	for _, f := range fields {
		names = append(names, f.Name)
	}
	return names
}
