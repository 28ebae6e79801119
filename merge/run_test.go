package merge

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/jonas-p/go-shp"
	cli "github.com/urfave/cli/v3"

	"bdotmerge/locale"
	"bdotmerge/shape"
)

func newCommand() *cli.Command {
	return &cli.Command{
		Name:      "bdotmerge",
		Writer:    io.Discard,
		ErrWriter: io.Discard,
		Flags:     []cli.Flag{&cli.BoolFlag{Name: "all"}},
		Action:    Run,
	}
}

func TestRun_MissingInputDirectory(t *testing.T) {
	ctx, env, logs := setupTestEnv(t)
	env.InputDir = filepath.Join(t.TempDir(), "bdot.shp")

	err := newCommand().Run(ctx, []string{"bdotmerge"})
	if !errors.Is(err, ErrNoInputDir) {
		t.Fatalf("Run() error = %v, want ErrNoInputDir", err)
	}
	if n := logs.FilterMessage(locale.InputDirNotFound).Len(); n != 1 {
		t.Errorf("got %d %q entries, want 1", n, locale.InputDirNotFound)
	}
}

func TestRun_InputIsFile(t *testing.T) {
	ctx, env, _ := setupTestEnv(t)
	env.InputDir = filepath.Join(t.TempDir(), "bdot.shp")
	if err := os.WriteFile(env.InputDir, nil, 0644); err != nil {
		t.Fatal(err)
	}

	if err := newCommand().Run(ctx, []string{"bdotmerge"}); !errors.Is(err, ErrNoInputDir) {
		t.Fatalf("Run() error = %v, want ErrNoInputDir", err)
	}
}

func TestRun_AllClasses(t *testing.T) {
	ctx, env, logs := setupTestEnv(t)
	writeShapefile(t, filepath.Join(env.InputDir, "OT_SWRS_L.shp"), shape.GeometryLineString,
		[]shape.FieldDefn{text("A", 4)}, []shp.Shape{line(0)}, [][]string{{"l"}})
	writeShapefile(t, filepath.Join(env.InputDir, "OT_KUSK_L.shp"), shape.GeometryLineString,
		[]shape.FieldDefn{text("K", 4)}, []shp.Shape{line(1)}, [][]string{{"k"}})
	// area class has only empty file and fails, point class follows anyway
	writeShapefile(t, filepath.Join(env.InputDir, "OT_PTWP_A.shp"), shape.GeometryPolygon,
		[]shape.FieldDefn{text("A", 4)}, nil, nil)
	writeShapefile(t, filepath.Join(env.InputDir, "OT_OIPR_P.shp"), shape.GeometryPoint,
		[]shape.FieldDefn{text("P", 4)}, []shp.Shape{&shp.Point{X: 1, Y: 1}}, [][]string{{"p"}})

	if err := newCommand().Run(ctx, []string{"bdotmerge", "-all"}); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if !env.IncludeAll {
		t.Error("IncludeAll should be set by -all")
	}

	if got := readOutput(t, filepath.Join(env.OutputDir, "line_merged.shp")); len(got.rows) != 2 {
		t.Errorf("line output has %d features, want 2", len(got.rows))
	}
	if shape.Exists(filepath.Join(env.OutputDir, "area_merged.shp")) {
		t.Error("area output should not exist")
	}
	if got := readOutput(t, filepath.Join(env.OutputDir, "point_merged.shp")); len(got.rows) != 1 {
		t.Errorf("point output has %d features, want 1", len(got.rows))
	}
	if n := logs.FilterMessage(locale.MergingCompleted).Len(); n != 1 {
		t.Errorf("got %d %q entries, want 1", n, locale.MergingCompleted)
	}
}

func TestRun_DefaultExclusions(t *testing.T) {
	ctx, env, _ := setupTestEnv(t)
	writeShapefile(t, filepath.Join(env.InputDir, "OT_KUSK_L.shp"), shape.GeometryLineString,
		[]shape.FieldDefn{text("K", 4)}, []shp.Shape{line(1)}, [][]string{{"k"}})

	if err := newCommand().Run(ctx, []string{"bdotmerge"}); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if shape.Exists(filepath.Join(env.OutputDir, "line_merged.shp")) {
		t.Error("excluded file should not produce output")
	}
}
