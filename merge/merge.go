// Package merge combines BDOT10k shapefiles of the same geometry class into a
// single shapefile with unified attribute schema.
package merge

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"bdotmerge/common"
	"bdotmerge/config"
	"bdotmerge/locale"
	"bdotmerge/shape"
	"bdotmerge/state"
)

var (
	// ErrNoInput is returned when no files match geometry class pattern.
	ErrNoInput = errors.New("no input files")
	// ErrNoTemplate is returned when all matching files are empty.
	ErrNoTemplate = errors.New("no non-empty input files")
)

// Target returns the only geometry type copied to the output of the class.
func Target(class common.GeometryClass) shape.GeometryType {
	switch class {
	case common.GeometryClassLine:
		return shape.GeometryLineString
	case common.GeometryClassArea:
		return shape.GeometryPolygon
	case common.GeometryClassPoint:
		return shape.GeometryPoint
	default:
		// this should never happen
		panic("unsupported geometry class requested")
	}
}

// FileResult summarizes processing of a single input file.
type FileResult struct {
	Path       string             `yaml:"path"`
	CodePage   string             `yaml:"code_page,omitempty"`
	Layer      shape.GeometryType `yaml:"layer"`
	Features   int                `yaml:"features"`
	Copied     int                `yaml:"copied"`
	Discarded  int                `yaml:"discarded"`
	Failed     int                `yaml:"failed"`
	Mismatches int                `yaml:"mismatches"`
	Error      string             `yaml:"error,omitempty"`
}

// Result summarizes merge of a single geometry class.
type Result struct {
	Class    common.GeometryClass `yaml:"class"`
	Pattern  string               `yaml:"pattern"`
	Output   string               `yaml:"output"`
	Template string               `yaml:"template"`
	Layer    shape.GeometryType   `yaml:"layer"`
	Fields   []shape.FieldDefn    `yaml:"fields"`
	Rejected []string             `yaml:"rejected,omitempty"`
	Files    []FileResult         `yaml:"files"`
	Features int                  `yaml:"features"`
	Elapsed  time.Duration        `yaml:"elapsed"`
}

type merger struct {
	class  common.GeometryClass
	target shape.GeometryType
	cfg    *config.MergeConfig
	msg    *locale.Printer
	log    *zap.Logger
}

// Merge merges all input files of the geometry class found in the input
// directory into output directory. Existing output is replaced. Processing
// problems of single files and features are logged and do not stop the merge.
func Merge(ctx context.Context, class common.GeometryClass) (res *Result, err error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	env := state.EnvFromContext(ctx)
	m := &merger{
		class:  class,
		target: Target(class),
		cfg:    &env.Cfg.Merge,
		msg:    env.Msg,
		log:    env.Log.Named("merge." + class.String()),
	}

	pattern := "*" + class.Pattern() + ".shp"

	files, err := Discover(env.InputDir, class, m.cfg.Exclude, env.IncludeAll)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		m.log.Warn(m.msg.Text(locale.NoFilesFound), zap.String("pattern", pattern), zap.String("dir", env.InputDir))
		return nil, ErrNoInput
	}

	start := time.Now()
	res = &Result{
		Class:   class,
		Pattern: pattern,
		Output:  filepath.Join(env.OutputDir, class.OutputName()),
	}
	m.log.Info(m.msg.Text(locale.MergeStarting), zap.String("pattern", pattern), zap.Int("files", len(files)))

	if err := m.removeOutput(res.Output); err != nil {
		return nil, err
	}

	template, srs, err := m.template(files)
	if err != nil {
		if errors.Is(err, ErrNoTemplate) {
			m.log.Error(m.msg.Text(locale.NoNonEmptyFiles), zap.String("pattern", pattern))
		}
		return nil, err
	}
	res.Template = template

	schema := Unify(files, m.cfg.FallbackCodePage, func(path string, err error) {
		m.log.Error(m.msg.Text(locale.CannotOpen), zap.String("file", path), zap.Error(err))
	})

	sink, err := m.createOutput(res, schema, srs)
	if err != nil {
		return nil, err
	}
	defer func() {
		if er := sink.Close(); er != nil {
			err = multierr.Append(err, fmt.Errorf("unable to finalize output: %w", er))
		}
		res.Features = sink.Count()
		res.Elapsed = time.Since(start)
		if err == nil {
			m.log.Info(m.msg.Text(locale.OutputWritten),
				zap.String("file", res.Output), zap.Int("features", res.Features), zap.Duration("elapsed", res.Elapsed))
		}
	}()

	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		res.Files = append(res.Files, m.copyFeatures(sink, path))
	}
	return res, nil
}
