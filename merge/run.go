package merge

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"
	yaml "gopkg.in/yaml.v3"

	"bdotmerge/common"
	"bdotmerge/locale"
	"bdotmerge/state"
)

// ErrNoInputDir is returned when input directory is absent.
var ErrNoInputDir = errors.New("input directory not found")

// Classes lists geometry classes in processing order.
var Classes = []common.GeometryClass{
	common.GeometryClassLine,
	common.GeometryClassArea,
	common.GeometryClassPoint,
}

// Run merges all geometry classes one after another. Failure to merge one
// class is logged and does not prevent processing of the others.
func Run(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("merge")

	env.IncludeAll = cmd.Bool("all")
	if cmd.Args().Len() > 0 {
		log.Warn("Malformed command line, unexpected arguments", zap.Strings("ignoring", cmd.Args().Slice()))
	}

	if fi, err := os.Stat(env.InputDir); err != nil || !fi.IsDir() {
		log.Error(env.Msg.Text(locale.InputDirNotFound), zap.String("dir", env.InputDir))
		if err := cli.ShowRootCommandHelp(cmd); err != nil {
			log.Debug("Unable to show help", zap.Error(err))
		}
		return fmt.Errorf("%w: %s", ErrNoInputDir, env.InputDir)
	}

	start := time.Now()
	for _, class := range Classes {
		res, err := Merge(ctx, class)
		if err != nil {
			if ctx.Err() != nil {
				return err
			}
			// these two are already reported
			if !errors.Is(err, ErrNoInput) && !errors.Is(err, ErrNoTemplate) {
				log.Error(env.Msg.Text(locale.MergeFailed), zap.Stringer("class", class), zap.Error(err))
			}
		}
		if res == nil || env.Rpt == nil {
			continue
		}
		if data, err := yaml.Marshal(res); err == nil {
			env.Rpt.StoreData(fmt.Sprintf("merge/%s.yaml", class), data)
		} else {
			log.Debug("Unable to store merge summary", zap.Stringer("class", class), zap.Error(err))
		}
	}

	log.Info(env.Msg.Text(locale.MergingCompleted), zap.Duration("elapsed", time.Since(start)))
	return nil
}
