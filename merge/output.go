package merge

import (
	"fmt"

	"go.uber.org/zap"

	"bdotmerge/locale"
	"bdotmerge/shape"
)

// removeOutput deletes previous results together with all sidecar files.
func (m *merger) removeOutput(path string) error {
	if shape.Exists(path) {
		m.log.Info(m.msg.Text(locale.RemovingOutput), zap.String("file", path))
	}
	err := shape.RemoveRelated(path, func(name string) {
		m.log.Info(m.msg.Text(locale.RemovingRelated), zap.String("file", name))
	})
	if err != nil {
		return fmt.Errorf("unable to remove previous output: %w", err)
	}
	return nil
}

// template returns first file in order with at least one feature along with
// its spatial reference. Output inherits both.
func (m *merger) template(files []string) (string, []byte, error) {
	for _, path := range files {
		src, err := shape.Open(path, m.cfg.FallbackCodePage)
		if err != nil {
			m.log.Debug("Unable to open shapefile, skipping", zap.String("file", path), zap.Error(err))
			continue
		}
		count, layer, srs := src.FeatureCount(), src.LayerType(), src.SpatialRef()
		src.Close()

		if count == 0 {
			continue
		}
		if layer != m.target {
			m.log.Warn(m.msg.Text(locale.LayerTypeDiffers),
				zap.String("file", path), zap.Stringer("layer", layer), zap.Stringer("target", m.target))
		}
		return path, srs, nil
	}
	return "", nil, ErrNoTemplate
}

// createOutput creates output shapefile with unified schema. Fields which
// could not be created are reported and left out.
func (m *merger) createOutput(res *Result, schema *Schema, srs []byte) (*shape.Sink, error) {
	sink, rejected, err := shape.Create(res.Output, m.target, schema.Fields(), srs)
	for _, fe := range rejected {
		m.log.Error(m.msg.Text(locale.FieldCreateFailed), zap.String("field", fe.Field.Name), zap.Error(fe.Err))
		res.Rejected = append(res.Rejected, fe.Field.Name)
	}
	if err != nil {
		m.log.Error(m.msg.Text(locale.CannotCreateOutput), zap.String("file", res.Output), zap.Error(err))
		return nil, fmt.Errorf("unable to create output: %w", err)
	}
	res.Layer = sink.LayerType()
	res.Fields = sink.Fields()
	return sink, nil
}
