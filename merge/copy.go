package merge

import (
	"path/filepath"

	"go.uber.org/zap"

	"bdotmerge/common"
	"bdotmerge/locale"
	"bdotmerge/shape"
)

// fieldMap tells where source values go: dst[i] is output position of source
// field i or -1 when value is dropped.
type fieldMap struct {
	dst []int
}

// mapByName pairs fields with the same name and type.
func mapByName(src, dst []shape.FieldDefn) fieldMap {
	index := make(map[string]int, len(dst))
	for i, f := range dst {
		index[f.Name] = i
	}
	fm := fieldMap{dst: make([]int, len(src))}
	for i, f := range src {
		fm.dst[i] = -1
		if j, ok := index[f.Name]; ok && f.Matches(dst[j]) {
			fm.dst[i] = j
		}
	}
	return fm
}

// mapByPosition pairs fields at the same index when their names and types
// are the same.
func mapByPosition(src, dst []shape.FieldDefn) fieldMap {
	fm := fieldMap{dst: make([]int, len(src))}
	for i := range src {
		fm.dst[i] = -1
		if i < len(dst) && src[i].Matches(dst[i]) {
			fm.dst[i] = i
		}
	}
	return fm
}

// counterpart returns output field source field i is compared with.
func counterpart(mode common.AttributeMatch, src shape.FieldDefn, i int, dst []shape.FieldDefn) (shape.FieldDefn, bool) {
	if mode == common.AttributeMatchPosition {
		if i < len(dst) {
			return dst[i], true
		}
		return shape.FieldDefn{}, false
	}
	for _, f := range dst {
		if f.Name == src.Name {
			return f, true
		}
	}
	return shape.FieldDefn{}, false
}

// copyFeatures appends features of matching geometry type from the file to
// the output.
func (m *merger) copyFeatures(sink *shape.Sink, path string) (fr FileResult) {
	fr.Path = path
	file := filepath.Base(path)

	src, err := shape.Open(path, m.cfg.FallbackCodePage)
	if err != nil {
		m.log.Error(m.msg.Text(locale.CannotOpen), zap.String("file", path), zap.Error(err))
		fr.Error = err.Error()
		return fr
	}
	defer src.Close()

	fr.CodePage, fr.Layer, fr.Features = src.CodePage(), src.LayerType(), src.FeatureCount()
	if cp := src.UnusableCodePage(); len(cp) > 0 {
		m.log.Warn(m.msg.Text(locale.CodePageUnknown),
			zap.String("file", file), zap.String("code_page", cp), zap.String("fallback", src.CodePage()))
	}
	m.log.Info(m.msg.Text(locale.ProcessingFile),
		zap.String("file", path), zap.Int("features", fr.Features), zap.Stringer("type", fr.Layer))

	srcFields, dstFields := src.Fields(), sink.Fields()

	var fm fieldMap
	if m.cfg.Attributes == common.AttributeMatchPosition {
		fm = mapByPosition(srcFields, dstFields)
	} else {
		fm = mapByName(srcFields, dstFields)
	}

	for src.Next() {
		f := src.Feature()
		if f.Type != m.target {
			fr.Discarded++
			continue
		}

		geom, err := shape.Clone(f.Geometry)
		if err != nil {
			m.log.Debug("Unable to copy geometry", zap.String("file", file), zap.Int("row", f.Row), zap.Error(err))
			fr.Failed++
			continue
		}

		values := make([]string, len(dstFields))
		for i, j := range fm.dst {
			if j >= 0 {
				values[j] = f.Values[i]
				continue
			}
			if m.cfg.Attributes == common.AttributeMatchPosition && i >= len(dstFields) {
				// legacy mode never looks past the shorter schema
				continue
			}
			fr.Mismatches++
			fields := []zap.Field{zap.String("file", file), zap.Int("row", f.Row), zap.Stringer("source", srcFields[i])}
			if d, ok := counterpart(m.cfg.Attributes, srcFields[i], i, dstFields); ok {
				fields = append(fields, zap.Stringer("destination", d))
			}
			m.log.Warn(m.msg.Text(locale.FieldMismatch), fields...)
		}

		issues, err := sink.Append(geom, values)
		for _, vi := range issues {
			text := locale.ValueTooLarge
			if vi.Truncated {
				text = locale.ValueTruncated
			}
			m.log.Warn(m.msg.Text(text),
				zap.String("file", file), zap.Int("row", f.Row), zap.String("field", vi.Field), zap.String("value", vi.Value))
		}
		if err != nil {
			m.log.Debug("Unable to write feature", zap.String("file", file), zap.Int("row", f.Row), zap.Error(err))
			fr.Failed++
			continue
		}
		fr.Copied++
	}
	if err := src.Err(); err != nil {
		m.log.Error(m.msg.Text(locale.CannotRead), zap.String("file", path), zap.Error(err))
		fr.Error = err.Error()
	}

	if fr.Failed > 0 {
		m.log.Error(m.msg.Text(locale.FeaturesFailed), zap.String("file", path), zap.Int("count", fr.Failed))
	}
	if fr.Discarded > 0 {
		m.log.Error(m.msg.Text(locale.IncorrectGeometry), zap.String("file", path), zap.Int("count", fr.Discarded))
	}
	return fr
}
