package shape

import (
	"fmt"

	"github.com/jonas-p/go-shp"
	"github.com/paulmach/orb"
)

// GeometryType is concrete geometry type of a feature or a layer, values
// follow ISO WKB codes: base type plus 1000 for Z, 2000 for M.
type GeometryType int

const (
	GeometryUnknown            GeometryType = 0
	GeometryPoint              GeometryType = 1
	GeometryLineString         GeometryType = 2
	GeometryPolygon            GeometryType = 3
	GeometryMultiPoint         GeometryType = 4
	GeometryMultiLineString    GeometryType = 5
	GeometryMultiPolygon       GeometryType = 6
	GeometryGeometryCollection GeometryType = 7
	// GeometryNone is used for null shapes and layers without geometry.
	GeometryNone GeometryType = 100

	flagZ = 1000
	flagM = 2000
)

func (g GeometryType) Base() GeometryType {
	if g == GeometryNone {
		return g
	}
	return g % 1000
}

func (g GeometryType) HasZ() bool {
	return g != GeometryNone && (g/1000)&1 != 0
}

func (g GeometryType) HasM() bool {
	return g != GeometryNone && (g/1000)&2 != 0
}

func (g GeometryType) withDims(z, m bool) GeometryType {
	if g == GeometryNone {
		return g
	}
	if z {
		g += flagZ
	}
	if m {
		g += flagM
	}
	return g
}

var baseNames = map[GeometryType]string{
	GeometryUnknown:            "Unknown (any)",
	GeometryPoint:              "Point",
	GeometryLineString:         "Line String",
	GeometryPolygon:            "Polygon",
	GeometryMultiPoint:         "Multi Point",
	GeometryMultiLineString:    "Multi Line String",
	GeometryMultiPolygon:       "Multi Polygon",
	GeometryGeometryCollection: "Geometry Collection",
}

// String returns human readable name in the form OGR uses.
func (g GeometryType) String() string {
	if g == GeometryNone {
		return "None"
	}
	name, ok := baseNames[g.Base()]
	if !ok || g < 0 || g >= 4000 {
		return fmt.Sprintf("GeometryType(%d)", int(g))
	}
	switch {
	case g.HasZ() && g.HasM():
		return "3D Measured " + name
	case g.HasZ():
		return "3D " + name
	case g.HasM():
		return "Measured " + name
	}
	return name
}

func (g GeometryType) MarshalText() ([]byte, error) {
	return []byte(g.String()), nil
}

// LayerType returns layer geometry type for shapefile header shape type.
// Layer level does not distinguish single and multi part lines and polygons.
func LayerType(t shp.ShapeType) GeometryType {
	switch t {
	case shp.NULL:
		return GeometryNone
	case shp.POINT:
		return GeometryPoint
	case shp.POLYLINE:
		return GeometryLineString
	case shp.POLYGON:
		return GeometryPolygon
	case shp.MULTIPOINT:
		return GeometryMultiPoint
	case shp.POINTZ:
		return GeometryPoint.withDims(true, false)
	case shp.POLYLINEZ:
		return GeometryLineString.withDims(true, false)
	case shp.POLYGONZ:
		return GeometryPolygon.withDims(true, false)
	case shp.MULTIPOINTZ:
		return GeometryMultiPoint.withDims(true, false)
	case shp.POINTM:
		return GeometryPoint.withDims(false, true)
	case shp.POLYLINEM:
		return GeometryLineString.withDims(false, true)
	case shp.POLYGONM:
		return GeometryPolygon.withDims(false, true)
	case shp.MULTIPOINTM:
		return GeometryMultiPoint.withDims(false, true)
	case shp.MULTIPATCH:
		return GeometryGeometryCollection.withDims(true, false)
	}
	return GeometryUnknown
}

// ShapeType returns shapefile shape type able to hold geometries of type g.
func ShapeType(g GeometryType) (shp.ShapeType, error) {
	var t shp.ShapeType
	switch g.Base() {
	case GeometryPoint:
		t = shp.POINT
	case GeometryLineString, GeometryMultiLineString:
		t = shp.POLYLINE
	case GeometryPolygon, GeometryMultiPolygon:
		t = shp.POLYGON
	case GeometryMultiPoint:
		t = shp.MULTIPOINT
	default:
		return shp.NULL, fmt.Errorf("geometry type %s cannot be stored in shapefile", g)
	}
	switch {
	case g.HasZ():
		// shapefile Z types always carry measures
		t += 10
	case g.HasM():
		t += 20
	}
	return t, nil
}

// Classify returns concrete geometry type of a shape: polylines with more
// than one part are multi line strings, polygons with more than one outer
// ring are multi polygons. Null and empty shapes have no geometry.
func Classify(s shp.Shape) GeometryType {
	switch v := s.(type) {
	case nil, *shp.Null:
		return GeometryNone
	case *shp.Point:
		return GeometryPoint
	case *shp.PointZ:
		return GeometryPoint.withDims(true, false)
	case *shp.PointM:
		return GeometryPoint.withDims(false, true)
	case *shp.PolyLine:
		return lineType(v.NumParts)
	case *shp.PolyLineZ:
		return lineType(v.NumParts).withDims(true, false)
	case *shp.PolyLineM:
		return lineType(v.NumParts).withDims(false, true)
	case *shp.Polygon:
		return polygonType(v.Parts, v.Points)
	case *shp.PolygonZ:
		return polygonType(v.Parts, v.Points).withDims(true, false)
	case *shp.PolygonM:
		return polygonType(v.Parts, v.Points).withDims(false, true)
	case *shp.MultiPoint:
		return multiPointType(v.NumPoints)
	case *shp.MultiPointZ:
		return multiPointType(v.NumPoints).withDims(true, false)
	case *shp.MultiPointM:
		return multiPointType(v.NumPoints).withDims(false, true)
	case *shp.MultiPatch:
		return GeometryGeometryCollection.withDims(true, false)
	}
	return GeometryUnknown
}

func lineType(parts int32) GeometryType {
	switch {
	case parts <= 0:
		return GeometryNone
	case parts == 1:
		return GeometryLineString
	}
	return GeometryMultiLineString
}

func multiPointType(n int32) GeometryType {
	if n <= 0 {
		return GeometryNone
	}
	return GeometryMultiPoint
}

func polygonType(parts []int32, points []shp.Point) GeometryType {
	outer := 0
	for i := range parts {
		if r := ring(parts, points, i); len(r) > 2 && r.Orientation() == orb.CW {
			outer++
		}
	}
	switch {
	case len(parts) == 0:
		return GeometryNone
	case outer > 1:
		return GeometryMultiPolygon
	}
	return GeometryPolygon
}

// ring returns i-th ring of the polygon. Outer rings in shapefiles are
// clockwise, holes are counter clockwise.
func ring(parts []int32, points []shp.Point, i int) orb.Ring {
	start, end := int(parts[i]), len(points)
	if i+1 < len(parts) {
		end = int(parts[i+1])
	}
	if start < 0 || start > end || end > len(points) {
		return nil
	}
	r := make(orb.Ring, 0, end-start+1)
	for _, p := range points[start:end] {
		r = append(r, orb.Point{p.X, p.Y})
	}
	if !r.Closed() && len(r) > 2 {
		r = append(r, r[0])
	}
	return r
}

// Clone returns deep copy of a two dimensional shape.
func Clone(s shp.Shape) (shp.Shape, error) {
	switch v := s.(type) {
	case *shp.Point:
		p := *v
		return &p, nil
	case *shp.PolyLine:
		return clonePolyLine(v), nil
	case *shp.Polygon:
		return (*shp.Polygon)(clonePolyLine((*shp.PolyLine)(v))), nil
	case *shp.MultiPoint:
		return &shp.MultiPoint{Box: v.Box, NumPoints: v.NumPoints, Points: append([]shp.Point(nil), v.Points...)}, nil
	}
	return nil, fmt.Errorf("unable to clone shape of type %T", s)
}

func clonePolyLine(v *shp.PolyLine) *shp.PolyLine {
	return &shp.PolyLine{
		Box:       v.Box,
		NumParts:  v.NumParts,
		NumPoints: v.NumPoints,
		Parts:     append([]int32(nil), v.Parts...),
		Points:    append([]shp.Point(nil), v.Points...),
	}
}
