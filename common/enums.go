// Package common keeps enums shared between configuration and processing
// code. Enum boilerplate is generated by go-enum from ENUM comments below.
package common

//go:generate go tool go-enum --marshal --names --mustparse

// Class of geometries collected into a single output file.
// ENUM(line, area, point)
type GeometryClass int

// Pattern returns file name suffix (without extension) selecting inputs for
// the class.
func (g GeometryClass) Pattern() string {
	switch g {
	case GeometryClassLine:
		return "_L"
	case GeometryClassArea:
		return "_A"
	case GeometryClassPoint:
		return "_P"
	default:
		// this should never happen
		panic("unsupported geometry class requested")
	}
}

// OutputName returns name of the merged shapefile for the class.
func (g GeometryClass) OutputName() string {
	return g.String() + "_merged.shp"
}

// How attribute values are matched between source and merged schema.
// ENUM(name, position)
type AttributeMatch int
