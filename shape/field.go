package shape

import (
	"fmt"
	"strings"

	"github.com/jonas-p/go-shp"
)

// FieldType is attribute type as seen by the merge, DBF codes are mapped to
// it on read and back on write.
type FieldType int

const (
	FieldTypeString FieldType = iota
	FieldTypeInteger
	FieldTypeInteger64
	FieldTypeReal
	FieldTypeDate
)

var fieldTypeNames = [...]string{"String", "Integer", "Integer64", "Real", "Date"}

func (t FieldType) String() string {
	if t >= 0 && int(t) < len(fieldTypeNames) {
		return fieldTypeNames[t]
	}
	return fmt.Sprintf("FieldType(%d)", int(t))
}

func (t FieldType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t FieldType) numeric() bool {
	return t == FieldTypeInteger || t == FieldTypeInteger64 || t == FieldTypeReal
}

type Justify int

const (
	JustifyUndefined Justify = iota
	JustifyLeft
	JustifyRight
)

type SubType int

const (
	SubTypeNone SubType = iota
	SubTypeBoolean
)

const (
	// MaxFieldNameLen is DBF limit on field name length in bytes.
	MaxFieldNameLen = 10
	maxFieldWidth   = 254
)

// FieldDefn describes single attribute column. It holds no references, so
// plain assignment produces independent copy.
type FieldDefn struct {
	Name      string    `yaml:"name"`
	Type      FieldType `yaml:"type"`
	Width     int       `yaml:"width"`
	Precision int       `yaml:"precision"`
	Justify   Justify   `yaml:"-"`
	SubType   SubType   `yaml:"-"`
	Nullable  bool      `yaml:"-"`
	Unique    bool      `yaml:"-"`
	Default   string    `yaml:"-"`
}

// Clone returns independent copy of the definition.
func (f FieldDefn) Clone() FieldDefn {
	return FieldDefn{
		Name:      f.Name,
		Type:      f.Type,
		Width:     f.Width,
		Precision: f.Precision,
		Justify:   f.Justify,
		SubType:   f.SubType,
		Nullable:  f.Nullable,
		Unique:    f.Unique,
		Default:   f.Default,
	}
}

// Matches reports whether values could be transferred between two fields
// as is: names and types must be the same.
func (f FieldDefn) Matches(o FieldDefn) bool {
	return f.Name == o.Name && f.Type == o.Type
}

func (f FieldDefn) String() string {
	return fmt.Sprintf("%s (%s)", f.Name, f.Type)
}

// fieldFromDBF maps DBF column descriptor the same way OGR shapefile driver
// does.
func fieldFromDBF(d shp.Field) FieldDefn {
	f := FieldDefn{
		Name:      strings.TrimSpace(d.String()),
		Width:     int(d.Size),
		Precision: int(d.Precision),
		Nullable:  true,
	}
	switch d.Fieldtype {
	case 'N', 'F':
		switch {
		case d.Precision > 0:
			f.Type = FieldTypeReal
		case d.Size < 10:
			f.Type = FieldTypeInteger
		case d.Size < 19:
			f.Type = FieldTypeInteger64
		default:
			f.Type = FieldTypeReal
		}
	case 'D':
		f.Type = FieldTypeDate
	case 'L':
		f.Type = FieldTypeInteger
		f.SubType = SubTypeBoolean
	default:
		f.Type = FieldTypeString
	}
	return f
}

// dbfField builds DBF column descriptor for the definition.
func (f FieldDefn) dbfField() (shp.Field, error) {
	if len(f.Name) == 0 {
		return shp.Field{}, fmt.Errorf("empty field name")
	}
	if len(f.Name) > MaxFieldNameLen {
		return shp.Field{}, fmt.Errorf("field name %q is longer than %d bytes", f.Name, MaxFieldNameLen)
	}

	var d shp.Field
	switch {
	case f.SubType == SubTypeBoolean:
		d = shp.Field{Fieldtype: 'L', Size: 1}
	case f.Type == FieldTypeDate:
		d = shp.DateField(f.Name)
	case f.Type.numeric():
		if f.Width < 1 || f.Width > maxFieldWidth {
			return shp.Field{}, fmt.Errorf("field %q width %d out of range", f.Name, f.Width)
		}
		prec := 0
		if f.Type == FieldTypeReal {
			prec = f.Precision
		}
		if prec < 0 || (prec > 0 && prec >= f.Width) {
			return shp.Field{}, fmt.Errorf("field %q precision %d does not fit width %d", f.Name, f.Precision, f.Width)
		}
		d = shp.Field{Fieldtype: 'N', Size: uint8(f.Width), Precision: uint8(prec)}
	default:
		if f.Width < 1 || f.Width > maxFieldWidth {
			return shp.Field{}, fmt.Errorf("field %q width %d out of range", f.Name, f.Width)
		}
		d = shp.StringField(f.Name, uint8(f.Width))
	}
	copy(d.Name[:], f.Name)
	return d, nil
}
