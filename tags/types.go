package tags

import "fmt"

// IFD identifies the image file directory a tag was read from
type IFD int

const (
	IFD0       IFD = iota // primary image
	IFD1                  // thumbnail
	ExifIFD               // Exif SubIFD
	GPSIFD                // GPS info
	InteropIFD            // interoperability
)

// Group returns the label prefix used for tags of this directory
func (i IFD) Group() string {
	switch i {
	case IFD0:
		return "Image"
	case IFD1:
		return "Thumbnail"
	case ExifIFD:
		return "EXIF"
	case GPSIFD:
		return "GPS"
	case InteropIFD:
		return "Interoperability"
	default:
		return fmt.Sprintf("IFD%d", int(i))
	}
}

func (i IFD) String() string {
	return i.Group()
}

// Code is the numeric key of a tag, namespaced by its directory.
// GPS tag 0x0002 and Interop tag 0x0002 are different codes.
type Code struct {
	IFD IFD
	ID  uint16
}

func (c Code) String() string {
	return fmt.Sprintf("%s:0x%04X", c.IFD.Group(), c.ID)
}

// DataType is a TIFF field type
type DataType uint16

const (
	TypeByte      DataType = 1
	TypeASCII     DataType = 2
	TypeShort     DataType = 3
	TypeLong      DataType = 4
	TypeRational  DataType = 5
	TypeSByte     DataType = 6
	TypeUndefined DataType = 7
	TypeSShort    DataType = 8
	TypeSLong     DataType = 9
	TypeSRational DataType = 10
	TypeFloat     DataType = 11
	TypeDouble    DataType = 12
)

// Size returns the size in bytes of one component, or 0 for unknown types
func (t DataType) Size() uint32 {
	switch t {
	case TypeByte, TypeASCII, TypeSByte, TypeUndefined:
		return 1
	case TypeShort, TypeSShort:
		return 2
	case TypeLong, TypeSLong, TypeFloat:
		return 4
	case TypeRational, TypeSRational, TypeDouble:
		return 8
	default:
		return 0
	}
}

func (t DataType) String() string {
	names := map[DataType]string{
		TypeByte: "BYTE", TypeASCII: "ASCII", TypeShort: "SHORT", TypeLong: "LONG",
		TypeRational: "RATIONAL", TypeSByte: "SBYTE", TypeUndefined: "UNDEF",
		TypeSShort: "SSHORT", TypeSLong: "SLONG", TypeSRational: "SRATIONAL",
		TypeFloat: "FLOAT", TypeDouble: "DOUBLE",
	}
	if name, ok := names[t]; ok {
		return name
	}
	return fmt.Sprintf("TYPE%d", uint16(t))
}

// TagDef represents a single tag definition
type TagDef struct {
	ID          uint16         // Tag ID
	Name        string         // Human-readable name
	Description string         // Tag description
	Values      map[int]string // Value mappings (enums)
}
