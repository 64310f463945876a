// Package vtk assembles the parameters handed to a visual toolkit
// converter: the resolved energy/time group selections, output options,
// and the derived output file name. Serialization itself is the
// converter implementation's concern, reached through the Converter
// interface.
package vtk

import (
	"encoding/binary"
	"fmt"
)

// Format is a visual toolkit output file format.
type Format int

const (
	// XML is the modern XML-based format, the default.
	XML Format = iota
	// LegacyASCII is the old plain-text format.
	LegacyASCII
	// LegacyBinary is the old binary format.
	LegacyBinary
)

func (f Format) String() string {
	switch f {
	case XML:
		return "xml"
	case LegacyASCII:
		return "legacy-ascii"
	case LegacyBinary:
		return "legacy-binary"
	default:
		return fmt.Sprintf("format(%d)", int(f))
	}
}

// ParseFormat converts a format name to its Format value.
func ParseFormat(s string) (Format, error) {
	switch s {
	case "xml":
		return XML, nil
	case "legacy-ascii":
		return LegacyASCII, nil
	case "legacy-binary":
		return LegacyBinary, nil
	default:
		return 0, fmt.Errorf("unknown vtk format %q", s)
	}
}

// ByteOrder is the byte ordering of binary output sections.
type ByteOrder int

const (
	// BigEndian is the default; some viewers only read big endian.
	BigEndian ByteOrder = iota
	// LittleEndian matches most host systems.
	LittleEndian
)

func (o ByteOrder) String() string {
	switch o {
	case BigEndian:
		return "big-endian"
	case LittleEndian:
		return "little-endian"
	default:
		return fmt.Sprintf("byteorder(%d)", int(o))
	}
}

// Order returns the encoding/binary byte order for writers.
func (o ByteOrder) Order() binary.ByteOrder {
	if o == LittleEndian {
		return binary.LittleEndian
	}
	return binary.BigEndian
}

// ParseByteOrder converts a byte order name to its ByteOrder value.
func ParseByteOrder(s string) (ByteOrder, error) {
	switch s {
	case "big-endian", "big":
		return BigEndian, nil
	case "little-endian", "little":
		return LittleEndian, nil
	default:
		return 0, fmt.Errorf("unknown byte order %q", s)
	}
}

// Compressor is the compression method for XML appended data.
type Compressor int

const (
	// LZMA is the default compressor.
	LZMA Compressor = iota
	// LZ4 favors speed over ratio.
	LZ4
	// Zlib is the most widely supported.
	Zlib
	// NoCompression writes payloads uncompressed.
	NoCompression
)

func (c Compressor) String() string {
	switch c {
	case LZMA:
		return "lzma"
	case LZ4:
		return "lz4"
	case Zlib:
		return "zlib"
	case NoCompression:
		return "none"
	default:
		return fmt.Sprintf("compressor(%d)", int(c))
	}
}

// ParseCompressor converts a compressor name to its Compressor value.
func ParseCompressor(s string) (Compressor, error) {
	switch s {
	case "lzma":
		return LZMA, nil
	case "lz4":
		return LZ4, nil
	case "zlib":
		return Zlib, nil
	case "none":
		return NoCompression, nil
	default:
		return 0, fmt.Errorf("unknown compressor %q", s)
	}
}
