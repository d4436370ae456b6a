// Package netpbm - decoding of Netpbm bitmap (PBM) and graymap (PGM) image
// files into in-memory 8-bit pixel buffers.
//
// The package handles the four single-channel Netpbm variants: P1 (ASCII
// bitmap), P2 (ASCII graymap), P4 (packed binary bitmap), and P5 (binary
// graymap). Color (PPM) and 16-bit graymaps are out of scope.
package netpbm

import "github.com/pkg/errors"

// Format identifies a Netpbm file variant, derived from the magic token on
// the first line of the file.
type Format int

const (
	// FormatASCIIBitmap is the P1 variant: 0/1 pixels stored as ASCII tokens.
	FormatASCIIBitmap Format = iota
	// FormatASCIIGraymap is the P2 variant: 0..MaxValue pixels as ASCII tokens.
	FormatASCIIGraymap
	// FormatBinaryBitmap is the P4 variant: pixels packed 8 per byte, MSB first.
	FormatBinaryBitmap
	// FormatBinaryGraymap is the P5 variant: one byte per pixel.
	FormatBinaryGraymap
)

// magics maps each format to its magic token.
var magics = map[Format]string{
	FormatASCIIBitmap:   "P1",
	FormatASCIIGraymap:  "P2",
	FormatBinaryBitmap:  "P4",
	FormatBinaryGraymap: "P5",
}

// Magic returns the two-character magic token for the format ("P1", "P2",
// "P4", or "P5").
func (f Format) Magic() string {
	return magics[f]
}

// IsBitmap reports whether the format carries single-bit pixels (P1, P4).
func (f Format) IsBitmap() bool {
	return f == FormatASCIIBitmap || f == FormatBinaryBitmap
}

// IsBinary reports whether the pixel payload is binary rather than ASCII
// tokens (P4, P5).
func (f Format) IsBinary() bool {
	return f == FormatBinaryBitmap || f == FormatBinaryGraymap
}

// String returns a human-readable name for the format.
func (f Format) String() string {
	switch f {
	case FormatASCIIBitmap:
		return "pbm (ascii)"
	case FormatASCIIGraymap:
		return "pgm (ascii)"
	case FormatBinaryBitmap:
		return "pbm (binary)"
	case FormatBinaryGraymap:
		return "pgm (binary)"
	}
	return "unknown"
}

// DetectFormat resolves a magic token to its Format.
//
// Arguments:
// - magic: The exact first-line token of the file, e.g. "P5".
//
// Returns:
// - Format: The matching variant.
// - error: ErrInvalidFormat when the token is not one of P1, P2, P4, P5.
//
// Matching is case-sensitive and exact; "p5" or "P5 " do not match.
func DetectFormat(magic string) (Format, error) {
	for format, m := range magics {
		if magic == m {
			return format, nil
		}
	}
	return 0, errors.Wrapf(ErrInvalidFormat, "unrecognized magic token %q", magic)
}
