package netpbm

import "github.com/pkg/errors"

// Sentinel errors returned by the decoder. Call sites wrap these with
// additional context via errors.Wrapf; callers should test with errors.Is.
var (
	// ErrInvalidFormat indicates a missing or unrecognized magic token, or a
	// header/pixel stream that violates the format grammar.
	ErrInvalidFormat = errors.New("invalid netpbm format")

	// ErrUnsupportedDepth indicates a declared max value above 255. 16-bit
	// graymaps are not supported.
	ErrUnsupportedDepth = errors.New("unsupported bit depth")

	// ErrTruncatedData indicates the input ended before width*height pixel
	// values could be read.
	ErrTruncatedData = errors.New("truncated pixel data")

	// ErrOutOfBounds indicates a pixel query outside the image dimensions.
	ErrOutOfBounds = errors.New("pixel coordinates out of bounds")
)
