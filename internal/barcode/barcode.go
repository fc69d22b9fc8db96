package barcode

import (
	"bytes"
	"errors"
	"fmt"
	"image/png"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/code128"
)

const (
	DefaultWidth  = 300
	DefaultHeight = 80

	MaxWidth  = 2000
	MaxHeight = 1000
)

var ErrSizeTooLarge = errors.New("barcode size too large")

// Code128PNG renders value as a Code 128 barcode scaled to width x height.
// Characters the symbology cannot carry are rejected by the encoder.
func Code128PNG(value string, width, height int) ([]byte, error) {
	if width > MaxWidth || height > MaxHeight {
		return nil, fmt.Errorf("%w: %dx%d exceeds %dx%d", ErrSizeTooLarge, width, height, MaxWidth, MaxHeight)
	}

	code, err := code128.Encode(value)
	if err != nil {
		return nil, fmt.Errorf("failed to encode barcode %q: %w", value, err)
	}

	scaled, err := barcode.Scale(code, width, height)
	if err != nil {
		return nil, fmt.Errorf("failed to scale barcode: %w", err)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, scaled); err != nil {
		return nil, fmt.Errorf("failed to encode png: %w", err)
	}
	return buf.Bytes(), nil
}
