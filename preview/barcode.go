package preview

import (
	"fmt"
	"image"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/qr"
)

// qrImage encodes value as a QR code scaled to a square filling the
// smaller box dimension. A box too small to hold the code at one pixel
// per module is an error and the caller falls back to a placeholder.
func qrImage(value string, w, h int) (image.Image, error) {
	if value == "" {
		return nil, fmt.Errorf("nothing to encode")
	}
	code, err := qr.Encode(value, qr.M, qr.Auto)
	if err != nil {
		return nil, fmt.Errorf("unable to encode QR code: %w", err)
	}
	side := min(w, h)
	scaled, err := barcode.Scale(code, side, side)
	if err != nil {
		return nil, fmt.Errorf("unable to scale QR code to %dx%d: %w", side, side, err)
	}
	return scaled, nil
}
