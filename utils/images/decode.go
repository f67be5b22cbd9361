package images

import (
	"bytes"
	"fmt"
	"image"
	"math"
	"regexp"

	// Codecs for the raster formats accepted as logo assets.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/disintegration/imaging"
	"github.com/h2non/filetype"
	"github.com/srwiley/oksvg"
)

// svgRootRe matches the opening svg element. SVG is XML text, so magic
// number matching does not apply; look for the root element instead.
var svgRootRe = regexp.MustCompile(`<svg[\s>/]`)

// sniffLen limits how far into a file the SVG sniffer looks. Plenty for
// any XML declaration, doctype and leading comments.
const sniffLen = 1024

// IsSVG sniffs data for an SVG document.
func IsSVG(data []byte) bool {
	head := data
	if len(head) > sniffLen {
		head = head[:sniffLen]
	}
	return svgRootRe.Match(head)
}

// DetectImage classifies data as a supported image asset and returns the
// canonical extension: "png", "jpg", "gif", "bmp", "tif", "webp" or "svg".
// Anything else is rejected.
func DetectImage(data []byte) (string, bool) {
	if IsSVG(data) {
		return "svg", true
	}
	t, err := filetype.Match(data)
	if err != nil {
		return "", false
	}
	switch t.Extension {
	case "png", "jpg", "gif", "bmp", "tif", "webp":
		return t.Extension, true
	}
	return "", false
}

// Decode decodes an image asset, rasterizing SVG data at its intrinsic
// size. Returns the image and the format name image.Decode reported, or
// "svg".
func Decode(data []byte) (image.Image, string, error) {
	if IsSVG(data) {
		img, err := RasterizeSVGToImage(data, 0, 0)
		if err != nil {
			return nil, "", fmt.Errorf("unable to rasterize svg: %w", err)
		}
		return img, "svg", nil
	}
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, "", fmt.Errorf("unable to decode image: %w", err)
	}
	return img, format, nil
}

// Dimensions returns the pixel size of an image asset without a full
// decode. For SVG the viewBox size is reported.
func Dimensions(data []byte) (int, int, error) {
	if IsSVG(data) {
		icon, err := oksvg.ReadIconStream(bytes.NewReader(data))
		if err != nil {
			return 0, 0, fmt.Errorf("unable to parse svg: %w", err)
		}
		w := int(math.Ceil(icon.ViewBox.W))
		h := int(math.Ceil(icon.ViewBox.H))
		if w <= 0 {
			w = defaultSVGSize
		}
		if h <= 0 {
			h = defaultSVGSize
		}
		return w, h, nil
	}
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return 0, 0, fmt.Errorf("unable to decode image: %w", err)
	}
	return cfg.Width, cfg.Height, nil
}

// FitInto scales img down to fit a w by h box preserving aspect ratio.
// Images already inside the box come back unscaled; logos are never
// upscaled, pixelation would defeat the point of the preview.
func FitInto(img image.Image, w, h int) image.Image {
	if w <= 0 || h <= 0 {
		return img
	}
	b := img.Bounds()
	if b.Dx() <= w && b.Dy() <= h {
		return img
	}
	return imaging.Fit(img, w, h, imaging.Lanczos)
}
