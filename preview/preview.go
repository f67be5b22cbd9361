// Package preview renders form documents as wireframe images: an SVG
// built element by element or a natively rasterized PNG. A preview shows
// layout and bindings, not production output - unresolved record fields
// appear as their field code in braces, barcodes encode the placeholder
// text and remote image references are never fetched.
package preview

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"formc/config"
	"formc/form"
	"formc/utils/images"
)

// AssetLoader resolves a local image reference from an image element to
// the raw bytes of the asset. Callers decide what references mean: the
// CLI reads paths relative to the document file, a bundle reads members
// of its assets directory.
type AssetLoader func(ref string) ([]byte, error)

// Options control a single Render call.
type Options struct {
	Format config.PreviewFormat
	Scale  float64
	Theme  []byte      // theme stylesheet, nil selects the built-in one
	Assets AssetLoader // nil disables image embedding
	Logger *zap.Logger
}

// Render draws the document wireframe in the requested format. An empty
// format renders SVG.
func Render(doc *form.Document, opts Options) ([]byte, error) {
	if doc == nil {
		return nil, fmt.Errorf("no document to render")
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	log := opts.Logger.Named("preview")
	if opts.Scale <= 0 {
		opts.Scale = 1
	}
	if opts.Scale > 8 {
		// absurd scales produce absurd rasters
		log.Warn("Clamping preview scale", zap.Float64("requested", opts.Scale))
		opts.Scale = 8
	}

	theme := NewTheme(opts.Theme, log)
	for _, w := range theme.Warnings() {
		log.Warn("Theme problem", zap.String("problem", w))
	}

	log.Debug("Rendering preview",
		zap.String("document", doc.ID),
		zap.Stringer("format", opts.Format),
		zap.Float64("scale", opts.Scale),
		zap.Int("elements", len(doc.Elements)))

	switch opts.Format {
	case config.PreviewFormatPng:
		return renderPNG(doc, theme, &opts, log)
	case config.PreviewFormatSvg, "":
		return renderSVG(doc, theme, &opts, log)
	default:
		return nil, fmt.Errorf("unsupported preview format: %s", opts.Format)
	}
}

// sourceText returns the text an element displays in the preview: literal
// text when present, a static value, or the bound field code in braces as
// a placeholder.
func sourceText(el *form.Element) string {
	if el.Text != "" {
		return el.Text
	}
	if el.DataSource == nil {
		return ""
	}
	switch el.DataSource.Type {
	case form.DataSourceTypeStatic:
		return el.DataSource.Value
	case form.DataSourceTypeRecord, form.DataSourceTypeSubtable:
		if el.DataSource.FieldCode != "" {
			return "{" + el.DataSource.FieldCode + "}"
		}
	}
	return ""
}

// staticSource returns the loadable reference of an image element. Only
// static sources reference an asset; record bound images resolve at
// production render time, not in the preview.
func staticSource(el *form.Element) string {
	if el.DataSource != nil && el.DataSource.Type == form.DataSourceTypeStatic {
		return el.DataSource.Value
	}
	return ""
}

// resolveAsset loads and sniffs the bytes behind an image element.
// Remote references are skipped, previews never touch the network.
func resolveAsset(el *form.Element, loader AssetLoader, log *zap.Logger) ([]byte, string, bool) {
	src := staticSource(el)
	if src == "" {
		return nil, "", false
	}
	if strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://") {
		log.Debug("Skipping remote image reference", zap.String("id", el.ID), zap.String("url", src))
		return nil, "", false
	}
	if loader == nil {
		return nil, "", false
	}
	data, err := loader(src)
	if err != nil {
		log.Warn("Unable to load image asset", zap.String("id", el.ID), zap.String("ref", src), zap.Error(err))
		return nil, "", false
	}
	ext, ok := images.DetectImage(data)
	if !ok {
		log.Warn("Unsupported image asset format", zap.String("id", el.ID), zap.String("ref", src))
		return nil, "", false
	}
	return data, ext, true
}

// elementClasses returns the theme classes an element carries.
func elementClasses(el *form.Element) []string {
	if el.Hidden {
		return []string{"hidden"}
	}
	return nil
}
