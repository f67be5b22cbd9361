package config

// Specification of requested preview output format.
// ENUM(svg, png)
type PreviewFormat string

func (f PreviewFormat) Ext() string {
	switch f {
	case PreviewFormatSvg:
		return ".svg"
	case PreviewFormatPng:
		return ".png"
	default:
		// this should never happen
		panic("unsupported preview format requested")
	}
}
