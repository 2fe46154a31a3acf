package valueobject

import "strings"

// Format is the closed set of output encodings a transformation can produce.
type Format string

const (
	FormatJPEG Format = "jpeg"
	FormatPNG  Format = "png"
	FormatWebP Format = "webp"
)

// ParseFormat recognizes jpg/jpeg/png/webp, case-insensitively.
func ParseFormat(s string) (Format, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "jpg", "jpeg":
		return FormatJPEG, true
	case "png":
		return FormatPNG, true
	case "webp":
		return FormatWebP, true
	default:
		return "", false
	}
}

// FormatFromContentType maps a MIME type onto the enumeration.
func FormatFromContentType(contentType string) (Format, bool) {
	ct := strings.ToLower(strings.TrimSpace(contentType))
	if idx := strings.Index(ct, ";"); idx >= 0 {
		ct = strings.TrimSpace(ct[:idx])
	}
	switch ct {
	case "image/jpeg", "image/jpg":
		return FormatJPEG, true
	case "image/png":
		return FormatPNG, true
	case "image/webp":
		return FormatWebP, true
	default:
		return "", false
	}
}

// ResolveFormat picks the output format for a request: the requested format
// when it is recognized, else the source's own format when it is part of the
// enumeration, else jpeg.
func ResolveFormat(requested, sourceContentType string) Format {
	if f, ok := ParseFormat(requested); ok {
		return f
	}
	if f, ok := FormatFromContentType(sourceContentType); ok {
		return f
	}
	return FormatJPEG
}

func (f Format) ContentType() string {
	switch f {
	case FormatPNG:
		return "image/png"
	case FormatWebP:
		return "image/webp"
	default:
		return "image/jpeg"
	}
}

func (f Format) Extension() string {
	switch f {
	case FormatPNG:
		return ".png"
	case FormatWebP:
		return ".webp"
	default:
		return ".jpg"
	}
}
