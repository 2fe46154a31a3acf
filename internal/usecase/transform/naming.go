package transform

import (
	"fmt"
	"path"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/marcos-nsantos/image-processing-backend/internal/domain/valueobject"
)

const keyPrefix = "transformed"

// Filename builds {token}_{base}_transformed{ops}{ext}. The token makes the
// name globally unique; the rest describes the request.
func Filename(token uuid.UUID, originalName string, opts valueobject.TransformationOptions, format valueobject.Format) string {
	return token.String() + "_" + BaseName(originalName) + OperationSuffix(opts) + format.Extension()
}

// StorageKey places a derived file under its owner's prefix.
func StorageKey(ownerID uuid.UUID, filename string) string {
	return fmt.Sprintf("%s/%s/%s", keyPrefix, ownerID, filename)
}

func OperationSuffix(opts valueobject.TransformationOptions) string {
	var sb strings.Builder
	sb.WriteString("_transformed")

	if r := opts.Resize; r != nil {
		sb.WriteString("_resize")
		if r.Width != nil {
			sb.WriteString("w" + strconv.Itoa(*r.Width))
		}
		if r.Height != nil {
			sb.WriteString("h" + strconv.Itoa(*r.Height))
		}
	}
	if opts.Crop != nil {
		sb.WriteString("_crop")
	}
	if deg := opts.RotationDegrees(); deg != 0 {
		sb.WriteString("_rot" + strconv.Itoa(deg))
	}
	if opts.Grayscale() {
		sb.WriteString("_gray")
	}
	if opts.Sepia() {
		sb.WriteString("_sepia")
	}

	return sb.String()
}

// BaseName strips directories and the extension and replaces anything
// outside [A-Za-z0-9_-] so the result is safe inside an object key.
func BaseName(originalName string) string {
	name := path.Base(strings.ReplaceAll(originalName, "\\", "/"))
	name = strings.TrimSuffix(name, path.Ext(name))

	cleaned := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		default:
			return '_'
		}
	}, name)

	if cleaned == "" || cleaned == "." || cleaned == "/" {
		return "image"
	}
	return cleaned
}
