package imageproc

import (
	"bytes"
	"fmt"
	"image"
	"image/color"

	"github.com/HugoSmits86/nativewebp"
	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp"

	"github.com/marcos-nsantos/image-processing-backend/internal/adapter/storage"
	"github.com/marcos-nsantos/image-processing-backend/internal/domain"
	"github.com/marcos-nsantos/image-processing-backend/internal/domain/valueobject"
)

const DefaultJPEGQuality = 85

// Processor applies a TransformationOptions request to raw image bytes.
// Operations run in a fixed order: crop, resize, rotate, filters, encode.
type Processor struct {
	quality      int
	maxDimension int
}

// NewProcessor bounds both source and output sides by maxDimension, which is
// clamped to valueobject.MaxDimension.
func NewProcessor(jpegQuality, maxDimension int) *Processor {
	if jpegQuality < 1 || jpegQuality > 100 {
		jpegQuality = DefaultJPEGQuality
	}
	if maxDimension <= 0 || maxDimension > valueobject.MaxDimension {
		maxDimension = valueobject.MaxDimension
	}
	return &Processor{quality: jpegQuality, maxDimension: maxDimension}
}

func (p *Processor) Apply(src []byte, opts valueobject.TransformationOptions, sourceContentType string) (*storage.TransformOutput, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidOptions, err)
	}

	if err := p.checkLimits(src, opts); err != nil {
		return nil, err
	}

	img, err := imaging.Decode(bytes.NewReader(src), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrDecodeFailed, err)
	}

	if opts.Crop != nil {
		img, err = crop(img, *opts.Crop)
		if err != nil {
			return nil, err
		}
	}

	if opts.Resize != nil {
		img, err = p.resize(img, *opts.Resize)
		if err != nil {
			return nil, err
		}
	}

	if deg := opts.RotationDegrees(); deg%360 != 0 {
		img = Rotate(img, deg)
	}

	if opts.Grayscale() {
		img = imaging.Grayscale(img)
	}
	if opts.Sepia() {
		img = Sepia(img)
	}

	format := valueobject.ResolveFormat(opts.Format, sourceContentType)
	data, err := p.encode(img, format)
	if err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	return &storage.TransformOutput{
		Data:        data,
		Format:      format,
		ContentType: format.ContentType(),
		Width:       bounds.Dx(),
		Height:      bounds.Dy(),
	}, nil
}

// checkLimits reads only the image header, so oversized sources are rejected
// before any pixel buffer is allocated.
func (p *Processor) checkLimits(src []byte, opts valueobject.TransformationOptions) error {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(src))
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrDecodeFailed, err)
	}
	if cfg.Width > p.maxDimension || cfg.Height > p.maxDimension {
		return fmt.Errorf("%w: source %dx%d exceeds %d", domain.ErrDecodeFailed, cfg.Width, cfg.Height, p.maxDimension)
	}

	if r := opts.Resize; r != nil {
		if (r.Width != nil && *r.Width > p.maxDimension) || (r.Height != nil && *r.Height > p.maxDimension) {
			return fmt.Errorf("%w: resize exceeds %d", domain.ErrInvalidOptions, p.maxDimension)
		}
	}
	return nil
}

func crop(img image.Image, c valueobject.CropOptions) (image.Image, error) {
	b := img.Bounds()
	if c.X < 0 || c.Y < 0 || c.Width <= 0 || c.Height <= 0 ||
		c.X > b.Dx() || c.Y > b.Dy() || c.Width > b.Dx()-c.X || c.Height > b.Dy()-c.Y {
		return nil, fmt.Errorf("%w: crop %dx%d+%d+%d exceeds source %dx%d",
			domain.ErrInvalidOptions, c.Width, c.Height, c.X, c.Y, b.Dx(), b.Dy())
	}
	rect := image.Rect(c.X, c.Y, c.X+c.Width, c.Y+c.Height).Add(b.Min)
	return imaging.Crop(img, rect), nil
}

// resize scales to exactly width x height when both are given; a single
// dimension keeps the current aspect ratio.
func (p *Processor) resize(img image.Image, r valueobject.ResizeOptions) (image.Image, error) {
	var w, h int
	if r.Width != nil {
		w = *r.Width
	}
	if r.Height != nil {
		h = *r.Height
	}

	b := img.Bounds()
	if b.Empty() {
		return imaging.Resize(img, w, h, imaging.Lanczos), nil
	}
	outW, outH := w, h
	switch {
	case w == 0:
		outW = int(int64(b.Dx()) * int64(h) / int64(b.Dy()))
	case h == 0:
		outH = int(int64(b.Dy()) * int64(w) / int64(b.Dx()))
	}
	if outW > p.maxDimension || outH > p.maxDimension {
		return nil, fmt.Errorf("%w: resize to %dx%d exceeds %d", domain.ErrInvalidOptions, outW, outH, p.maxDimension)
	}

	return imaging.Resize(img, w, h, imaging.Lanczos), nil
}

// Rotate turns the image clockwise by deg degrees. The canvas grows to hold
// the rotated bounding box; uncovered corners are transparent.
func Rotate(img image.Image, deg int) image.Image {
	return imaging.Rotate(img, -float64(deg), color.Transparent)
}

// Sepia applies the fixed sepia matrix per pixel. Channel values are
// truncated and clamped to 255; alpha is kept.
func Sepia(img image.Image) *image.NRGBA {
	return imaging.AdjustFunc(img, sepiaTone)
}

func sepiaTone(c color.NRGBA) color.NRGBA {
	r, g, b := float64(c.R), float64(c.G), float64(c.B)
	return color.NRGBA{
		R: clampChannel(0.393*r + 0.769*g + 0.189*b),
		G: clampChannel(0.349*r + 0.686*g + 0.168*b),
		B: clampChannel(0.272*r + 0.534*g + 0.131*b),
		A: c.A,
	}
}

func clampChannel(v float64) uint8 {
	switch {
	case v >= 255:
		return 255
	case v <= 0:
		return 0
	default:
		return uint8(v)
	}
}

func (p *Processor) encode(img image.Image, format valueobject.Format) ([]byte, error) {
	var buf bytes.Buffer
	var err error

	switch format {
	case valueobject.FormatPNG:
		err = imaging.Encode(&buf, img, imaging.PNG)
	case valueobject.FormatWebP:
		err = nativewebp.Encode(&buf, img, nil)
	default:
		err = imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(p.quality))
	}
	if err != nil {
		return nil, fmt.Errorf("%w: encoding %s: %w", domain.ErrEncodeFailed, format, err)
	}

	return buf.Bytes(), nil
}
