package valueobject

import (
	"encoding/json"
	"fmt"
)

// MaxDimension bounds every requested width, height and crop offset.
const MaxDimension = 8192

type ResizeOptions struct {
	Width  *int `json:"width,omitempty"`
	Height *int `json:"height,omitempty"`
}

type CropOptions struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

type FilterOptions struct {
	Grayscale bool `json:"grayscale,omitempty"`
	Sepia     bool `json:"sepia,omitempty"`
}

// TransformationOptions is one caller request. Every operation is optional;
// the engine applies them in a fixed order regardless of field order here.
type TransformationOptions struct {
	Resize  *ResizeOptions `json:"resize,omitempty"`
	Crop    *CropOptions   `json:"crop,omitempty"`
	Rotate  *int           `json:"rotate,omitempty"`
	Format  string         `json:"format,omitempty"`
	Filters *FilterOptions `json:"filters,omitempty"`
}

// Validate checks the geometry that can be judged without the source image.
// Crop bounds against the source dimensions are checked by the engine.
func (o TransformationOptions) Validate() error {
	if r := o.Resize; r != nil {
		if r.Width == nil && r.Height == nil {
			return fmt.Errorf("resize requires width or height")
		}
		if r.Width != nil && *r.Width <= 0 {
			return fmt.Errorf("resize width must be positive, got %d", *r.Width)
		}
		if r.Height != nil && *r.Height <= 0 {
			return fmt.Errorf("resize height must be positive, got %d", *r.Height)
		}
		if (r.Width != nil && *r.Width > MaxDimension) || (r.Height != nil && *r.Height > MaxDimension) {
			return fmt.Errorf("resize dimensions must not exceed %d", MaxDimension)
		}
	}
	if c := o.Crop; c != nil {
		if c.X < 0 || c.Y < 0 {
			return fmt.Errorf("crop origin must be non-negative, got (%d,%d)", c.X, c.Y)
		}
		if c.Width <= 0 || c.Height <= 0 {
			return fmt.Errorf("crop size must be positive, got %dx%d", c.Width, c.Height)
		}
		if c.X > MaxDimension || c.Y > MaxDimension || c.Width > MaxDimension || c.Height > MaxDimension {
			return fmt.Errorf("crop values must not exceed %d", MaxDimension)
		}
	}
	return nil
}

// RotationDegrees returns the requested rotation, 0 when absent.
func (o TransformationOptions) RotationDegrees() int {
	if o.Rotate == nil {
		return 0
	}
	return *o.Rotate
}

func (o TransformationOptions) Grayscale() bool {
	return o.Filters != nil && o.Filters.Grayscale
}

func (o TransformationOptions) Sepia() bool {
	return o.Filters != nil && o.Filters.Sepia
}

// Marshal serializes the request for audit; the result is stored opaquely.
func (o TransformationOptions) Marshal() ([]byte, error) {
	return json.Marshal(o)
}

func IntPtr(v int) *int {
	return &v
}
