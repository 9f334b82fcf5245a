package platform

import (
	"errors"
	"image"

	"github.com/go-gl/glfw/v3.3/glfw"
)

var errCursor = errors.New("platform: cursor creation failed")

// Cursor is a custom mouse cursor image.
type Cursor struct {
	c *glfw.Cursor
}

// NewCursor creates a cursor from img with the hotspot at its top-left.
func NewCursor(img image.Image) (*Cursor, error) {
	c := glfw.CreateCursor(img, 0, 0)
	if c == nil {
		return nil, errCursor
	}
	return &Cursor{c: c}, nil
}

func (c *Cursor) Destroy() {
	if c != nil && c.c != nil {
		c.c.Destroy()
		c.c = nil
	}
}
