// Package trail draws the accumulated path of a driver, one sample per tick.
//
// Each renderer owns its layer exclusively. Once the series of a driver is
// exhausted Advance is a no-op and the layer stays as it is.
package trail

import (
	"image"
)

type Renderer interface {
	// Advance draws the segment belonging to tick into the layer
	Advance(tick int)
	// Snapshot returns the layer itself, callers must not modify it
	Snapshot() *image.NRGBA
}
