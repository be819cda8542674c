package viewport

// Vec is a point or size in pixels.
type Vec struct {
	X, Y float64
}

// Camera is a 2D camera without rotation. Target is the world point shown
// at Offset on the render target; Zoom scales world pixels.
type Camera struct {
	Target Vec
	Offset Vec
	Zoom   float64
}

// NewCamera returns a camera looking at target, centred on a render target
// of renderW x renderH pixels.
func NewCamera(target Vec, renderW, renderH int, zoom float64) Camera {
	return Camera{
		Target: target,
		Offset: Vec{X: float64(renderW) / 2, Y: float64(renderH) / 2},
		Zoom:   zoom,
	}
}

// ScreenToWorld converts a render-target position to world pixels.
func (c Camera) ScreenToWorld(p Vec) Vec {
	zoom := c.Zoom
	if zoom == 0 {
		zoom = 1
	}
	return Vec{
		X: (p.X-c.Offset.X)/zoom + c.Target.X,
		Y: (p.Y-c.Offset.Y)/zoom + c.Target.Y,
	}
}

// WorldToScreen converts world pixels to a render-target position.
func (c Camera) WorldToScreen(p Vec) Vec {
	return Vec{
		X: (p.X-c.Target.X)*c.Zoom + c.Offset.X,
		Y: (p.Y-c.Target.Y)*c.Zoom + c.Offset.Y,
	}
}

// ZoomBy changes the zoom by step, never going below minZoom.
func (c *Camera) ZoomBy(step, minZoom float64) {
	c.Zoom += step
	if c.Zoom < minZoom {
		c.Zoom = minZoom
	}
}

// Pan moves the camera target by (dx, dy) world pixels.
func (c *Camera) Pan(dx, dy float64) {
	c.Target.X += dx
	c.Target.Y += dy
}

// Center points the camera at the middle of a world of w x h pixels.
func (c *Camera) Center(w, h float64) {
	c.Target = Vec{X: w / 2, Y: h / 2}
}
