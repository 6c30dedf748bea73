package render

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/rosette-field/internal/geom"
)

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// EbitenCanvas draws onto an *ebiten.Image with the vector package.
// It keeps a stack of GeoM transforms applied to every point it is given.
type EbitenCanvas struct {
	dst       *ebiten.Image
	geo       ebiten.GeoM
	stack     []ebiten.GeoM
	antiAlias bool

	// reused across Curve calls
	path     vector.Path
	vertices []ebiten.Vertex
	indices  []uint16
}

// NewEbitenCanvas returns a canvas targeting dst.
func NewEbitenCanvas(dst *ebiten.Image, antiAlias bool) *EbitenCanvas {
	return &EbitenCanvas{dst: dst, antiAlias: antiAlias}
}

// Reset retargets the canvas and clears the transform stack. Call it at
// the start of every frame.
func (c *EbitenCanvas) Reset(dst *ebiten.Image) {
	c.dst = dst
	c.geo.Reset()
	c.stack = c.stack[:0]
}

// Depth reports how many transforms are currently pushed.
func (c *EbitenCanvas) Depth() int {
	return len(c.stack)
}

// Apply maps a point through the current transform.
func (c *EbitenCanvas) Apply(p geom.Vec2) geom.Vec2 {
	x, y := c.geo.Apply(p.X, p.Y)
	return geom.Vec2{X: x, Y: y}
}

func (c *EbitenCanvas) apply32(p geom.Vec2) (float32, float32) {
	x, y := c.geo.Apply(p.X, p.Y)
	return float32(x), float32(y)
}

func (c *EbitenCanvas) PushRotation(angle float64, pivot geom.Vec2) {
	c.stack = append(c.stack, c.geo)
	var r ebiten.GeoM
	r.Translate(-pivot.X, -pivot.Y)
	r.Rotate(angle)
	r.Translate(pivot.X, pivot.Y)
	r.Concat(c.geo)
	c.geo = r
}

func (c *EbitenCanvas) Pop() {
	n := len(c.stack)
	if n == 0 {
		return
	}
	c.geo = c.stack[n-1]
	c.stack = c.stack[:n-1]
}

func (c *EbitenCanvas) FillCircle(center geom.Vec2, radius float64, clr color.Color) {
	if radius <= 0 {
		return
	}
	x, y := c.apply32(center)
	vector.DrawFilledCircle(c.dst, x, y, float32(radius), clr, c.antiAlias)
}

func (c *EbitenCanvas) StrokeCircle(center geom.Vec2, radius, width float64, clr color.Color) {
	if radius <= 0 || width <= 0 {
		return
	}
	x, y := c.apply32(center)
	vector.StrokeCircle(c.dst, x, y, float32(radius), float32(width), clr, c.antiAlias)
}

func (c *EbitenCanvas) Line(from, to geom.Vec2, width float64, clr color.Color) {
	if width <= 0 {
		return
	}
	x0, y0 := c.apply32(from)
	x1, y1 := c.apply32(to)
	vector.StrokeLine(c.dst, x0, y0, x1, y1, float32(width), clr, c.antiAlias)
}

func (c *EbitenCanvas) Curve(points []geom.Vec2, width float64, clr color.Color) {
	segs := CatmullRom(points)
	if len(segs) == 0 || width <= 0 {
		return
	}

	c.path = vector.Path{}
	x, y := c.apply32(segs[0].From)
	c.path.MoveTo(x, y)
	for _, s := range segs {
		x1, y1 := c.apply32(s.C1)
		x2, y2 := c.apply32(s.C2)
		x3, y3 := c.apply32(s.To)
		c.path.CubicTo(x1, y1, x2, y2, x3, y3)
	}

	c.vertices, c.indices = c.path.AppendVerticesAndIndicesForStroke(c.vertices[:0], c.indices[:0], &vector.StrokeOptions{
		Width:    float32(width),
		LineJoin: vector.LineJoinRound,
		LineCap:  vector.LineCapRound,
	})

	r, g, b, a := clr.RGBA()
	for i := range c.vertices {
		v := &c.vertices[i]
		v.SrcX, v.SrcY = 1, 1
		// clr.RGBA is already premultiplied
		v.ColorR = float32(r) / 0xffff
		v.ColorG = float32(g) / 0xffff
		v.ColorB = float32(b) / 0xffff
		v.ColorA = float32(a) / 0xffff
	}

	c.dst.DrawTriangles(c.vertices, c.indices, whiteSubImage, &ebiten.DrawTrianglesOptions{
		AntiAlias:      c.antiAlias,
		ColorScaleMode: ebiten.ColorScaleModePremultipliedAlpha,
	})
}
