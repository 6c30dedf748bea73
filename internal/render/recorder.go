package render

import (
	"image/color"

	"github.com/iburimskiy/rosette-field/internal/geom"
)

// OpKind identifies a recorded drawing call.
type OpKind uint8

const (
	OpFillCircle OpKind = iota
	OpStrokeCircle
	OpLine
	OpCurve
	OpPush
	OpPop
)

func (k OpKind) String() string {
	switch k {
	case OpFillCircle:
		return "fill"
	case OpStrokeCircle:
		return "stroke"
	case OpLine:
		return "line"
	case OpCurve:
		return "curve"
	case OpPush:
		return "push"
	case OpPop:
		return "pop"
	}
	return "unknown"
}

// Op is one recorded call. Points holds the center for circles, both ends
// for lines, every point for curves and the pivot for pushes.
type Op struct {
	Kind   OpKind
	Points []geom.Vec2
	Radius float64
	Width  float64
	Angle  float64
	Color  color.NRGBA
}

// Recorder is a Canvas that remembers calls instead of drawing. Points are
// recorded untransformed.
type Recorder struct {
	Ops      []Op
	depth    int
	MaxDepth int
}

func nrgba(clr color.Color) color.NRGBA {
	return color.NRGBAModel.Convert(clr).(color.NRGBA)
}

func (r *Recorder) FillCircle(center geom.Vec2, radius float64, clr color.Color) {
	r.Ops = append(r.Ops, Op{Kind: OpFillCircle, Points: []geom.Vec2{center}, Radius: radius, Color: nrgba(clr)})
}

func (r *Recorder) StrokeCircle(center geom.Vec2, radius, width float64, clr color.Color) {
	r.Ops = append(r.Ops, Op{Kind: OpStrokeCircle, Points: []geom.Vec2{center}, Radius: radius, Width: width, Color: nrgba(clr)})
}

func (r *Recorder) Line(from, to geom.Vec2, width float64, clr color.Color) {
	r.Ops = append(r.Ops, Op{Kind: OpLine, Points: []geom.Vec2{from, to}, Width: width, Color: nrgba(clr)})
}

func (r *Recorder) Curve(points []geom.Vec2, width float64, clr color.Color) {
	pts := append([]geom.Vec2(nil), points...)
	r.Ops = append(r.Ops, Op{Kind: OpCurve, Points: pts, Width: width, Color: nrgba(clr)})
}

func (r *Recorder) PushRotation(angle float64, pivot geom.Vec2) {
	r.depth++
	r.MaxDepth = max(r.MaxDepth, r.depth)
	r.Ops = append(r.Ops, Op{Kind: OpPush, Points: []geom.Vec2{pivot}, Angle: angle})
}

func (r *Recorder) Pop() {
	r.depth--
	r.Ops = append(r.Ops, Op{Kind: OpPop})
}

// Depth is the current push depth. A balanced frame ends at zero.
func (r *Recorder) Depth() int { return r.depth }

// Count returns how many ops of kind k were recorded.
func (r *Recorder) Count(k OpKind) int {
	n := 0
	for _, op := range r.Ops {
		if op.Kind == k {
			n++
		}
	}
	return n
}

// Reset drops all recorded ops.
func (r *Recorder) Reset() {
	r.Ops = r.Ops[:0]
	r.depth = 0
	r.MaxDepth = 0
}
