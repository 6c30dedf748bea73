package field

import (
	"github.com/iburimskiy/rosette-field/internal/ornament"
)

// Field is the ordered ornament collection covering one viewport size.
// Later ornaments draw over earlier ones. A Field is replaced, not edited,
// when the viewport changes.
type Field struct {
	ornaments []*ornament.Ornament
	width     int
	height    int
}

// Build lays out the viewport and creates one ornament per position.
func Build(width, height int, p Params, opts ornament.Options, r ornament.Rand) Field {
	positions := Positions(width, height, p)
	f := Field{
		ornaments: make([]*ornament.Ornament, 0, len(positions)),
		width:     width,
		height:    height,
	}
	for _, pos := range positions {
		f.ornaments = append(f.ornaments, ornament.New(pos, opts, r))
	}
	return f
}

// Len returns the number of ornaments.
func (f Field) Len() int { return len(f.ornaments) }

// At returns the i-th ornament in draw order.
func (f Field) At(i int) *ornament.Ornament { return f.ornaments[i] }

// Ornaments returns the ornaments in draw order.
func (f Field) Ornaments() []*ornament.Ornament { return f.ornaments }

// Size returns the viewport the field was built for.
func (f Field) Size() (int, int) { return f.width, f.height }
