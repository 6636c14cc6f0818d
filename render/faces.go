package render

import (
	"github.com/lixenwraith/ascii-cube/vmath"
)

// Face describes one cube side as a mapping from the sweep grid to model space
// u and v are the swept coordinates, h is the cube half-width
type Face struct {
	Name  string
	Glyph byte
	Point func(u, v, h float64) vmath.Vec3F
}

// CubeFaces is drawn in order; on equal depth the earlier face keeps the cell
var CubeFaces = [6]Face{
	{"front", '*', func(u, v, h float64) vmath.Vec3F { return vmath.Vec3F{X: u, Y: v, Z: -h} }},
	{"right", '$', func(u, v, h float64) vmath.Vec3F { return vmath.Vec3F{X: h, Y: v, Z: u} }},
	{"left", '~', func(u, v, h float64) vmath.Vec3F { return vmath.Vec3F{X: -h, Y: v, Z: -u} }},
	{"back", '#', func(u, v, h float64) vmath.Vec3F { return vmath.Vec3F{X: -u, Y: v, Z: h} }},
	{"bottom", ';', func(u, v, h float64) vmath.Vec3F { return vmath.Vec3F{X: u, Y: -h, Z: -v} }},
	{"top", '+', func(u, v, h float64) vmath.Vec3F { return vmath.Vec3F{X: u, Y: h, Z: v} }},
}
