// Package layout defines the vertex formats handed to a renderer and the
// helpers packing colours and texture coordinates into them.
package layout

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
)

// VertexPNC is a lit, vertex-coloured triangle vertex.
type VertexPNC struct {
	Position mgl32.Vec3
	Normal   mgl32.Vec3
	Colour   uint32
}

// LineVertex is one corner of a ribbon quad. A line-width shader pushes the
// corner along Side times the screen-space perpendicular of Direction.
type LineVertex struct {
	Position  mgl32.Vec3
	Direction mgl32.Vec3
	Colour    uint32
	Texcoord  uint32
	Side      float32
}

// PointVertex is one corner of a camera-facing billboard centred on Position.
type PointVertex struct {
	Position mgl32.Vec3
	Offset   mgl32.Vec2
	Colour   uint32
	Texcoord uint32
}

// Vec3 narrows a mesh vector to the precision of the vertex buffers.
func Vec3(v mgl64.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{float32(v[0]), float32(v[1]), float32(v[2])}
}

func unorm8(x float64) uint32 {
	return uint32(0xff * mgl64.Clamp(x, 0, 1))
}

func unorm16(x float64) uint32 {
	return uint32(0xffff * mgl64.Clamp(x, 0, 1))
}

// RGBToU32 packs an opaque colour with red in the low byte.
func RGBToU32(c mgl64.Vec3) uint32 {
	return unorm8(c[0]) | unorm8(c[1])<<8 | unorm8(c[2])<<16 | 0xff<<24
}

// RGBAToU32 packs a colour with red in the low byte and alpha in the high
// byte.
func RGBAToU32(c mgl64.Vec4) uint32 {
	return unorm8(c[0]) | unorm8(c[1])<<8 | unorm8(c[2])<<16 | unorm8(c[3])<<24
}

// U32ToRGB unpacks the colour channels of a packed colour, dropping alpha.
func U32ToRGB(u uint32) mgl64.Vec3 {
	return U32ToRGBA(u).Vec3()
}

// U32ToRGBA unpacks a colour packed by RGBAToU32.
func U32ToRGBA(u uint32) mgl64.Vec4 {
	return mgl64.Vec4{
		float64(u&0xff) / 0xff,
		float64(u>>8&0xff) / 0xff,
		float64(u>>16&0xff) / 0xff,
		float64(u>>24&0xff) / 0xff,
	}
}

// TexcoordToU32 packs a texture coordinate as two 16-bit unorms, u in the
// low half.
func TexcoordToU32(t mgl64.Vec2) uint32 {
	return unorm16(t[0]) | unorm16(t[1])<<16
}
