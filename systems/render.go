package systems

import (
	"image"
	"image/color"

	cfg "github.com/playpop/wordpop/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// Shared 1x1 white source for DrawTriangles-based fills (gradient sky,
// knot triangles).
var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// DrawSky fills the screen with the vertical sky gradient using per-vertex
// colors on two triangles.
func DrawSky(e *ecs.ECS, screen *ebiten.Image) {
	w := float32(cfg.C.Width)
	h := float32(cfg.C.Height)

	top := rgbaToScale(cfg.Sky.Top)
	bottom := rgbaToScale(cfg.Sky.Bottom)

	vs := []ebiten.Vertex{
		vertex(0, 0, top),
		vertex(w, 0, top),
		vertex(0, h, bottom),
		vertex(w, h, bottom),
	}
	is := []uint16{0, 1, 2, 1, 3, 2}
	screen.DrawTriangles(vs, is, whiteSubImage, nil)
}

func fillTriangle(dst *ebiten.Image, x0, y0, x1, y1, x2, y2 float64, clr color.RGBA) {
	c := rgbaToScale(clr)
	vs := []ebiten.Vertex{
		vertex(float32(x0), float32(y0), c),
		vertex(float32(x1), float32(y1), c),
		vertex(float32(x2), float32(y2), c),
	}
	is := []uint16{0, 1, 2}
	dst.DrawTriangles(vs, is, whiteSubImage, nil)
}

type colorScale struct {
	r, g, b, a float32
}

func rgbaToScale(c color.RGBA) colorScale {
	return colorScale{
		r: float32(c.R) / 255,
		g: float32(c.G) / 255,
		b: float32(c.B) / 255,
		a: float32(c.A) / 255,
	}
}

func vertex(x, y float32, c colorScale) ebiten.Vertex {
	return ebiten.Vertex{
		DstX:   x,
		DstY:   y,
		SrcX:   1,
		SrcY:   1,
		ColorR: c.r,
		ColorG: c.g,
		ColorB: c.b,
		ColorA: c.a,
	}
}
