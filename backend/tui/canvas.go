package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/go-theft-auto/audiogui"
)

const upperHalfBlock = "▀"

// Canvas is an audiogui.Renderer that rasterizes triangles into a pixel grid
// and prints it with upper half blocks, two pixels per cell.
type Canvas struct {
	width, height int // In pixels
	background    uint32
	pixels        []uint32
	styles        map[[2]uint32]lipgloss.Style
}

var _ audiogui.Renderer = (*Canvas)(nil)

// NewCanvas creates a canvas covering cols x rows terminal cells.
func NewCanvas(cols, rows int, background uint32) *Canvas {
	c := &Canvas{
		background: background | 0xFF000000,
		styles:     make(map[[2]uint32]lipgloss.Style),
	}
	c.Resize(cols, rows*PixelsPerCell)
	return c
}

// Resize sets the canvas size in pixels. Height is rounded up to whole cells.
func (c *Canvas) Resize(width, height int) {
	if height%PixelsPerCell != 0 {
		height += PixelsPerCell - height%PixelsPerCell
	}
	c.width, c.height = max(width, 0), max(height, 0)
	c.pixels = make([]uint32, c.width*c.height)
	c.clear()
}

// Size returns the canvas size in pixels.
func (c *Canvas) Size() (width, height int) {
	return c.width, c.height
}

// At returns the color of a pixel, or 0 outside the canvas.
func (c *Canvas) At(x, y int) uint32 {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return 0
	}
	return c.pixels[y*c.width+x]
}

func (c *Canvas) clear() {
	for i := range c.pixels {
		c.pixels[i] = c.background
	}
}

// Render replaces the canvas content with dl.
func (c *Canvas) Render(dl *audiogui.DrawList) error {
	c.clear()
	if dl == nil {
		return nil
	}
	for _, cmd := range dl.CmdBuffer {
		end := int(cmd.IndexOffset + cmd.ElemCount)
		if end > len(dl.IdxBuffer) {
			return fmt.Errorf("draw command indexes %d past buffer of %d", end, len(dl.IdxBuffer))
		}
		for i := int(cmd.IndexOffset); i+2 < end; i += 3 {
			var tri [3]audiogui.Vertex
			for k := range tri {
				vi := int(cmd.VertexOffset) + int(dl.IdxBuffer[i+k])
				if vi >= len(dl.VtxBuffer) {
					return fmt.Errorf("vertex index %d past buffer of %d", vi, len(dl.VtxBuffer))
				}
				tri[k] = dl.VtxBuffer[vi]
			}
			c.fillTriangle(tri, cmd.ClipRect)
		}
	}
	return nil
}

// fillTriangle colors every pixel whose center lies inside the triangle and
// the clip rectangle.
func (c *Canvas) fillTriangle(tri [3]audiogui.Vertex, clip [4]float32) {
	a, b, d := tri[0].Pos, tri[1].Pos, tri[2].Pos
	area := edge(a, b, d)
	if area == 0 {
		return
	}

	minX := max(min(a[0], b[0], d[0]), clip[0], 0)
	minY := max(min(a[1], b[1], d[1]), clip[1], 0)
	maxX := min(max(a[0], b[0], d[0]), clip[2], float32(c.width))
	maxY := min(max(a[1], b[1], d[1]), clip[3], float32(c.height))

	color := tri[0].Color
	for y := int(minY); y < int(maxY+1) && y < c.height; y++ {
		for x := int(minX); x < int(maxX+1) && x < c.width; x++ {
			p := [2]float32{float32(x) + 0.5, float32(y) + 0.5}
			if p[0] < clip[0] || p[0] >= clip[2] || p[1] < clip[1] || p[1] >= clip[3] {
				continue
			}
			w0, w1, w2 := edge(b, d, p), edge(d, a, p), edge(a, b, p)
			if area < 0 {
				w0, w1, w2 = -w0, -w1, -w2
			}
			if w0 >= 0 && w1 >= 0 && w2 >= 0 {
				i := y*c.width + x
				c.pixels[i] = blend(c.pixels[i], color)
			}
		}
	}
}

func edge(a, b, p [2]float32) float32 {
	return (b[0]-a[0])*(p[1]-a[1]) - (b[1]-a[1])*(p[0]-a[0])
}

// blend composites src over an opaque dst.
func blend(dst, src uint32) uint32 {
	sr, sg, sb, sa := audiogui.UnpackRGBA(src)
	if sa == 255 {
		return src
	}
	dr, dg, db, _ := audiogui.UnpackRGBA(dst)
	mix := func(s, d uint8) uint8 {
		return uint8((int(s)*int(sa) + int(d)*(255-int(sa))) / 255)
	}
	return audiogui.RGBA(mix(sr, dr), mix(sg, dg), mix(sb, db), 255)
}

func hexColor(c uint32) lipgloss.Color {
	r, g, b, _ := audiogui.UnpackRGBA(c)
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", r, g, b))
}

func (c *Canvas) style(top, bottom uint32) lipgloss.Style {
	key := [2]uint32{top, bottom}
	if st, ok := c.styles[key]; ok {
		return st
	}
	st := lipgloss.NewStyle().Foreground(hexColor(top)).Background(hexColor(bottom))
	c.styles[key] = st
	return st
}

// String renders the canvas as terminal lines.
func (c *Canvas) String() string {
	var sb strings.Builder
	for y := 0; y < c.height; y += PixelsPerCell {
		if y > 0 {
			sb.WriteByte('\n')
		}
		// Runs of identical cells share one styled segment.
		for x := 0; x < c.width; {
			top, bottom := c.At(x, y), c.At(x, y+1)
			n := 1
			for x+n < c.width && c.At(x+n, y) == top && c.At(x+n, y+1) == bottom {
				n++
			}
			sb.WriteString(c.style(top, bottom).Render(strings.Repeat(upperHalfBlock, n)))
			x += n
		}
	}
	return sb.String()
}
