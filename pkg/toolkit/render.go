package toolkit

import (
	"bufio"
	"bytes"
	"encoding/base64"
	"encoding/xml"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/lucasb-eyer/go-colorful"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// shade returns c blended toward black (amount > 0) or white (amount < 0).
func shade(c Color, amount float64) Color {
	r, g, b, _ := c.RGBA8()
	base := colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
	target := colorful.Color{}
	if amount < 0 {
		target = colorful.Color{R: 1, G: 1, B: 1}
		amount = -amount
	}
	r2, g2, b2 := base.BlendRgb(target, amount).Clamped().RGB255()
	return RGB(r2, g2, b2)
}

// paintable returns the widgets drawn for root: everything not hidden and not
// deleted, parents before children.
func paintable(root Widget) []Widget {
	var out []Widget
	Walk(root, func(w Widget, _ int) bool {
		if !w.Visible() || w.Deleted() {
			return false
		}
		out = append(out, w)
		return true
	})
	return out
}

// content returns the text drawn inside a widget in addition to its label.
func content(w Widget) string {
	switch v := w.(type) {
	case *TextView:
		if v.Buffer() != nil {
			return v.Buffer().Text()
		}
	case *Input:
		return v.Value()
	case *Menu:
		return v.Choice()
	case *HelpView:
		return v.Value()
	case *InputChoice:
		return v.Value()
	}
	return ""
}

func fillOf(w Widget) (Color, bool) {
	c := w.core()
	if !c.frame.style().fill {
		return 0, false
	}
	col := c.color
	if b, ok := w.(*Button); ok && b.Value() {
		col = c.selectionColor
	}
	if c.inactive {
		col = shade(col, -0.4)
	}
	return col, true
}

func imageOf(c *Core) image.Image {
	if c.inactive && c.deimg != nil {
		return c.deimg
	}
	return c.img
}

// WriteSVG writes an SVG rendering of root and its visible descendants.
func WriteSVG(w io.Writer, root Widget) error {
	bw := bufio.NewWriter(w)
	ox, oy := root.X(), root.Y()
	fmt.Fprintf(bw, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`+"\n",
		root.W(), root.H(), root.W(), root.H())
	for _, wd := range paintable(root) {
		c := wd.core()
		x, y := c.x-ox, c.y-oy
		fill, hasFill := fillOf(wd)
		border := c.frame.style().border
		if hasFill || border {
			fillAttr := "none"
			if hasFill {
				fillAttr = fill.Hex()
			}
			fmt.Fprintf(bw, `  <rect x="%d" y="%d" width="%d" height="%d" fill="%s"`, x, y, c.w, c.h, fillAttr)
			if border {
				fmt.Fprintf(bw, ` stroke="%s"`, shade(c.color, 0.5).Hex())
			}
			bw.WriteString("/>\n")
		}
		if img := imageOf(c); img != nil {
			var buf bytes.Buffer
			if err := png.Encode(&buf, img); err != nil {
				return fmt.Errorf("encode image of %s: %w", c.kind, err)
			}
			fmt.Fprintf(bw, `  <image x="%d" y="%d" width="%d" height="%d" href="data:image/png;base64,%s"/>`+"\n",
				x, y, c.w, c.h, base64.StdEncoding.EncodeToString(buf.Bytes()))
		}
		for i, text := range []string{c.label, content(wd)} {
			if text == "" {
				continue
			}
			col, size := c.labelColor, c.labelSize
			if ts, ok := wd.(interface{ TextColor() Color }); ok && i == 1 {
				col = ts.TextColor()
			}
			ty := y + c.h/2 + size/3
			if i == 1 {
				ty = y + size + 2
			}
			fmt.Fprintf(bw, `  <text x="%d" y="%d" font-family="%s" font-size="%d" fill="%s" text-anchor="middle">`,
				x+c.w/2, ty, c.labelFont, size, col.Hex())
			if err := xml.EscapeText(bw, []byte(text)); err != nil {
				return err
			}
			bw.WriteString("</text>\n")
		}
	}
	bw.WriteString("</svg>\n")
	return bw.Flush()
}

// Rasterize draws root and its visible descendants into a new image. Labels
// use a fixed 7x13 bitmap face regardless of font and size.
func Rasterize(root Widget) *image.RGBA {
	ox, oy := root.X(), root.Y()
	dst := image.NewRGBA(image.Rect(0, 0, max(root.W(), 1), max(root.H(), 1)))
	xdraw.Draw(dst, dst.Bounds(), image.NewUniform(color.White), image.Point{}, xdraw.Src)
	for _, wd := range paintable(root) {
		c := wd.core()
		r := image.Rect(c.x-ox, c.y-oy, c.x-ox+c.w, c.y-oy+c.h)
		if fill, ok := fillOf(wd); ok {
			xdraw.Draw(dst, r, image.NewUniform(fill), image.Point{}, xdraw.Over)
		}
		if c.frame.style().border {
			strokeRect(dst, r, shade(c.color, 0.5))
		}
		if img := imageOf(c); img != nil {
			xdraw.ApproxBiLinear.Scale(dst, r, img, img.Bounds(), xdraw.Over, nil)
		}
		if c.label != "" {
			drawText(dst, r, c.label, c.labelColor, r.Min.Y+(r.Dy()+10)/2)
		}
		if text := content(wd); text != "" {
			col := c.labelColor
			if ts, ok := wd.(interface{ TextColor() Color }); ok {
				col = ts.TextColor()
			}
			drawText(dst, r, text, col, r.Min.Y+13)
		}
	}
	return dst
}

// WritePNG writes a raster rendering of root as PNG.
func WritePNG(w io.Writer, root Widget) error {
	return png.Encode(w, Rasterize(root))
}

func strokeRect(dst *image.RGBA, r image.Rectangle, c Color) {
	if r.Empty() {
		return
	}
	u := image.NewUniform(c)
	for _, edge := range []image.Rectangle{
		image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+1),
		image.Rect(r.Min.X, r.Max.Y-1, r.Max.X, r.Max.Y),
		image.Rect(r.Min.X, r.Min.Y, r.Min.X+1, r.Max.Y),
		image.Rect(r.Max.X-1, r.Min.Y, r.Max.X, r.Max.Y),
	} {
		xdraw.Draw(dst, edge, u, image.Point{}, xdraw.Src)
	}
}

func drawText(dst *image.RGBA, r image.Rectangle, text string, c Color, baseline int) {
	d := &font.Drawer{
		Dst:  dst.SubImage(r).(*image.RGBA),
		Src:  image.NewUniform(c),
		Face: basicfont.Face7x13,
	}
	width := d.MeasureString(text).Ceil()
	d.Dot = fixed.P(r.Min.X+(r.Dx()-width)/2, baseline)
	d.DrawString(text)
}
