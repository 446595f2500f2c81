package toolkit

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"
)

func renderTree(t *testing.T) (*Window, *Button, *Box) {
	t.Helper()
	tk := New()
	win := tk.NewWindow(120, 80, "render")
	col := tk.NewFlex("Column", false)
	btn := tk.NewButton("Button")
	btn.SetLabel("a<b")
	btn.SetColor(RGB(255, 0, 0))
	hidden := tk.NewBox("Frame")
	hidden.SetLabel("secret")
	hidden.Hide()
	col.End()
	win.End()
	win.FitFirstChild()
	return win, btn, hidden
}

func TestWriteSVG(t *testing.T) {
	win, _, _ := renderTree(t)
	var buf bytes.Buffer
	if err := WriteSVG(&buf, win); err != nil {
		t.Fatalf("WriteSVG: %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		`<svg xmlns="http://www.w3.org/2000/svg" width="120" height="80"`,
		`fill="#ff0000"`,
		`a&lt;b</text>`,
		`</svg>`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("SVG missing %q\n%s", want, out)
		}
	}
	if strings.Contains(out, "secret") {
		t.Error("hidden widget was rendered")
	}
}

func TestRasterize_FillsWidgets(t *testing.T) {
	win, btn, _ := renderTree(t)
	img := Rasterize(win)
	if img.Bounds() != image.Rect(0, 0, 120, 80) {
		t.Fatalf("bounds = %v", img.Bounds())
	}
	// Inside the button, away from the border and the label.
	r, g, b, _ := img.At(btn.X()+3, btn.Y()+3).RGBA()
	if r>>8 != 255 || g>>8 != 0 || b>>8 != 0 {
		t.Errorf("pixel = %d,%d,%d; want red", r>>8, g>>8, b>>8)
	}
}

func TestWritePNG_Decodes(t *testing.T) {
	win, _, _ := renderTree(t)
	var buf bytes.Buffer
	if err := WritePNG(&buf, win); err != nil {
		t.Fatalf("WritePNG: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if img.Bounds().Dx() != 120 {
		t.Errorf("width = %d", img.Bounds().Dx())
	}
}

func TestWriteSVG_EmbedsImages(t *testing.T) {
	tk := New()
	win := tk.NewWindow(10, 10, "")
	box := tk.NewBox("Frame")
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.Black)
	box.SetImage(img)
	win.End()

	var buf bytes.Buffer
	if err := WriteSVG(&buf, win); err != nil {
		t.Fatalf("WriteSVG: %v", err)
	}
	if !strings.Contains(buf.String(), `href="data:image/png;base64,`) {
		t.Error("image not embedded")
	}
}

func TestFileImageLoader(t *testing.T) {
	dir := t.TempDir()
	src := image.NewRGBA(image.Rect(0, 0, 3, 2))
	var buf bytes.Buffer
	if err := png.Encode(&buf, src); err != nil {
		t.Fatal(err)
	}
	writeFile(t, dir, "icon.png", buf.Bytes())

	img, err := FileImageLoader{Dir: dir}.LoadImage("icon.png")
	if err != nil {
		t.Fatalf("LoadImage: %v", err)
	}
	if img.Bounds().Dx() != 3 || img.Bounds().Dy() != 2 {
		t.Errorf("bounds = %v", img.Bounds())
	}
	if _, err := (FileImageLoader{Dir: dir}).LoadImage("missing.png"); err == nil {
		t.Error("missing file should fail")
	}
	writeFile(t, dir, "bad.png", []byte("not an image"))
	if _, err := (FileImageLoader{Dir: dir}).LoadImage("bad.png"); err == nil {
		t.Error("garbage should fail to decode")
	}
}
