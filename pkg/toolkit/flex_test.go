package toolkit

import "testing"

type rect struct{ x, y, w, h int }

func geom(w Widget) rect { return rect{w.X(), w.Y(), w.W(), w.H()} }

func TestFlex_ColumnLayout(t *testing.T) {
	tk := New()
	win := tk.NewWindow(100, 200, "")
	col := tk.NewFlex("Column", false)
	col.Resize(0, 0, 100, 200)
	col.SetMargin(5)
	col.SetPad(10)
	a := tk.NewButton("Button")
	b := tk.NewBox("Frame")
	c := tk.NewButton("Button")
	col.Fixed(a, 40)
	col.Fixed(c, 40)
	col.End()
	win.End()

	tests := []struct {
		name string
		w    Widget
		want rect
	}{
		{"first fixed", a, rect{5, 5, 90, 40}},
		{"flexible", b, rect{5, 55, 90, 90}},
		{"last fixed", c, rect{5, 155, 90, 40}},
	}
	for _, tt := range tests {
		if got := geom(tt.w); got != tt.want {
			t.Errorf("%s: got %+v, want %+v", tt.name, got, tt.want)
		}
	}
}

func TestFlex_RowSharesRemainder(t *testing.T) {
	tk := New()
	win := tk.NewWindow(100, 20, "")
	row := tk.NewFlex("Row", true)
	row.Resize(0, 0, 100, 20)
	a := tk.NewBox("Frame")
	b := tk.NewBox("Frame")
	c := tk.NewBox("Frame")
	row.End()
	win.End()

	if got := []int{a.W(), b.W(), c.W()}; got[0] != 34 || got[1] != 33 || got[2] != 33 {
		t.Errorf("widths = %v, want [34 33 33]", got)
	}
	if c.X() != 67 {
		t.Errorf("third x = %d, want 67", c.X())
	}
}

func TestFlex_HiddenChildrenTakeNoSpace(t *testing.T) {
	tk := New()
	win := tk.NewWindow(100, 100, "")
	col := tk.NewFlex("Column", false)
	col.Resize(0, 0, 100, 100)
	a := tk.NewBox("Frame")
	b := tk.NewBox("Frame")
	a.Hide()
	col.End()
	win.End()

	if b.Y() != 0 || b.H() != 100 {
		t.Errorf("visible child = %+v, want full height", geom(b))
	}
}

func TestFlex_FixedIgnoresForeignWidgets(t *testing.T) {
	tk := New()
	win := tk.NewWindow(100, 100, "")
	col := tk.NewFlex("Column", false)
	col.End()
	other := tk.NewBox("Frame")
	win.End()

	col.Fixed(other, 10)
	if _, ok := col.FixedSize(other); ok {
		t.Error("Fixed should ignore widgets that are not children")
	}
}

func TestFlex_ResizeRelayouts(t *testing.T) {
	tk := New()
	win := tk.NewWindow(100, 100, "")
	col := tk.NewFlex("Column", false)
	a := tk.NewBox("Frame")
	col.End()
	win.End()

	win.FitFirstChild()
	if got := geom(a); got != (rect{0, 0, 100, 100}) {
		t.Errorf("after fit: %+v", got)
	}
}
