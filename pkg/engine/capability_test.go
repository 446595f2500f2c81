package engine

import (
	"testing"

	"github.com/go-drift/decl/pkg/toolkit"
)

func TestClassify(t *testing.T) {
	r := DefaultRegistry()
	tests := []struct {
		tag    string
		has    Capability
		hasNot Capability
	}{
		{"Column", CapContainer | CapFlexContainer | CapIdentity, CapButton | CapRange | CapText},
		{"Group", CapContainer, CapFlexContainer},
		{"Button", CapButton | CapFrame | CapImage | CapLabelStyle, CapRange | CapText | CapContainer},
		{"TextDisplay", CapText | CapBuffer, CapButton | CapRange},
		{"Input", CapText, CapBuffer},
		{"Slider", CapRange, CapText},
		{"ValueSlider", CapRange | CapText, CapBuffer},
		{"Progress", CapGeometry, CapRange},
		{"Spinner", CapText, CapRange},
		{"Choice", CapText | CapColor, CapButton},
		{"Frame", CapLabel | CapVisibility | CapActivation, CapContainer},
	}
	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			caps, ok := r.Caps(tt.tag)
			if !ok {
				t.Fatalf("%s not registered", tt.tag)
			}
			if !caps.Has(tt.has) {
				t.Errorf("caps %s missing %s", caps, tt.has&^caps)
			}
			if caps&tt.hasNot != 0 {
				t.Errorf("caps %s unexpectedly include %s", caps, caps&tt.hasNot)
			}
			if caps.Has(CapFlexChild) {
				t.Error("parentless handle should not be a flex child")
			}
		})
	}
}

func TestClassify_FlexChildDependsOnParent(t *testing.T) {
	tk := toolkit.New()
	win := tk.NewWindow(100, 100, "")
	col := tk.NewFlex("Column", false)
	inFlex := tk.NewButton("Button")
	col.End()
	g := tk.NewGroup("Group")
	inGroup := tk.NewButton("Button")
	g.End()
	win.End()

	if !Classify(inFlex).Has(CapFlexChild) {
		t.Error("child of a flex should be a flex child")
	}
	if Classify(inGroup).Has(CapFlexChild) {
		t.Error("child of a plain group should not be a flex child")
	}
	if Classify(nil) != 0 {
		t.Error("Classify(nil) should be empty")
	}
}

func TestCapability_String(t *testing.T) {
	tests := []struct {
		c    Capability
		want string
	}{
		{0, "none"},
		{CapIdentity, "identity"},
		{CapButton | CapFrame, "frame|button"},
		{CapRange, "range"},
	}
	for _, tt := range tests {
		if got := tt.c.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
