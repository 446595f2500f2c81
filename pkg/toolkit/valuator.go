package toolkit

import (
	"math"
	"strings"
)

// Valuator is a numeric range control: sliders, dials, counters, rollers,
// scrollbars and adjusters.
type Valuator struct {
	Core
	min, max   float64
	step       float64
	value      float64
	sliderSize float64
	horizontal bool
}

// NewValuator creates a range control of the given kind in the current group.
func (tk *Toolkit) NewValuator(kind string) *Valuator {
	v := &Valuator{}
	v.initValuator(tk, v, kind)
	return v
}

func (v *Valuator) initValuator(tk *Toolkit, self Widget, kind string) {
	v.max = 1
	v.horizontal = strings.HasPrefix(kind, "Hor")
	v.init(tk, self, kind)
	v.frame = DownBox
}

func (v *Valuator) Minimum() float64       { return v.min }
func (v *Valuator) SetMinimum(min float64) { v.min = min }
func (v *Valuator) Maximum() float64       { return v.max }
func (v *Valuator) SetMaximum(max float64) { v.max = max }
func (v *Valuator) Horizontal() bool       { return v.horizontal }
func (v *Valuator) Value() float64         { return v.value }
func (v *Valuator) SliderSize() float64    { return v.sliderSize }

// Step returns the value increment; 0 means continuous.
func (v *Valuator) Step() float64 { return v.step }

// SetStep sets the increment to a/b. A non-positive denominator is ignored.
func (v *Valuator) SetStep(a float64, b int) {
	if b <= 0 {
		return
	}
	v.step = a / float64(b)
}

// SetSliderSize sets the thumb size as a fraction of the track, clamped to
// [0, 1].
func (v *Valuator) SetSliderSize(size float64) {
	v.sliderSize = math.Min(math.Max(size, 0), 1)
}

// SetValue clamps val to the range and rounds it to the step.
func (v *Valuator) SetValue(val float64) {
	lo, hi := v.min, v.max
	if lo > hi {
		lo, hi = hi, lo
	}
	if v.step > 0 {
		val = v.min + math.Round((val-v.min)/v.step)*v.step
	}
	v.value = math.Min(math.Max(val, lo), hi)
}

// Slide simulates the user moving the control and fires the callback.
func (v *Valuator) Slide(val float64) bool {
	if !v.Interactive() {
		return false
	}
	v.SetValue(val)
	v.DoCallback()
	return true
}

// TextValuator is a range control that also draws its value as text
// (ValueSlider, ValueInput, ValueOutput).
type TextValuator struct {
	Valuator
	TextStyle
}

// NewTextValuator creates a text-drawing range control in the current group.
func (tk *Toolkit) NewTextValuator(kind string) *TextValuator {
	v := &TextValuator{TextStyle: defaultTextStyle()}
	v.initValuator(tk, v, kind)
	return v
}
