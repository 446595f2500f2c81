package toolkit

import "strings"

// Box is a passive widget that only draws its frame, image and label.
type Box struct {
	Core
}

// NewBox creates a box of the given kind in the current group.
func (tk *Toolkit) NewBox(kind string) *Box {
	b := &Box{}
	b.init(tk, b, kind)
	return b
}

// Menu is a menu bar or a drop-down choice.
type Menu struct {
	Core
	TextStyle
	items []string
	value int
}

// NewMenu creates a menu of the given kind in the current group.
func (tk *Toolkit) NewMenu(kind string) *Menu {
	m := &Menu{TextStyle: defaultTextStyle(), value: -1}
	m.init(tk, m, kind)
	m.frame = UpBox
	return m
}

// Add appends one item.
func (m *Menu) Add(item string) { m.items = append(m.items, item) }

// AddChoice appends the "|"-separated items of choices.
func (m *Menu) AddChoice(choices string) {
	for _, c := range strings.Split(choices, "|") {
		if c != "" {
			m.Add(c)
		}
	}
}

func (m *Menu) Items() []string { return m.items }
func (m *Menu) Value() int      { return m.value }

// SetValue selects item i. It reports false when i is out of range.
func (m *Menu) SetValue(i int) bool {
	if i < 0 || i >= len(m.items) {
		return false
	}
	m.value = i
	return true
}

// Choice returns the selected item's text, or "".
func (m *Menu) Choice() string {
	if m.value < 0 || m.value >= len(m.items) {
		return ""
	}
	return m.items[m.value]
}

// Pick simulates the user selecting item i and fires the callback.
func (m *Menu) Pick(i int) bool {
	if !m.Interactive() || !m.SetValue(i) {
		return false
	}
	m.DoCallback()
	return true
}

// Browser is a scrolling list of lines.
type Browser struct {
	Core
	lines    []string
	selected int
}

// NewBrowser creates a browser of the given kind in the current group.
func (tk *Toolkit) NewBrowser(kind string) *Browser {
	b := &Browser{}
	b.initBrowser(tk, b, kind)
	return b
}

func (b *Browser) initBrowser(tk *Toolkit, self Widget, kind string) {
	b.init(tk, self, kind)
	b.frame = DownBox
	b.color = ColorWhite
}

func (b *Browser) Add(line string) { b.lines = append(b.lines, line) }
func (b *Browser) Lines() []string { return b.lines }
func (b *Browser) Selected() int   { return b.selected }
func (b *Browser) Select(line int) { b.selected = line }
func (b *Browser) Clear()          { b.lines, b.selected = nil, 0 }

// CheckBrowser is a browser with a check box per line.
type CheckBrowser struct {
	Browser
	TextStyle
}

// NewCheckBrowser creates a check browser in the current group.
func (tk *Toolkit) NewCheckBrowser(kind string) *CheckBrowser {
	b := &CheckBrowser{TextStyle: defaultTextStyle()}
	b.initBrowser(tk, b, kind)
	return b
}

// Table is a grid of cells.
type Table struct {
	Core
	rows, cols int
}

// NewTable creates a table of the given kind in the current group.
func (tk *Toolkit) NewTable(kind string) *Table {
	t := &Table{}
	t.init(tk, t, kind)
	t.frame = DownBox
	return t
}

func (t *Table) Rows() int     { return t.rows }
func (t *Table) SetRows(n int) { t.rows = max(n, 0) }
func (t *Table) Cols() int     { return t.cols }
func (t *Table) SetCols(n int) { t.cols = max(n, 0) }

// Tree shows "/"-separated item paths as a hierarchy.
type Tree struct {
	Core
	items []string
}

// NewTree creates a tree in the current group.
func (tk *Toolkit) NewTree(kind string) *Tree {
	t := &Tree{}
	t.init(tk, t, kind)
	t.frame = DownBox
	t.color = ColorWhite
	return t
}

func (t *Tree) Add(path string) { t.items = append(t.items, path) }
func (t *Tree) Items() []string { return t.items }

// Progress is a progress bar.
type Progress struct {
	Core
	min, max, value float64
}

// NewProgress creates a progress bar in the current group.
func (tk *Toolkit) NewProgress(kind string) *Progress {
	p := &Progress{max: 100}
	p.init(tk, p, kind)
	p.frame = DownBox
	return p
}

func (p *Progress) Minimum() float64       { return p.min }
func (p *Progress) SetMinimum(min float64) { p.min = min }
func (p *Progress) Maximum() float64       { return p.max }
func (p *Progress) SetMaximum(max float64) { p.max = max }
func (p *Progress) Value() float64         { return p.value }
func (p *Progress) SetValue(v float64)     { p.value = v }

// Spinner is a numeric input with up/down arrows.
type Spinner struct {
	Core
	TextStyle
	min, max, step, value float64
}

// NewSpinner creates a spinner in the current group.
func (tk *Toolkit) NewSpinner(kind string) *Spinner {
	s := &Spinner{TextStyle: defaultTextStyle(), max: 100, step: 1, value: 1}
	s.init(tk, s, kind)
	s.frame = DownBox
	return s
}

func (s *Spinner) Minimum() float64       { return s.min }
func (s *Spinner) SetMinimum(min float64) { s.min = min }
func (s *Spinner) Maximum() float64       { return s.max }
func (s *Spinner) SetMaximum(max float64) { s.max = max }
func (s *Spinner) Step() float64          { return s.step }
func (s *Spinner) SetStep(step float64)   { s.step = step }
func (s *Spinner) Value() float64         { return s.value }
func (s *Spinner) SetValue(v float64)     { s.value = v }

// ChartEntry is one data point of a Chart.
type ChartEntry struct {
	Value float64
	Label string
	Color Color
}

// Chart draws a simple bar or line chart.
type Chart struct {
	Core
	TextStyle
	entries []ChartEntry
}

// NewChart creates a chart in the current group.
func (tk *Toolkit) NewChart(kind string) *Chart {
	c := &Chart{TextStyle: defaultTextStyle()}
	c.init(tk, c, kind)
	return c
}

func (c *Chart) Add(e ChartEntry)      { c.entries = append(c.entries, e) }
func (c *Chart) Entries() []ChartEntry { return c.entries }

// HelpView renders a small subset of HTML.
type HelpView struct {
	Core
	TextStyle
	value string
}

// NewHelpView creates a help view in the current group.
func (tk *Toolkit) NewHelpView(kind string) *HelpView {
	h := &HelpView{TextStyle: defaultTextStyle()}
	h.init(tk, h, kind)
	h.frame = DownBox
	return h
}

func (h *HelpView) Value() string     { return h.value }
func (h *HelpView) SetValue(v string) { h.value = v }

// InputChoice is a text input with a drop-down of suggestions.
type InputChoice struct {
	Core
	TextStyle
	items []string
	value string
}

// NewInputChoice creates an input choice in the current group.
func (tk *Toolkit) NewInputChoice(kind string) *InputChoice {
	ic := &InputChoice{TextStyle: defaultTextStyle()}
	ic.init(tk, ic, kind)
	ic.frame = DownBox
	return ic
}

func (ic *InputChoice) Add(item string)   { ic.items = append(ic.items, item) }
func (ic *InputChoice) Items() []string   { return ic.items }
func (ic *InputChoice) Value() string     { return ic.value }
func (ic *InputChoice) SetValue(v string) { ic.value = v }
