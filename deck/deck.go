// Package deck defines the content model for the Campus Analytics
// presentation. Every string, size, and layout weight in a Deck is
// compile-time literal; exporters render the same deck to different
// document formats.
package deck

// Tone selects a palette color for a line of text. The concrete RGB
// values live in each exporter's theme.
type Tone int

const (
	ToneBody Tone = iota // default dark gray body text
	ToneHeading          // navy emphasis
	ToneGood             // green (delivered / passing)
	ToneBad              // red (failure / risk)
)

// Line is one paragraph of slide body text. Size is in design-grid
// points (the 13.33x7.5in authoring canvas); exporters scale it to
// their own canvas. An empty Text with a small Size acts as a spacer.
type Line struct {
	Text string
	Size int
	Bold bool
	Tone Tone
}

// Column is one vertical region of a slide body. A column carries
// either Lines or a preformatted Mono block, never both. Weight is the
// relative width among the slide's columns; zero means equal share.
type Column struct {
	Label  string
	Weight float64
	Lines  []Line
	Mono   string
}

// Table is tabular evidence with a header row. Weights are relative
// column widths; nil means equal columns. Cell text may contain '\n'
// for multi-line cells.
type Table struct {
	Label   string
	Headers []string
	Rows    [][]string
	Weights []float64
}

// Slide is one assertion-evidence content slide: the assertion is the
// slide title, the table and/or columns are the evidence. When both
// are present the table renders above the columns.
type Slide struct {
	Assertion string
	Table     *Table
	Columns   []Column
}

// Deck is the whole presentation: the title-slide fields plus the
// ordered content slides. Rendered output is always 1+len(Slides)
// slides.
type Deck struct {
	Title       string
	Subtitle    string
	Author      string
	Institution string
	Slides      []Slide
}

// SlideCount reports the number of slides an exporter will emit.
func (d Deck) SlideCount() int {
	return 1 + len(d.Slides)
}

// Titles returns the title-slide title followed by each content
// slide's assertion, in render order.
func (d Deck) Titles() []string {
	titles := make([]string, 0, d.SlideCount())
	titles = append(titles, d.Title)
	for _, s := range d.Slides {
		titles = append(titles, s.Assertion)
	}
	return titles
}
