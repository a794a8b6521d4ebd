package export

import (
	"bytes"
	"fmt"
	"strings"

	ppt "github.com/VantageDataChat/GoPPT"

	"github.com/psu-edu/sweng861-crud-jzt5803/deck"
)

// GoPPTService renders a deck to PowerPoint using GoPPT (pure Go, zero
// dependencies).
type GoPPTService struct{}

// NewGoPPTService creates a new GoPPT service
func NewGoPPTService() *GoPPTService {
	return &GoPPTService{}
}

// PPT layout constants. The deck is authored on a 13.33x7.5in design
// grid; GoPPT's default layout is 10x5.625in (same 16:9 ratio), so
// design coordinates and point sizes scale by 0.75.
const (
	emuPerInch  = 914400
	designScale = 0.75

	// design grid (inches)
	designSlideWidth  = 13.33
	designSlideHeight = 7.5
	designMarginX     = 0.3
	designContentW    = designSlideWidth - 2*designMarginX
	designLabelTop    = 1.15
	designBodyBottom  = 7.3

	// font sizes (design-grid pt)
	pptFontTitle        = 44
	pptFontSubtitle     = 22
	pptFontAuthor       = 20
	pptFontInstitution  = 15
	pptFontAssertion    = 22
	pptFontSectionLabel = 12
	pptFontTableHead    = 11
	pptFontTableCell    = 10

	// mono diagram blocks render at a fixed writer-canvas size
	pptFontMono = 7
)

// emu converts a design-grid inch coordinate to writer EMU.
func emu(designInches float64) int64 {
	return int64(designInches * designScale * emuPerInch)
}

// scalePt converts a design-grid point size to a writer point size.
func scalePt(designPt int) int {
	p := int(float64(designPt)*designScale + 0.5)
	if p < 1 {
		p = 1
	}
	return p
}

// helper: create a solid fill
func solidFill(argbColor string) *ppt.Fill {
	return ppt.NewFill().SetSolid(ppt.NewColor(argbColor))
}

// helper: set paragraph alignment to center
func alignCenter(p *ppt.Paragraph) {
	p.SetAlignment(ppt.NewAlignment().SetHorizontal(ppt.HorizontalCenter))
}

// Export renders the deck and returns the serialized PPTX.
func (s *GoPPTService) Export(d deck.Deck) ([]byte, error) {
	p := ppt.New()
	p.GetDocumentProperties().Title = d.Title
	p.GetDocumentProperties().Creator = d.Author

	s.addTitleSlide(p, d)
	for i := range d.Slides {
		s.addContentSlide(p, &d.Slides[i])
	}

	w, err := ppt.NewWriter(p, ppt.WriterPowerPoint2007)
	if err != nil {
		return nil, fmt.Errorf("failed to create PPT writer: %w", err)
	}

	var buf bytes.Buffer
	if err := w.(*ppt.PPTXWriter).WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to save PPT: %w", err)
	}

	return buf.Bytes(), nil
}

// rect draws a filled rectangle, the building block for backgrounds,
// decor bars, and dividers.
func (s *GoPPTService) rect(slide *ppt.Slide, x, y, w, h float64, argbFill string) {
	r := slide.CreateRichTextShape()
	r.SetOffsetX(emu(x)).SetOffsetY(emu(y))
	r.SetWidth(emu(w)).SetHeight(emu(h))
	r.SetFill(solidFill(argbFill))
}

// textbox places a single styled run.
func (s *GoPPTService) textbox(slide *ppt.Slide, text string, x, y, w, h float64, size int, bold bool, colorHex string, center bool) {
	tb := slide.CreateRichTextShape()
	tb.SetOffsetX(emu(x)).SetOffsetY(emu(y))
	tb.SetWidth(emu(w)).SetHeight(emu(h))
	tr := tb.CreateTextRun(text)
	tr.GetFont().SetSize(scalePt(size)).SetBold(bold).SetColor(ppt.NewColor(argb(colorHex)))
	if center {
		alignCenter(tb.GetActiveParagraph())
	}
}

// addTitleSlide fills the first slide: navy background, steel rule,
// centered title block.
func (s *GoPPTService) addTitleSlide(p *ppt.Presentation, d deck.Deck) {
	slide := p.GetActiveSlide()

	s.rect(slide, 0, 0, designSlideWidth, designSlideHeight, argb(hexNavy))
	s.rect(slide, 0, 3.1, designSlideWidth, 0.05, argb(hexSteel))

	s.textbox(slide, d.Title, 0.5, 1.5, 12.3, 1.5, pptFontTitle, true, hexWhite, true)
	s.textbox(slide, d.Subtitle, 0.5, 3.2, 12.3, 0.8, pptFontSubtitle, false, hexLightBlue, true)
	s.textbox(slide, d.Author, 0.5, 4.15, 12.3, 0.65, pptFontAuthor, true, hexWhite, true)
	s.textbox(slide, d.Institution, 0.5, 4.85, 12.3, 0.55, pptFontInstitution, false, hexLightBlue, true)
}

// addSlideHeader adds the assertion header band: navy top bar, steel
// accent, gray band, assertion sentence, navy bottom bar.
func (s *GoPPTService) addSlideHeader(slide *ppt.Slide, assertion string) {
	s.rect(slide, 0, 0, designSlideWidth, 0.08, argb(hexNavy))
	s.rect(slide, 0, 0.08, 0.06, 1.0, argb(hexSteel))
	s.rect(slide, 0.06, 0.08, designSlideWidth-0.06, 1.0, argb(hexLightGray))
	s.textbox(slide, assertion, 0.28, 0.12, 12.8, 0.92, pptFontAssertion, true, hexNavy, false)
	s.rect(slide, 0, designSlideHeight-0.08, designSlideWidth, 0.08, argb(hexNavy))
}

// sectionLabel adds a small bold column / section label.
func (s *GoPPTService) sectionLabel(slide *ppt.Slide, text string, x, y, w float64) {
	s.textbox(slide, text, x, y, w, 0.32, pptFontSectionLabel, true, hexNavy, false)
}

// divider draws a vertical steel divider at design position x.
func (s *GoPPTService) divider(slide *ppt.Slide, x float64) {
	s.rect(slide, x, 1.1, 0.04, 6.3, argb(hexSteel))
}

// addContentSlide lays out one assertion-evidence slide: header, then
// the table (when present) above the columns.
func (s *GoPPTService) addContentSlide(p *ppt.Presentation, sl *deck.Slide) {
	slide := p.CreateSlide()
	s.addSlideHeader(slide, sl.Assertion)

	top := designLabelTop
	if sl.Table != nil {
		top = s.addTable(slide, sl.Table, designMarginX, top, designContentW) + 0.3
	}
	if len(sl.Columns) > 0 {
		s.addColumns(slide, sl, top)
	}
}

// addColumns distributes the slide's columns across the content width
// using their relative weights, with steel dividers between columns on
// table-less slides.
func (s *GoPPTService) addColumns(slide *ppt.Slide, sl *deck.Slide, top float64) {
	n := len(sl.Columns)
	gap := 0.0
	if n == 2 {
		gap = 0.4
	} else if n > 2 {
		gap = 0.15
	}

	sum := 0.0
	for _, c := range sl.Columns {
		sum += columnWeight(c)
	}
	avail := designContentW - gap*float64(n-1)

	x := designMarginX
	for i, c := range sl.Columns {
		w := avail * columnWeight(c) / sum

		bodyTop := top
		if c.Label != "" {
			s.sectionLabel(slide, c.Label, x, top, w)
			bodyTop = top + 0.37
		}
		bodyH := designBodyBottom - bodyTop

		if c.Mono != "" {
			s.monoBox(slide, c.Mono, x, bodyTop, w, bodyH)
		} else {
			s.multilineBox(slide, c.Lines, x, bodyTop, w, bodyH)
		}

		if sl.Table == nil && i < n-1 {
			s.divider(slide, x+w+gap/2-0.02)
		}
		x += w + gap
	}
}

func columnWeight(c deck.Column) float64 {
	if c.Weight > 0 {
		return c.Weight
	}
	return 1.0
}

// multilineBox renders one paragraph per line. Empty lines become
// small spacer runs so the writer keeps the paragraph.
func (s *GoPPTService) multilineBox(slide *ppt.Slide, lines []deck.Line, x, y, w, h float64) {
	tb := slide.CreateRichTextShape()
	tb.SetOffsetX(emu(x)).SetOffsetY(emu(y))
	tb.SetWidth(emu(w)).SetHeight(emu(h))

	for i, line := range lines {
		if i > 0 {
			tb.CreateParagraph()
		}
		if strings.TrimSpace(line.Text) == "" {
			tr := tb.CreateTextRun(" ")
			tr.GetFont().SetSize(scalePt(line.Size))
			continue
		}
		tr := tb.CreateTextRun(line.Text)
		tr.GetFont().SetSize(scalePt(line.Size)).SetBold(line.Bold).SetColor(ppt.NewColor(argb(toneHex(line.Tone))))
	}
}

// monoBox renders a preformatted diagram block over a light fill, one
// paragraph per line.
func (s *GoPPTService) monoBox(slide *ppt.Slide, mono string, x, y, w, h float64) {
	tb := slide.CreateRichTextShape()
	tb.SetOffsetX(emu(x)).SetOffsetY(emu(y))
	tb.SetWidth(emu(w)).SetHeight(emu(h))
	tb.SetFill(solidFill(argb(hexMonoBg)))

	for i, line := range strings.Split(mono, "\n") {
		if i > 0 {
			tb.CreateParagraph()
		}
		if line == "" {
			line = " "
		}
		tr := tb.CreateTextRun(line)
		tr.GetFont().SetSize(pptFontMono).SetColor(ppt.NewColor(argb(hexDarkGray)))
	}
}

// addTable emulates a navy-header table with per-cell shapes: header
// band cells, then alternating-fill data cells with a bold navy first
// column. Returns the design-grid y just below the table.
func (s *GoPPTService) addTable(slide *ppt.Slide, t *deck.Table, x, top, w float64) float64 {
	y := top
	if t.Label != "" {
		s.sectionLabel(slide, t.Label, x, y, w)
		y += 0.37
	}

	widths := s.columnWidths(t, w)

	headerH := 0.4
	cx := x
	for ci, hdr := range t.Headers {
		s.tableCell(slide, hdr, cx, y, widths[ci], headerH, scalePt(pptFontTableHead), true, hexWhite, argb(hexNavy), true)
		cx += widths[ci]
	}
	y += headerH

	for ri, row := range t.Rows {
		rowLines := 1
		for _, cell := range row {
			if n := strings.Count(cell, "\n") + 1; n > rowLines {
				rowLines = n
			}
		}
		rowH := 0.18 + 0.28*float64(rowLines)

		bg := argb(hexLightGray)
		if ri%2 == 1 {
			bg = argb(hexWhite)
		}

		cx = x
		for ci, cell := range row {
			bold := ci == 0
			colorHex := hexDarkGray
			if ci == 0 {
				colorHex = hexNavy
			}
			s.tableCell(slide, cell, cx, y, widths[ci], rowH, scalePt(pptFontTableCell), bold, colorHex, bg, false)
			cx += widths[ci]
		}
		y += rowH
	}

	return y
}

// columnWidths resolves the table's relative weights into design-grid
// inches across width w.
func (s *GoPPTService) columnWidths(t *deck.Table, w float64) []float64 {
	n := len(t.Headers)
	widths := make([]float64, n)
	sum := 0.0
	for i := 0; i < n; i++ {
		wt := 1.0
		if i < len(t.Weights) && t.Weights[i] > 0 {
			wt = t.Weights[i]
		}
		widths[i] = wt
		sum += wt
	}
	for i := range widths {
		widths[i] = w * widths[i] / sum
	}
	return widths
}

// tableCell draws one filled cell; '\n' in text splits into paragraphs.
func (s *GoPPTService) tableCell(slide *ppt.Slide, text string, x, y, w, h float64, size int, bold bool, colorHex, bgARGB string, center bool) {
	cell := slide.CreateRichTextShape()
	cell.SetOffsetX(emu(x)).SetOffsetY(emu(y))
	cell.SetWidth(emu(w)).SetHeight(emu(h))
	cell.SetFill(solidFill(bgARGB))

	for i, line := range strings.Split(text, "\n") {
		if i > 0 {
			cell.CreateParagraph()
		}
		if line == "" {
			line = " "
		}
		tr := cell.CreateTextRun(line)
		tr.GetFont().SetSize(size).SetBold(bold).SetColor(ppt.NewColor(argb(colorHex)))
		if center {
			alignCenter(cell.GetActiveParagraph())
		}
	}
}
