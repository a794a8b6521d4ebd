package export

import (
	"fmt"
	"strings"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontfamily"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/psu-edu/sweng861-crud-jzt5803/deck"
)

// PDFExportService renders the deck as a printable handout using
// maroto: one section per slide, tables as bordered text rows.
type PDFExportService struct{}

// NewPDFExportService creates a new PDF export service
func NewPDFExportService() *PDFExportService {
	return &PDFExportService{}
}

// palette as maroto channel values
var (
	pdfNavy     = &props.Color{Red: 30, Green: 58, Blue: 95}
	pdfDarkGray = &props.Color{Red: 51, Green: 51, Blue: 51}
	pdfGreen    = &props.Color{Red: 46, Green: 125, Blue: 50}
	pdfRed      = &props.Color{Red: 198, Green: 40, Blue: 40}
	pdfMuted    = &props.Color{Red: 148, Green: 163, Blue: 184}
)

func pdfTone(t deck.Tone) *props.Color {
	switch t {
	case deck.ToneHeading:
		return pdfNavy
	case deck.ToneGood:
		return pdfGreen
	case deck.ToneBad:
		return pdfRed
	default:
		return pdfDarkGray
	}
}

// Export renders the deck to PDF handout format
func (s *PDFExportService) Export(d deck.Deck) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageNumber().
		WithLeftMargin(15).
		WithTopMargin(15).
		WithRightMargin(15).
		WithDefaultFont(&props.Font{
			Family: fontfamily.Arial,
			Size:   10,
		}).
		Build()

	m := maroto.New(cfg)

	s.addCover(m, d)
	for i, slide := range d.Slides {
		s.addSlideSection(m, i+2, slide)
	}
	s.addFooter(m)

	document, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}

	return document.GetBytes(), nil
}

// addCover adds the title-slide content as the handout header
func (s *PDFExportService) addCover(m core.Maroto, d deck.Deck) {
	m.AddRow(14,
		col.New(12).Add(
			text.New(d.Title, props.Text{
				Family: fontfamily.Arial,
				Size:   18,
				Style:  fontstyle.Bold,
				Align:  align.Center,
				Color:  pdfNavy,
			}),
		),
	)
	m.AddRow(7,
		col.New(12).Add(
			text.New(d.Subtitle, props.Text{
				Family: fontfamily.Arial,
				Size:   11,
				Align:  align.Center,
				Color:  pdfDarkGray,
			}),
		),
	)
	m.AddRow(6,
		col.New(12).Add(
			text.New(fmt.Sprintf("%s — %s", d.Author, d.Institution), props.Text{
				Family: fontfamily.Arial,
				Size:   10,
				Align:  align.Center,
				Color:  pdfDarkGray,
			}),
		),
	)
	m.AddRow(5)
}

// addSlideSection renders one content slide as a handout section
func (s *PDFExportService) addSlideSection(m core.Maroto, number int, slide deck.Slide) {
	m.AddRow(9,
		col.New(12).Add(
			text.New(fmt.Sprintf("Slide %d — %s", number, slide.Assertion), props.Text{
				Family: fontfamily.Arial,
				Size:   12,
				Style:  fontstyle.Bold,
				Color:  pdfNavy,
			}),
		),
	)

	if slide.Table != nil {
		s.addTable(m, slide.Table)
	}

	for _, column := range slide.Columns {
		if column.Label != "" {
			m.AddRow(6,
				col.New(12).Add(
					text.New(column.Label, props.Text{
						Family: fontfamily.Arial,
						Size:   10,
						Style:  fontstyle.Bold,
						Color:  pdfNavy,
					}),
				),
			)
		}
		if column.Mono != "" {
			s.addMono(m, column.Mono)
			continue
		}
		for _, line := range column.Lines {
			if line.Text == "" {
				m.AddRow(2)
				continue
			}
			style := fontstyle.Normal
			if line.Bold {
				style = fontstyle.Bold
			}
			m.AddRow(4,
				col.New(12).Add(
					text.New(line.Text, props.Text{
						Family: fontfamily.Arial,
						Size:   8,
						Style:  style,
						Color:  pdfTone(line.Tone),
					}),
				),
			)
		}
		m.AddRow(3)
	}

	m.AddRow(4)
}

// addMono renders a preformatted diagram block in Courier
func (s *PDFExportService) addMono(m core.Maroto, mono string) {
	for _, line := range strings.Split(mono, "\n") {
		if line == "" {
			m.AddRow(2)
			continue
		}
		m.AddRow(3,
			col.New(12).Add(
				text.New(line, props.Text{
					Family: fontfamily.Courier,
					Size:   7,
					Color:  pdfDarkGray,
				}),
			),
		)
	}
	m.AddRow(3)
}

// addTable renders the table as a bold header row plus data rows on
// maroto's 12-unit grid.
func (s *PDFExportService) addTable(m core.Maroto, t *deck.Table) {
	if t.Label != "" {
		m.AddRow(6,
			col.New(12).Add(
				text.New(t.Label, props.Text{
					Family: fontfamily.Arial,
					Size:   10,
					Style:  fontstyle.Bold,
					Color:  pdfNavy,
				}),
			),
		)
	}

	widths := gridWidths(t.Weights, len(t.Headers))

	headerCols := []core.Col{}
	for i, hdr := range t.Headers {
		headerCols = append(headerCols, col.New(widths[i]).Add(
			text.New(hdr, props.Text{
				Family: fontfamily.Arial,
				Size:   8,
				Style:  fontstyle.Bold,
				Align:  align.Center,
				Color:  pdfNavy,
			}),
		))
	}
	m.AddRow(7, headerCols...)

	for _, row := range t.Rows {
		dataCols := []core.Col{}
		for i := 0; i < len(t.Headers) && i < len(row); i++ {
			cellValue := strings.ReplaceAll(row[i], "\n", "  ")
			dataCols = append(dataCols, col.New(widths[i]).Add(
				text.New(cellValue, props.Text{
					Family: fontfamily.Arial,
					Size:   7,
					Align:  align.Left,
					Color:  pdfDarkGray,
				}),
			))
		}
		m.AddRow(9, dataCols...)
	}

	m.AddRow(3)
}

// addFooter adds the handout footer
func (s *PDFExportService) addFooter(m core.Maroto) {
	m.AddRow(10,
		col.New(12).Add(
			text.New("Generated by the Campus Analytics presentation generator", props.Text{
				Family: fontfamily.Arial,
				Size:   8,
				Align:  align.Center,
				Color:  pdfMuted,
			}),
		),
	)
}

// gridWidths maps relative column weights onto maroto's 12-unit grid,
// keeping every column at least 1 unit and the total exactly 12.
func gridWidths(weights []float64, n int) []int {
	if n == 0 {
		return nil
	}
	sum := 0.0
	rel := make([]float64, n)
	for i := 0; i < n; i++ {
		w := 1.0
		if i < len(weights) && weights[i] > 0 {
			w = weights[i]
		}
		rel[i] = w
		sum += w
	}

	out := make([]int, n)
	used := 0
	for i := 0; i < n; i++ {
		out[i] = int(rel[i]/sum*12 + 0.5)
		if out[i] < 1 {
			out[i] = 1
		}
		used += out[i]
	}
	// settle rounding drift on the widest column
	widest := 0
	for i := 1; i < n; i++ {
		if out[i] > out[widest] {
			widest = i
		}
	}
	out[widest] += 12 - used
	if out[widest] < 1 {
		out[widest] = 1
	}
	return out
}
