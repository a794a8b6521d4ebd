package export

import (
	"fmt"
	"strings"

	goword "github.com/VantageDataChat/GoWord"
	"github.com/VantageDataChat/GoWord/style"

	"github.com/psu-edu/sweng861-crud-jzt5803/deck"
)

// WordExportService renders the deck as a speaker script using GoWord
// (pure Go): one heading per slide, body lines, shaded tables.
type WordExportService struct{}

// NewWordExportService creates a new Word export service
func NewWordExportService() *WordExportService {
	return &WordExportService{}
}

// Export renders the deck to Word format
func (s *WordExportService) Export(d deck.Deck) ([]byte, error) {
	doc := goword.New()
	doc.Properties.Title = d.Title
	doc.Properties.Creator = d.Author
	doc.Properties.Description = "Speaker script for the " + d.Title + " presentation"

	sec := doc.AddSection()

	// Title block
	sec.AddTitle(d.Title, 1)
	sec.AddText(d.Subtitle,
		&style.FontStyle{Size: 11, Color: hexDarkGray},
		&style.ParagraphStyle{Alignment: style.AlignCenter})
	sec.AddText(d.Author+" — "+d.Institution,
		&style.FontStyle{Size: 10, Color: hexDarkGray},
		&style.ParagraphStyle{Alignment: style.AlignCenter})
	sec.AddTextBreak(1)

	for i, slide := range d.Slides {
		s.addSlide(sec, i+2, slide)
	}

	// Footer
	sec.AddTextBreak(1)
	sec.AddText("Generated by the Campus Analytics presentation generator",
		&style.FontStyle{Size: 9, Color: "94A3B8"},
		&style.ParagraphStyle{Alignment: style.AlignCenter})

	data, err := doc.ToBytes()
	if err != nil {
		return nil, fmt.Errorf("failed to write Word file: %w", err)
	}

	return data, nil
}

// addSlide renders one content slide as a script section
func (s *WordExportService) addSlide(sec *goword.Section, number int, slide deck.Slide) {
	sec.AddTitle(fmt.Sprintf("Slide %d: %s", number, slide.Assertion), 2)

	if slide.Table != nil {
		s.addTable(sec, slide.Table)
	}

	for _, column := range slide.Columns {
		if column.Label != "" {
			sec.AddText(column.Label,
				&style.FontStyle{Bold: true, Size: 12, Color: hexNavy},
				nil)
		}
		if column.Mono != "" {
			for _, line := range strings.Split(column.Mono, "\n") {
				if strings.TrimSpace(line) == "" {
					sec.AddTextBreak(1)
					continue
				}
				sec.AddText(line,
					&style.FontStyle{Size: 8, Color: hexDarkGray},
					&style.ParagraphStyle{Indent: 360})
			}
			sec.AddTextBreak(1)
			continue
		}
		for _, line := range column.Lines {
			if line.Text == "" {
				sec.AddTextBreak(1)
				continue
			}
			sec.AddText(line.Text,
				&style.FontStyle{Bold: line.Bold, Size: 10, Color: toneHex(line.Tone)},
				nil)
		}
		sec.AddTextBreak(1)
	}
}

// addTable renders the table with a shaded header row
func (s *WordExportService) addTable(sec *goword.Section, t *deck.Table) {
	if t.Label != "" {
		sec.AddText(t.Label,
			&style.FontStyle{Bold: true, Size: 12, Color: hexNavy},
			nil)
	}

	colWidthTotal := 9000
	grid := gridWidths(t.Weights, len(t.Headers))
	cellWidths := make([]int, len(t.Headers))
	for i := range cellWidths {
		cellWidths[i] = colWidthTotal * grid[i] / 12
	}

	ts := &style.TableStyle{Width: colWidthTotal, Alignment: "center"}
	ts.SetAllBorders("single", 4, "D9D9D9")
	tbl := sec.AddTable(ts)

	headerRow := tbl.AddRow(0, &style.RowStyle{IsHeader: true})
	for i, hdr := range t.Headers {
		headerRow.AddCell(cellWidths[i], &style.CellStyle{
			Shading: &style.Shading{Fill: hexNavy},
		}).AddText(hdr, &style.FontStyle{Bold: true, Size: 9, Color: hexWhite}, nil)
	}

	for _, rowData := range t.Rows {
		row := tbl.AddRow(0, nil)
		for i := 0; i < len(t.Headers) && i < len(rowData); i++ {
			cell := row.AddCell(cellWidths[i], nil)
			for _, line := range strings.Split(rowData[i], "\n") {
				fs := &style.FontStyle{Size: 9, Color: hexDarkGray}
				if i == 0 {
					fs.Bold = true
					fs.Color = hexNavy
				}
				cell.AddText(line, fs, nil)
			}
		}
	}

	sec.AddTextBreak(1)
}
