package export

import (
	"bytes"
	"fmt"
	"strings"

	gospreadsheet "github.com/VantageDataChat/GoExcel"

	"github.com/psu-edu/sweng861-crud-jzt5803/deck"
)

// ExcelExportService renders the deck's appendix workbook using GoExcel
// (pure Go): a slide index sheet plus one sheet per deck table.
type ExcelExportService struct{}

// NewExcelExportService creates a new Excel export service
func NewExcelExportService() *ExcelExportService {
	return &ExcelExportService{}
}

// Export renders the deck to Excel format
func (s *ExcelExportService) Export(d deck.Deck) ([]byte, error) {
	wb := gospreadsheet.New()

	ws := wb.GetActiveSheet()
	ws.SetTitle("Slides")
	s.writeSheet(ws, []string{"Slide", "Title"}, slideIndexRows(d))

	for i, slide := range d.Slides {
		if slide.Table == nil {
			continue
		}
		name := sheetName(slide.Table.Label, i+2)
		tableSheet, err := wb.AddSheet(name)
		if err != nil {
			return nil, fmt.Errorf("failed to create sheet %s: %w", name, err)
		}
		s.writeSheet(tableSheet, slide.Table.Headers, tableRows(slide.Table))
	}

	wb.Properties.Title = d.Title
	wb.Properties.Creator = d.Author
	wb.Properties.Description = "Appendix tables for the " + d.Title + " presentation"
	wb.Properties.Subject = "Presentation appendix"

	var buf bytes.Buffer
	writer := gospreadsheet.NewXLSXWriter()
	if err := writer.Write(wb, &buf); err != nil {
		return nil, fmt.Errorf("failed to write Excel file: %w", err)
	}

	return buf.Bytes(), nil
}

// writeSheet fills one worksheet: styled header row, data rows, frozen
// header, content-sized columns.
func (s *ExcelExportService) writeSheet(ws *gospreadsheet.Worksheet, headers []string, rows [][]string) {
	headerStyle := gospreadsheet.NewStyle().
		SetFont(&gospreadsheet.Font{
			Bold:  true,
			Size:  11,
			Color: hexWhite,
		}).
		SetFill(&gospreadsheet.Fill{
			Type:  "solid",
			Color: hexNavy,
		}).
		SetAlignment(&gospreadsheet.Alignment{
			Horizontal: gospreadsheet.AlignCenter,
			Vertical:   gospreadsheet.AlignMiddle,
		}).
		SetBorders(&gospreadsheet.Borders{
			Left:   gospreadsheet.Border{Style: gospreadsheet.BorderThin, Color: hexWhite},
			Top:    gospreadsheet.Border{Style: gospreadsheet.BorderThin, Color: hexWhite},
			Bottom: gospreadsheet.Border{Style: gospreadsheet.BorderThin, Color: hexWhite},
			Right:  gospreadsheet.Border{Style: gospreadsheet.BorderThin, Color: hexWhite},
		})

	dataStyle := gospreadsheet.NewStyle().
		SetFont(&gospreadsheet.Font{
			Size: 10,
		}).
		SetAlignment(&gospreadsheet.Alignment{
			Horizontal: gospreadsheet.AlignLeft,
			Vertical:   gospreadsheet.AlignMiddle,
			WrapText:   true,
		}).
		SetBorders(&gospreadsheet.Borders{
			Left:   gospreadsheet.Border{Style: gospreadsheet.BorderThin, Color: "D9D9D9"},
			Top:    gospreadsheet.Border{Style: gospreadsheet.BorderThin, Color: "D9D9D9"},
			Bottom: gospreadsheet.Border{Style: gospreadsheet.BorderThin, Color: "D9D9D9"},
			Right:  gospreadsheet.Border{Style: gospreadsheet.BorderThin, Color: "D9D9D9"},
		})

	widths := make([]float64, len(headers))

	for i, hdr := range headers {
		cellName, _ := gospreadsheet.CellName(0, i)
		ws.SetCellValue(cellName, hdr)
		ws.SetCellStyle(cellName, headerStyle)
		widths[i] = float64(len([]rune(hdr)))
	}
	ws.SetRowHeight(0, 25)

	for rowIdx, row := range rows {
		excelRow := rowIdx + 1
		for colIdx := 0; colIdx < len(headers) && colIdx < len(row); colIdx++ {
			cellName, _ := gospreadsheet.CellName(excelRow, colIdx)
			ws.SetCellValue(cellName, row[colIdx])
			ws.SetCellStyle(cellName, dataStyle)
			if l := longestLine(row[colIdx]); l > widths[colIdx] {
				widths[colIdx] = l
			}
		}
		ws.SetRowHeight(excelRow, 20)
	}

	for i, w := range widths {
		w *= 1.1
		if w < 12 {
			w = 12
		}
		if w > 80 {
			w = 80
		}
		ws.SetColumnWidth(i, w)
	}

	ws.FreezePane("A2")
}

func slideIndexRows(d deck.Deck) [][]string {
	titles := d.Titles()
	rows := make([][]string, len(titles))
	for i, title := range titles {
		rows[i] = []string{fmt.Sprintf("%d", i+1), title}
	}
	return rows
}

func tableRows(t *deck.Table) [][]string {
	rows := make([][]string, len(t.Rows))
	for i, row := range t.Rows {
		flat := make([]string, len(row))
		for j, cell := range row {
			flat[j] = strings.ReplaceAll(cell, "\n", " ")
		}
		rows[i] = flat
	}
	return rows
}

func longestLine(cell string) float64 {
	max := 0
	for _, line := range strings.Split(cell, "\n") {
		if n := len([]rune(line)); n > max {
			max = n
		}
	}
	return float64(max)
}

// sheetName derives a worksheet name from the table label, trimmed to
// Excel's 31-character limit.
func sheetName(label string, slideNumber int) string {
	name := label
	if name == "" {
		name = fmt.Sprintf("Slide %d", slideNumber)
	}
	// strip characters Excel forbids in sheet names
	for _, c := range []string{":", "\\", "/", "?", "*", "[", "]"} {
		name = strings.ReplaceAll(name, c, "")
	}
	if runes := []rune(name); len(runes) > 31 {
		name = string(runes[:31])
	}
	return strings.TrimSpace(name)
}
