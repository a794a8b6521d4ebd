package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	ppt "github.com/VantageDataChat/GoPPT"

	"github.com/psu-edu/sweng861-crud-jzt5803/deck"
)

// readSlideTitles writes the PPTX bytes to disk, reads them back and
// returns the first non-empty text of each slide. For the decks this
// module builds that text is the slide title or assertion.
func readSlideTitles(t *testing.T, data []byte) []string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "deck.pptx")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("failed to write PPTX: %v", err)
	}

	reader := &ppt.PPTXReader{}
	pres, err := reader.Read(path)
	if err != nil {
		t.Fatalf("failed to read PPTX back: %v", err)
	}

	slides := pres.GetAllSlides()
	titles := make([]string, 0, len(slides))
	for _, slide := range slides {
		titles = append(titles, firstSlideText(slide))
	}
	return titles
}

// firstSlideText extracts the first non-empty paragraph text on a slide.
func firstSlideText(slide *ppt.Slide) string {
	for _, shape := range slide.GetShapes() {
		rts, ok := shape.(*ppt.RichTextShape)
		if !ok {
			continue
		}
		for _, para := range rts.GetParagraphs() {
			var text string
			for _, elem := range para.GetElements() {
				if run, ok := elem.(*ppt.TextRun); ok {
					text += run.GetText()
				}
			}
			text = strings.TrimSpace(text)
			if text != "" {
				return text
			}
		}
	}
	return ""
}

func TestPPTExportNineSlidesInOrder(t *testing.T) {
	d := deck.CampusAnalyticsDeck()

	data, err := NewPPTExportService().Export(d)
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("Export returned empty output")
	}

	got := readSlideTitles(t, data)
	if len(got) != 9 {
		t.Fatalf("PPTX has %d slides, want 9", len(got))
	}

	want := d.Titles()
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("slide %d title = %q, want %q", i+1, got[i], want[i])
		}
	}
}

func TestPPTExportDeterministicStructure(t *testing.T) {
	d := deck.CampusAnalyticsDeck()
	svc := NewPPTExportService()

	first, err := svc.Export(d)
	if err != nil {
		t.Fatalf("first export failed: %v", err)
	}
	second, err := svc.Export(d)
	if err != nil {
		t.Fatalf("second export failed: %v", err)
	}

	firstTitles := readSlideTitles(t, first)
	secondTitles := readSlideTitles(t, second)

	if len(firstTitles) != len(secondTitles) {
		t.Fatalf("slide counts differ between runs: %d vs %d", len(firstTitles), len(secondTitles))
	}
	for i := range firstTitles {
		if firstTitles[i] != secondTitles[i] {
			t.Errorf("slide %d differs between runs: %q vs %q", i+1, firstTitles[i], secondTitles[i])
		}
	}
}

func TestPPTExportTableSlideCells(t *testing.T) {
	d := deck.Deck{
		Title:  "Table Deck",
		Author: "tester",
		Slides: []deck.Slide{
			{
				Assertion: "A Single Table Slide",
				Table: &deck.Table{
					Headers: []string{"Layer", "Choice"},
					Rows: [][]string{
						{"Frontend", "Next.js"},
						{"Database", "MongoDB"},
					},
				},
			},
		},
	}

	data, err := NewPPTExportService().Export(d)
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	path := filepath.Join(t.TempDir(), "table.pptx")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("failed to write PPTX: %v", err)
	}
	reader := &ppt.PPTXReader{}
	pres, err := reader.Read(path)
	if err != nil {
		t.Fatalf("failed to read PPTX back: %v", err)
	}

	slides := pres.GetAllSlides()
	if len(slides) != 2 {
		t.Fatalf("PPTX has %d slides, want 2", len(slides))
	}

	var texts []string
	for _, shape := range slides[1].GetShapes() {
		rts, ok := shape.(*ppt.RichTextShape)
		if !ok {
			continue
		}
		for _, para := range rts.GetParagraphs() {
			var text string
			for _, elem := range para.GetElements() {
				if run, ok := elem.(*ppt.TextRun); ok {
					text += run.GetText()
				}
			}
			if text = strings.TrimSpace(text); text != "" {
				texts = append(texts, text)
			}
		}
	}

	joined := strings.Join(texts, "|")
	for _, want := range []string{"Layer", "Choice", "Frontend", "Next.js", "Database", "MongoDB"} {
		if !strings.Contains(joined, want) {
			t.Errorf("table slide missing cell text %q (got %q)", want, joined)
		}
	}
}
