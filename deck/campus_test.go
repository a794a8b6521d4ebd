package deck

import "testing"

var wantTitles = []string{
	"Campus Analytics Platform",
	"Campus Analytics Eliminates University Metrics Data Silos",
	"Next.js 15 Collapses Frontend and API Into One Deploy Unit",
	"Every Technology Choice Minimizes Overhead and Maximizes Testability",
	"Multi-Layer Defense and Seven Features Deliver Production-Grade Security",
	"Every Commit Is Automatically Built, Tested, and Packaged — No Manual Steps",
	"AI-Generated Code Contained 3 Security Flaws — All Caught by Manual Review",
	"320 Tests Across Three Isolation Layers Form a CI Quality Gate",
	"Observability Must Be Designed In — Not Bolted On",
}

func TestCampusDeckSlideOrder(t *testing.T) {
	d := CampusAnalyticsDeck()

	if got := d.SlideCount(); got != 9 {
		t.Fatalf("SlideCount() = %d, want 9", got)
	}

	titles := d.Titles()
	if len(titles) != len(wantTitles) {
		t.Fatalf("Titles() returned %d titles, want %d", len(titles), len(wantTitles))
	}
	for i, want := range wantTitles {
		if titles[i] != want {
			t.Errorf("slide %d title = %q, want %q", i+1, titles[i], want)
		}
	}
}

func TestCampusDeckTitleSlideFields(t *testing.T) {
	d := CampusAnalyticsDeck()

	if d.Subtitle == "" || d.Author == "" || d.Institution == "" {
		t.Errorf("title slide fields incomplete: subtitle=%q author=%q institution=%q",
			d.Subtitle, d.Author, d.Institution)
	}
}

func TestCampusDeckTableShape(t *testing.T) {
	d := CampusAnalyticsDeck()

	tableCount := 0
	for si, slide := range d.Slides {
		if slide.Table == nil {
			continue
		}
		tableCount++
		tbl := slide.Table

		if len(tbl.Headers) == 0 {
			t.Errorf("slide %d: table has no headers", si+2)
		}
		if len(tbl.Rows) == 0 {
			t.Errorf("slide %d: table has no rows", si+2)
		}
		for ri, row := range tbl.Rows {
			if len(row) != len(tbl.Headers) {
				t.Errorf("slide %d row %d: %d cells, want %d", si+2, ri, len(row), len(tbl.Headers))
			}
		}
		if tbl.Weights != nil && len(tbl.Weights) != len(tbl.Headers) {
			t.Errorf("slide %d: %d column weights, want %d", si+2, len(tbl.Weights), len(tbl.Headers))
		}
	}

	// tech stack and AI audit slides carry the two tables
	if tableCount != 2 {
		t.Errorf("deck has %d tables, want 2", tableCount)
	}
}

func TestCampusDeckColumnsCarryLinesOrMono(t *testing.T) {
	d := CampusAnalyticsDeck()

	for si, slide := range d.Slides {
		if slide.Table == nil && len(slide.Columns) == 0 {
			t.Errorf("slide %d has neither table nor columns", si+2)
		}
		for ci, c := range slide.Columns {
			hasLines := len(c.Lines) > 0
			hasMono := c.Mono != ""
			if hasLines == hasMono {
				t.Errorf("slide %d column %d: lines=%v mono=%v, want exactly one", si+2, ci, hasLines, hasMono)
			}
			for li, line := range c.Lines {
				if line.Text == "" && line.Size == 0 {
					t.Errorf("slide %d column %d line %d: spacer without size", si+2, ci, li)
				}
			}
		}
	}
}
