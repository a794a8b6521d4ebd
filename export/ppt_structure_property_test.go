package export

import (
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/quick"
	"time"

	ppt "github.com/VantageDataChat/GoPPT"

	"github.com/psu-edu/sweng861-crud-jzt5803/deck"
)

// Feature: deck-export, Property 1: Slide structure round-trip
// For any valid deck, the PPTX writer must emit one title slide plus one
// slide per content slide, and reading the file back must recover the
// deck title and every assertion in order.

// generateRandomText produces a random non-empty string of word-safe
// ASCII characters. Letters and digits only so round-tripped text is
// unaffected by XML escaping or whitespace trimming.
func generateRandomText(r *rand.Rand, maxLen int) string {
	const alphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	if maxLen <= 0 {
		maxLen = 1
	}
	n := r.Intn(maxLen) + 1
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = alphabet[r.Intn(len(alphabet))]
	}
	return string(buf)
}

// generateRandomLines creates 1-6 body lines of mixed size and tone.
func generateRandomLines(r *rand.Rand) []deck.Line {
	tones := []deck.Tone{deck.ToneBody, deck.ToneHeading, deck.ToneGood, deck.ToneBad}
	n := r.Intn(6) + 1
	lines := make([]deck.Line, n)
	for i := range lines {
		lines[i] = deck.Line{
			Text: generateRandomText(r, 40),
			Size: r.Intn(6) + 9,
			Bold: r.Intn(2) == 1,
			Tone: tones[r.Intn(len(tones))],
		}
	}
	return lines
}

// generateRandomDeck creates a random but valid deck for property testing.
func generateRandomDeck(r *rand.Rand) deck.Deck {
	numSlides := r.Intn(4) + 1
	slides := make([]deck.Slide, numSlides)
	for i := range slides {
		s := deck.Slide{Assertion: generateRandomText(r, 50)}

		if r.Intn(3) == 0 {
			numCols := r.Intn(3) + 2
			numRows := r.Intn(3) + 1
			headers := make([]string, numCols)
			for c := range headers {
				headers[c] = generateRandomText(r, 12)
			}
			rows := make([][]string, numRows)
			for ri := range rows {
				row := make([]string, numCols)
				for c := range row {
					row[c] = generateRandomText(r, 16)
				}
				rows[ri] = row
			}
			s.Table = &deck.Table{Headers: headers, Rows: rows}
		}

		numColumns := r.Intn(3) + 1
		for c := 0; c < numColumns; c++ {
			col := deck.Column{Label: generateRandomText(r, 20)}
			if r.Intn(4) == 0 {
				col.Mono = generateRandomText(r, 30) + "\n" + generateRandomText(r, 30)
			} else {
				col.Lines = generateRandomLines(r)
			}
			s.Columns = append(s.Columns, col)
		}

		slides[i] = s
	}

	return deck.Deck{
		Title:       generateRandomText(r, 40),
		Subtitle:    generateRandomText(r, 40),
		Author:      generateRandomText(r, 20),
		Institution: generateRandomText(r, 30),
		Slides:      slides,
	}
}

func TestProperty1_SlideStructureRoundTrip(t *testing.T) {
	config := &quick.Config{
		MaxCount: 25,
		Rand:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}

	f := func(seed int64) bool {
		r := rand.New(rand.NewSource(seed))
		d := generateRandomDeck(r)

		data, err := NewPPTExportService().Export(d)
		if err != nil {
			t.Logf("Export failed: %v", err)
			return false
		}
		if len(data) == 0 {
			t.Log("Export returned empty output")
			return false
		}

		path := filepath.Join(t.TempDir(), "random.pptx")
		if err := os.WriteFile(path, data, 0644); err != nil {
			t.Logf("write failed: %v", err)
			return false
		}

		reader := &ppt.PPTXReader{}
		pres, err := reader.Read(path)
		if err != nil {
			t.Logf("read-back failed: %v", err)
			return false
		}

		slides := pres.GetAllSlides()
		if len(slides) != d.SlideCount() {
			t.Logf("slide count mismatch: got %d, want %d", len(slides), d.SlideCount())
			return false
		}

		want := d.Titles()
		for i, slide := range slides {
			got := firstSlideText(slide)
			if got != strings.TrimSpace(want[i]) {
				t.Logf("slide %d: first text %q, want %q", i+1, got, want[i])
				return false
			}
		}
		return true
	}

	if err := quick.Check(f, config); err != nil {
		t.Errorf("Property failed: %v", err)
	}
}
