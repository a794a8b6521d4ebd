// Command deckgen builds the nine-slide Campus Analytics Platform
// presentation and writes it next to the working directory. With no
// flags it produces only the PPTX; -formats adds the handout, speaker
// script, and appendix renditions of the same content.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/psu-edu/sweng861-crud-jzt5803/deck"
	"github.com/psu-edu/sweng861-crud-jzt5803/export"
	"github.com/psu-edu/sweng861-crud-jzt5803/logger"
)

// fixed output names, one per format
const (
	pptxFileName = "campus-analytics-presentation.pptx"
	pdfFileName  = "campus-analytics-handout.pdf"
	docxFileName = "campus-analytics-speaker-notes.docx"
	xlsxFileName = "campus-analytics-appendix.xlsx"
)

func main() {
	outDir := flag.String("out", ".", "Output directory")
	formats := flag.String("formats", "pptx", "Comma-separated output formats: pptx, pdf, docx, xlsx, or all")
	flag.Parse()

	if err := run(*outDir, *formats); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(outDir, formats string) error {
	wanted, err := parseFormats(formats)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(outDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	log := logger.NewLogger()
	if err := log.Init(outDir); err != nil {
		return err
	}
	defer log.Close()

	d := deck.CampusAnalyticsDeck()

	fmt.Println("Building slides (assertion-evidence format)...")
	for i, title := range d.Titles() {
		fmt.Printf("  [%d/%d] %s\n", i+1, d.SlideCount(), title)
		log.Logf("slide %d: %s", i+1, title)
	}

	for _, format := range wanted {
		data, name, err := render(d, format)
		if err != nil {
			log.Logf("export %s failed: %v", format, err)
			return err
		}

		path := filepath.Join(outDir, name)
		if err := os.WriteFile(path, data, 0644); err != nil {
			log.Logf("write %s failed: %v", path, err)
			return fmt.Errorf("failed to write %s: %w", path, err)
		}

		fmt.Printf("\nSaved: %s  (%.1f KB)\n", path, float64(len(data))/1024)
		log.Logf("saved %s (%d bytes)", path, len(data))
	}

	return nil
}

// render dispatches one output format to its export service.
func render(d deck.Deck, format string) ([]byte, string, error) {
	switch format {
	case "pptx":
		data, err := export.NewPPTExportService().Export(d)
		return data, pptxFileName, err
	case "pdf":
		data, err := export.NewPDFExportService().Export(d)
		return data, pdfFileName, err
	case "docx":
		data, err := export.NewWordExportService().Export(d)
		return data, docxFileName, err
	case "xlsx":
		data, err := export.NewExcelExportService().Export(d)
		return data, xlsxFileName, err
	default:
		return nil, "", fmt.Errorf("unknown format: %s", format)
	}
}

// parseFormats validates the -formats flag, preserving order and
// dropping duplicates. "all" expands to every format.
func parseFormats(s string) ([]string, error) {
	if strings.TrimSpace(s) == "all" {
		return []string{"pptx", "pdf", "docx", "xlsx"}, nil
	}

	seen := map[string]bool{}
	var out []string
	for _, part := range strings.Split(s, ",") {
		format := strings.ToLower(strings.TrimSpace(part))
		if format == "" || seen[format] {
			continue
		}
		switch format {
		case "pptx", "pdf", "docx", "xlsx":
			seen[format] = true
			out = append(out, format)
		default:
			return nil, fmt.Errorf("unknown format: %s", format)
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no output formats requested")
	}
	return out, nil
}
