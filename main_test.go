package main

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestParseFormats(t *testing.T) {
	cases := []struct {
		name    string
		input   string
		want    []string
		wantErr bool
	}{
		{"default pptx", "pptx", []string{"pptx"}, false},
		{"all expands", "all", []string{"pptx", "pdf", "docx", "xlsx"}, false},
		{"order preserved", "pdf,pptx", []string{"pdf", "pptx"}, false},
		{"duplicates dropped", "pptx,pptx,pdf", []string{"pptx", "pdf"}, false},
		{"whitespace and case", " PDF , docx ", []string{"pdf", "docx"}, false},
		{"unknown format", "pptx,keynote", nil, true},
		{"empty", "", nil, true},
		{"only separators", ",,", nil, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := parseFormats(tc.input)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("parseFormats(%q) = %v, want error", tc.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseFormats(%q) failed: %v", tc.input, err)
			}
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("parseFormats(%q) = %v, want %v", tc.input, got, tc.want)
			}
		})
	}
}

func TestRunWritesAllFormats(t *testing.T) {
	outDir := t.TempDir()

	if err := run(outDir, "all"); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	for _, name := range []string{pptxFileName, pdfFileName, docxFileName, xlsxFileName} {
		path := filepath.Join(outDir, name)
		info, err := os.Stat(path)
		if err != nil {
			t.Errorf("missing output %s: %v", name, err)
			continue
		}
		if info.Size() == 0 {
			t.Errorf("output %s is empty", name)
		}
	}
}

func TestRunRejectsUnknownFormat(t *testing.T) {
	if err := run(t.TempDir(), "keynote"); err == nil {
		t.Fatal("run accepted an unknown format")
	}
}
