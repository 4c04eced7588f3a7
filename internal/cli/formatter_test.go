package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/idelchi/dirtar/internal/dirtar"
)

func sampleSummary() *dirtar.Summary {
	return &dirtar.Summary{
		Source:         "/data",
		Output:         "/data",
		OutputIsSource: true,
		Found:          3,
		Created:        2,
		Failed:         0,
		Skipped:        1,
		TotalBytes:     4096,
		Outcomes: []dirtar.Outcome{
			{Entry: "2024", Archive: "2024.tar", Status: dirtar.StatusSkipped},
			{Entry: "docs", Archive: "docs.tar", Status: dirtar.StatusCreated, Size: 1024},
			{Entry: "photos", Archive: "photos.tar", Status: dirtar.StatusCreated, Size: 3072},
		},
		Archives: []string{"2024.tar", "docs.tar", "photos.tar"},
	}
}

func TestPrintTable(t *testing.T) {
	var buf bytes.Buffer

	if err := PrintTable(sampleSummary(), &buf); err != nil {
		t.Fatalf("PrintTable failed: %v", err)
	}

	out := buf.String()

	for _, want := range []string{
		"Total directories found:",
		"Successfully archived:",
		"Skipped (already archived):",
		"Archives in output directory:",
		"photos.tar",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("table output missing %q:\n%s", want, out)
		}
	}
}

func TestPrintTable_NoListingWithoutCreations(t *testing.T) {
	summary := sampleSummary()
	summary.Created = 0
	summary.Archives = nil

	var buf bytes.Buffer

	if err := PrintTable(summary, &buf); err != nil {
		t.Fatalf("PrintTable failed: %v", err)
	}

	if strings.Contains(buf.String(), "Archives in output directory:") {
		t.Error("listing printed although nothing was created")
	}
}

func TestPrintTable_Truncation(t *testing.T) {
	summary := sampleSummary()
	summary.More = 5

	var buf bytes.Buffer

	if err := PrintTable(summary, &buf); err != nil {
		t.Fatalf("PrintTable failed: %v", err)
	}

	if !strings.Contains(buf.String(), "5 more") {
		t.Errorf("truncation notice missing:\n%s", buf.String())
	}
}

func TestPrintJSON(t *testing.T) {
	var buf bytes.Buffer

	if err := PrintJSON(sampleSummary(), &buf); err != nil {
		t.Fatalf("PrintJSON failed: %v", err)
	}

	var decoded dirtar.Summary
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	if decoded.Found != 3 || decoded.Created != 2 || decoded.Skipped != 1 {
		t.Errorf("decoded counts = %d/%d/%d, want 3/2/1", decoded.Found, decoded.Created, decoded.Skipped)
	}

	if len(decoded.Outcomes) != 3 {
		t.Errorf("decoded outcomes = %d, want 3", len(decoded.Outcomes))
	}
}

func TestPrintProgress(t *testing.T) {
	tests := []struct {
		outcome dirtar.Outcome
		want    string
	}{
		{
			dirtar.Outcome{Entry: "docs", Archive: "docs.tar", Status: dirtar.StatusCreated, Size: 1536},
			"[1/3] docs: created docs.tar (1.5 KB)",
		},
		{
			dirtar.Outcome{Entry: "docs", Archive: "docs.tar", Status: dirtar.StatusSkipped},
			"[1/3] docs: skipped, docs.tar already exists",
		},
		{
			dirtar.Outcome{Entry: "docs", Archive: "docs.tar", Status: dirtar.StatusFailed, Reason: "tar exited with status 1"},
			"[1/3] docs: failed: tar exited with status 1",
		},
	}

	for _, tt := range tests {
		var buf bytes.Buffer

		PrintProgress(dirtar.Event{Index: 1, Total: 3, Stage: dirtar.StageDone, Outcome: tt.outcome}, &buf)

		if got := strings.TrimSpace(buf.String()); got != tt.want {
			t.Errorf("progress line = %q, want %q", got, tt.want)
		}
	}
}

func TestPrintHeader(t *testing.T) {
	var buf bytes.Buffer

	PrintHeader(&dirtar.Batch{Source: "/data", Output: "/data"}, &buf)

	if !strings.Contains(buf.String(), "(same as source)") {
		t.Errorf("header missing coincidence note:\n%s", buf.String())
	}

	buf.Reset()
	PrintHeader(&dirtar.Batch{Source: "/data", Output: "/backups"}, &buf)

	if strings.Contains(buf.String(), "(same as source)") {
		t.Errorf("header wrongly notes coincidence:\n%s", buf.String())
	}
}
