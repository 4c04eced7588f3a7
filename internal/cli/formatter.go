package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/dustin/go-humanize"

	"github.com/idelchi/dirtar/internal/dirtar"
)

const (
	// TabSpacing is the number of spaces between tabwriter columns.
	TabSpacing = 2
)

// PrintHeader prints the resolved paths before processing begins.
func PrintHeader(batch *dirtar.Batch, writer io.Writer) {
	fmt.Fprintf(writer, "Source: %s\n", batch.Source)

	if batch.Output == batch.Source {
		fmt.Fprintf(writer, "Output: %s (same as source)\n", batch.Output)
	} else {
		fmt.Fprintf(writer, "Output: %s\n", batch.Output)
	}

	fmt.Fprintln(writer)
}

// PrintProgress prints one per-entry result line with its running index.
func PrintProgress(event dirtar.Event, writer io.Writer) {
	prefix := fmt.Sprintf("[%d/%d] %s", event.Index, event.Total, event.Outcome.Entry)

	switch event.Outcome.Status {
	case dirtar.StatusCreated:
		fmt.Fprintf(writer, "%s: created %s (%s)\n", prefix, event.Outcome.Archive, dirtar.FormatSize(event.Outcome.Size))
	case dirtar.StatusSkipped:
		fmt.Fprintf(writer, "%s: skipped, %s already exists\n", prefix, event.Outcome.Archive)
	case dirtar.StatusFailed:
		fmt.Fprintf(writer, "%s: failed: %s\n", prefix, event.Outcome.Reason)
	}
}

// PrintJSON outputs the run summary in JSON format.
func PrintJSON(summary *dirtar.Summary, writer io.Writer) error {
	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding JSON output: %w", err)
	}

	if _, err := fmt.Fprintln(writer, string(data)); err != nil {
		return err
	}

	return nil
}

// PrintTable outputs the run summary in human-readable table format.
func PrintTable(summary *dirtar.Summary, writer io.Writer) error {
	w := tabwriter.NewWriter(writer, 0, 4, TabSpacing, ' ', 0)

	fmt.Fprintln(w, "\nSummary:\t\t")
	fmt.Fprintf(w, "Total directories found:\t%d\n", summary.Found)
	fmt.Fprintf(w, "Successfully archived:\t%d\n", summary.Created)
	fmt.Fprintf(w, "Failed:\t%d\n", summary.Failed)
	fmt.Fprintf(w, "Skipped (already archived):\t%d\n", summary.Skipped)

	if summary.Created > 0 {
		fmt.Fprintf(w, "Total archived:\t%s (%d bytes)\n",
			humanize.IBytes(uint64(summary.TotalBytes)), summary.TotalBytes) //nolint:gosec // Bytes is always positive

		fmt.Fprintln(w, "\nArchives in output directory:\t\t")

		for _, name := range summary.Archives {
			fmt.Fprintf(w, "  %s\n", name)
		}

		if summary.More > 0 {
			fmt.Fprintf(w, "  … and %d more\n", summary.More)
		}
	}

	fmt.Fprintf(w, "\nElapsed:\t%v\n", summary.Elapsed)

	return w.Flush()
}
