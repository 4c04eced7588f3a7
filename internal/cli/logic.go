package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/idelchi/dirtar/internal/dirtar"
)

func logic(ctx context.Context, options dirtar.Options) error {
	batch, err := dirtar.New(options)
	if err != nil {
		return err
	}

	quiet := strings.ToLower(options.Format) == "json"

	enableStatus := !quiet &&
		!options.Debug &&
		isatty.IsTerminal(os.Stderr.Fd())

	if !quiet {
		PrintHeader(batch, os.Stdout)
	}

	if len(batch.Entries) == 0 && !quiet {
		//nolint:forbidigo // Notice output to console
		fmt.Println("No directories found to archive.")

		return nil
	}

	if enableStatus {
		// Hide cursor for in-place updates; restore on exit.
		fmt.Fprint(os.Stderr, "\033[?25l")
		defer fmt.Fprint(os.Stderr, "\033[?25h")
	}

	// Transient per-entry status goes to stderr in place; the durable result
	// lines on stdout come from StageDone.
	progress := func(event dirtar.Event) {
		switch event.Stage {
		case dirtar.StageSizing:
			if enableStatus {
				fmt.Fprintf(os.Stderr, "\r\033[2K[%d/%d] sizing %s…\r", event.Index, event.Total, event.Entry)
			}
		case dirtar.StageArchiving:
			if enableStatus {
				fmt.Fprintf(os.Stderr, "\r\033[2K[%d/%d] archiving %s (%s)…\r",
					event.Index, event.Total, event.Entry, dirtar.FormatSize(event.Size))
			}
		case dirtar.StageDone:
			if enableStatus {
				// Clear the status line
				fmt.Fprint(os.Stderr, "\r\033[2K\r")
			}

			if !quiet {
				PrintProgress(event, os.Stdout)
			}
		}
	}

	summary := batch.Run(ctx, progress)

	if quiet {
		return PrintJSON(summary, os.Stdout)
	}

	return PrintTable(summary, os.Stdout)
}
