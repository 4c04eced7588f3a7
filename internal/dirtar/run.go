package dirtar

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// ListingLimit caps the number of archive names shown in the summary listing.
const ListingLimit = 20

// logger provides conditional debug output.
type logger struct {
	enabled bool
}

// printf prints debug output if logging is enabled.
func (l logger) printf(format string, args ...any) {
	if l.enabled {
		//nolint:forbidigo // Debug output to console
		fmt.Printf(format, args...)
	}
}

// Batch is a validated run: resolved paths, a reachable archiver, and the
// enumerated subdirectories of the source.
type Batch struct {
	// Source is the resolved absolute source directory.
	Source string
	// Output is the resolved absolute output directory.
	Output string
	// Entries are the non-hidden subdirectory names, in lexical order.
	Entries []string

	archiver Archiver
	log      logger
}

// New validates opts and prepares a Batch. The checks run in a fixed order:
// source exists, source is a directory, source is readable, the archiver tool
// is reachable, the output directory exists (created with parents) and is
// writable. The first failing check aborts with an error naming the path.
//
// The tool check deliberately precedes output creation so that a missing tar
// leaves no filesystem side effects behind.
func New(opts Options) (*Batch, error) {
	log := logger{enabled: opts.Debug}

	if opts.Directory == "" {
		return nil, errors.New("source directory is required")
	}

	source, err := Expand(opts.Directory)
	if err != nil {
		return nil, fmt.Errorf("resolving source path %q: %w", opts.Directory, err)
	}

	output := source

	if opts.Output != "" {
		output, err = Expand(opts.Output)
		if err != nil {
			return nil, fmt.Errorf("resolving output path %q: %w", opts.Output, err)
		}
	}

	log.printf("[debug]: source: %s\n", source)
	log.printf("[debug]: output: %s\n", output)

	info, err := os.Stat(source)
	if err != nil {
		return nil, fmt.Errorf("accessing source directory %q: %w", source, err)
	}

	if !info.IsDir() {
		return nil, fmt.Errorf("source path %q is not a directory", source)
	}

	// Opening the handle is the real readability test; permission bits alone
	// lie on ACL and network mounts.
	handle, err := os.Open(source)
	if err != nil {
		return nil, fmt.Errorf("source directory %q is not readable: %w", source, err)
	}

	handle.Close()

	archiver := opts.Archiver
	if archiver == nil {
		archiver, err = NewTarArchiver()
		if err != nil {
			return nil, err
		}
	}

	if err := ensureOutput(output); err != nil {
		return nil, err
	}

	entries, err := listEntries(source)
	if err != nil {
		return nil, err
	}

	log.printf("[debug]: entries:\n")

	for _, entry := range entries {
		log.printf("[debug]:   - %s\n", entry)
	}

	return &Batch{
		Source:   source,
		Output:   output,
		Entries:  entries,
		archiver: archiver,
		log:      log,
	}, nil
}

// Run archives every entry sequentially and returns the summary. Per-entry
// failures are recorded, not propagated; a failing entry never stops the run.
// Progress updates are sent to progress if provided.
func (b *Batch) Run(ctx context.Context, progress func(Event)) *Summary {
	start := time.Now()

	notify := progress
	if notify == nil {
		notify = func(Event) {}
	}

	summary := &Summary{
		Source:         b.Source,
		Output:         b.Output,
		OutputIsSource: b.Output == b.Source,
		Found:          len(b.Entries),
		Outcomes:       make([]Outcome, 0, len(b.Entries)),
	}

	for i, entry := range b.Entries {
		outcome := b.archive(ctx, entry, Event{
			Index: i + 1,
			Total: len(b.Entries),
			Entry: entry,
		}, notify)

		switch outcome.Status {
		case StatusCreated:
			summary.Created++
			summary.TotalBytes += outcome.Size
		case StatusSkipped:
			summary.Skipped++
		case StatusFailed:
			summary.Failed++
		}

		summary.Outcomes = append(summary.Outcomes, outcome)
	}

	if summary.Created > 0 {
		summary.Archives, summary.More = listArchives(b.Output)
	}

	summary.Elapsed = time.Since(start)

	return summary
}

// archive processes a single entry and reports its stages through notify.
func (b *Batch) archive(ctx context.Context, entry string, event Event, notify func(Event)) Outcome {
	target := filepath.Join(b.Output, entry+".tar")

	outcome := Outcome{
		Entry:   entry,
		Archive: filepath.Base(target),
	}

	// Existing archives are never overwritten, never compared.
	if _, err := os.Stat(target); err == nil {
		b.log.printf("[debug]: skipping %s: %s already exists\n", entry, outcome.Archive)

		outcome.Status = StatusSkipped

		event.Stage = StageDone
		event.Outcome = outcome
		notify(event)

		return outcome
	}

	event.Stage = StageSizing
	notify(event)

	event.Size = entrySize(filepath.Join(b.Source, entry))

	event.Stage = StageArchiving
	notify(event)

	if err := b.archiver.Create(ctx, target, b.Source, entry); err != nil {
		b.log.printf("[debug]: archiving %s failed: %v\n", entry, err)

		// Best-effort cleanup of a partial archive.
		if _, statErr := os.Stat(target); statErr == nil {
			if rmErr := os.Remove(target); rmErr != nil {
				b.log.printf("[debug]: removing partial archive %s failed: %v\n", target, rmErr)
			}
		}

		outcome.Status = StatusFailed
		outcome.Reason = err.Error()
	} else if info, statErr := os.Stat(target); statErr != nil {
		// The tool reported success but left nothing behind.
		outcome.Status = StatusFailed
		outcome.Reason = fmt.Sprintf("archive not found after tar reported success: %v", statErr)
	} else {
		outcome.Status = StatusCreated
		outcome.Size = info.Size()
	}

	event.Stage = StageDone
	event.Outcome = outcome
	notify(event)

	return outcome
}

// ensureOutput makes sure the output directory exists and is writable.
func ensureOutput(output string) error {
	info, err := os.Stat(output)

	switch {
	case err == nil:
		if !info.IsDir() {
			return fmt.Errorf("output path %q is not a directory", output)
		}
	case os.IsNotExist(err):
		if err := os.MkdirAll(output, 0o755); err != nil {
			return fmt.Errorf("creating output directory %q: %w", output, err)
		}
	default:
		return fmt.Errorf("accessing output directory %q: %w", output, err)
	}

	// Writability probe: create and remove a scratch file.
	probe, err := os.CreateTemp(output, ".dirtar-*")
	if err != nil {
		return fmt.Errorf("output directory %q is not writable: %w", output, err)
	}

	name := probe.Name()
	probe.Close()
	_ = os.Remove(name)

	return nil
}

// listEntries returns the non-hidden immediate subdirectory names of source.
// os.ReadDir yields lexical order, which fixes the processing order too.
func listEntries(source string) ([]string, error) {
	children, err := os.ReadDir(source)
	if err != nil {
		return nil, fmt.Errorf("reading source directory %q: %w", source, err)
	}

	entries := make([]string, 0, len(children))

	for _, child := range children {
		if !child.IsDir() {
			continue
		}

		if strings.HasPrefix(child.Name(), ".") {
			continue
		}

		entries = append(entries, child.Name())
	}

	return entries, nil
}

// listArchives returns up to ListingLimit .tar names in dir, sorted, plus the
// count of names beyond the limit.
func listArchives(dir string) ([]string, int) {
	children, err := os.ReadDir(dir)
	if err != nil {
		return nil, 0
	}

	names := make([]string, 0, len(children))

	for _, child := range children {
		if child.IsDir() {
			continue
		}

		if strings.HasSuffix(child.Name(), ".tar") {
			names = append(names, child.Name())
		}
	}

	sort.Strings(names)

	if len(names) > ListingLimit {
		return names[:ListingLimit], len(names) - ListingLimit
	}

	return names, 0
}
