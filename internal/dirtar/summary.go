package dirtar

import "time"

// Status classifies the result of archiving one entry.
type Status string

// Per-entry outcomes.
const (
	StatusCreated Status = "created"
	StatusSkipped Status = "skipped"
	StatusFailed  Status = "failed"
)

// Outcome is the result for a single subdirectory.
type Outcome struct {
	// Entry is the subdirectory name.
	Entry string `json:"entry"`
	// Archive is the target file name (<entry>.tar).
	Archive string `json:"archive"`
	// Status is the per-entry result.
	Status Status `json:"status"`
	// Size is the produced archive size in bytes. Created entries only.
	Size int64 `json:"size"`
	// Reason describes the failure. Failed entries only.
	Reason string `json:"reason,omitempty"`
}

// Summary holds the aggregate result of one run.
type Summary struct {
	// Source is the resolved source directory.
	Source string `json:"source"`
	// Output is the resolved output directory.
	Output string `json:"output"`
	// OutputIsSource indicates that archives land in the source directory itself.
	OutputIsSource bool `json:"output_is_source"`
	// Found is the number of subdirectories enumerated.
	Found int `json:"found"`
	// Created is the number of archives written.
	Created int `json:"created"`
	// Failed is the number of entries whose archiver invocation failed.
	Failed int `json:"failed"`
	// Skipped is the number of entries whose archive already existed.
	Skipped int `json:"skipped"`
	// TotalBytes is the cumulative size of the archives created this run.
	TotalBytes int64 `json:"total_bytes"`
	// Outcomes contains the per-entry results in processing order.
	Outcomes []Outcome `json:"outcomes"`
	// Archives lists up to ListingLimit .tar names present in the output
	// directory after the run, sorted. Populated only when Created > 0.
	Archives []string `json:"archives,omitempty"`
	// More is the number of .tar files beyond the Archives listing.
	More int `json:"more,omitempty"`
	// Elapsed is the total time taken for the run.
	Elapsed time.Duration `json:"elapsed"`
}

// Options configures a run and CLI behavior.
type Options struct {
	// Directory is the source directory whose subdirectories are archived.
	Directory string
	// Output is the output directory. Empty means the source directory.
	Output string
	// Format represents the summary format (table or json).
	Format string
	// Debug indicates whether debug output is enabled.
	Debug bool
	// Version indicates whether to show version and exit.
	Version bool
	// Archiver overrides the system tar invocation. Tests substitute a fake;
	// production code leaves this nil.
	Archiver Archiver
}

// Stage identifies what the run is doing with an entry.
type Stage int

// Stages reported to the progress callback, in order.
const (
	StageSizing Stage = iota
	StageArchiving
	StageDone
)

// Event is delivered to the progress callback as each entry advances.
type Event struct {
	// Index is the 1-based position of the entry in the run.
	Index int
	// Total is the number of entries in the run.
	Total int
	// Entry is the subdirectory name.
	Entry string
	// Size is the entry's content size in bytes, known from StageArchiving on.
	Size int64
	// Stage is the entry's current stage.
	Stage Stage
	// Outcome is the entry's result. Valid only when Stage is StageDone.
	Outcome Outcome
}
