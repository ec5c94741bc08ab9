package event_bus

import "github.com/shopspring/decimal"

const (
	// FileProcessed is published after an input file was aggregated successfully.
	FileProcessed EventType = "pipeline.file.processed"
	// FileSkipped is published when a file is dropped because of a structural
	// error (missing sheet, header, or column).
	FileSkipped EventType = "pipeline.file.skipped"
	// ContributionMatched is published when an attendance record was credited
	// to a catalog project, directly or via the fallback bucket.
	ContributionMatched EventType = "reconcile.contribution.matched"
	// ContributionDropped is published when a record matched nothing and no
	// fallback bucket is configured. Silent data loss must stay detectable.
	ContributionDropped EventType = "reconcile.contribution.dropped"
)

type FileProcessedEvent struct {
	Path    string
	SheetID string
	Records int
}

type FileSkippedEvent struct {
	Path   string
	Reason string
}

type ContributionMatchedEvent struct {
	Label    string
	Project  string
	Days     decimal.Decimal
	Fallback bool
}

type ContributionDroppedEvent struct {
	Label string
	Days  decimal.Decimal
}
