package processor

import "fmt"

type Mode int

const (
	ModeExact Mode = iota
	ModeFitAspect
	ModePercent
)

func (m Mode) String() string {
	switch m {
	case ModeExact:
		return "exact"
	case ModeFitAspect:
		return "fit"
	case ModePercent:
		return "percent"
	default:
		return "unknown"
	}
}

// Config is a validated resize configuration. Width and Height are used in
// ModeExact and ModeFitAspect, Scale in ModePercent.
type Config struct {
	Mode       Mode
	Width      int
	Height     int
	Scale      float64
	InputDir   string
	OutputDir  string
	Overwrite  bool
	Quality    int
	Suffix     string
	AutoOrient bool
}

type Job struct {
	Path    string
	OutPath string
	Display string
}

type Outcome int

const (
	OutcomePending Outcome = iota
	OutcomeProcessed
	OutcomeSkipped
	OutcomeFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeProcessed:
		return "processed"
	case OutcomeSkipped:
		return "skipped"
	case OutcomeFailed:
		return "failed"
	default:
		return "pending"
	}
}

type Result struct {
	Job
	Outcome Outcome
	Err     error
	Width   int
	Height  int
}

// Summary is the tally of one run. Failed is kept for callers but is not
// part of the printed Done line.
type Summary struct {
	Processed int
	Skipped   int
	Failed    int
	OutputDir string
}

// String renders the closing line of a run.
func (s Summary) String() string {
	return fmt.Sprintf("Done. Processed: %d, Skipped: %d, Output: %s", s.Processed, s.Skipped, s.OutputDir)
}

type ProgressUpdate struct {
	TotalDelta     int
	ProcessedDelta int
	SkippedDelta   int
	ErrorDelta     int
	Line           string
}
