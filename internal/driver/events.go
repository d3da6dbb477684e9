package driver

import "time"

// Stage is a pipeline step applied to one file.
type Stage uint8

const (
	StageNone Stage = iota
	StageScan
	StageParse
	StageCheck
)

func (s Stage) String() string {
	switch s {
	case StageScan:
		return "scan"
	case StageParse:
		return "parse"
	case StageCheck:
		return "check"
	default:
		return "none"
	}
}

// Status reports where a file is within the pipeline.
type Status uint8

const (
	StatusQueued Status = iota
	StatusWorking
	StatusDone
	StatusError
)

// Event describes progress of one file. Events with an empty File describe
// the run as a whole.
type Event struct {
	File    string
	Stage   Stage
	Status  Status
	Elapsed time.Duration
}

// ProgressFunc receives events from ProcessDir. It is called concurrently
// from worker goroutines.
type ProgressFunc func(Event)

func (f ProgressFunc) emit(ev Event) {
	if f != nil {
		f(ev)
	}
}
