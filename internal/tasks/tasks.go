// package tasks implements long-running collection operations.
//
// The core abstraction is ExportEngine, which snapshots a user's tracked
// collection to disk. Operations emit progress updates via channels for
// non-blocking status reporting to the CLI layer.
package tasks

import (
	"github.com/14-harish/showtracker/internal/services"
)

// ProgressUpdate reports the state of a running operation.
type ProgressUpdate struct {
	Stage   string // fetching, writing, done
	Detail  string
	Current int
	Total   int
}

// ExportEngine snapshots collections through the tracker backend.
type ExportEngine struct {
	tracker services.Tracker
}

func NewExportEngine(tracker services.Tracker) *ExportEngine {
	return &ExportEngine{tracker: tracker}
}

// sendProgress delivers an update without blocking when nobody listens.
func (e *ExportEngine) sendProgress(progress chan<- ProgressUpdate, update ProgressUpdate) {
	if progress == nil {
		return
	}
	select {
	case progress <- update:
	default:
	}
}
