package tasks

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/14-harish/showtracker/internal/formatter"
	"github.com/14-harish/showtracker/internal/models"
	"github.com/14-harish/showtracker/internal/shared"
)

// BackupOpts contains configuration for collection backups.
type BackupOpts struct {
	OutputDir string   // Base output directory (default: showtracker_backup_{epoch})
	Formats   []string // Export formats: json, csv, markdown (default: all three)
}

// FileResult records one written backup file.
type FileResult struct {
	Format string
	Path   string
	Error  error
}

// BackupResult summarizes a backup run.
type BackupResult struct {
	OutputDirectory string
	MediaCount      int
	Files           []FileResult
	FailedCount     int
}

var backupFormats = []string{"json", "csv", "markdown"}

// Backup fetches the user's collection once and writes it to disk in every
// requested format concurrently. Individual format failures don't abort the
// run; they are reported in the result.
func (e *ExportEngine) Backup(ctx context.Context, progress chan<- ProgressUpdate, username string, opts BackupOpts) (*BackupResult, error) {
	if e.tracker == nil {
		return nil, fmt.Errorf("%w: tracker not initialized", shared.ErrServiceUnavailable)
	}

	if opts.OutputDir == "" {
		opts.OutputDir = fmt.Sprintf("showtracker_backup_%d", time.Now().Unix())
	}
	if len(opts.Formats) == 0 {
		opts.Formats = backupFormats
	}
	for _, format := range opts.Formats {
		if !validFormat(format) {
			return nil, fmt.Errorf("%w: unknown format %q", shared.ErrInvalidInput, format)
		}
	}

	if err := os.MkdirAll(opts.OutputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	e.sendProgress(progress, ProgressUpdate{Stage: "fetching", Detail: "fetching collection"})

	media, err := e.tracker.Media(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch media: %w", err)
	}

	result := &BackupResult{
		OutputDirectory: opts.OutputDir,
		MediaCount:      len(media),
		Files:           make([]FileResult, len(opts.Formats)),
	}

	var wg sync.WaitGroup
	for i, format := range opts.Formats {
		wg.Add(1)
		go func(i int, format string) {
			defer wg.Done()
			result.Files[i] = writeFormat(opts.OutputDir, format, username, media)
		}(i, format)
	}
	wg.Wait()

	for i, file := range result.Files {
		if file.Error != nil {
			result.FailedCount++
		}
		e.sendProgress(progress, ProgressUpdate{
			Stage:   "writing",
			Detail:  file.Format,
			Current: i + 1,
			Total:   len(result.Files),
		})
	}

	e.sendProgress(progress, ProgressUpdate{Stage: "done", Current: len(result.Files), Total: len(result.Files)})
	return result, nil
}

func validFormat(format string) bool {
	for _, f := range backupFormats {
		if f == format {
			return true
		}
	}
	return false
}

func writeFormat(dir, format, username string, media []models.MediaRecord) FileResult {
	var data []byte
	var err error
	var name string

	switch format {
	case "json":
		name = "media.json"
		data, err = formatter.ToJSON(media)
	case "csv":
		name = "media.csv"
		data, err = formatter.ExportToCSV(media)
	case "markdown":
		name = "media.md"
		data, err = formatter.ExportToMarkdown(username, media)
	}

	result := FileResult{Format: format, Path: filepath.Join(dir, name)}
	if err != nil {
		result.Error = err
		return result
	}
	if err := os.WriteFile(result.Path, data, 0644); err != nil {
		result.Error = err
	}
	return result
}
