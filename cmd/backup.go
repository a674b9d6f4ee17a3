package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/14-harish/showtracker/internal/tasks"
)

// MediaBackup snapshots the signed-in user's collection to disk.
func (r *Runner) MediaBackup(ctx context.Context, cmd *cli.Command) error {
	user, err := r.currentUser()
	if err != nil {
		return err
	}

	engine := tasks.NewExportEngine(r.tracker)
	progress := make(chan tasks.ProgressUpdate, 16)
	done := make(chan struct{})

	go func() {
		defer close(done)
		for update := range progress {
			if update.Stage == "writing" {
				r.logger.Info("backup progress", "format", update.Detail, "current", update.Current, "total", update.Total)
			}
		}
	}()

	result, err := engine.Backup(ctx, progress, user.Username, tasks.BackupOpts{
		OutputDir: cmd.String("dir"),
		Formats:   cmd.StringSlice("format"),
	})
	close(progress)
	<-done
	if err != nil {
		return fmt.Errorf("backup failed: %w", err)
	}

	r.writePlain("✓ Backed up %d records to %s\n", result.MediaCount, result.OutputDirectory)
	for _, file := range result.Files {
		if file.Error != nil {
			r.writePlain("✗ %s: %v\n", file.Format, file.Error)
		} else {
			r.writePlain("  %s\n", file.Path)
		}
	}
	if result.FailedCount > 0 {
		return fmt.Errorf("%d export(s) failed", result.FailedCount)
	}
	return nil
}
