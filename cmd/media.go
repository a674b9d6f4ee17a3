package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/14-harish/showtracker/internal/formatter"
	"github.com/14-harish/showtracker/internal/models"
	"github.com/14-harish/showtracker/internal/services"
	"github.com/14-harish/showtracker/internal/shared"
)

// MediaList prints the signed-in user's collection, optionally filtered
// or exported.
func (r *Runner) MediaList(ctx context.Context, cmd *cli.Command) error {
	user, err := r.currentUser()
	if err != nil {
		return err
	}

	media, err := r.tracker.Media(ctx, user.Username)
	if err != nil {
		return fmt.Errorf("failed to fetch media: %w", err)
	}

	if cmd.Bool("continue") {
		media = models.FilterContinueWatching(media)
	} else {
		if typeFilter := cmd.String("type"); typeFilter != "" {
			mediaType, err := parseMediaType(typeFilter)
			if err != nil {
				return err
			}
			media = models.FilterByType(media, mediaType)
		}
		if statusFilter := cmd.String("status"); statusFilter != "" {
			status := models.Status(statusFilter)
			var filtered []models.MediaRecord
			for _, m := range media {
				if m.Status == status {
					filtered = append(filtered, m)
				}
			}
			media = filtered
		}
	}

	switch cmd.String("export") {
	case "csv":
		data, err := formatter.ExportToCSV(media)
		if err != nil {
			return fmt.Errorf("csv export failed: %w", err)
		}
		return r.writeExport(cmd.String("output"), data)
	case "markdown":
		data, err := formatter.ExportToMarkdown(user.Username, media)
		if err != nil {
			return fmt.Errorf("markdown export failed: %w", err)
		}
		return r.writeExport(cmd.String("output"), data)
	case "":
	default:
		return fmt.Errorf("%w: export must be csv or markdown", shared.ErrInvalidFlag)
	}

	if cmd.Bool("json") {
		return r.writeJSON(media, cmd.Bool("pretty"))
	}

	return r.writePlain("%s", formatter.MediaTable(media))
}

// MediaAdd searches the catalog and tracks one of the results.
//
// The poster goes through the verification gate before anything is
// persisted; a declined confirmation aborts the whole add.
func (r *Runner) MediaAdd(ctx context.Context, cmd *cli.Command) error {
	user, err := r.currentUser()
	if err != nil {
		return err
	}

	query := strings.TrimSpace(cmd.StringArg("query"))
	if query == "" {
		return fmt.Errorf("%w: query", shared.ErrMissingArgument)
	}

	results, err := r.catalog.Search(ctx, query, cmd.String("type"), "")
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}
	if len(results) == 0 {
		return r.writePlain("No results found for %q\n", query)
	}

	pick := int(cmd.Int("pick"))
	if pick < 0 || pick >= len(results) {
		return fmt.Errorf("%w: pick must be between 0 and %d", shared.ErrInvalidFlag, len(results)-1)
	}
	res := results[pick]

	status, err := parseStatus(cmd.String("status"), res.Type)
	if err != nil {
		return err
	}

	record := models.MediaRecord{
		ID:       res.ID,
		Username: user.Username,
		Type:     res.Type,
		Title:    res.Title,
		Year:     res.Year,
		Overview: res.Overview,
		Status:   status,
	}
	if res.Type == models.TypeTV {
		record.TotalEpisodes = res.TotalEpisodes
		record.WatchedEpisodes = int(cmd.Int("watched"))
		record.Season = int(cmd.Int("season"))
		record.Episode = int(cmd.Int("episode"))
	} else {
		record.Progress = clampProgress(int(cmd.Int("progress")))
	}
	applyStatusRules(&record)

	poster, err := r.verifyPoster(ctx, record.Title, res.PosterPath)
	if err != nil {
		return err
	}
	record.PosterPath = poster

	if err := r.tracker.AddMedia(ctx, record); err != nil {
		return fmt.Errorf("failed to add media: %w", err)
	}

	r.logger.Info("media added", "id", record.ID, "title", record.Title)
	return r.writePlain("✓ Added %q (%s)\n", record.Title, record.ID)
}

// MediaUpdate applies flag overrides to an existing record. Flags left
// at their defaults keep the stored values.
func (r *Runner) MediaUpdate(ctx context.Context, cmd *cli.Command) error {
	user, err := r.currentUser()
	if err != nil {
		return err
	}

	id := strings.TrimSpace(cmd.StringArg("id"))
	if id == "" {
		return fmt.Errorf("%w: id", shared.ErrMissingArgument)
	}

	media, err := r.tracker.Media(ctx, user.Username)
	if err != nil {
		return fmt.Errorf("failed to fetch media: %w", err)
	}

	var record *models.MediaRecord
	for i := range media {
		if media[i].ID == id {
			record = &media[i]
			break
		}
	}
	if record == nil {
		return fmt.Errorf("%w: %s", shared.ErrMediaNotFound, id)
	}

	if statusFlag := cmd.String("status"); statusFlag != "" {
		status, err := parseStatus(statusFlag, record.Type)
		if err != nil {
			return err
		}
		record.Status = status
	}
	if record.Type == models.TypeTV {
		if watched := int(cmd.Int("watched")); watched >= 0 {
			record.WatchedEpisodes = watched
		}
		if season := int(cmd.Int("season")); season >= 0 {
			record.Season = season
		}
		if episode := int(cmd.Int("episode")); episode >= 0 {
			record.Episode = episode
		}
	} else if progress := int(cmd.Int("progress")); progress >= 0 {
		record.Progress = clampProgress(progress)
	}
	applyStatusRules(record)

	poster, err := r.verifyPoster(ctx, record.Title, record.PosterPath)
	if err != nil {
		return err
	}
	record.PosterPath = poster

	if err := r.tracker.UpdateMedia(ctx, *record); err != nil {
		return fmt.Errorf("failed to update media: %w", err)
	}

	r.logger.Info("media updated", "id", record.ID)
	return r.writePlain("✓ Updated %q (%s)\n", record.Title, record.ID)
}

// MediaRemove deletes a record, asking for confirmation unless forced.
func (r *Runner) MediaRemove(ctx context.Context, cmd *cli.Command) error {
	if _, err := r.currentUser(); err != nil {
		return err
	}

	id := strings.TrimSpace(cmd.StringArg("id"))
	if id == "" {
		return fmt.Errorf("%w: id", shared.ErrMissingArgument)
	}

	if !cmd.Bool("force") {
		r.writePlain("Remove %s? [y/N] ", id)
		scanner := bufio.NewScanner(r.input)
		if !scanner.Scan() {
			return shared.ErrConfirmationCancelled
		}
		answer := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if answer != "y" && answer != "yes" {
			return shared.ErrConfirmationCancelled
		}
	}

	if err := r.tracker.RemoveMedia(ctx, id); err != nil {
		return fmt.Errorf("failed to remove media: %w", err)
	}

	r.logger.Info("media removed", "id", id)
	return r.writePlain("✓ Removed %s\n", id)
}

// verifyPoster runs the two-stage image gate: the automated check, then
// a manual prompt when the check fails.
func (r *Runner) verifyPoster(ctx context.Context, title, posterURL string) (string, error) {
	confirmer := &services.PromptConfirmer{In: r.input, Out: r.output}
	return services.VerifyPoster(ctx, r.verifier, confirmer, title, posterURL)
}

func (r *Runner) writeExport(path string, data []byte) error {
	if path == "" {
		_, err := r.output.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}
	return r.writePlain("✓ Exported to %s\n", path)
}

func parseMediaType(v string) (models.MediaType, error) {
	switch models.MediaType(v) {
	case models.TypeTV:
		return models.TypeTV, nil
	case models.TypeMovie:
		return models.TypeMovie, nil
	}
	return "", fmt.Errorf("%w: type must be tv or movie", shared.ErrInvalidFlag)
}

func parseStatus(v string, mediaType models.MediaType) (models.Status, error) {
	status := models.Status(v)
	for _, s := range models.StatusesFor(mediaType) {
		if s == status {
			return status, nil
		}
	}
	return "", fmt.Errorf("%w: %q is not a valid %s status", shared.ErrInvalidFlag, v, mediaType)
}

// applyStatusRules enforces the completion invariants: a completed show
// has every known episode watched, a completed movie sits at 100%.
func applyStatusRules(record *models.MediaRecord) {
	if record.Status != models.StatusCompleted {
		return
	}
	if record.Type == models.TypeTV {
		if record.TotalEpisodes > 0 {
			record.WatchedEpisodes = record.TotalEpisodes
		}
	} else {
		record.Progress = 100
	}
}

func clampProgress(p int) int {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}
