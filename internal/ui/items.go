package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"

	"github.com/14-harish/showtracker/internal/models"
)

// mediaItem adapts a tracked record to [list.Item].
type mediaItem struct {
	rec models.MediaRecord
}

func (i mediaItem) Title() string { return i.rec.Title }

func (i mediaItem) Description() string {
	desc := fmt.Sprintf("%s · %s", i.rec.Year, models.FormatStatus(string(i.rec.Status)))
	if i.rec.Status == models.StatusWatching || i.rec.InContinueWatching() {
		desc += fmt.Sprintf(" · %d%%", i.rec.ProgressPercent())
	}
	return desc
}

func (i mediaItem) FilterValue() string { return i.rec.Title }

// searchItem adapts a catalog result to [list.Item].
type searchItem struct {
	res models.SearchResult
}

func (i searchItem) Title() string { return i.res.Title }

func (i searchItem) Description() string {
	label := "Movie"
	if i.res.Type == models.TypeTV {
		label = "TV Show"
	}
	return fmt.Sprintf("%s · %s", label, i.res.Year)
}

func (i searchItem) FilterValue() string { return i.res.Title }

func mediaItems(media []models.MediaRecord) []list.Item {
	items := make([]list.Item, 0, len(media))
	for _, rec := range media {
		items = append(items, mediaItem{rec: rec})
	}
	return items
}

func searchItems(results []models.SearchResult) []list.Item {
	items := make([]list.Item, 0, len(results))
	for _, res := range results {
		items = append(items, searchItem{res: res})
	}
	return items
}
