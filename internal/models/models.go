package models

import (
	"math"
	"sort"
	"strconv"
)

// MediaType discriminates TV shows from movies.
type MediaType string

const (
	TypeTV    MediaType = "tv"
	TypeMovie MediaType = "movie"
)

// Status is a media record's watch status.
type Status string

const (
	StatusToWatch   Status = "to-watch"
	StatusWatching  Status = "watching"
	StatusCompleted Status = "completed"
	StatusDropped   Status = "dropped" // TV only
)

// StatusesFor returns the selectable statuses for a media type.
//
// Movies cannot be dropped; the tracker models an abandoned movie as a
// partially-watched one.
func StatusesFor(t MediaType) []Status {
	if t == TypeTV {
		return []Status{StatusToWatch, StatusWatching, StatusCompleted, StatusDropped}
	}
	return []Status{StatusToWatch, StatusWatching, StatusCompleted}
}

// FormatStatus converts a status code to its display label.
//
// Unknown codes pass through unchanged.
func FormatStatus(status string) string {
	switch Status(status) {
	case StatusToWatch:
		return "Plan to Watch"
	case StatusWatching:
		return "Watching"
	case StatusCompleted:
		return "Completed"
	case StatusDropped:
		return "Dropped"
	default:
		return status
	}
}

// User is the authenticated account as returned by the tracker's login endpoint.
type User struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

// MediaRecord is a user's tracked TV show or movie.
//
// Movie records keep Season, Episode and WatchedEpisodes zeroed; only movies
// with [StatusWatching] carry a meaningful Progress value.
type MediaRecord struct {
	ID              string    `json:"id"`
	Username        string    `json:"username"`
	Type            MediaType `json:"type"`
	Title           string    `json:"title"`
	Year            string    `json:"year"`
	Overview        string    `json:"overview"`
	PosterPath      string    `json:"poster_path"`
	Status          Status    `json:"status"`
	WatchedEpisodes int       `json:"watched_episodes"`
	TotalEpisodes   int       `json:"total_episodes"`
	Progress        int       `json:"progress"` // movie completion, 0-100
	Season          int       `json:"season"`
	Episode         int       `json:"episode"`
}

// ProgressPercent returns the record's completion percentage for display.
//
// TV shows derive it from the episode fraction, rounding half away from zero;
// an unknown episode total yields 0. Movies report Progress as-is.
func (m MediaRecord) ProgressPercent() int {
	if m.Type == TypeTV {
		if m.TotalEpisodes == 0 {
			return 0
		}
		return int(math.Round(float64(m.WatchedEpisodes) / float64(m.TotalEpisodes) * 100))
	}
	return m.Progress
}

// InContinueWatching reports whether the record belongs in the
// continue-watching view: anything being watched, plus movies paused
// partway through regardless of status.
func (m MediaRecord) InContinueWatching() bool {
	if m.Status == StatusWatching {
		return true
	}
	return m.Type == TypeMovie && m.Progress > 0 && m.Progress < 100
}

// SearchResult is a catalog match normalized into one shape for both
// media types. It is never persisted; the add flow converts it into a
// [MediaRecord].
type SearchResult struct {
	ID            string    `json:"id"` // composite "<type>-<tmdb id>"
	TMDBID        int       `json:"tmdb_id"`
	Type          MediaType `json:"type"`
	Title         string    `json:"title"`
	Year          string    `json:"year"` // 4-digit string, or "Unknown"
	Overview      string    `json:"overview"`
	PosterPath    string    `json:"poster_path"`
	TotalEpisodes int       `json:"total_episodes"`
}

// Activity is a read-only backend audit entry.
type Activity struct {
	Action    string `json:"action"` // add, update, remove
	MediaType string `json:"media_type"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

// FilterByTypeStatus returns records matching both the media type and status.
func FilterByTypeStatus(media []MediaRecord, t MediaType, s Status) []MediaRecord {
	var out []MediaRecord
	for _, m := range media {
		if m.Type == t && m.Status == s {
			out = append(out, m)
		}
	}
	return out
}

// FilterByType returns records of the given media type.
func FilterByType(media []MediaRecord, t MediaType) []MediaRecord {
	var out []MediaRecord
	for _, m := range media {
		if m.Type == t {
			out = append(out, m)
		}
	}
	return out
}

// FilterContinueWatching returns the continue-watching subset.
func FilterContinueWatching(media []MediaRecord) []MediaRecord {
	var out []MediaRecord
	for _, m := range media {
		if m.InContinueWatching() {
			out = append(out, m)
		}
	}
	return out
}

// SortByYearDesc orders search results newest first.
//
// Years are compared numerically; results whose year does not parse (e.g.
// "Unknown") sort after every dated result. Ties keep their original order so
// the catalog's own relevance ranking survives within a year.
func SortByYearDesc(results []SearchResult) {
	sort.SliceStable(results, func(i, j int) bool {
		yi, oki := parseYear(results[i].Year)
		yj, okj := parseYear(results[j].Year)
		if oki != okj {
			return oki
		}
		return yi > yj
	})
}

func parseYear(s string) (int, bool) {
	y, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return y, true
}
