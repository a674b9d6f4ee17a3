package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgressPercent(t *testing.T) {
	t.Run("TV", func(t *testing.T) {
		cases := []struct {
			name     string
			watched  int
			total    int
			expected int
		}{
			{"Zero Total", 5, 0, 0},
			{"Zero Watched", 0, 10, 0},
			{"Halfway", 5, 10, 50},
			{"Rounds Up", 1, 3, 33},
			{"Rounds Half Up", 1, 8, 13},
			{"Complete", 24, 24, 100},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				m := MediaRecord{Type: TypeTV, WatchedEpisodes: tc.watched, TotalEpisodes: tc.total}
				assert.Equal(t, tc.expected, m.ProgressPercent())
			})
		}
	})

	t.Run("Movie Uses Raw Progress", func(t *testing.T) {
		m := MediaRecord{Type: TypeMovie, Progress: 42, WatchedEpisodes: 9, TotalEpisodes: 10}
		assert.Equal(t, 42, m.ProgressPercent())
	})
}

func TestFormatStatus(t *testing.T) {
	cases := map[string]string{
		"to-watch":  "Plan to Watch",
		"watching":  "Watching",
		"completed": "Completed",
		"dropped":   "Dropped",
		"archived":  "archived",
		"":          "",
	}

	for in, want := range cases {
		assert.Equal(t, want, FormatStatus(in))
	}
}

func TestStatusesFor(t *testing.T) {
	assert.Equal(t, []Status{StatusToWatch, StatusWatching, StatusCompleted, StatusDropped}, StatusesFor(TypeTV))
	assert.Equal(t, []Status{StatusToWatch, StatusWatching, StatusCompleted}, StatusesFor(TypeMovie))
}

func TestInContinueWatching(t *testing.T) {
	cases := []struct {
		name     string
		record   MediaRecord
		expected bool
	}{
		{"Watching TV", MediaRecord{Type: TypeTV, Status: StatusWatching}, true},
		{"Watching Movie", MediaRecord{Type: TypeMovie, Status: StatusWatching}, true},
		{"Paused Movie", MediaRecord{Type: TypeMovie, Status: StatusToWatch, Progress: 30}, true},
		{"Finished Movie", MediaRecord{Type: TypeMovie, Status: StatusCompleted, Progress: 100}, false},
		{"Unstarted Movie", MediaRecord{Type: TypeMovie, Status: StatusToWatch, Progress: 0}, false},
		{"Completed TV", MediaRecord{Type: TypeTV, Status: StatusCompleted}, false},
		{"TV With Progress Field Set", MediaRecord{Type: TypeTV, Status: StatusDropped, Progress: 50}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.record.InContinueWatching())
		})
	}
}

func TestFilters(t *testing.T) {
	media := []MediaRecord{
		{ID: "tv-1", Type: TypeTV, Status: StatusWatching},
		{ID: "tv-2", Type: TypeTV, Status: StatusCompleted},
		{ID: "movie-1", Type: TypeMovie, Status: StatusToWatch, Progress: 45},
		{ID: "movie-2", Type: TypeMovie, Status: StatusToWatch},
		{ID: "movie-3", Type: TypeMovie, Status: StatusWatching},
	}

	t.Run("By Type And Status", func(t *testing.T) {
		got := FilterByTypeStatus(media, TypeMovie, StatusToWatch)
		assert.Len(t, got, 2)
		assert.Equal(t, "movie-1", got[0].ID)
		assert.Equal(t, "movie-2", got[1].ID)
	})

	t.Run("By Type", func(t *testing.T) {
		assert.Len(t, FilterByType(media, TypeTV), 2)
		assert.Len(t, FilterByType(media, TypeMovie), 3)
	})

	t.Run("Continue Watching", func(t *testing.T) {
		got := FilterContinueWatching(media)
		assert.Len(t, got, 3)
		assert.Equal(t, "tv-1", got[0].ID)
		assert.Equal(t, "movie-1", got[1].ID)
		assert.Equal(t, "movie-3", got[2].ID)
	})

	t.Run("Empty Input", func(t *testing.T) {
		assert.Empty(t, FilterByTypeStatus(nil, TypeTV, StatusWatching))
		assert.Empty(t, FilterContinueWatching(nil))
	})
}

func TestSortByYearDesc(t *testing.T) {
	t.Run("Newest First", func(t *testing.T) {
		results := []SearchResult{
			{Title: "Dune", Year: "1984"},
			{Title: "Dune: Part Two", Year: "2024"},
			{Title: "Dune", Year: "2021"},
		}

		SortByYearDesc(results)

		assert.Equal(t, "2024", results[0].Year)
		assert.Equal(t, "2021", results[1].Year)
		assert.Equal(t, "1984", results[2].Year)
	})

	t.Run("Unknown Years Sort Last", func(t *testing.T) {
		results := []SearchResult{
			{Title: "a", Year: "Unknown"},
			{Title: "b", Year: "1999"},
			{Title: "c", Year: "Unknown"},
			{Title: "d", Year: "2010"},
		}

		SortByYearDesc(results)

		assert.Equal(t, "2010", results[0].Year)
		assert.Equal(t, "1999", results[1].Year)
		// stable: undated results keep their relative order
		assert.Equal(t, "a", results[2].Title)
		assert.Equal(t, "c", results[3].Title)
	})

	t.Run("Mixed Types Interleave", func(t *testing.T) {
		results := []SearchResult{
			{Title: "Dune", Type: TypeMovie, Year: "2021"},
			{Title: "Dune: Prophecy", Type: TypeTV, Year: "2024"},
			{Title: "Frank Herbert's Dune", Type: TypeTV, Year: "2000"},
		}

		SortByYearDesc(results)

		assert.Equal(t, TypeTV, results[0].Type)
		assert.Equal(t, TypeMovie, results[1].Type)
		assert.Equal(t, TypeTV, results[2].Type)
	})
}
