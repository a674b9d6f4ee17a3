// package formatter renders media collections for CLI output (table, CSV, Markdown)
package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/14-harish/showtracker/internal/models"
	"github.com/14-harish/showtracker/internal/shared"
)

// MediaTable renders records as an aligned text table.
func MediaTable(media []models.MediaRecord) string {
	if len(media) == 0 {
		return "No items found.\n"
	}

	var buf bytes.Buffer
	w := tabwriter.NewWriter(&buf, 0, 4, 2, ' ', 0)

	fmt.Fprintln(w, "TITLE\tTYPE\tYEAR\tSTATUS\tPROGRESS")
	for _, m := range media {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			m.Title, m.Type, displayYear(m.Year), models.FormatStatus(string(m.Status)), progressCell(m))
	}

	w.Flush()
	return buf.String()
}

// progressCell formats the progress column; only records being watched show one.
func progressCell(m models.MediaRecord) string {
	if m.Status != models.StatusWatching {
		return "-"
	}
	if m.Type == models.TypeTV {
		total := "?"
		if m.TotalEpisodes > 0 {
			total = strconv.Itoa(m.TotalEpisodes)
		}
		return fmt.Sprintf("%d/%s (%d%%)", m.WatchedEpisodes, total, m.ProgressPercent())
	}
	return fmt.Sprintf("%d%%", m.Progress)
}

func displayYear(year string) string {
	if year == "" {
		return "Unknown"
	}
	return year
}

// ExportToCSV converts media records to CSV with columns: ID, Type, Title, Year, Status, Watched, Total, Progress, Season, Episode
func ExportToCSV(media []models.MediaRecord) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"ID", "Type", "Title", "Year", "Status", "Watched", "Total", "Progress", "Season", "Episode"}
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, m := range media {
		record := []string{
			m.ID,
			string(m.Type),
			m.Title,
			m.Year,
			string(m.Status),
			strconv.Itoa(m.WatchedEpisodes),
			strconv.Itoa(m.TotalEpisodes),
			strconv.Itoa(m.Progress),
			strconv.Itoa(m.Season),
			strconv.Itoa(m.Episode),
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// ExportToMarkdown converts media records to a Markdown listing.
func ExportToMarkdown(username string, media []models.MediaRecord) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("# %s's watchlist\n\n", username))
	buf.WriteString(fmt.Sprintf("**Items**: %d\n\n", len(media)))

	for i, m := range media {
		line := fmt.Sprintf("%d. %s (%s, %s) — %s", i+1, m.Title, m.Type, displayYear(m.Year), models.FormatStatus(string(m.Status)))
		if m.Status == models.StatusWatching {
			line += fmt.Sprintf(" [%d%%]", m.ProgressPercent())
		}
		buf.WriteString(line + "\n")
	}

	return buf.Bytes(), nil
}

// ToJSON generates a JSON representation of the media list.
func ToJSON(media []models.MediaRecord) ([]byte, error) {
	return shared.MarshalJSON(media, true)
}

// SearchResults renders catalog matches, or the empty-state message when
// nothing matched the query.
func SearchResults(results []models.SearchResult, query string) string {
	if len(results) == 0 {
		return fmt.Sprintf("No results found for %q\n", query)
	}

	var buf bytes.Buffer
	w := tabwriter.NewWriter(&buf, 0, 4, 2, ' ', 0)

	fmt.Fprintln(w, "ID\tTITLE\tTYPE\tYEAR")
	for _, r := range results {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", r.ID, r.Title, typeLabel(r.Type), r.Year)
	}

	w.Flush()
	return buf.String()
}

func typeLabel(t models.MediaType) string {
	if t == models.TypeTV {
		return "TV Show"
	}
	return "Movie"
}

// Activities renders the recent-activity feed.
func Activities(activities []models.Activity) string {
	if len(activities) == 0 {
		return "No recent activity\n"
	}

	var buf bytes.Buffer
	for _, a := range activities {
		buf.WriteString(fmt.Sprintf("%s  %s\n", a.Timestamp, a.Message))
	}
	return buf.String()
}

// ProgressBar renders a text progress bar of the given width.
func ProgressBar(percent, width int) string {
	if width <= 0 {
		width = 20
	}
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}

	filled := percent * width / 100
	return fmt.Sprintf("[%s%s] %d%%", strings.Repeat("█", filled), strings.Repeat("░", width-filled), percent)
}
