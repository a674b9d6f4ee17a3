package ui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/14-harish/showtracker/internal/models"
)

// FormMode distinguishes a form seeded from a search result from one
// seeded from an existing record. Remove is only offered in edit mode.
type FormMode int

const (
	FormAdd FormMode = iota
	FormEdit
)

const (
	fieldWatched = iota
	fieldSeason
	fieldEpisode
	fieldProgress
)

// MediaForm is the modal used to add or edit a tracked record. At most
// one form is open at a time; the model holds a nil *MediaForm when the
// modal is closed. The form never talks to the backend itself, it only
// collects input and produces a payload.
type MediaForm struct {
	mode      FormMode
	mediaType models.MediaType

	id            string
	title         string
	year          string
	overview      string
	poster        string
	totalEpisodes int

	statusIdx int
	watched   textinput.Model
	season    textinput.Model
	episode   textinput.Model
	progress  int

	focus int
}

func newNumberInput(placeholder string, width int) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 5
	ti.Width = width
	return ti
}

// NewAddForm seeds a form from a catalog search result. Episode counters
// start at zero watched, season one, episode one.
func NewAddForm(res models.SearchResult) *MediaForm {
	f := &MediaForm{
		mode:          FormAdd,
		mediaType:     res.Type,
		id:            res.ID,
		title:         res.Title,
		year:          res.Year,
		overview:      res.Overview,
		poster:        res.PosterPath,
		totalEpisodes: res.TotalEpisodes,
		watched:       newNumberInput("0", 6),
		season:        newNumberInput("1", 6),
		episode:       newNumberInput("1", 6),
	}
	f.watched.SetValue("0")
	f.season.SetValue("1")
	f.episode.SetValue("1")
	f.focusField(0)
	return f
}

// NewEditForm seeds a form from a tracked record.
func NewEditForm(rec models.MediaRecord) *MediaForm {
	f := &MediaForm{
		mode:          FormEdit,
		mediaType:     rec.Type,
		id:            rec.ID,
		title:         rec.Title,
		year:          rec.Year,
		overview:      rec.Overview,
		poster:        rec.PosterPath,
		totalEpisodes: rec.TotalEpisodes,
		progress:      rec.Progress,
		watched:       newNumberInput("0", 6),
		season:        newNumberInput("1", 6),
		episode:       newNumberInput("1", 6),
	}
	f.watched.SetValue(strconv.Itoa(rec.WatchedEpisodes))
	f.season.SetValue(strconv.Itoa(rec.Season))
	f.episode.SetValue(strconv.Itoa(rec.Episode))
	for i, s := range models.StatusesFor(rec.Type) {
		if s == rec.Status {
			f.statusIdx = i
		}
	}
	f.focusField(0)
	return f
}

func (f *MediaForm) Mode() FormMode              { return f.mode }
func (f *MediaForm) MediaType() models.MediaType { return f.mediaType }
func (f *MediaForm) ID() string                  { return f.id }
func (f *MediaForm) Title() string               { return f.title }
func (f *MediaForm) Poster() string              { return f.poster }

func (f *MediaForm) Status() models.Status {
	return models.StatusesFor(f.mediaType)[f.statusIdx]
}

// CycleStatus moves the status selector and applies the completion
// rules: a completed show snaps watched to the episode total when the
// total is known, a completed movie snaps progress to 100.
func (f *MediaForm) CycleStatus(delta int) {
	opts := models.StatusesFor(f.mediaType)
	f.statusIdx = (f.statusIdx + delta + len(opts)) % len(opts)
	f.applyStatusRules()
	f.clampFocus()
}

func (f *MediaForm) applyStatusRules() {
	if f.Status() != models.StatusCompleted {
		return
	}
	if f.mediaType == models.TypeTV {
		if f.totalEpisodes > 0 {
			f.watched.SetValue(strconv.Itoa(f.totalEpisodes))
		}
	} else {
		f.progress = 100
	}
}

// ShowEpisodeInputs reports whether the episode counters are part of the
// form: TV only, and only while the show is being watched.
func (f *MediaForm) ShowEpisodeInputs() bool {
	return f.mediaType == models.TypeTV && f.Status() == models.StatusWatching
}

// ShowProgress reports whether the movie progress slider is shown.
func (f *MediaForm) ShowProgress() bool {
	return f.mediaType == models.TypeMovie
}

// AdjustProgress nudges the movie slider, clamped to 0..100.
func (f *MediaForm) AdjustProgress(delta int) {
	f.progress += delta
	if f.progress < 0 {
		f.progress = 0
	}
	if f.progress > 100 {
		f.progress = 100
	}
}

func (f *MediaForm) Progress() int { return f.progress }

// DeleteAllowed reports whether the form offers removal. Only records
// that already exist can be removed.
func (f *MediaForm) DeleteAllowed() bool { return f.mode == FormEdit }

func (f *MediaForm) fields() []int {
	if f.ShowEpisodeInputs() {
		return []int{fieldWatched, fieldSeason, fieldEpisode}
	}
	if f.ShowProgress() {
		return []int{fieldProgress}
	}
	return nil
}

func (f *MediaForm) input(field int) *textinput.Model {
	switch field {
	case fieldWatched:
		return &f.watched
	case fieldSeason:
		return &f.season
	case fieldEpisode:
		return &f.episode
	}
	return nil
}

func (f *MediaForm) focusField(idx int) {
	fields := f.fields()
	f.watched.Blur()
	f.season.Blur()
	f.episode.Blur()
	if len(fields) == 0 {
		f.focus = 0
		return
	}
	if idx < 0 {
		idx = len(fields) - 1
	}
	if idx >= len(fields) {
		idx = 0
	}
	f.focus = idx
	if ti := f.input(fields[idx]); ti != nil {
		ti.Focus()
	}
}

func (f *MediaForm) clampFocus() {
	f.focusField(f.focus)
}

// FocusNext and FocusPrev move focus across whichever inputs the current
// status makes visible.
func (f *MediaForm) FocusNext() { f.focusField(f.focus + 1) }
func (f *MediaForm) FocusPrev() { f.focusField(f.focus - 1) }

// Update forwards a message to the focused text input.
func (f *MediaForm) Update(msg tea.Msg) tea.Cmd {
	fields := f.fields()
	if len(fields) == 0 {
		return nil
	}
	field := fields[f.focus]
	if field == fieldProgress {
		return nil
	}
	ti := f.input(field)
	var cmd tea.Cmd
	*ti, cmd = ti.Update(msg)
	return cmd
}

func parseCount(v string, fallback int) int {
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil || n < 0 {
		return fallback
	}
	return n
}

// Payload collects the form into the record sent to the backend. Blank
// or malformed episode counters fall back to their seeds, and movie
// records carry no episode fields at all.
func (f *MediaForm) Payload(username string) models.MediaRecord {
	rec := models.MediaRecord{
		ID:         f.id,
		Username:   username,
		Type:       f.mediaType,
		Title:      f.title,
		Year:       f.year,
		Overview:   f.overview,
		PosterPath: f.poster,
		Status:     f.Status(),
	}
	if f.mediaType == models.TypeTV {
		rec.TotalEpisodes = f.totalEpisodes
		rec.WatchedEpisodes = parseCount(f.watched.Value(), 0)
		rec.Season = parseCount(f.season.Value(), 1)
		rec.Episode = parseCount(f.episode.Value(), 1)
		if rec.Season == 0 {
			rec.Season = 1
		}
		if rec.Episode == 0 {
			rec.Episode = 1
		}
	} else {
		rec.Progress = f.progress
	}
	return rec
}

// View renders the modal.
func (f *MediaForm) View(saving bool, confirmingRemove bool) string {
	var b strings.Builder

	heading := "Add to Library"
	if f.mode == FormEdit {
		heading = "Edit Record"
	}
	b.WriteString(styles.title.Render(heading))
	b.WriteString("\n\n")

	label := "Movie"
	if f.mediaType == models.TypeTV {
		label = "TV Show"
	}
	b.WriteString(styles.label.Render(f.title))
	b.WriteString(styles.help.Render("  " + label + " · " + f.year))
	b.WriteString("\n\n")

	b.WriteString(styles.label.Render("Status: "))
	for i, s := range models.StatusesFor(f.mediaType) {
		name := models.FormatStatus(string(s))
		if i == f.statusIdx {
			b.WriteString(styles.selected.Render("[" + name + "]"))
		} else {
			b.WriteString(styles.help.Render(" " + name + " "))
		}
		b.WriteString(" ")
	}
	b.WriteString("\n")

	if f.ShowEpisodeInputs() {
		b.WriteString("\n")
		b.WriteString(styles.label.Render("Watched: ") + f.watched.View())
		if f.totalEpisodes > 0 {
			b.WriteString(styles.help.Render(" of " + strconv.Itoa(f.totalEpisodes)))
		}
		b.WriteString("\n")
		b.WriteString(styles.label.Render("Season:  ") + f.season.View())
		b.WriteString("\n")
		b.WriteString(styles.label.Render("Episode: ") + f.episode.View())
		b.WriteString("\n")
	}

	if f.ShowProgress() {
		b.WriteString("\n")
		b.WriteString(styles.label.Render("Progress: "))
		b.WriteString(renderSlider(f.progress, 20))
		b.WriteString(" " + strconv.Itoa(f.progress) + "%")
		b.WriteString("\n")
	}

	b.WriteString("\n")
	switch {
	case saving:
		b.WriteString(styles.warn.Render("Saving..."))
	case confirmingRemove:
		b.WriteString(styles.err.Render("Remove this record? (y/n)"))
	case f.DeleteAllowed():
		b.WriteString(styles.help.Render("tab next · ←/→ status · ctrl+s save · ctrl+d remove · esc close"))
	default:
		b.WriteString(styles.help.Render("tab next · ←/→ status · ctrl+s save · esc close"))
	}

	return styles.modal.Render(b.String())
}

func renderSlider(pct, width int) string {
	filled := pct * width / 100
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}
