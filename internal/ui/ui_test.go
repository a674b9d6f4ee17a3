package ui

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/14-harish/showtracker/internal/models"
	"github.com/14-harish/showtracker/internal/shared"
	mocks "github.com/14-harish/showtracker/internal/testing"
)

func newTestModel(tracker *mocks.MockTracker, catalog *mocks.MockCatalog, verifier *mocks.MockVerifier) *Model {
	m := NewModel(context.Background(), tracker, catalog, verifier, nil, shared.NewLogger(io.Discard))
	m.user = &models.User{Username: "harish"}
	m.width = 100
	m.height = 40
	return m
}

func keyPress(m *Model, key tea.KeyType) (*Model, tea.Cmd) {
	updated, cmd := m.Update(tea.KeyMsg{Type: key})
	return updated.(*Model), cmd
}

func TestSaveFlow(t *testing.T) {
	t.Run("verified poster persists directly", func(t *testing.T) {
		var added *models.MediaRecord
		tracker := &mocks.MockTracker{
			AddMediaFn: func(_ context.Context, rec models.MediaRecord) error {
				added = &rec
				return nil
			},
		}
		verifier := &mocks.MockVerifier{Verdict: true}
		m := newTestModel(tracker, &mocks.MockCatalog{}, verifier)
		m.form = NewAddForm(tvResult())

		m, cmd := keyPress(m, tea.KeyCtrlS)
		require.True(t, m.saving)
		require.NotNil(t, cmd)

		msg := cmd()
		checked, ok := msg.(posterCheckedMsg)
		require.True(t, ok)
		assert.True(t, checked.passed)
		assert.Equal(t, 1, verifier.Calls)

		updated, cmd := m.Update(checked)
		m = updated.(*Model)
		require.Nil(t, m.confirm, "no overlay when the check passes")
		require.NotNil(t, cmd)

		done, ok := cmd().(saveDoneMsg)
		require.True(t, ok)
		require.NoError(t, done.err)
		require.NotNil(t, added)
		assert.Equal(t, "tv-100", added.ID)
		assert.Equal(t, "harish", added.Username)
		assert.Equal(t, tvResult().PosterPath, added.PosterPath)

		updated, _ = m.Update(done)
		m = updated.(*Model)
		assert.Nil(t, m.form, "modal closes after a successful save")
		assert.False(t, m.saving)
	})

	t.Run("failed check opens the confirm overlay", func(t *testing.T) {
		saved := 0
		tracker := &mocks.MockTracker{
			AddMediaFn: func(context.Context, models.MediaRecord) error {
				saved++
				return nil
			},
		}
		m := newTestModel(tracker, &mocks.MockCatalog{}, &mocks.MockVerifier{Verdict: false})
		m.form = NewAddForm(tvResult())

		m, cmd := keyPress(m, tea.KeyCtrlS)
		checked := cmd().(posterCheckedMsg)
		require.False(t, checked.passed)

		updated, wait := m.Update(checked)
		m = updated.(*Model)
		require.NotNil(t, m.confirm)
		require.NotNil(t, wait)
		assert.Zero(t, saved, "nothing persists before the user decides")

		// confirming resolves the pending decision with the shown URL
		m, _ = keyPress(m, tea.KeyEnter)
		resolved := wait().(posterResolvedMsg)
		require.NoError(t, resolved.err)
		assert.Equal(t, tvResult().PosterPath, resolved.url)

		updated, persist := m.Update(resolved)
		m = updated.(*Model)
		assert.Nil(t, m.confirm)
		done := persist().(saveDoneMsg)
		require.NoError(t, done.err)
		assert.Equal(t, 1, saved)
	})

	t.Run("cancelling the overlay abandons the save", func(t *testing.T) {
		saved := 0
		tracker := &mocks.MockTracker{
			AddMediaFn: func(context.Context, models.MediaRecord) error {
				saved++
				return nil
			},
		}
		m := newTestModel(tracker, &mocks.MockCatalog{}, &mocks.MockVerifier{Verdict: false})
		m.form = NewAddForm(tvResult())

		m, cmd := keyPress(m, tea.KeyCtrlS)
		updated, wait := m.Update(cmd())
		m = updated.(*Model)
		require.NotNil(t, m.confirm)

		m, _ = keyPress(m, tea.KeyEsc)
		resolved := wait().(posterResolvedMsg)
		require.ErrorIs(t, resolved.err, shared.ErrConfirmationCancelled)

		updated, _ = m.Update(resolved)
		m = updated.(*Model)
		assert.Nil(t, m.confirm)
		assert.NotNil(t, m.form, "modal stays open so nothing is lost")
		assert.False(t, m.saving)
		assert.Zero(t, saved)
	})

	t.Run("empty poster skips verification", func(t *testing.T) {
		verifier := &mocks.MockVerifier{Verdict: false}
		m := newTestModel(&mocks.MockTracker{}, &mocks.MockCatalog{}, verifier)
		res := tvResult()
		res.PosterPath = ""
		m.form = NewAddForm(res)

		_, cmd := keyPress(m, tea.KeyCtrlS)
		checked := cmd().(posterCheckedMsg)
		assert.True(t, checked.passed)
		assert.Zero(t, verifier.Calls)
	})

	t.Run("second save is ignored while one is in flight", func(t *testing.T) {
		verifier := &mocks.MockVerifier{Verdict: true}
		m := newTestModel(&mocks.MockTracker{}, &mocks.MockCatalog{}, verifier)
		m.form = NewAddForm(tvResult())

		m, first := keyPress(m, tea.KeyCtrlS)
		require.NotNil(t, first)
		require.True(t, m.saving)

		_, second := keyPress(m, tea.KeyCtrlS)
		assert.Nil(t, second)
	})

	t.Run("failed save keeps the modal open", func(t *testing.T) {
		tracker := &mocks.MockTracker{
			AddMediaFn: func(context.Context, models.MediaRecord) error {
				return errors.New("backend down")
			},
		}
		m := newTestModel(tracker, &mocks.MockCatalog{}, &mocks.MockVerifier{Verdict: true})
		m.form = NewAddForm(tvResult())

		m, cmd := keyPress(m, tea.KeyCtrlS)
		updated, persist := m.Update(cmd())
		m = updated.(*Model)
		done := persist().(saveDoneMsg)
		require.Error(t, done.err)

		updated, _ = m.Update(done)
		m = updated.(*Model)
		assert.NotNil(t, m.form)
		assert.False(t, m.saving)
		assert.True(t, m.noticeErr)
	})
}

func TestRemoveFlow(t *testing.T) {
	removed := ""
	tracker := &mocks.MockTracker{
		RemoveMediaFn: func(_ context.Context, id string) error {
			removed = id
			return nil
		},
	}
	m := newTestModel(tracker, &mocks.MockCatalog{}, &mocks.MockVerifier{})
	m.form = NewEditForm(models.MediaRecord{ID: "tv-100", Type: models.TypeTV, Title: "Severance"})

	m, _ = keyPress(m, tea.KeyCtrlD)
	require.True(t, m.confirmingRemove)

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("y")})
	m = updated.(*Model)
	require.NotNil(t, cmd)

	done := cmd().(removeDoneMsg)
	require.NoError(t, done.err)
	assert.Equal(t, "tv-100", removed)

	updated, _ = m.Update(done)
	m = updated.(*Model)
	assert.Nil(t, m.form)
}

func TestRemoveNotOfferedOnAdd(t *testing.T) {
	m := newTestModel(&mocks.MockTracker{}, &mocks.MockCatalog{}, &mocks.MockVerifier{})
	m.form = NewAddForm(tvResult())

	m, _ = keyPress(m, tea.KeyCtrlD)
	assert.False(t, m.confirmingRemove)
}

func TestSearchResults(t *testing.T) {
	t.Run("empty result set shows the no-results message", func(t *testing.T) {
		m := newTestModel(&mocks.MockTracker{}, &mocks.MockCatalog{}, &mocks.MockVerifier{})
		m.view = SearchView

		updated, _ := m.Update(searchDoneMsg{query: "nothing here"})
		m = updated.(*Model)
		assert.Contains(t, m.renderSearch(), `No results found for "nothing here"`)
	})

	t.Run("failed search keeps the previous state visible", func(t *testing.T) {
		m := newTestModel(&mocks.MockTracker{}, &mocks.MockCatalog{}, &mocks.MockVerifier{})
		m.view = SearchView

		updated, _ := m.Update(searchDoneMsg{query: "breaking", err: errors.New("boom")})
		m = updated.(*Model)
		assert.Contains(t, m.renderSearch(), "Search failed")
		assert.Empty(t, m.results)
	})

	t.Run("results move focus to the list", func(t *testing.T) {
		m := newTestModel(&mocks.MockTracker{}, &mocks.MockCatalog{}, &mocks.MockVerifier{})
		m.view = SearchView

		updated, _ := m.Update(searchDoneMsg{query: "dune", results: []models.SearchResult{movieResult()}})
		m = updated.(*Model)
		assert.True(t, m.searchFocusList)
		assert.Contains(t, m.renderSearch(), "Dune")
	})
}

func TestFilterCycling(t *testing.T) {
	m := newTestModel(&mocks.MockTracker{}, &mocks.MockCatalog{}, &mocks.MockVerifier{})
	m.view = TVShowsView
	require.Equal(t, models.StatusWatching, m.tvFilter)

	m.cycleFilter(1)
	assert.Equal(t, models.StatusCompleted, m.tvFilter)
	m.cycleFilter(-1)
	m.cycleFilter(-1)
	assert.Equal(t, models.StatusToWatch, m.tvFilter)

	m.view = MoviesView
	require.Equal(t, models.StatusToWatch, m.movieFilter)
	m.cycleFilter(-1)
	assert.Equal(t, models.StatusCompleted, m.movieFilter, "movies wrap without a dropped status")
}

func TestMediaItemDescription(t *testing.T) {
	watching := mediaItem{rec: models.MediaRecord{
		Type: models.TypeTV, Year: "2022", Status: models.StatusWatching,
		WatchedEpisodes: 9, TotalEpisodes: 18,
	}}
	assert.True(t, strings.Contains(watching.Description(), "50%"))

	planned := mediaItem{rec: models.MediaRecord{
		Type: models.TypeMovie, Year: "2021", Status: models.StatusToWatch,
	}}
	assert.False(t, strings.Contains(planned.Description(), "%"))
}
