package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/14-harish/showtracker/internal/models"
	"github.com/14-harish/showtracker/internal/repositories"
	"github.com/14-harish/showtracker/internal/services"
	"github.com/14-harish/showtracker/internal/shared"
)

// ViewState represents the current view in the TUI.
type ViewState int

const (
	AuthView ViewState = iota
	DashboardView
	TVShowsView
	MoviesView
	ContinueWatchingView
	SearchView
)

const (
	authUsername = iota
	authEmail
	authPassword
)

const recentActivityLimit = 5

// imageConfirm is the overlay shown when the automated image check fails
// and the save needs a human decision. pending resolves exactly once,
// either with the confirmed URL or with a cancellation error; the save
// command blocks on it in the background.
type imageConfirm struct {
	title   string
	url     string
	pending *services.Confirmation
}

// Model represents the TUI application state.
type Model struct {
	ctx      context.Context
	view     ViewState
	tracker  services.Tracker
	catalog  services.Catalog
	verifier services.Verifier
	sessions *repositories.SessionRepository
	logger   *log.Logger

	user   *models.User
	width  int
	height int

	// auth
	registering bool
	authInputs  []textinput.Model
	authFocus   int
	authErr     error

	// collection views
	media       []models.MediaRecord
	mediaList   list.Model
	tvFilter    models.Status
	movieFilter models.Status
	activities  []models.Activity

	// search
	searchInput     textinput.Model
	searchType      string
	results         []models.SearchResult
	resultList      list.Model
	lastQuery       string
	searched        bool
	searching       bool
	searchErr       error
	searchFocusList bool

	// modal
	form             *MediaForm
	confirmingRemove bool
	confirm          *imageConfirm
	saving           bool

	notice    string
	noticeErr bool
	err       error
	help      help.Model
	keys      keyMap
}

type sessionRestoredMsg struct {
	user *models.User
}

type authDoneMsg struct {
	user *models.User
	err  error
}

type loggedOutMsg struct{}

type mediaFetchedMsg struct {
	media []models.MediaRecord
	err   error
}

type activitiesFetchedMsg struct {
	activities []models.Activity
	err        error
}

type searchDoneMsg struct {
	query   string
	results []models.SearchResult
	err     error
}

type posterCheckedMsg struct {
	passed bool
}

type posterResolvedMsg struct {
	url string
	err error
}

type saveDoneMsg struct {
	added bool
	title string
	err   error
}

type removeDoneMsg struct {
	title string
	err   error
}

type clearNoticeMsg struct{}

// NewModel creates a new TUI model with the provided dependencies.
func NewModel(ctx context.Context, tracker services.Tracker, catalog services.Catalog, verifier services.Verifier, sessions *repositories.SessionRepository, logger *log.Logger) *Model {
	inputs := make([]textinput.Model, 3)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].CharLimit = 64
		inputs[i].Width = 32
	}
	inputs[authUsername].Placeholder = "username"
	inputs[authEmail].Placeholder = "email"
	inputs[authPassword].Placeholder = "password"
	inputs[authPassword].EchoMode = textinput.EchoPassword

	search := textinput.New()
	search.Placeholder = "Search TV shows and movies..."
	search.CharLimit = 128
	search.Width = 48

	return &Model{
		ctx:         ctx,
		view:        AuthView,
		tracker:     tracker,
		catalog:     catalog,
		verifier:    verifier,
		sessions:    sessions,
		logger:      logger,
		authInputs:  inputs,
		searchInput: search,
		searchType:  "all",
		tvFilter:    models.StatusWatching,
		movieFilter: models.StatusToWatch,
		mediaList:   list.New([]list.Item{}, list.NewDefaultDelegate(), 0, 0),
		resultList:  list.New([]list.Item{}, list.NewDefaultDelegate(), 0, 0),
		help:        help.New(),
		keys:        newKeyMap(),
	}
}

// Init restores a persisted session so a returning user lands on the
// dashboard instead of the login form.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.restoreSession(), textinput.Blink)
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.mediaList.SetSize(msg.Width-4, msg.Height-10)
		m.resultList.SetSize(msg.Width-4, msg.Height-12)
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.confirm != nil {
			return m.handleConfirmKeys(msg)
		}
		if m.form != nil {
			return m.handleFormKeys(msg)
		}
		switch m.view {
		case AuthView:
			return m.handleAuthKeys(msg)
		case DashboardView:
			return m.handleDashboardKeys(msg)
		case TVShowsView, MoviesView, ContinueWatchingView:
			return m.handleGridKeys(msg)
		case SearchView:
			return m.handleSearchKeys(msg)
		}
		return m, nil

	case sessionRestoredMsg:
		if msg.user == nil {
			m.focusAuthField(authUsername)
			return m, nil
		}
		m.user = msg.user
		return m, m.navigate(DashboardView)

	case authDoneMsg:
		if msg.err != nil {
			m.authErr = msg.err
			return m, nil
		}
		m.user = msg.user
		m.authErr = nil
		for i := range m.authInputs {
			m.authInputs[i].SetValue("")
		}
		return m, m.navigate(DashboardView)

	case loggedOutMsg:
		m.user = nil
		m.media = nil
		m.activities = nil
		m.results = nil
		m.searched = false
		for i := range m.authInputs {
			m.authInputs[i].SetValue("")
		}
		m.view = AuthView
		m.focusAuthField(authUsername)
		return m, nil

	case mediaFetchedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.media = msg.media
		m.refreshMediaList()
		return m, nil

	case activitiesFetchedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.activities = msg.activities
		return m, nil

	case searchDoneMsg:
		m.searching = false
		m.searched = true
		m.lastQuery = msg.query
		m.searchErr = msg.err
		if msg.err != nil {
			m.results = nil
			return m, nil
		}
		m.results = msg.results
		m.resultList = list.New(searchItems(msg.results), list.NewDefaultDelegate(), m.width-4, m.height-12)
		m.resultList.Title = fmt.Sprintf("Results for %q", msg.query)
		m.resultList.SetShowHelp(false)
		if len(msg.results) > 0 {
			m.searchFocusList = true
			m.searchInput.Blur()
		}
		return m, nil

	case posterCheckedMsg:
		if m.form == nil {
			m.saving = false
			return m, nil
		}
		if msg.passed {
			return m, m.persist(m.form.Poster())
		}
		conf := services.NewConfirmation()
		m.confirm = &imageConfirm{title: m.form.Title(), url: m.form.Poster(), pending: conf}
		return m, m.awaitConfirmation(conf)

	case posterResolvedMsg:
		m.confirm = nil
		if msg.err != nil {
			m.saving = false
			return m, m.showNotice("Save cancelled — nothing was changed", true)
		}
		return m, m.persist(msg.url)

	case saveDoneMsg:
		m.saving = false
		if msg.err != nil {
			return m, m.showNotice(fmt.Sprintf("Save failed: %v", msg.err), true)
		}
		m.form = nil
		verb := "Updated"
		if msg.added {
			verb = "Added"
		}
		return m, tea.Batch(
			m.showNotice(fmt.Sprintf("%s %q", verb, msg.title), false),
			m.navigate(m.view),
		)

	case removeDoneMsg:
		m.saving = false
		m.confirmingRemove = false
		if msg.err != nil {
			return m, m.showNotice(fmt.Sprintf("Remove failed: %v", msg.err), true)
		}
		m.form = nil
		return m, tea.Batch(
			m.showNotice(fmt.Sprintf("Removed %q", msg.title), false),
			m.navigate(m.view),
		)

	case clearNoticeMsg:
		m.notice = ""
		return m, nil
	}

	return m.updateInputs(msg)
}

// View renders the UI based on the current view state.
func (m *Model) View() string {
	var body string
	switch {
	case m.confirm != nil:
		body = m.renderConfirm()
	case m.form != nil:
		body = m.form.View(m.saving, m.confirmingRemove)
	default:
		switch m.view {
		case AuthView:
			body = m.renderAuth()
		case DashboardView:
			body = m.renderDashboard()
		case TVShowsView, MoviesView, ContinueWatchingView:
			body = m.renderGrid()
		case SearchView:
			body = m.renderSearch()
		}
	}

	var footer []string
	if m.notice != "" {
		if m.noticeErr {
			footer = append(footer, styles.err.Render(m.notice))
		} else {
			footer = append(footer, styles.ok.Render(m.notice))
		}
	}
	if m.err != nil {
		footer = append(footer, styles.err.Render(fmt.Sprintf("Error: %v", m.err)))
	}
	if m.view != AuthView && m.form == nil && m.confirm == nil {
		footer = append(footer, m.help.View(m.keys))
	}
	if len(footer) == 0 {
		return body
	}
	return body + "\n" + strings.Join(footer, "\n")
}

func (m *Model) handleAuthKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "tab", "down":
		m.focusAuthField(m.nextAuthField(1))
		return m, nil
	case "shift+tab", "up":
		m.focusAuthField(m.nextAuthField(-1))
		return m, nil
	case "ctrl+t":
		m.registering = !m.registering
		m.authErr = nil
		m.focusAuthField(authUsername)
		return m, nil
	case "enter":
		return m, m.submitAuth()
	}

	var cmd tea.Cmd
	m.authInputs[m.authFocus], cmd = m.authInputs[m.authFocus].Update(msg)
	return m, cmd
}

func (m *Model) handleDashboardKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if cmd, ok := m.handleNavKeys(msg); ok {
		return m, cmd
	}
	return m, nil
}

func (m *Model) handleGridKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if cmd, ok := m.handleNavKeys(msg); ok {
		return m, cmd
	}

	switch msg.String() {
	case "left", "right":
		if m.view == ContinueWatchingView {
			break
		}
		delta := 1
		if msg.String() == "left" {
			delta = -1
		}
		m.cycleFilter(delta)
		return m, m.navigate(m.view)
	case "enter":
		if item, ok := m.mediaList.SelectedItem().(mediaItem); ok {
			m.form = NewEditForm(item.rec)
			m.confirmingRemove = false
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.mediaList, cmd = m.mediaList.Update(msg)
	return m, cmd
}

func (m *Model) handleSearchKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.searchFocusList {
		if cmd, ok := m.handleNavKeys(msg); ok {
			return m, cmd
		}
		switch msg.String() {
		case "/", "tab":
			m.searchFocusList = false
			m.searchInput.Focus()
			return m, textinput.Blink
		case "enter":
			if item, ok := m.resultList.SelectedItem().(searchItem); ok {
				m.form = NewAddForm(item.res)
				m.confirmingRemove = false
			}
			return m, nil
		}
		var cmd tea.Cmd
		m.resultList, cmd = m.resultList.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "enter":
		return m, m.runSearch()
	case "ctrl+t":
		m.cycleSearchType()
		return m, nil
	case "tab":
		if m.searched && len(m.results) > 0 {
			m.searchFocusList = true
			m.searchInput.Blur()
		}
		return m, nil
	case "esc":
		return m, m.navigate(DashboardView)
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	return m, cmd
}

func (m *Model) handleFormKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.saving {
		return m, nil
	}

	if m.confirmingRemove {
		switch msg.String() {
		case "y":
			m.saving = true
			return m, m.removeRecord()
		case "n", "esc":
			m.confirmingRemove = false
		}
		return m, nil
	}

	switch msg.String() {
	case "esc":
		m.form = nil
		return m, nil
	case "tab":
		m.form.FocusNext()
		return m, nil
	case "shift+tab":
		m.form.FocusPrev()
		return m, nil
	case "left":
		m.form.CycleStatus(-1)
		return m, nil
	case "right":
		m.form.CycleStatus(1)
		return m, nil
	case "+", "=":
		if m.form.ShowProgress() {
			m.form.AdjustProgress(5)
		}
		return m, nil
	case "-", "_":
		if m.form.ShowProgress() {
			m.form.AdjustProgress(-5)
		}
		return m, nil
	case "ctrl+s":
		m.saving = true
		return m, m.checkPoster()
	case "ctrl+d":
		if m.form.DeleteAllowed() {
			m.confirmingRemove = true
		}
		return m, nil
	}

	return m, m.form.Update(msg)
}

func (m *Model) handleConfirmKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "y":
		m.confirm.pending.Confirm(m.confirm.url)
	case "o":
		if err := shared.OpenBrowser(m.confirm.url); err != nil {
			m.logger.Warn("could not open browser", "error", err)
		}
	case "esc", "n":
		m.confirm.pending.Cancel()
	}
	return m, nil
}

// handleNavKeys maps the numeric section shortcuts shared by every
// signed-in view. The second return value reports whether the key was
// consumed.
func (m *Model) handleNavKeys(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch msg.String() {
	case "1":
		return m.navigate(DashboardView), true
	case "2":
		return m.navigate(TVShowsView), true
	case "3":
		return m.navigate(MoviesView), true
	case "4":
		return m.navigate(ContinueWatchingView), true
	case "5", "/":
		return m.navigate(SearchView), true
	case "ctrl+o":
		return m.logout(), true
	}
	return nil, false
}

// navigate switches views and kicks off that view's data load. Every
// navigation re-fetches the collection rather than trusting a cache.
func (m *Model) navigate(view ViewState) tea.Cmd {
	m.view = view
	switch view {
	case DashboardView:
		return tea.Batch(m.fetchMedia(), m.fetchActivities())
	case TVShowsView, MoviesView, ContinueWatchingView:
		return m.fetchMedia()
	case SearchView:
		m.searchFocusList = false
		m.searchInput.Focus()
		return textinput.Blink
	}
	return nil
}

func (m *Model) cycleFilter(delta int) {
	if m.view == TVShowsView {
		opts := models.StatusesFor(models.TypeTV)
		m.tvFilter = cycleStatus(opts, m.tvFilter, delta)
		return
	}
	opts := models.StatusesFor(models.TypeMovie)
	m.movieFilter = cycleStatus(opts, m.movieFilter, delta)
}

func cycleStatus(opts []models.Status, current models.Status, delta int) models.Status {
	idx := 0
	for i, s := range opts {
		if s == current {
			idx = i
		}
	}
	return opts[(idx+delta+len(opts))%len(opts)]
}

func (m *Model) cycleSearchType() {
	switch m.searchType {
	case "all":
		m.searchType = "tv"
	case "tv":
		m.searchType = "movie"
	default:
		m.searchType = "all"
	}
}

func (m *Model) refreshMediaList() {
	var recs []models.MediaRecord
	var title string
	switch m.view {
	case TVShowsView:
		recs = models.FilterByTypeStatus(m.media, models.TypeTV, m.tvFilter)
		title = "TV Shows · " + models.FormatStatus(string(m.tvFilter))
	case MoviesView:
		recs = models.FilterByTypeStatus(m.media, models.TypeMovie, m.movieFilter)
		title = "Movies · " + models.FormatStatus(string(m.movieFilter))
	case ContinueWatchingView:
		recs = models.FilterContinueWatching(m.media)
		title = "Continue Watching"
	default:
		return
	}
	m.mediaList = list.New(mediaItems(recs), list.NewDefaultDelegate(), m.width-4, m.height-10)
	m.mediaList.Title = title
	m.mediaList.SetShowHelp(false)
}

func (m *Model) nextAuthField(delta int) int {
	fields := []int{authUsername, authPassword}
	if m.registering {
		fields = []int{authUsername, authEmail, authPassword}
	}
	idx := 0
	for i, f := range fields {
		if f == m.authFocus {
			idx = i
		}
	}
	return fields[(idx+delta+len(fields))%len(fields)]
}

func (m *Model) focusAuthField(field int) {
	for i := range m.authInputs {
		m.authInputs[i].Blur()
	}
	m.authFocus = field
	m.authInputs[field].Focus()
}

func (m *Model) updateInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd
	switch m.view {
	case AuthView:
		m.authInputs[m.authFocus], cmd = m.authInputs[m.authFocus].Update(msg)
		cmds = append(cmds, cmd)
	case SearchView:
		if !m.searchFocusList {
			m.searchInput, cmd = m.searchInput.Update(msg)
			cmds = append(cmds, cmd)
		}
	}
	return m, tea.Batch(cmds...)
}

func (m *Model) restoreSession() tea.Cmd {
	return func() tea.Msg {
		user, err := m.sessions.Load()
		if err != nil {
			m.logger.Warn("session restore failed", "error", err)
			return sessionRestoredMsg{}
		}
		return sessionRestoredMsg{user: user}
	}
}

func (m *Model) submitAuth() tea.Cmd {
	username := strings.TrimSpace(m.authInputs[authUsername].Value())
	email := strings.TrimSpace(m.authInputs[authEmail].Value())
	password := m.authInputs[authPassword].Value()
	registering := m.registering
	return func() tea.Msg {
		if username == "" || password == "" {
			return authDoneMsg{err: fmt.Errorf("%w: username and password are required", shared.ErrInvalidInput)}
		}
		if registering {
			if err := m.tracker.Register(m.ctx, username, email, password); err != nil {
				return authDoneMsg{err: err}
			}
		}
		user, err := m.tracker.Login(m.ctx, username, password)
		if err != nil {
			return authDoneMsg{err: err}
		}
		if err := m.sessions.Save(*user); err != nil {
			m.logger.Warn("session persist failed", "error", err)
		}
		return authDoneMsg{user: user}
	}
}

func (m *Model) logout() tea.Cmd {
	return func() tea.Msg {
		if err := m.sessions.Clear(); err != nil {
			m.logger.Warn("session clear failed", "error", err)
		}
		return loggedOutMsg{}
	}
}

func (m *Model) fetchMedia() tea.Cmd {
	username := m.user.Username
	return func() tea.Msg {
		media, err := m.tracker.Media(m.ctx, username)
		return mediaFetchedMsg{media: media, err: err}
	}
}

func (m *Model) fetchActivities() tea.Cmd {
	username := m.user.Username
	return func() tea.Msg {
		activities, err := m.tracker.Activities(m.ctx, username, recentActivityLimit)
		return activitiesFetchedMsg{activities: activities, err: err}
	}
}

func (m *Model) runSearch() tea.Cmd {
	query := strings.TrimSpace(m.searchInput.Value())
	if query == "" {
		return nil
	}
	m.searching = true
	m.searchErr = nil
	typeFilter := m.searchType
	return func() tea.Msg {
		results, err := m.catalog.Search(m.ctx, query, typeFilter, "")
		return searchDoneMsg{query: query, results: results, err: err}
	}
}

// checkPoster runs the automated image check. An empty poster URL skips
// verification entirely; the record is simply saved without one.
func (m *Model) checkPoster() tea.Cmd {
	title := m.form.Title()
	poster := m.form.Poster()
	return func() tea.Msg {
		if poster == "" {
			return posterCheckedMsg{passed: true}
		}
		return posterCheckedMsg{passed: m.verifier.Check(m.ctx, title, poster)}
	}
}

func (m *Model) awaitConfirmation(conf *services.Confirmation) tea.Cmd {
	return func() tea.Msg {
		url, err := conf.Wait(m.ctx)
		return posterResolvedMsg{url: url, err: err}
	}
}

func (m *Model) persist(posterURL string) tea.Cmd {
	payload := m.form.Payload(m.user.Username)
	payload.PosterPath = posterURL
	added := m.form.Mode() == FormAdd
	return func() tea.Msg {
		var err error
		if added {
			err = m.tracker.AddMedia(m.ctx, payload)
		} else {
			err = m.tracker.UpdateMedia(m.ctx, payload)
		}
		return saveDoneMsg{added: added, title: payload.Title, err: err}
	}
}

func (m *Model) removeRecord() tea.Cmd {
	id := m.form.ID()
	title := m.form.Title()
	return func() tea.Msg {
		return removeDoneMsg{title: title, err: m.tracker.RemoveMedia(m.ctx, id)}
	}
}

func (m *Model) showNotice(text string, isErr bool) tea.Cmd {
	m.notice = text
	m.noticeErr = isErr
	return tea.Tick(4*time.Second, func(time.Time) tea.Msg {
		return clearNoticeMsg{}
	})
}

func (m *Model) renderAuth() string {
	var b strings.Builder
	b.WriteString(styles.title.Render("ShowTracker"))
	b.WriteString("\n\n")

	login := " Login "
	register := " Register "
	if m.registering {
		register = styles.selected.Render(register)
		login = styles.help.Render(login)
	} else {
		login = styles.selected.Render(login)
		register = styles.help.Render(register)
	}
	b.WriteString(login + " " + register + styles.help.Render("  (ctrl+t to switch)"))
	b.WriteString("\n\n")

	b.WriteString(styles.label.Render("Username: ") + m.authInputs[authUsername].View() + "\n")
	if m.registering {
		b.WriteString(styles.label.Render("Email:    ") + m.authInputs[authEmail].View() + "\n")
	}
	b.WriteString(styles.label.Render("Password: ") + m.authInputs[authPassword].View() + "\n")

	if m.authErr != nil {
		b.WriteString("\n" + styles.err.Render(m.authErr.Error()))
	}
	b.WriteString("\n" + styles.help.Render("enter submit · tab next field · ctrl+c quit"))
	return b.String()
}

func (m *Model) renderDashboard() string {
	var b strings.Builder
	b.WriteString(styles.title.Render("Dashboard · " + m.user.Username))
	b.WriteString("\n")

	tvCount := len(models.FilterByType(m.media, models.TypeTV))
	movieCount := len(models.FilterByType(m.media, models.TypeMovie))
	contCount := len(models.FilterContinueWatching(m.media))

	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		styles.card.Render(fmt.Sprintf("TV Shows\n%d", tvCount)),
		" ",
		styles.card.Render(fmt.Sprintf("Movies\n%d", movieCount)),
		" ",
		styles.card.Render(fmt.Sprintf("Continue\n%d", contCount)),
	)
	b.WriteString(cards)
	b.WriteString("\n\n")

	b.WriteString(styles.label.Render("Recent Activity"))
	b.WriteString("\n")
	if len(m.activities) == 0 {
		b.WriteString(styles.help.Render("No recent activity"))
	} else {
		limit := len(m.activities)
		if limit > recentActivityLimit {
			limit = recentActivityLimit
		}
		for _, a := range m.activities[:limit] {
			b.WriteString(fmt.Sprintf("• %s %s\n", a.Message, styles.help.Render(a.Timestamp)))
		}
	}
	return b.String()
}

func (m *Model) renderGrid() string {
	var b strings.Builder
	b.WriteString(m.mediaList.View())
	if m.view != ContinueWatchingView {
		b.WriteString("\n" + styles.help.Render("←/→ change filter · enter edit"))
	} else {
		b.WriteString("\n" + styles.help.Render("enter edit"))
	}
	return b.String()
}

func (m *Model) renderSearch() string {
	var b strings.Builder
	b.WriteString(styles.title.Render("Search"))
	b.WriteString("\n")
	b.WriteString(m.searchInput.View())
	b.WriteString(styles.help.Render("  type: " + m.searchType + " (ctrl+t)"))
	b.WriteString("\n\n")

	switch {
	case m.searching:
		b.WriteString(styles.warn.Render("Searching..."))
	case m.searchErr != nil:
		b.WriteString(styles.err.Render("Search failed. Please try again."))
	case m.searched && len(m.results) == 0:
		b.WriteString(styles.help.Render(fmt.Sprintf("No results found for %q", m.lastQuery)))
	case m.searched:
		b.WriteString(m.resultList.View())
		b.WriteString("\n" + styles.help.Render("enter add to library · tab back to query"))
	default:
		b.WriteString(styles.help.Render("enter to search"))
	}
	return b.String()
}

func (m *Model) renderConfirm() string {
	var b strings.Builder
	b.WriteString(styles.title.Render("Confirm Image"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("The image for %s could not be verified automatically.\n\n", styles.label.Render(m.confirm.title)))
	b.WriteString(styles.warn.Render(m.confirm.url))
	b.WriteString("\n\n")
	b.WriteString(styles.help.Render("enter use this image · o open in browser · esc cancel save"))
	return styles.modal.Render(b.String())
}
