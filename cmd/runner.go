package main

import (
	"database/sql"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/urfave/cli/v3"

	"github.com/14-harish/showtracker/internal/models"
	"github.com/14-harish/showtracker/internal/repositories"
	"github.com/14-harish/showtracker/internal/services"
	"github.com/14-harish/showtracker/internal/shared"
)

// Runner holds all dependencies for CLI commands and provides methods for each command action.
type Runner struct {
	config   *shared.Config
	tracker  services.Tracker
	catalog  services.Catalog
	verifier services.Verifier
	sessions *repositories.SessionRepository
	db       *sql.DB
	logger   *log.Logger
	output   io.Writer
	input    io.Reader
}

// RunnerOpts contains configuration options for creating a Runner.
type RunnerOpts struct {
	Config   *shared.Config
	Tracker  services.Tracker
	Catalog  services.Catalog
	Verifier services.Verifier
	Sessions *repositories.SessionRepository
	Logger   *log.Logger
	Output   io.Writer
	Input    io.Reader
}

// NewRunner creates a new Runner with the provided configuration
func NewRunner(opts RunnerOpts) *Runner {
	if opts.Config == nil {
		opts.Config = shared.DefaultConfig()
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.Input == nil {
		opts.Input = os.Stdin
	}

	httpClient := &http.Client{
		Timeout: time.Duration(opts.Config.Server.TimeoutSeconds) * time.Second,
	}
	if opts.Tracker == nil {
		opts.Tracker = services.NewTrackerService(opts.Config.Server.BaseURL, httpClient)
	}
	if opts.Catalog == nil {
		opts.Catalog = services.NewCatalogService(opts.Config.Server.BaseURL, opts.Config.Catalog.ImageBaseURL, opts.Config.Catalog.RateLimit, httpClient)
	}
	if opts.Verifier == nil {
		opts.Verifier = services.NewImageVerifier(opts.Config.Server.BaseURL, httpClient)
	}

	return &Runner{
		config:   opts.Config,
		tracker:  opts.Tracker,
		catalog:  opts.Catalog,
		verifier: opts.Verifier,
		sessions: opts.Sessions,
		logger:   opts.Logger,
		output:   opts.Output,
		input:    opts.Input,
	}
}

// SetLogger swaps the runner's logger, used when the TUI redirects logs
// away from the terminal.
func (r *Runner) SetLogger(l *log.Logger) {
	r.logger = l
}

func (r *Runner) register() []*cli.Command {
	commands := []*cli.Command{}
	for _, fn := range [](func(*Runner) *cli.Command){
		setupCommand, authCommand, searchCommand, mediaCommand, activityCommand, tuiCommand,
	} {
		commands = append(commands, fn(r))
	}

	return commands
}

// sessionRepo lazily opens the session database so commands that never
// touch the session don't pay for it.
func (r *Runner) sessionRepo() (*repositories.SessionRepository, error) {
	if r.sessions != nil {
		return r.sessions, nil
	}

	db, err := shared.NewDatabase(r.config.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open session database: %w", err)
	}
	shared.ConfigureDatabase(db, r.config.Database.MaxOpenConns, r.config.Database.MaxIdleConns)

	if err := shared.RunMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	r.db = db
	r.sessions = repositories.NewSessionRepository(db)
	return r.sessions, nil
}

// currentUser resolves the signed-in user or fails with
// [shared.ErrNotAuthenticated].
func (r *Runner) currentUser() (*models.User, error) {
	repo, err := r.sessionRepo()
	if err != nil {
		return nil, err
	}
	user, err := repo.Load()
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("%w: run 'showtracker auth login' first", shared.ErrNotAuthenticated)
	}
	return user, nil
}

func (r *Runner) writeJSON(data any, pretty bool) error {
	output, err := shared.MarshalJSON(data, pretty)
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if _, err := r.output.Write(output); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if _, err := r.output.Write([]byte("\n")); err != nil {
		return fmt.Errorf("failed to write newline: %w", err)
	}

	return nil
}

func (r *Runner) writePlain(format string, args ...any) error {
	text := fmt.Sprintf(format, args...)
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (r *Runner) writePlainln(format string, args ...any) error {
	text := "\n" + fmt.Sprintf(format, args...) + "\n"
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
