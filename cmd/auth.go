package main

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/14-harish/showtracker/internal/shared"
)

// AuthRegister creates a new account on the backend and signs in.
func (r *Runner) AuthRegister(ctx context.Context, cmd *cli.Command) error {
	username := strings.TrimSpace(cmd.StringArg("username"))
	if username == "" {
		return fmt.Errorf("%w: username", shared.ErrMissingArgument)
	}

	email := cmd.String("email")
	password, err := r.resolvePassword(cmd)
	if err != nil {
		return err
	}

	r.logger.Info("registering account", "username", username)
	if err := r.tracker.Register(ctx, username, email, password); err != nil {
		return err
	}

	return r.signIn(ctx, username, password)
}

// AuthLogin signs in and persists the session locally.
func (r *Runner) AuthLogin(ctx context.Context, cmd *cli.Command) error {
	username := strings.TrimSpace(cmd.StringArg("username"))
	if username == "" {
		return fmt.Errorf("%w: username", shared.ErrMissingArgument)
	}

	password, err := r.resolvePassword(cmd)
	if err != nil {
		return err
	}

	return r.signIn(ctx, username, password)
}

func (r *Runner) signIn(ctx context.Context, username, password string) error {
	user, err := r.tracker.Login(ctx, username, password)
	if err != nil {
		return err
	}

	repo, err := r.sessionRepo()
	if err != nil {
		return err
	}
	if err := repo.Save(*user); err != nil {
		return fmt.Errorf("failed to persist session: %w", err)
	}

	r.logger.Info("session persisted", "username", user.Username)
	return r.writePlain("✓ Logged in as %s\n", user.Username)
}

// AuthLogout clears the persisted session.
func (r *Runner) AuthLogout(ctx context.Context, cmd *cli.Command) error {
	repo, err := r.sessionRepo()
	if err != nil {
		return err
	}
	if err := repo.Clear(); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return r.writePlain("✓ Logged out\n")
}

// AuthWhoami prints the signed-in user, if any.
func (r *Runner) AuthWhoami(ctx context.Context, cmd *cli.Command) error {
	repo, err := r.sessionRepo()
	if err != nil {
		return err
	}
	user, err := repo.Load()
	if err != nil {
		return err
	}
	if user == nil {
		return r.writePlain("Not logged in\n")
	}
	if user.Email != "" {
		return r.writePlain("%s <%s>\n", user.Username, user.Email)
	}
	return r.writePlain("%s\n", user.Username)
}

// resolvePassword takes the password flag when set and prompts otherwise.
func (r *Runner) resolvePassword(cmd *cli.Command) (string, error) {
	if password := cmd.String("password"); password != "" {
		return password, nil
	}

	r.writePlain("Password: ")
	scanner := bufio.NewScanner(r.input)
	if !scanner.Scan() {
		return "", fmt.Errorf("%w: password", shared.ErrMissingArgument)
	}
	password := strings.TrimSpace(scanner.Text())
	if password == "" {
		return "", fmt.Errorf("%w: password", shared.ErrMissingArgument)
	}
	return password, nil
}
