package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/14-harish/showtracker/internal/formatter"
)

// Activity prints the signed-in user's recent activity, newest first.
func (r *Runner) Activity(ctx context.Context, cmd *cli.Command) error {
	user, err := r.currentUser()
	if err != nil {
		return err
	}

	activities, err := r.tracker.Activities(ctx, user.Username, int(cmd.Int("limit")))
	if err != nil {
		return fmt.Errorf("failed to fetch activities: %w", err)
	}

	if cmd.Bool("json") {
		return r.writeJSON(activities, false)
	}

	return r.writePlain("%s", formatter.Activities(activities))
}
