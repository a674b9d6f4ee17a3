package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/14-harish/showtracker/internal/formatter"
	"github.com/14-harish/showtracker/internal/shared"
)

// Search queries the catalog and prints the results newest first.
func (r *Runner) Search(ctx context.Context, cmd *cli.Command) error {
	query := strings.TrimSpace(cmd.StringArg("query"))
	if query == "" {
		return fmt.Errorf("%w: query", shared.ErrMissingArgument)
	}

	typeFilter := cmd.String("type")
	switch typeFilter {
	case "tv", "movie", "all":
	default:
		return fmt.Errorf("%w: type must be tv, movie or all", shared.ErrInvalidFlag)
	}

	r.logger.Info("searching catalog", "query", query, "type", typeFilter)

	results, err := r.catalog.Search(ctx, query, typeFilter, cmd.String("year"))
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if cmd.Bool("json") {
		return r.writeJSON(results, cmd.Bool("pretty"))
	}

	return r.writePlain("%s", formatter.SearchResults(results, query))
}
