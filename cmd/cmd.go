// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

// setupCommand initializes local state: configuration and the session database.
func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "setup",
		Usage: "Initialize configuration and the session database",
		Commands: []*cli.Command{
			{
				Name:  "config",
				Usage: "Create a configuration file from the template",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "config",
						Aliases: []string{"c"},
						Usage:   "Path to configuration file",
						Value:   "config.toml",
					},
				},
				Action: r.SetupConfig,
			},
			{
				Name:  "database",
				Usage: "Initialize the session database and run migrations",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "config",
						Aliases: []string{"c"},
						Usage:   "Path to configuration file",
						Value:   "config.toml",
					},
				},
				Action: r.SetupDatabase,
			},
		},
	}
}

// authCommand handles account and session operations
func authCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "auth",
		Usage: "Account and session operations",
		Commands: []*cli.Command{
			{
				Name:  "register",
				Usage: "Create a new account and sign in",
				Arguments: []cli.Argument{
					&cli.StringArg{
						Name: "username",
					},
				},
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "email",
						Usage: "Account email address",
					},
					&cli.StringFlag{
						Name:  "password",
						Usage: "Account password (prompted when omitted)",
					},
				},
				Action: r.AuthRegister,
			},
			{
				Name:  "login",
				Usage: "Sign in and persist the session",
				Arguments: []cli.Argument{
					&cli.StringArg{
						Name: "username",
					},
				},
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "password",
						Usage: "Account password (prompted when omitted)",
					},
				},
				Action: r.AuthLogin,
			},
			{
				Name:   "logout",
				Usage:  "Clear the persisted session",
				Action: r.AuthLogout,
			},
			{
				Name:   "whoami",
				Usage:  "Show the signed-in user",
				Action: r.AuthWhoami,
			},
		},
	}
}

// searchCommand queries the media catalog
func searchCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "search",
		Usage: "Search the catalog for TV shows and movies",
		Arguments: []cli.Argument{
			&cli.StringArg{
				Name: "query",
			},
		},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "type",
				Aliases: []string{"t"},
				Usage:   "Media type filter: tv, movie or all",
				Value:   "all",
			},
			&cli.StringFlag{
				Name:  "year",
				Usage: "Release year filter",
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Output raw JSON",
			},
			&cli.BoolFlag{
				Name:  "pretty",
				Usage: "Pretty-print JSON output",
			},
		},
		Action: r.Search,
	}
}

// mediaCommand manages the tracked collection
func mediaCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "media",
		Usage: "Manage your tracked TV shows and movies",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List tracked media",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "type",
						Aliases: []string{"t"},
						Usage:   "Filter by media type: tv or movie",
					},
					&cli.StringFlag{
						Name:    "status",
						Aliases: []string{"s"},
						Usage:   "Filter by status: to-watch, watching, completed or dropped",
					},
					&cli.BoolFlag{
						Name:  "continue",
						Usage: "Only the continue-watching subset",
					},
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
					&cli.BoolFlag{
						Name:  "pretty",
						Usage: "Pretty-print JSON output",
					},
					&cli.StringFlag{
						Name:    "export",
						Aliases: []string{"e"},
						Usage:   "Export format: csv or markdown",
					},
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Export file path",
					},
				},
				Action: r.MediaList,
			},
			{
				Name:  "add",
				Usage: "Search the catalog and track the first match",
				Arguments: []cli.Argument{
					&cli.StringArg{
						Name: "query",
					},
				},
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "type",
						Aliases: []string{"t"},
						Usage:   "Media type filter: tv, movie or all",
						Value:   "all",
					},
					&cli.IntFlag{
						Name:  "pick",
						Usage: "Result index to add (0-based)",
					},
					&cli.StringFlag{
						Name:    "status",
						Aliases: []string{"s"},
						Usage:   "Initial status",
						Value:   "to-watch",
					},
					&cli.IntFlag{
						Name:  "watched",
						Usage: "Episodes watched (TV)",
					},
					&cli.IntFlag{
						Name:  "season",
						Usage: "Current season (TV)",
						Value: 1,
					},
					&cli.IntFlag{
						Name:  "episode",
						Usage: "Current episode (TV)",
						Value: 1,
					},
					&cli.IntFlag{
						Name:  "progress",
						Usage: "Completion percentage (movies)",
					},
				},
				Action: r.MediaAdd,
			},
			{
				Name:  "update",
				Usage: "Update a tracked record",
				Arguments: []cli.Argument{
					&cli.StringArg{
						Name: "id",
					},
				},
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "status",
						Aliases: []string{"s"},
						Usage:   "New status",
					},
					&cli.IntFlag{
						Name:  "watched",
						Usage: "Episodes watched (TV)",
						Value: -1,
					},
					&cli.IntFlag{
						Name:  "season",
						Usage: "Current season (TV)",
						Value: -1,
					},
					&cli.IntFlag{
						Name:  "episode",
						Usage: "Current episode (TV)",
						Value: -1,
					},
					&cli.IntFlag{
						Name:  "progress",
						Usage: "Completion percentage (movies)",
						Value: -1,
					},
				},
				Action: r.MediaUpdate,
			},
			{
				Name:  "backup",
				Usage: "Snapshot the collection to disk in every export format",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "dir",
						Aliases: []string{"d"},
						Usage:   "Output directory",
					},
					&cli.StringSliceFlag{
						Name:  "format",
						Usage: "Formats to write: json, csv, markdown (default all)",
					},
				},
				Action: r.MediaBackup,
			},
			{
				Name:  "remove",
				Usage: "Remove a tracked record",
				Arguments: []cli.Argument{
					&cli.StringArg{
						Name: "id",
					},
				},
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:    "force",
						Aliases: []string{"f"},
						Usage:   "Skip the confirmation prompt",
					},
				},
				Action: r.MediaRemove,
			},
		},
	}
}

// activityCommand shows the recent activity feed
func activityCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "activity",
		Usage: "Show recent activity",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "limit",
				Aliases: []string{"n"},
				Usage:   "Maximum number of entries",
				Value:   5,
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Output raw JSON",
			},
		},
		Action: r.Activity,
	}
}

// tuiCommand launches the interactive terminal UI
func tuiCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:   "tui",
		Usage:  "Launch the interactive terminal UI",
		Action: r.TUI,
	}
}
