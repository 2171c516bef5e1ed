// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

// sessionFlags returns the credential flags shared by every account-scoped
// command, plus any extras the command adds.
func sessionFlags(extra ...cli.Flag) []cli.Flag {
	flags := []cli.Flag{
		&cli.StringFlag{
			Name:    "username",
			Aliases: []string{"u"},
			Usage:   "Account username",
		},
		&cli.StringFlag{
			Name:    "password",
			Aliases: []string{"p"},
			Usage:   "Account password (prompted when omitted)",
		},
	}
	return append(flags, extra...)
}

// setupCommand prepares the configuration file and storage backend
func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "setup",
		Usage: "Initialize configuration and storage",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to configuration file",
				Value:   "config.toml",
			},
			&cli.BoolFlag{
				Name:  "force-db",
				Usage: "Run database setup even when the backend is json",
			},
		},
		Action: r.Setup,
	}
}

// loginCommand runs the account bootstrap once and reports the outcome
func loginCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:   "login",
		Usage:  "Sign in, creating or repairing the account when needed",
		Flags:  sessionFlags(),
		Action: r.Login,
	}
}

// passwdCommand updates the signed-in account's password
func passwdCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "passwd",
		Usage: "Change the account password",
		Flags: sessionFlags(
			&cli.StringFlag{
				Name:  "new",
				Usage: "New password (prompted with confirmation when omitted)",
			},
		),
		Action: r.Passwd,
	}
}

// accountCommand handles catalog-level account maintenance
func accountCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "account",
		Usage: "Account catalog maintenance",
		Commands: []*cli.Command{
			{
				Name:   "list",
				Usage:  "List every account in the catalog",
				Action: r.AccountList,
			},
			{
				Name:  "delete",
				Usage: "Remove one account from the catalog",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "username"},
				},
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "yes",
						Usage: "Skip the confirmation prompt",
					},
				},
				Action: r.AccountDelete,
			},
		},
	}
}

// moodCommand handles playlist-level operations
func moodCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "mood",
		Usage: "Mood playlist operations",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "Show every mood with its songs",
				Flags: sessionFlags(
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
				),
				Action: r.MoodList,
			},
			{
				Name:  "create",
				Usage: "Create an empty mood playlist",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "name"},
				},
				Flags:  sessionFlags(),
				Action: r.MoodCreate,
			},
			{
				Name:  "rename",
				Usage: "Rename a mood, keeping its songs",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "old"},
					&cli.StringArg{Name: "new"},
				},
				Flags:  sessionFlags(),
				Action: r.MoodRename,
			},
			{
				Name:  "clear",
				Usage: "Empty every playlist, keeping the mood names",
				Flags: sessionFlags(
					&cli.BoolFlag{
						Name:  "yes",
						Usage: "Skip the confirmation prompt",
					},
				),
				Action: r.MoodClear,
			},
		},
	}
}

// songCommand handles songs within one mood
func songCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "song",
		Usage: "Song operations within a mood",
		Commands: []*cli.Command{
			{
				Name:  "add",
				Usage: "Append a song to a mood's playlist",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "mood"},
					&cli.StringArg{Name: "title"},
				},
				Flags:  sessionFlags(),
				Action: r.SongAdd,
			},
			{
				Name:  "delete",
				Usage: "Remove a song by position",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "mood"},
				},
				Flags: sessionFlags(
					&cli.IntFlag{
						Name:     "at",
						Usage:    "Song position; 1 is the first song, -1 the last",
						Required: true,
					},
				),
				Action: r.SongDelete,
			},
			{
				Name:  "rename",
				Usage: "Retitle a song by position",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "mood"},
					&cli.StringArg{Name: "title"},
				},
				Flags: sessionFlags(
					&cli.IntFlag{
						Name:     "at",
						Usage:    "Song position, counted from 1",
						Required: true,
					},
				),
				Action: r.SongRename,
			},
		},
	}
}

// favoriteCommand handles the favorite mood reference
func favoriteCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "favorite",
		Aliases: []string{"fav"},
		Usage:   "Favorite mood operations",
		Commands: []*cli.Command{
			{
				Name:  "show",
				Usage: "Show the favorite mood and its songs",
				Flags: sessionFlags(
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
				),
				Action: r.FavoriteShow,
			},
			{
				Name:  "set",
				Usage: "Point the favorite at an existing mood",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "mood"},
				},
				Flags:  sessionFlags(),
				Action: r.FavoriteSet,
			},
			{
				Name:   "clear",
				Usage:  "Drop the favorite reference",
				Flags:  sessionFlags(),
				Action: r.FavoriteClear,
			},
		},
	}
}

// searchCommand finds songs across every mood
func searchCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "search",
		Usage: "Find songs by case-insensitive substring",
		Arguments: []cli.Argument{
			&cli.StringArg{Name: "keyword"},
		},
		Flags: sessionFlags(
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Output raw JSON",
			},
		),
		Action: r.Search,
	}
}

// surpriseCommand picks one random song
func surpriseCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "surprise",
		Usage: "Pick a random song, optionally scoped to one mood",
		Flags: sessionFlags(
			&cli.StringFlag{
				Name:    "mood",
				Aliases: []string{"m"},
				Usage:   "Limit the pick to this mood",
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Output raw JSON",
			},
		),
		Action: r.Surprise,
	}
}

// statsCommand summarizes the collection
func statsCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "stats",
		Usage: "Show collection statistics",
		Flags: sessionFlags(
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Output raw JSON",
			},
		),
		Action: r.Stats,
	}
}

// exportCommand writes the playlists to a file
func exportCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "export",
		Usage: "Export the playlists mapping to a file",
		Flags: sessionFlags(
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "Export format: txt, csv, json",
				Value:   "txt",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Output file path",
			},
		),
		Action: r.Export,
	}
}

// backupCommand exports every account's playlists
func backupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "backup",
		Usage: "Export every account's playlists with a manifest",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "dir",
				Aliases: []string{"d"},
				Usage:   "Output directory",
			},
			&cli.IntFlag{
				Name:    "workers",
				Aliases: []string{"w"},
				Usage:   "Concurrent export workers",
				Value:   4,
			},
		},
		Action: r.Backup,
	}
}

// tuiCommand launches the interactive menu
func tuiCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:   "tui",
		Usage:  "Launch the interactive menu",
		Action: r.TUI,
	}
}
