package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/moodlist/moodlist/internal/library"
	"github.com/moodlist/moodlist/internal/session"
	"github.com/moodlist/moodlist/internal/shared"
	"github.com/urfave/cli/v3"
)

// openSession loads the account catalog and signs the invoking user in.
// Credentials come from the session flags, prompted when omitted.
func (r *Runner) openSession(cmd *cli.Command) (*session.Session, *library.Profile, session.Outcome, error) {
	username := cmd.String("username")
	password := cmd.String("password")

	if username == "" {
		if err := huh.NewInput().Title("Username").Value(&username).Run(); err != nil {
			return nil, nil, 0, fmt.Errorf("failed to read username: %w", err)
		}
	}
	if password == "" {
		if err := huh.NewInput().Title("Password").EchoMode(huh.EchoModePassword).Value(&password).Run(); err != nil {
			return nil, nil, 0, fmt.Errorf("failed to read password: %w", err)
		}
	}

	sess := session.Open(r.store, session.Opts{
		Defaults: r.config.Defaults,
		Logger:   r.logger,
		Rand:     r.rng,
	})

	profile, outcome, err := sess.Login(username, password)
	if err != nil {
		sess.Close()
		return nil, nil, 0, err
	}

	r.logger.Debug("session ready", "username", profile.Username(), "outcome", outcome)
	return sess, profile, outcome, nil
}

// Login runs the account bootstrap and reports how the session started.
func (r *Runner) Login(ctx context.Context, cmd *cli.Command) error {
	sess, profile, outcome, err := r.openSession(cmd)
	if err != nil {
		return err
	}
	defer sess.Close()

	switch outcome {
	case session.OutcomeCreated:
		r.writePlain("✓ Created account %q with the default moods\n", profile.Username())
	case session.OutcomeRepaired:
		r.writePlain("✓ Repaired account %q, playlists reset to defaults\n", profile.Username())
	default:
		r.writePlain("✓ Signed in as %q\n", profile.Username())
	}

	if moods := profile.MoodNames(); len(moods) > 0 {
		r.writePlain("Moods: %s\n", strings.Join(moods, ", "))
	}
	return nil
}

// Passwd changes the signed-in account's password.
func (r *Runner) Passwd(ctx context.Context, cmd *cli.Command) error {
	sess, profile, _, err := r.openSession(cmd)
	if err != nil {
		return err
	}
	defer sess.Close()

	next := cmd.String("new")
	confirm := next
	if next == "" {
		if err := huh.NewInput().Title("New password").EchoMode(huh.EchoModePassword).Value(&next).Run(); err != nil {
			return fmt.Errorf("failed to read new password: %w", err)
		}
		if err := huh.NewInput().Title("Confirm new password").EchoMode(huh.EchoModePassword).Value(&confirm).Run(); err != nil {
			return fmt.Errorf("failed to read confirmation: %w", err)
		}
	}

	if err := profile.UpdatePassword(profile.Password(), next, confirm); err != nil {
		return err
	}
	sess.Save()

	r.writePlain("✓ Password updated for %q\n", profile.Username())
	return nil
}

// AccountList prints every username in the catalog.
func (r *Runner) AccountList(ctx context.Context, cmd *cli.Command) error {
	sess := session.Open(r.store, session.Opts{Defaults: r.config.Defaults, Logger: r.logger})
	defer sess.Close()

	usernames := sess.Usernames()
	if len(usernames) == 0 {
		r.writePlain("No accounts yet\n")
		return nil
	}
	for _, username := range usernames {
		r.writePlain("%s\n", username)
	}
	return nil
}

// AccountDelete removes one account from the catalog.
func (r *Runner) AccountDelete(ctx context.Context, cmd *cli.Command) error {
	username := cmd.StringArg("username")
	if username == "" {
		return fmt.Errorf("%w: username", shared.ErrMissingArgument)
	}

	if !cmd.Bool("yes") {
		var confirmed bool
		prompt := fmt.Sprintf("Delete account %q and all its playlists?", username)
		if err := huh.NewConfirm().Title(prompt).Value(&confirmed).Run(); err != nil {
			return fmt.Errorf("failed to read confirmation: %w", err)
		}
		if !confirmed {
			r.writePlain("Aborted\n")
			return nil
		}
	}

	sess := session.Open(r.store, session.Opts{Defaults: r.config.Defaults, Logger: r.logger})
	defer sess.Close()

	if err := sess.DeleteAccount(username); err != nil {
		return err
	}

	r.writePlain("✓ Deleted account %q\n", username)
	return nil
}
