package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mperko/cjenik/internal/session"
)

var authPasswordFlag string

var loginCmd = &cobra.Command{
	Use:   "login <email>",
	Short: "Log in and persist the session",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		email, password, err := readCredentials(cmd, args[0])
		if err != nil {
			return err
		}
		if err := a.session.Login(cmd.Context(), email, password); err != nil {
			return fmt.Errorf("%s: %w", t("auth.login_failed"), err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), t("auth.login_successful")+"!")
		return nil
	},
}

var signupCmd = &cobra.Command{
	Use:   "signup <email>",
	Short: "Create an account and log in",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		email, password, err := readCredentials(cmd, args[0])
		if err != nil {
			return err
		}
		if err := a.session.Signup(cmd.Context(), email, password); err != nil {
			return fmt.Errorf("%s: %w", t("auth.signup_failed"), err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), t("auth.signup_successful"))
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "End the session locally and remotely",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := a.session.Logout(cmd.Context()); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), t("auth.logged_out"))
		return nil
	},
}

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show the current profile, refreshed from the server",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireAuth(); err != nil {
			return err
		}
		if err := a.session.RefreshProfile(cmd.Context()); err != nil {
			if errors.Is(err, session.ErrSessionExpired) {
				return fmt.Errorf("%s", t("auth.not_logged_in"))
			}
			return err
		}
		profile, _ := a.session.Profile()
		display := a.session.Display()
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s\n", profile.Email)
		fmt.Fprintf(out, "%s: %s\n", t("settings.language.title"), display.Language)
		fmt.Fprintf(out, "%s: %s\n", t("settings.currency.title"), display.Currency)
		fmt.Fprintf(out, "%s: %s\n", t("settings.theme.title"), display.Theme)
		return nil
	},
}

var settingsCmd = &cobra.Command{
	Use:   "settings <theme|language|currency> <value>",
	Short: "Change a display preference",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireAuth(); err != nil {
			return err
		}
		if err := a.session.UpdateSetting(cmd.Context(), args[0], args[1]); err != nil {
			if errors.Is(err, session.ErrSettingReverted) {
				return fmt.Errorf("%s", t("settings.reverted"))
			}
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), t("settings.updated"))
		return nil
	},
}

// readCredentials validates the email and prompts for the password unless
// one was supplied via flag or piped on stdin.
func readCredentials(cmd *cobra.Command, email string) (string, string, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return "", "", fmt.Errorf("%s", t("auth.errors.email"))
	}

	password := authPasswordFlag
	if password == "" {
		fmt.Fprint(cmd.OutOrStdout(), t("auth.fields.password")+": ")
		var err error
		password, err = readPassword(cmd.InOrStdin())
		if err != nil {
			return "", "", fmt.Errorf("read password: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout())
	}
	if strings.TrimSpace(password) == "" {
		return "", "", fmt.Errorf("%s", t("auth.errors.password"))
	}
	return email, password, nil
}

func readPassword(stdin io.Reader) (string, error) {
	if f, ok := stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		raw, err := term.ReadPassword(int(f.Fd()))
		if err != nil {
			return "", err
		}
		return string(raw), nil
	}

	// Non-terminal input (pipes, tests).
	scanner := bufio.NewScanner(stdin)
	if scanner.Scan() {
		return scanner.Text(), nil
	}
	if err := scanner.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}

func init() {
	loginCmd.Flags().StringVar(&authPasswordFlag, "password", "", "Password (prompted when omitted)")
	signupCmd.Flags().StringVar(&authPasswordFlag, "password", "", "Password (prompted when omitted)")
}
