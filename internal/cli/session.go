package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	appsession "github.com/klwxsrx/hwstore-client/internal/session/app/session"
)

func newLoginCmd(deps Dependencies) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in with email and password",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			email = strings.TrimSpace(email)
			if email == "" {
				return fmt.Errorf("email must be not empty")
			}

			if password == "" {
				if deps.ReadPassword == nil {
					return fmt.Errorf("password must be not empty")
				}

				fmt.Fprint(cmd.ErrOrStderr(), "Password: ")
				raw, err := deps.ReadPassword()
				fmt.Fprintln(cmd.ErrOrStderr())
				if err != nil {
					return fmt.Errorf("read password: %w", err)
				}
				password = string(raw)
			}

			user, err := deps.Session.MustLoad().Login(cmd.Context(), email, password)
			switch {
			case errors.Is(err, appsession.ErrInvalidCredentials):
				return fmt.Errorf("invalid email or password")
			case err != nil:
				return fmt.Errorf("login failed, try again later: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s (%s)\n", user.Email, user.Role)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password (prompted if omitted)")
	return cmd
}

func newLogoutCmd(deps Dependencies) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "End the current session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			deps.Session.MustLoad().Logout(cmd.Context())
			fmt.Fprintln(cmd.OutOrStdout(), "Logged out")
			return nil
		},
	}
}

func newWhoamiCmd(deps Dependencies) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the logged in user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			user, ok := deps.Session.MustLoad().CurrentUser()
			if !ok {
				return errNotLoggedIn
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "ID:       %s\n", user.ID)
			fmt.Fprintf(out, "Email:    %s\n", user.Email)
			fmt.Fprintf(out, "Role:     %s\n", user.Role)
			fmt.Fprintf(out, "Since:    %s\n", user.AccountCreatedAt.Format("2006-01-02"))
			if user.PhotoURL != "" {
				fmt.Fprintf(out, "Photo:    %s\n", user.PhotoURL)
			}
			return nil
		},
	}
}
