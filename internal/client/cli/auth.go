package cli

import (
	"fmt"

	"github.com/MKhiriev/go-green-pledge/models"
	"github.com/spf13/cobra"
)

func (c *cli) passwordFlag(cmd *cobra.Command, password string) (string, error) {
	if password != "" {
		return password, nil
	}
	return c.promptPassword(cmd, "Password")
}

func (c *cli) registerCmd() *cobra.Command {
	var (
		req       models.RegisterRequest
		copyToken bool
	)

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account and sign in",
		Long: `Create a new account on the server. On success the client is signed in
as the new user. The password is prompted for when --password is omitted.

Example:
  green-pledge register --username alice --email alice@example.com`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			password, err := c.passwordFlag(cmd, req.Password)
			if err != nil {
				return err
			}
			req.Password = password

			session, err := c.app.Services.AuthService.Register(cmd.Context(), req)
			if err != nil {
				return fmt.Errorf("register: %w", err)
			}

			c.printSession(cmd, "Registered", session)
			c.copyID(cmd, copyToken, session.Token)
			return nil
		},
	}

	cmd.Flags().StringVarP(&req.Username, "username", "u", "", "username (required)")
	cmd.Flags().StringVar(&req.Email, "email", "", "email address (required)")
	cmd.Flags().StringVarP(&req.Password, "password", "p", "", "password (prompted when omitted)")
	cmd.Flags().BoolVar(&copyToken, "copy-token", false, "copy the bearer token to the clipboard")
	cmd.MarkFlagRequired("username")
	cmd.MarkFlagRequired("email")

	return cmd
}

func (c *cli) loginCmd() *cobra.Command {
	var (
		req       models.LoginRequest
		copyToken bool
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in",
		Long: `Sign in and keep the session in the local client database, so later
commands run as this user. The password is prompted for when --password is
omitted.

Example:
  green-pledge login --username alice`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			password, err := c.passwordFlag(cmd, req.Password)
			if err != nil {
				return err
			}
			req.Password = password

			session, err := c.app.Services.AuthService.Login(cmd.Context(), req)
			if err != nil {
				return fmt.Errorf("login: %w", err)
			}

			c.printSession(cmd, "Logged in", session)
			c.copyID(cmd, copyToken, session.Token)
			return nil
		},
	}

	cmd.Flags().StringVarP(&req.Username, "username", "u", "", "username (required)")
	cmd.Flags().StringVarP(&req.Password, "password", "p", "", "password (prompted when omitted)")
	cmd.Flags().BoolVar(&copyToken, "copy-token", false, "copy the bearer token to the clipboard")
	cmd.MarkFlagRequired("username")

	return cmd
}

func (c *cli) logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.app.Services.AuthService.Logout(cmd.Context()); err != nil {
				return fmt.Errorf("logout: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), successStyle.Render("Logged out."))
			return nil
		},
	}
}

func (c *cli) whoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in user",
		Long: `Show the user the stored session belongs to. The identity is checked
against the server each time; a session the server rejects is forgotten.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := c.app.Services.AuthService.WhoAmI(cmd.Context())
			if err != nil {
				return fmt.Errorf("whoami: %w", err)
			}

			if c.output == outputJSON {
				return writeJSON(cmd.OutOrStdout(), user)
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderUser(user))
			return nil
		},
	}
}

func (c *cli) printSession(cmd *cobra.Command, verb string, session models.Session) {
	if c.output == outputJSON {
		writeJSON(cmd.OutOrStdout(), session.User)
		return
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s as %s (%s)\n",
		successStyle.Render(verb), session.User.Username, session.User.ID)
	if !session.ExpiresAt.IsZero() {
		fmt.Fprintln(cmd.OutOrStdout(), helpStyle.Render("session valid until "+formatTime(session.ExpiresAt)))
	}
}

func renderUser(u models.User) string {
	return renderCard(u.Username, []field{
		{"ID", u.ID},
		{"Email", u.Email},
		{"Joined", formatTime(u.CreatedAt)},
	})
}
