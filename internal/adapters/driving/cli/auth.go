package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/sentinel-cli/internal/core/domain"
)

var (
	loginWeChat   bool
	registerName  string
	registerEmail string
)

var loginCmd = &cobra.Command{
	Use:   "login [email]",
	Short: "Sign in to the demo",
	Long: `Sign in with an email address. Any password is accepted.

Without an email the demo account demo@sentinel.com is used.
The display name is the part of the email before "@".

Examples:
  sentinel login zhang@corp.cn
  sentinel login --wechat`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLogin,
}

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a demo account and sign in",
	Args:  cobra.NoArgs,
	RunE:  runRegister,
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out and forget the saved session",
	Args:  cobra.NoArgs,
	RunE:  runLogout,
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the signed-in account",
	Args:  cobra.NoArgs,
	RunE:  runWhoami,
}

func init() {
	loginCmd.Flags().BoolVar(&loginWeChat, "wechat", false, "sign in with WeChat")
	registerCmd.Flags().StringVar(&registerName, "name", "", "display name")
	registerCmd.Flags().StringVar(&registerEmail, "email", "", "email address")
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(registerCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)
}

func runLogin(cmd *cobra.Command, args []string) error {
	if sessionService == nil {
		return errors.New("session service not configured")
	}

	identity := ""
	switch {
	case loginWeChat:
		identity = domain.WeChatLoginEmail
	case len(args) == 1:
		identity = args[0]
		promptPassword(cmd, "Password: ")
	}

	session, err := sessionService.Login(identity)
	if err != nil {
		return fmt.Errorf("login failed: %w", err)
	}

	cmd.Printf("Signed in as %s <%s>\n", session.Name, session.Email)
	return nil
}

func runRegister(cmd *cobra.Command, _ []string) error {
	if sessionService == nil {
		return errors.New("session service not configured")
	}

	if registerEmail != "" {
		promptPassword(cmd, "Choose a password: ")
	}

	session, err := sessionService.Register(registerName, registerEmail)
	if err != nil {
		return fmt.Errorf("registration failed: %w", err)
	}

	cmd.Printf("Welcome, %s! Signed in as %s\n", session.Name, session.Email)
	return nil
}

func runLogout(cmd *cobra.Command, _ []string) error {
	if sessionService == nil {
		return errors.New("session service not configured")
	}

	if err := sessionService.Logout(); err != nil {
		return fmt.Errorf("logout failed: %w", err)
	}

	cmd.Println("Signed out.")
	return nil
}

func runWhoami(cmd *cobra.Command, _ []string) error {
	if sessionService == nil {
		return errors.New("session service not configured")
	}

	session := sessionService.Current()
	if session == nil {
		session = sessionService.Restore()
	}
	if session == nil {
		return domain.ErrNotLoggedIn
	}

	cmd.Printf("%s <%s>\n", session.Name, session.Email)
	return nil
}
