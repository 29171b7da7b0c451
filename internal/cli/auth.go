package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/naveenspark/courtside/internal/auth"
)

func newLoginCmd() *cobra.Command {
	var user string
	var passwordStdin bool

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in as administrator and store the token",
		RunE: func(cmd *cobra.Command, args []string) error {
			pass, err := readPassword(cmd, passwordStdin)
			if err != nil {
				return err
			}
			if err := session.Backend.Login(cmd.Context(), user, pass); err != nil {
				return err
			}
			session.Log.Info("logged in", "user", user)
			output(cmd).PrintMessage("Logged in as " + user)
			return nil
		},
	}

	cmd.Flags().StringVarP(&user, "user", "u", "", "Username (required)")
	cmd.Flags().BoolVar(&passwordStdin, "password-stdin", false, "Read the password from stdin")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}

// readPassword prompts on a terminal and otherwise reads one line of input.
func readPassword(cmd *cobra.Command, fromStdin bool) (string, error) {
	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok && !fromStdin && term.IsTerminal(int(f.Fd())) {
		fmt.Fprint(cmd.ErrOrStderr(), "Password: ")
		b, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(cmd.ErrOrStderr())
		if err != nil {
			return "", fmt.Errorf("read password: %w", err)
		}
		return string(b), nil
	}

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read password: %w", err)
	}
	pass := strings.TrimRight(line, "\r\n")
	if pass == "" {
		return "", errors.New("empty password")
	}
	return pass, nil
}

func newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored token",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := session.Backend.Logout(); err != nil {
				return err
			}
			output(cmd).PrintMessage("Logged out")
			return nil
		},
	}
}

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show whether a valid token is stored",
		RunE: func(cmd *cobra.Command, args []string) error {
			output(cmd).Print(tokenStatus(session))
			return nil
		},
	}
}

func tokenStatus(s *Session) TokenStatus {
	st := TokenStatus{Path: s.Store.Path()}
	tok, ok := s.Store.Get()
	if !ok {
		return st
	}
	exp, err := auth.Expiry(tok)
	if err != nil {
		st.Problem = err.Error()
		return st
	}
	st.LoggedIn = true
	st.ExpiresAt = exp.UTC()
	st.Expired = !exp.After(s.Clock.Now())
	return st
}

// requireLogin runs the auth guard for an admin command. Expired or malformed
// tokens are cleared, as they would be when navigating in the TUI.
func requireLogin(s *Session, path string) error {
	d := s.Guard.Check(true, path)
	switch d.Reason {
	case auth.ReasonValid:
		return nil
	case auth.ReasonNoToken:
		return fmt.Errorf("%w; run courtside login", auth.ErrNoToken)
	case auth.ReasonExpired:
		return errors.New("token expired; run courtside login")
	default:
		return fmt.Errorf("%w; run courtside login", auth.ErrMalformedToken)
	}
}
