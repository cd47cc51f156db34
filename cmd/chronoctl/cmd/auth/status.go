package auth

import (
	"context"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/JSebastianPaezSalesianoDev/Chrono-sDiary-Front/cmd/chronoctl/internal/config"
	"github.com/JSebastianPaezSalesianoDev/Chrono-sDiary-Front/pkg/sdk"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Display authentication status",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.MustFromContext(cmd.Context())

		session, err := cfg.Provider.Session()
		if err != nil {
			return err
		}
		if !session.Authenticated() {
			return fmt.Errorf("not logged in")
		}

		pterm.DefaultSection.Println("Authentication Status")
		pterm.Info.Printf("Logged in as: %s (%s)\n", session.Username, session.UserID)
		if expiry, ok := sdk.TokenExpiry(session.Token); ok {
			if time.Now().After(expiry) {
				pterm.Warning.Printf("Token expired at: %s\n", expiry.Format(time.RFC1123))
			} else {
				pterm.Info.Printf("Token expires at: %s\n", expiry.Format(time.RFC1123))
			}
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
		defer cancel()

		resolution, err := cfg.Provider.Role(ctx)
		if err != nil {
			return fmt.Errorf("failed to resolve role: %w", err)
		}
		if resolution.User == nil {
			return fmt.Errorf("no user record found for this session (please re-login)")
		}

		roleNames := make([]string, 0, len(resolution.User.Roles))
		for _, role := range resolution.User.Roles {
			roleNames = append(roleNames, role.Name)
		}

		pterm.DefaultSection.Println("Account")
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "USERNAME\tEMAIL\tROLES\tADMIN")
		fmt.Fprintf(w, "%s\t%s\t%s\t%t\n",
			resolution.User.Username,
			resolution.User.Email,
			strings.Join(roleNames, ", "),
			resolution.IsAdmin,
		)
		w.Flush()

		return nil
	},
}
