package auth

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/JSebastianPaezSalesianoDev/Chrono-sDiary-Front/cmd/chronoctl/internal/config"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Log out from Chrono's Diary",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.MustFromContext(cmd.Context())

		if err := cfg.Provider.Store().Clear(); err != nil {
			return fmt.Errorf("failed to clear session: %w", err)
		}
		cfg.Provider.Refresh()

		fmt.Println("Logged out successfully")
		return nil
	},
}
