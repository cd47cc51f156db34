package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	authcmd "github.com/JSebastianPaezSalesianoDev/Chrono-sDiary-Front/cmd/chronoctl/cmd/auth"
	calendarcmd "github.com/JSebastianPaezSalesianoDev/Chrono-sDiary-Front/cmd/chronoctl/cmd/calendar"
	eventcmd "github.com/JSebastianPaezSalesianoDev/Chrono-sDiary-Front/cmd/chronoctl/cmd/event"
	invitecmd "github.com/JSebastianPaezSalesianoDev/Chrono-sDiary-Front/cmd/chronoctl/cmd/invite"
	usercmd "github.com/JSebastianPaezSalesianoDev/Chrono-sDiary-Front/cmd/chronoctl/cmd/user"
	"github.com/JSebastianPaezSalesianoDev/Chrono-sDiary-Front/cmd/chronoctl/internal/client"
	"github.com/JSebastianPaezSalesianoDev/Chrono-sDiary-Front/cmd/chronoctl/internal/config"
	"github.com/JSebastianPaezSalesianoDev/Chrono-sDiary-Front/cmd/chronoctl/internal/session"
)

var (
	serverURL      string
	nonInteractive bool
)

var rootCmd = &cobra.Command{
	Use:   "chronoctl",
	Short: "Chrono's Diary CLI - calendar and event management client",
	Long: `chronoctl is the command-line client for Chrono's Diary, a calendar and
event management service. Use it to log in, browse your calendar, manage
events and invitations, and administer users.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		fileCfg, err := config.LoadFile()
		if err != nil {
			return err
		}

		// Precedence: flags over environment over config file.
		if !cmd.Flags().Changed("server") && fileCfg.Server != "" {
			serverURL = fileCfg.Server
		}
		if !cmd.Flags().Changed("non-interactive") && fileCfg.NonInteractive {
			nonInteractive = true
		}

		store, err := session.NewFileStore()
		if err != nil {
			return err
		}

		cfg := &config.GlobalConfig{
			ServerURL:      serverURL,
			NonInteractive: nonInteractive,
			Provider:       client.NewProvider(serverURL, store),
		}
		cmd.SetContext(config.InjectConfig(cmd.Context(), cfg))
		return nil
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", config.DefaultServerURL, "Chrono's Diary API server URL")
	rootCmd.PersistentFlags().BoolVar(&nonInteractive, "non-interactive", false, "Disable interactive prompts (also set via CHRONO_NON_INTERACTIVE=1)")
	rootCmd.AddCommand(authcmd.AuthCmd)
	rootCmd.AddCommand(eventcmd.EventCmd)
	rootCmd.AddCommand(usercmd.UserCmd)
	rootCmd.AddCommand(invitecmd.InviteCmd)
	rootCmd.AddCommand(calendarcmd.CalendarCmd)
}
