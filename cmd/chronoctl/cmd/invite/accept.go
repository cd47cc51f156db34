package invite

import (
	"github.com/spf13/cobra"

	"github.com/JSebastianPaezSalesianoDev/Chrono-sDiary-Front/pkg/sdk"
)

var acceptCmd = &cobra.Command{
	Use:   "accept <invitation-id>",
	Short: "Accept a pending invitation",
	Long: `Accepts an invitation. The event joins your calendar, so both the
invitation list and the event list are re-fetched afterwards.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return respond(cmd, args[0], sdk.InvitationAccepted)
	},
}

var declineCmd = &cobra.Command{
	Use:   "decline <invitation-id>",
	Short: "Decline a pending invitation",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return respond(cmd, args[0], sdk.InvitationDeclined)
	},
}
