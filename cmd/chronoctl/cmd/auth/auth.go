package auth

import (
	"github.com/spf13/cobra"
)

// AuthCmd is the parent command for auth operations
var AuthCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage authentication",
	Long:  `Commands for logging in and out, registering, and checking session status.`,
}

func init() {
	AuthCmd.AddCommand(loginCmd)
	AuthCmd.AddCommand(logoutCmd)
	AuthCmd.AddCommand(registerCmd)
	AuthCmd.AddCommand(forgotCmd)
	AuthCmd.AddCommand(statusCmd)
}
