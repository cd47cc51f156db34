package user

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/JSebastianPaezSalesianoDev/Chrono-sDiary-Front/pkg/sdk"
)

// UserCmd is the parent command for user operations
var UserCmd = &cobra.Command{
	Use:   "user",
	Short: "Manage users",
	Long:  `Commands for inspecting and administering user accounts.`,
}

func init() {
	UserCmd.AddCommand(listCmd)
	UserCmd.AddCommand(showCmd)
	UserCmd.AddCommand(editCmd)
	UserCmd.AddCommand(deleteCmd)
	UserCmd.AddCommand(promoteCmd)
	UserCmd.AddCommand(eventsCmd)
}

func roleNames(user sdk.UserRecord) string {
	if len(user.Roles) == 0 {
		return "-"
	}
	names := make([]string, 0, len(user.Roles))
	for _, role := range user.Roles {
		names = append(names, role.Name)
	}
	return strings.Join(names, ", ")
}

// renderDayGroups prints events bucketed by day, most recent day first.
func renderDayGroups(events []sdk.EventRecord) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "DATE\tTIME\tID\tTITLE")
	for _, group := range sdk.GroupByDay(events) {
		day := strings.ToUpper(group.Day.Format("January 2, 2006"))
		for _, event := range group.Events {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", day, event.StartTime.Format("15:04"), event.ID, event.Title)
			day = ""
		}
	}
	w.Flush()
}

func renderUserTable(users []sdk.UserRecord) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tUSERNAME\tEMAIL\tROLES")
	for _, user := range users {
		email := user.Email
		if email == "" {
			email = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", user.ID, user.Username, email, roleNames(user))
	}
	w.Flush()
}
