package event

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/JSebastianPaezSalesianoDev/Chrono-sDiary-Front/pkg/sdk"
)

// EventCmd is the parent command for event operations
var EventCmd = &cobra.Command{
	Use:   "event",
	Short: "Manage calendar events",
	Long:  `Commands for listing, creating and deleting calendar events.`,
}

func init() {
	EventCmd.AddCommand(listCmd)
	EventCmd.AddCommand(createCmd)
	EventCmd.AddCommand(deleteCmd)
}

// renderGroupedEvents prints events bucketed by day, most recent day first.
func renderGroupedEvents(events []sdk.EventRecord) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "DATE\tTIME\tID\tTITLE\tLOCATION\tDESCRIPTION")
	for _, group := range sdk.GroupByDay(events) {
		day := strings.ToUpper(group.Day.Format("January 2, 2006"))
		for _, event := range group.Events {
			span := event.StartTime.Format("15:04")
			if !event.EndTime.Equal(event.StartTime) {
				span += " - " + event.EndTime.Format("15:04")
			}
			description := event.Description
			if strings.TrimSpace(description) == "" {
				description = "-"
			}
			location := event.Location
			if location == "" {
				location = "-"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n", day, span, event.ID, event.Title, location, description)
			day = ""
		}
	}
	w.Flush()
}
