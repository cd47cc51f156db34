package calendar

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/JSebastianPaezSalesianoDev/Chrono-sDiary-Front/cmd/chronoctl/internal/config"
	"github.com/JSebastianPaezSalesianoDev/Chrono-sDiary-Front/pkg/sdk"
)

var (
	flagMonth       string
	flagDate        string
	flagAll         bool
	flagInteractive bool
)

// CalendarCmd renders the month view with the pending-invitation bell count.
var CalendarCmd = &cobra.Command{
	Use:   "calendar",
	Short: "Show the month calendar",
	Long: `Renders a month view of your events with a notification count for pending
invitations. Days with events are marked with an asterisk.

With --interactive the calendar becomes a small session: navigate months,
select days, show all events, respond to invitations, and create or delete
events without leaving the view.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.MustFromContext(cmd.Context())

		session, err := cfg.Provider.Session()
		if err != nil {
			return err
		}
		if !session.Authenticated() {
			return fmt.Errorf("%w: please run `chronoctl auth login`", sdk.ErrUnauthenticated)
		}

		state := newViewState(time.Now())
		if flagMonth != "" {
			at, err := time.Parse("2006-01", flagMonth)
			if err != nil {
				return fmt.Errorf("%w: --month must look like 2006-01", sdk.ErrValidation)
			}
			state = &viewState{year: at.Year(), month: at.Month()}
		}
		if flagDate != "" {
			at, err := time.Parse("2006-01-02", flagDate)
			if err != nil {
				return fmt.Errorf("%w: --date must look like 2006-01-02", sdk.ErrValidation)
			}
			state = &viewState{year: at.Year(), month: at.Month()}
			if err := state.SelectDay(at.Day()); err != nil {
				return err
			}
		}
		if flagAll {
			state.ShowAll()
		}

		apiClient, err := cfg.Provider.SDK()
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
		defer cancel()

		events := sdk.NewEventSet(apiClient, session.UserID)
		if err := events.Refresh(ctx); err != nil {
			return fmt.Errorf("failed to load events: %w", err)
		}
		invitations := sdk.NewInvitationSet(apiClient, session.UserID)
		if err := invitations.Refresh(ctx); err != nil {
			return fmt.Errorf("failed to load invitations: %w", err)
		}

		if flagInteractive && !cfg.NonInteractive {
			return runInteractive(cmd.Context(), apiClient, state, events, invitations)
		}

		render(state, events, invitations)
		return nil
	},
}

func init() {
	CalendarCmd.Flags().StringVar(&flagMonth, "month", "", "Month to display (2006-01); defaults to the current month")
	CalendarCmd.Flags().StringVar(&flagDate, "date", "", "Day to select (2006-01-02)")
	CalendarCmd.Flags().BoolVar(&flagAll, "all", false, "List all events instead of the selected day only")
	CalendarCmd.Flags().BoolVar(&flagInteractive, "interactive", false, "Browse the calendar interactively")
}

func render(state *viewState, events *sdk.EventSet, invitations *sdk.InvitationSet) {
	fmt.Println(renderMonth(state, events.Events()))

	if count := invitations.NotificationCount(); count > 0 {
		pterm.Info.Printf("🔔 %d pending invitation notifications (`chronoctl invite list`)\n", count)
	}

	visible := state.VisibleEvents(events.Events())
	switch {
	case state.showAll:
		pterm.DefaultSection.Println("All events")
	case state.selected != 0:
		pterm.DefaultSection.Println(state.SelectedDate().Format("January 2, 2006"))
	default:
		return
	}

	if len(visible) == 0 {
		fmt.Println("No events.")
		return
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "TIME\tID\tTITLE\tLOCATION")
	for _, event := range visible {
		location := event.Location
		if location == "" {
			location = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", event.StartTime.Format("Jan 2 15:04"), event.ID, event.Title, location)
	}
	w.Flush()
}

// parseCommand splits an input line into a lowercase verb and a verbatim
// argument. Ids keep their case; only the verb is folded.
func parseCommand(line string) (string, string) {
	fields := strings.Fields(strings.TrimSpace(line))
	if len(fields) == 0 {
		return "", ""
	}
	verb := strings.ToLower(fields[0])
	if len(fields) == 1 {
		return verb, ""
	}
	return verb, fields[1]
}

// renderPendingInvitations lists the pending invitations with their ids, so
// accept/decline can be used without leaving the view.
func renderPendingInvitations(invitations *sdk.InvitationSet) string {
	pending := invitations.Pending()
	if len(pending) == 0 {
		return "No pending invitations.\n"
	}
	var b strings.Builder
	w := tabwriter.NewWriter(&b, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tEVENT\tFROM")
	for _, invitation := range pending {
		from := invitation.InvitingUserName
		if from == "" {
			from = invitation.InvitingUserID
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", invitation.ID, invitation.EventTitle, from)
	}
	w.Flush()
	return b.String()
}

// promptNewEvent collects the fields for an in-view event creation.
func promptNewEvent() (sdk.CreateEventInput, error) {
	var input sdk.CreateEventInput
	var err error
	if input.Title, err = pterm.DefaultInteractiveTextInput.Show("Title"); err != nil {
		return input, err
	}
	if input.Description, err = pterm.DefaultInteractiveTextInput.Show("Description (optional)"); err != nil {
		return input, err
	}
	if input.Location, err = pterm.DefaultInteractiveTextInput.Show("Location (optional)"); err != nil {
		return input, err
	}
	start, err := pterm.DefaultInteractiveTextInput.Show("Start (e.g. 2006-01-02 15:04)")
	if err != nil {
		return input, err
	}
	if input.StartTime, err = sdk.ParseEventTime(start); err != nil {
		return input, err
	}
	end, err := pterm.DefaultInteractiveTextInput.Show("End (e.g. 2006-01-02 15:04)")
	if err != nil {
		return input, err
	}
	input.EndTime, err = sdk.ParseEventTime(end)
	return input, err
}

// submitEvent validates and creates an event, refreshing the cache once the
// server confirmed the create. The returned boolean reports whether the
// collection mutated; the caller re-renders only when it did.
func submitEvent(ctx context.Context, apiClient *sdk.Client, events *sdk.EventSet, input sdk.CreateEventInput) (bool, error) {
	if err := sdk.ValidateEventInput(input); err != nil {
		return false, err
	}
	if _, err := apiClient.CreateEvent(ctx, input); err != nil {
		return false, err
	}
	if err := events.Refresh(ctx); err != nil {
		return true, err
	}
	return true, nil
}

const interactivePrompt = "calendar (next/prev/<day>/all/new/invites/accept <id>/decline <id>/delete <id>/refresh/quit)"

// runInteractive is the calendar session loop. Mutations follow the same
// rule as everywhere else: the caches refresh after the server confirms,
// a deletion may splice locally only once the delete succeeded, and a
// mutating sub-flow reports whether anything changed so the view knows to
// re-render fresh state.
func runInteractive(ctx context.Context, apiClient *sdk.Client, state *viewState, events *sdk.EventSet, invitations *sdk.InvitationSet) error {
	for {
		render(state, events, invitations)
		line, err := pterm.DefaultInteractiveTextInput.Show(interactivePrompt)
		if err != nil {
			return err
		}
		verb, arg := parseCommand(line)
		if verb == "" {
			continue
		}

		opCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		switch verb {
		case "q", "quit", "exit":
			cancel()
			return nil
		case "n", "next":
			state.NextMonth()
		case "p", "prev":
			state.PrevMonth()
		case "a", "all":
			state.ShowAll()
		case "i", "invites":
			fmt.Print(renderPendingInvitations(invitations))
		case "new":
			input, err := promptNewEvent()
			if err != nil {
				pterm.Error.Println(err)
				break
			}
			mutated, err := submitEvent(opCtx, apiClient, events, input)
			if err != nil {
				pterm.Error.Println(err)
			}
			if mutated {
				pterm.Success.Printf("Created event %q\n", input.Title)
			}
		case "r", "refresh":
			if err := events.Refresh(opCtx); err != nil {
				pterm.Error.Println(err)
			}
			if err := invitations.Refresh(opCtx); err != nil {
				pterm.Error.Println(err)
			}
		case "accept", "decline":
			if arg == "" {
				pterm.Error.Printf("usage: %s <invitation-id>\n", verb)
				break
			}
			status := sdk.InvitationAccepted
			if verb == "decline" {
				status = sdk.InvitationDeclined
			}
			if updated, err := invitations.Respond(opCtx, arg, status, events); err != nil {
				pterm.Error.Println(err)
			} else {
				pterm.Success.Printf("Invitation to %q is now %s\n", updated.EventTitle, updated.Status)
			}
		case "delete":
			if arg == "" {
				pterm.Error.Println("usage: delete <event-id>")
				break
			}
			if err := events.Delete(opCtx, arg); err != nil {
				pterm.Error.Println(err)
			} else {
				pterm.Success.Println("Event deleted")
			}
		default:
			if day, err := strconv.Atoi(verb); err == nil {
				if err := state.SelectDay(day); err != nil {
					pterm.Error.Println(err)
				}
			} else {
				pterm.Error.Printf("unknown command %q\n", verb)
			}
		}
		cancel()
	}
}
