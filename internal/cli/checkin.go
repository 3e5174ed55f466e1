package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCheckinCmd() *cobra.Command {
	var notes string
	var remove bool

	cmd := &cobra.Command{
		Use:   "checkin",
		Short: "Check in to the hub for today",
		Long: `Create or update your hub visit for today.

If you are already checked in and give no new notes, nothing is written.

Examples:
  rchub checkin
  rchub checkin --notes "pairing on the parser"
  rchub checkin --remove`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheckin(notes, remove)
		},
	}

	cmd.Flags().StringVarP(&notes, "notes", "n", "", "optional notes for your check-in")
	cmd.Flags().BoolVarP(&remove, "remove", "r", false, "remove your check-in instead of creating one")

	return cmd
}

func runCheckin(notes string, remove bool) error {
	c, err := newAPIClient()
	if err != nil {
		return err
	}

	me, err := c.CurrentUser()
	if err != nil {
		return err
	}
	date, err := resolveDate("")
	if err != nil {
		return err
	}

	if remove {
		if err := c.DeleteVisit(me.ID, date); err != nil {
			return err
		}
		if isJSON() {
			return printJSON(map[string]interface{}{
				"date":    date,
				"removed": true,
			})
		}
		fmt.Printf("Removed check-in for %s\n", date)
		return nil
	}

	// Already checked in and nothing new to say: leave the visit alone.
	if notes == "" {
		existing, err := c.Visit(me.ID, date)
		if err != nil {
			return err
		}
		if existing != nil {
			if isJSON() {
				return printJSON(existing)
			}
			fmt.Printf("Already checked in for %s\n", existing.Date)
			printNotes(existing)
			return nil
		}
	}

	v, err := c.CreateOrUpdateVisit(me.ID, date, notes)
	if err != nil {
		return err
	}

	if isJSON() {
		return printJSON(v)
	}

	fmt.Printf("Checked in for %s\n", v.Date)
	printNotes(v)
	return nil
}
