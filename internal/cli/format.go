package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mharmon/rchub/internal/hub"
)

// printJSON marshals v as indented JSON and writes it to stdout.
func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// printVisitList prints who is checked in on a date, in server order.
func printVisitList(date string, visits []*hub.Visit) {
	if len(visits) == 0 {
		fmt.Printf("No one is checked in for %s\n", date)
		return
	}

	fmt.Printf("Checked in for %s (%s):\n", date, peopleCount(len(visits)))
	for _, v := range visits {
		fmt.Printf("  - %s\n", visitLine(v))
	}
}

// visitLine formats one list entry, suppressing empty notes.
func visitLine(v *hub.Visit) string {
	if v.HasNotes() {
		return fmt.Sprintf("%s (%s)", v.Person.Name, v.Notes)
	}
	return v.Person.Name
}

// printNotes prints a visit's notes on their own line when present.
func printNotes(v *hub.Visit) {
	if v.HasNotes() {
		fmt.Printf("Notes: %s\n", v.Notes)
	}
}

// peopleCount pluralizes the list header count.
func peopleCount(n int) string {
	if n == 1 {
		return "1 person"
	}
	return fmt.Sprintf("%d people", n)
}
