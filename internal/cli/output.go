package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/pulsedash/pulsedash-go/internal/model"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case model.ListResult:
		o.printList(v)
	case model.Entry:
		o.printEntry(v)
	case model.Summary:
		o.printSummary(v)
	case HealthResult:
		fmt.Printf("Status: %s\n", v.Status)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

func (o *Output) printList(result model.ListResult) {
	fmt.Printf("Page %d/%d (%d entries total, limit %d)\n\n",
		result.Page, result.TotalPages, result.TotalCount, result.Limit)
	for i := range result.Items {
		o.printEntry(result.Items[i])
		fmt.Println()
	}
	fmt.Println("Summary (full population):")
	o.printSummary(result.Summary)
}

func (o *Output) printEntry(e model.Entry) {
	fmt.Printf("%s\n", e.ID)
	fmt.Printf("  created:   %s\n", e.CreatedAt)
	fmt.Printf("  players:   %s total, %s active\n",
		formatNum(e.TotalPlayers), formatNum(e.ActivePlayers))
	fmt.Printf("  averages:  %s min playtime, %s score\n",
		formatNum(e.AvgPlaytimeMinutes), formatNum(e.AvgScore))
	fmt.Printf("  status:    %d active / %d inactive / %d banned\n",
		e.ByStatus.Active, e.ByStatus.Inactive, e.ByStatus.Banned)
}

func (o *Output) printSummary(s model.Summary) {
	fmt.Printf("  players:   %s total, %s active\n",
		formatNum(s.TotalPlayers), formatNum(s.ActivePlayers))
	fmt.Printf("  averages:  %s min playtime, %s score\n",
		formatNum(s.AvgPlaytimeMinutes), formatNum(s.AvgScore))
	fmt.Printf("  status:    %d active / %d inactive / %d banned\n",
		s.ByStatus.Active, s.ByStatus.Inactive, s.ByStatus.Banned)
	if len(s.RegistrationsByDay) > 0 {
		fmt.Println("  snapshots by day:")
		for _, day := range s.RegistrationsByDay {
			fmt.Printf("    %s: %d\n", day.Date, day.Count)
		}
	}
}

func formatNum(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// HealthResult is the health endpoint response
type HealthResult struct {
	Status string `json:"status"`
}
