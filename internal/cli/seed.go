package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/pulsedash/pulsedash-go/internal/dependencies/random"
	"github.com/pulsedash/pulsedash-go/internal/model"
)

func newSeedCmd() *cobra.Command {
	var count int

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Seed random analytics snapshots via the API",
		Long: `Generate random analytics snapshots and POST them through the API.

Each snapshot gets random player counts and a status breakdown cycling
through active, inactive and banned populations, so filter and summary
behavior is observable immediately.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return seedEntries(count)
		},
	}

	cmd.Flags().IntVar(&count, "count", 30, "Number of snapshots to create")

	return cmd
}

func seedEntries(count int) error {
	rnd := random.New()
	statuses := []string{model.StatusActive, model.StatusInactive, model.StatusBanned}
	out := NewOutput(cfg.Output)

	for i := 0; i < count; i++ {
		totalPlayers := 50 + rnd.Intn(4951)
		activePlayers := 10 + rnd.Intn(max(totalPlayers-10, 1))

		body := map[string]any{
			"totalPlayers":       totalPlayers,
			"activePlayers":      activePlayers,
			"avgPlaytimeMinutes": 5 + rnd.Intn(296),
			"avgScore":           100 + rnd.Intn(9901),
			"byStatus":           seedByStatus(statuses[i%len(statuses)], rnd),
		}

		var entry model.Entry
		if err := client.Post("/api/analytics", body, &entry); err != nil {
			return fmt.Errorf("seeding entry %d/%d: %w", i+1, count, err)
		}

		// Space the createdAt timestamps out a little
		time.Sleep(2 * time.Millisecond)
	}

	out.PrintMessage(fmt.Sprintf("Seeded %d analytics snapshots", count))
	return nil
}

// seedByStatus builds a breakdown where only one status population is
// non-zero, mirroring how the dashboard's sample data is shaped
func seedByStatus(status string, rnd random.Random) map[string]int {
	count := 1 + rnd.Intn(500)
	b := map[string]int{"active": 0, "inactive": 0, "banned": 0}
	if status == model.StatusBanned {
		count = min(count, 100)
	}
	b[status] = count
	return b
}
