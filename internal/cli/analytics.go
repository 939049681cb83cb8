package cli

import (
	"net/url"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/pulsedash/pulsedash-go/internal/model"
)

func newListCmd() *cobra.Command {
	var (
		search    string
		status    string
		dateFrom  string
		dateTo    string
		sortBy    string
		sortOrder string
		page      int
		limit     int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List analytics snapshots",
		RunE: func(cmd *cobra.Command, args []string) error {
			query := url.Values{}
			setIfNotEmpty(query, "search", search)
			setIfNotEmpty(query, "status", status)
			setIfNotEmpty(query, "dateFrom", dateFrom)
			setIfNotEmpty(query, "dateTo", dateTo)
			setIfNotEmpty(query, "sortBy", sortBy)
			setIfNotEmpty(query, "sortOrder", sortOrder)
			if cmd.Flags().Changed("page") {
				query.Set("page", strconv.Itoa(page))
			}
			if cmd.Flags().Changed("limit") {
				query.Set("limit", strconv.Itoa(limit))
			}

			var result model.ListResult
			if err := client.GetWithQuery("/api/analytics", query, &result); err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&search, "search", "", "Free-text search over id and player counts")
	cmd.Flags().StringVar(&status, "status", "", "Status filter: active, inactive or banned")
	cmd.Flags().StringVar(&dateFrom, "date-from", "", "Creation date lower bound (YYYY-MM-DD)")
	cmd.Flags().StringVar(&dateTo, "date-to", "", "Creation date upper bound (YYYY-MM-DD)")
	cmd.Flags().StringVar(&sortBy, "sort-by", "", "Sort field: createdAt or updatedAt")
	cmd.Flags().StringVar(&sortOrder, "sort-order", "", "Sort direction: asc or desc")
	cmd.Flags().IntVar(&page, "page", 1, "Page number")
	cmd.Flags().IntVar(&limit, "limit", 10, "Page size (1-100)")

	return cmd
}

func newSummaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Show the population-wide summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result model.Summary
			if err := client.Get("/api/analytics/summary", &result); err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(result)
			return nil
		},
	}
}

func newCreateCmd() *cobra.Command {
	var (
		totalPlayers  float64
		activePlayers float64
		avgPlaytime   float64
		avgScore      float64
		active        int
		inactive      int
		banned        int
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create one analytics snapshot",
		RunE: func(cmd *cobra.Command, args []string) error {
			body := map[string]any{
				"totalPlayers":       totalPlayers,
				"activePlayers":      activePlayers,
				"avgPlaytimeMinutes": avgPlaytime,
				"avgScore":           avgScore,
			}
			if active > 0 || inactive > 0 || banned > 0 {
				body["byStatus"] = map[string]int{
					"active":   active,
					"inactive": inactive,
					"banned":   banned,
				}
			}

			var entry model.Entry
			if err := client.Post("/api/analytics", body, &entry); err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(entry)
			return nil
		},
	}

	cmd.Flags().Float64Var(&totalPlayers, "total-players", 0, "Total player count (required)")
	cmd.Flags().Float64Var(&activePlayers, "active-players", 0, "Active player count (required)")
	cmd.Flags().Float64Var(&avgPlaytime, "avg-playtime", 0, "Average playtime in minutes")
	cmd.Flags().Float64Var(&avgScore, "avg-score", 0, "Average score")
	cmd.Flags().IntVar(&active, "status-active", 0, "Active status count")
	cmd.Flags().IntVar(&inactive, "status-inactive", 0, "Inactive status count")
	cmd.Flags().IntVar(&banned, "status-banned", 0, "Banned status count")
	_ = cmd.MarkFlagRequired("total-players")
	_ = cmd.MarkFlagRequired("active-players")

	return cmd
}

func newHealthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check server health",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result HealthResult
			if err := client.Get("/api/health", &result); err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(result)
			return nil
		},
	}
}

func setIfNotEmpty(query url.Values, key, value string) {
	if value != "" {
		query.Set(key, value)
	}
}
