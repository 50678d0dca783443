package main

import (
	"bufio"
	"context"
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"tempo/internal/bootstrap"
	"tempo/internal/platform/config"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var homePath string

	root := &cobra.Command{
		Use:           "tempo",
		Short:         "Practice-time dashboard",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&homePath, "home", "", "config directory (default ~/.tempo)")

	root.AddCommand(newTUICmd(&homePath))
	root.AddCommand(newRefreshCmd(&homePath))
	root.AddCommand(newSeriesCmd(&homePath))
	root.AddCommand(newStatsCmd(&homePath))
	root.AddCommand(newCalendarCmd(&homePath))
	return root
}

func loadApp(homePath string) (*bootstrap.App, error) {
	cfg, err := config.New(homePath)
	if err != nil {
		return nil, err
	}
	return bootstrap.New(cfg)
}

func newTUICmd(homePath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the dashboard terminal UI",
		RunE: func(_ *cobra.Command, _ []string) error {
			app, err := loadApp(*homePath)
			if err != nil {
				return err
			}
			return bootstrap.RunTUI(app)
		},
	}
}

func newRefreshCmd(homePath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "refresh",
		Short: "Fetch calendar events and merge them into the session collection",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*homePath)
			if err != nil {
				return err
			}
			out, err := app.PracticeCLI.Refresh(context.Background())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "fetched=%d added=%d duplicates=%d sessions=%d\n",
				out.Fetched, out.Added, out.Duplicates, len(out.Snapshot.Sessions))
			return nil
		},
	}
}

func newSeriesCmd(homePath *string) *cobra.Command {
	var rangeLabel string
	series := &cobra.Command{
		Use:   "series",
		Short: "Print the derived day-series for a range",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*homePath)
			if err != nil {
				return err
			}
			view, err := app.PracticeCLI.View(context.Background(), rangeLabel)
			if err != nil {
				return err
			}
			if len(view.Entries) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no sessions recorded")
				return nil
			}
			for _, e := range view.Entries {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\ttotal=%ds\tavg=%.0fs\n",
					e.Date.Format("2006-01-02"), e.Display, e.TotalSec, e.AvgSec)
			}
			return nil
		},
	}
	series.Flags().StringVar(&rangeLabel, "range", "ALL", "range: 1W|1M|3M|1Y|ALL")
	return series
}

func newStatsCmd(homePath *string) *cobra.Command {
	var rangeLabel string
	stats := &cobra.Command{
		Use:   "stats",
		Short: "Show summary statistics for a range",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*homePath)
			if err != nil {
				return err
			}
			snap, err := app.PracticeCLI.Snapshot(context.Background())
			if err != nil {
				return err
			}
			view, err := app.PracticeCLI.View(context.Background(), rangeLabel)
			if err != nil {
				return err
			}
			total := 0
			for _, s := range snap.Sessions {
				total += s.DurationSec
			}
			direction := "up"
			if !view.Positive {
				direction = "down"
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "sessions: %d\n", len(snap.Sessions))
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "days tracked: %d\n", len(snap.Entries))
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "total practiced: %ds\n", total)
			if len(snap.Entries) > 0 {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "current avg: %.0fs/day\n", snap.Entries[len(snap.Entries)-1].AvgSec)
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "trend (%s): %s %.0fs\n", view.Range, direction, math.Abs(view.Delta))
			return nil
		},
	}
	stats.Flags().StringVar(&rangeLabel, "range", "ALL", "range: 1W|1M|3M|1Y|ALL")
	return stats
}

func newCalendarCmd(homePath *string) *cobra.Command {
	calendar := &cobra.Command{Use: "calendar", Short: "Calendar service access"}

	calendar.AddCommand(&cobra.Command{
		Use:   "login",
		Short: "Authorize read access to the calendar service",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*homePath)
			if err != nil {
				return err
			}
			auth, err := app.CalendarCLI.AuthURL(context.Background())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Open this URL in a browser and paste the code below:\n%s\n\ncode: ", auth.URL)
			reader := bufio.NewReader(cmd.InOrStdin())
			code, err := reader.ReadString('\n')
			if err != nil {
				return fmt.Errorf("read auth code: %w", err)
			}
			if err := app.CalendarCLI.Authorize(context.Background(), strings.TrimSpace(code)); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "authorized")
			return nil
		},
	})

	calendar.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List calendars visible to the authorized account",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*homePath)
			if err != nil {
				return err
			}
			calendars, err := app.CalendarCLI.Calendars(context.Background())
			if err != nil {
				return err
			}
			if len(calendars) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no calendars")
				return nil
			}
			for _, c := range calendars {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", c.ID, c.Summary)
			}
			return nil
		},
	})

	return calendar
}
