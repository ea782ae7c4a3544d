// Command fut-data-export writes the players and coaches CSV exports and
// reports which data source the service would use.
//
// Usage:
//
//	fut-data-export players --posicao Atacante --out atacantes.csv
//	fut-data-export coaches --q abel
//	fut-data-export status
package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	sonic "github.com/bytedance/sonic"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/riskibarqy/fut-data/internal/app"
	"github.com/riskibarqy/fut-data/internal/config"
	"github.com/riskibarqy/fut-data/internal/interfaces/csvexport"
	"github.com/riskibarqy/fut-data/internal/platform/logging"
	"github.com/riskibarqy/fut-data/internal/usecase"
)

func main() {
	_ = godotenv.Load(".env")

	root := &cobra.Command{
		Use:           "fut-data-export",
		Short:         "Export fut-data players and coaches",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(playersCmd())
	root.AddCommand(coachesCmd())
	root.AddCommand(statusCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func playersCmd() *cobra.Command {
	var filter usecase.PlayerFilter
	var out string
	cmd := &cobra.Command{
		Use:   "players",
		Short: "Write players as CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(func(ctx context.Context, a *app.App) error {
				players, err := a.PlayerService.Search(ctx, filter)
				if err != nil {
					return err
				}
				return writeTable(cmd.OutOrStdout(), out, csvexport.Players(players))
			})
		},
	}
	cmd.Flags().StringVar(&filter.Posicao, "posicao", "", "Position filter")
	cmd.Flags().StringVar(&filter.Time, "time", "", "Team filter")
	cmd.Flags().StringVar(&filter.Q, "q", "", "Name search")
	cmd.Flags().StringVar(&filter.League, "league", "", "Upstream league id (defaults to API_FOOTBALL_DEFAULT_LEAGUE)")
	cmd.Flags().StringVar(&filter.Season, "season", "", "Upstream season (defaults to API_FOOTBALL_DEFAULT_SEASON)")
	cmd.Flags().StringVar(&filter.Page, "page", "", "Upstream page")
	cmd.Flags().StringVar(&out, "out", "", "Output file (stdout when empty)")
	return cmd
}

func coachesCmd() *cobra.Command {
	var q, out string
	cmd := &cobra.Command{
		Use:   "coaches",
		Short: "Write coaches as CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(func(ctx context.Context, a *app.App) error {
				coaches, err := a.CoachService.Search(ctx, q)
				if err != nil {
					return err
				}
				return writeTable(cmd.OutOrStdout(), out, csvexport.Coaches(coaches))
			})
		},
	}
	cmd.Flags().StringVar(&q, "q", "", "Name search (required for live mode)")
	cmd.Flags().StringVar(&out, "out", "", "Output file (stdout when empty)")
	return cmd
}

func statusCmd() *cobra.Command {
	var warm bool
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Print the configured data mode, optionally after warming the cache",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(func(ctx context.Context, a *app.App) error {
				report := map[string]any{
					"data_mode":   a.Resolver.Mode(),
					"mode_reason": a.Resolver.Reason(),
					"data_dir":    a.Config.DataDir,
				}
				if warm {
					results, err := a.Warmer.Warm(ctx)
					if err != nil {
						return err
					}
					report["warmup"] = results
					report["effective_mode"] = a.Resolver.EffectiveMode()
					report["mode_reason"] = a.Resolver.Reason()
				}
				return sonic.ConfigDefault.NewEncoder(cmd.OutOrStdout()).Encode(report)
			})
		},
	}
	cmd.Flags().BoolVar(&warm, "warm", false, "Call the upstream once per catalog to check connectivity")
	return cmd
}

// run loads config, wires the app and cancels on interrupt.
func run(fn func(ctx context.Context, a *app.App) error) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := logging.NewJSONWriter(os.Stderr, cfg.LogLevel)
	defer func() { _ = logger.Sync() }()

	a, err := app.New(cfg, logger)
	if err != nil {
		return err
	}
	return fn(ctx, a)
}

func writeTable(stdout io.Writer, path string, table csvexport.Table) error {
	if path == "" {
		return encodeTo(stdout, table)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := encodeTo(f, table); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func encodeTo(w io.Writer, table csvexport.Table) error {
	bw := bufio.NewWriter(w)
	if err := csvexport.Encode(bw, table); err != nil {
		return err
	}
	if err := bw.WriteByte('\n'); err != nil {
		return err
	}
	return bw.Flush()
}
