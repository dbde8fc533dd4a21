package cli

import (
	"fmt"
	"time"

	"github.com/Sternrassler/ptcg-client/pkg/metrics"
	"github.com/Sternrassler/ptcg-client/pkg/models"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func (a *app) syncCommand() *cobra.Command {
	var metricsFile string

	syncCmd := &cobra.Command{
		Use:   "sync",
		Short: "Snapshot every set and card into Redis",
		Long: `sync fetches all sets and all cards concurrently and replaces the
snapshot stored in the configured Redis. Sets and cards are written in one
transaction, and nothing is written when either fetch fails.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			start := time.Now()

			s, err := a.openStore(ctx, a.cfg.StoreOptions())
			if err != nil {
				return fmt.Errorf("failed to open store: %w", err)
			}
			defer s.Close()

			var (
				sets  []models.Set
				cards []models.Card
			)
			g, gctx := errgroup.WithContext(ctx)
			g.Go(func() error {
				var err error
				sets, err = a.client.GetAllSets(gctx)
				return err
			})
			g.Go(func() error {
				var err error
				cards, err = a.client.GetAllCards(gctx)
				return err
			})
			if err := g.Wait(); err != nil {
				return fmt.Errorf("sync: %w", err)
			}

			result, err := s.SaveCatalog(ctx, sets, cards)
			if err != nil {
				return err
			}

			a.logger.Info().
				Int("sets", len(sets)).
				Int("cards", len(cards)).
				Dur("duration", time.Since(start)).
				Msg("Sync complete")

			if metricsFile != "" {
				if err := metrics.WriteTextfile(metricsFile); err != nil {
					return err
				}
			}

			return a.printJSON(result)
		},
	}

	syncCmd.Flags().StringVar(&metricsFile, "metrics-file", "", "write Prometheus metrics to this textfile after the sync")

	return syncCmd
}
