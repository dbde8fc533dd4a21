package cli

import (
	"fmt"

	"github.com/Sternrassler/ptcg-client/pkg/store"
	"github.com/spf13/cobra"
)

// withStore opens the store for the duration of fn.
func (a *app) withStore(cmd *cobra.Command, fn func(s *store.Store) error) error {
	s, err := a.openStore(cmd.Context(), a.cfg.StoreOptions())
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer s.Close()
	return fn(s)
}

func (a *app) storedCommand() *cobra.Command {
	storedCmd := &cobra.Command{
		Use:   "stored",
		Short: "Read the snapshot written by sync",
	}

	storedCmd.AddCommand(&cobra.Command{
		Use:   "card <id>",
		Short: "Get a stored card by ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withStore(cmd, func(s *store.Store) error {
				card, err := s.GetCard(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				return a.printJSON(card)
			})
		},
	})

	var where, preset string
	cardsCmd := &cobra.Command{
		Use:   "cards",
		Short: "List stored cards ordered by ID",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := a.compileFilter(where, preset)
			if err != nil {
				return err
			}
			return a.withStore(cmd, func(s *store.Store) error {
				cards, err := s.ListCards(cmd.Context())
				if err != nil {
					return err
				}
				return a.printCards(cards, f)
			})
		},
	}
	filterFlags(cardsCmd, &where, &preset)
	storedCmd.AddCommand(cardsCmd)

	storedCmd.AddCommand(&cobra.Command{
		Use:   "set <id>",
		Short: "Get a stored set by ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withStore(cmd, func(s *store.Store) error {
				set, err := s.GetSet(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				return a.printJSON(set)
			})
		},
	})

	storedCmd.AddCommand(&cobra.Command{
		Use:   "sets",
		Short: "List stored sets ordered by ID",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withStore(cmd, func(s *store.Store) error {
				sets, err := s.ListSets(cmd.Context())
				if err != nil {
					return err
				}
				return a.printJSON(sets)
			})
		},
	})

	storedCmd.AddCommand(&cobra.Command{
		Use:       "snapshot <cards|sets>",
		Short:     "Show when a resource was last synced",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{store.ResourceCards, store.ResourceSets},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withStore(cmd, func(s *store.Store) error {
				snap, err := s.LoadSnapshot(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				return a.printJSON(snap)
			})
		},
	})

	return storedCmd
}
