package cli

import (
	"github.com/Sternrassler/ptcg-client/pkg/client"
	"github.com/spf13/cobra"
)

func (a *app) cardCommand() *cobra.Command {
	cardCmd := &cobra.Command{
		Use:   "card",
		Short: "Get and search cards",
	}

	cardCmd.AddCommand(&cobra.Command{
		Use:   "get <id>",
		Short: "Get a single card by ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			card, err := a.client.GetCard(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return a.printJSON(card)
		},
	})

	var (
		params        client.SearchParams
		where, preset string
	)
	searchCmd := &cobra.Command{
		Use:   "search",
		Short: "Search cards, one page at a time",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := a.compileFilter(where, preset)
			if err != nil {
				return err
			}
			cards, err := a.client.SearchCards(cmd.Context(), params)
			if err != nil {
				return err
			}
			return a.printCards(cards, f)
		},
	}
	searchFlags(searchCmd, &params)
	filterFlags(searchCmd, &where, &preset)
	cardCmd.AddCommand(searchCmd)

	var allWhere, allPreset string
	allCmd := &cobra.Command{
		Use:   "all",
		Short: "Fetch every card, following pagination",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := a.compileFilter(allWhere, allPreset)
			if err != nil {
				return err
			}
			cards, err := a.client.GetAllCards(cmd.Context())
			if err != nil {
				return err
			}
			return a.printCards(cards, f)
		},
	}
	filterFlags(allCmd, &allWhere, &allPreset)
	cardCmd.AddCommand(allCmd)

	return cardCmd
}

// searchFlags binds the search parameters to cmd's flags.
func searchFlags(cmd *cobra.Command, params *client.SearchParams) {
	cmd.Flags().StringVarP(&params.Query, "query", "q", "", `search query, e.g. "name:charizard subtypes:mega"`)
	cmd.Flags().IntVar(&params.Page, "page", 0, "page number (1-based)")
	cmd.Flags().IntVar(&params.PageSize, "page-size", 0, "page size (at most 250)")
	cmd.Flags().StringSliceVar(&params.OrderBy, "order-by", nil, "fields to order by; prefix with - for descending")
}
