package cli

import (
	"github.com/Sternrassler/ptcg-client/pkg/client"
	"github.com/spf13/cobra"
)

func (a *app) setCommand() *cobra.Command {
	setCmd := &cobra.Command{
		Use:   "set",
		Short: "Get and search sets",
	}

	setCmd.AddCommand(&cobra.Command{
		Use:   "get <id>",
		Short: "Get a single set by ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := a.client.GetSet(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return a.printJSON(set)
		},
	})

	var params client.SearchParams
	searchCmd := &cobra.Command{
		Use:   "search",
		Short: "Search sets, one page at a time",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sets, err := a.client.SearchSets(cmd.Context(), params)
			if err != nil {
				return err
			}
			return a.printJSON(sets)
		},
	}
	searchFlags(searchCmd, &params)
	setCmd.AddCommand(searchCmd)

	setCmd.AddCommand(&cobra.Command{
		Use:   "all",
		Short: "Fetch every set, following pagination",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sets, err := a.client.GetAllSets(cmd.Context())
			if err != nil {
				return err
			}
			return a.printJSON(sets)
		},
	})

	return setCmd
}
