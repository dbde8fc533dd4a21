package cli

import (
	"github.com/Sternrassler/ptcg-client/pkg/client"
	"github.com/spf13/cobra"
)

// taxonomyCommands returns one command per taxonomy endpoint.
func (a *app) taxonomyCommands() []*cobra.Command {
	cmds := make([]*cobra.Command, 0, len(client.Taxonomies))
	for _, taxonomy := range client.Taxonomies {
		cmds = append(cmds, &cobra.Command{
			Use:   string(taxonomy),
			Short: "List all " + string(taxonomy),
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				values, err := a.client.GetTaxonomy(cmd.Context(), taxonomy)
				if err != nil {
					return err
				}
				return a.printJSON(values)
			},
		})
	}
	return cmds
}
