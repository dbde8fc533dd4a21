package cli

import (
	"encoding/json"
	"fmt"

	"github.com/Sternrassler/ptcg-client/internal/filter"
	"github.com/Sternrassler/ptcg-client/pkg/models"
	"github.com/spf13/cobra"
)

// printJSON writes v as indented JSON.
func (a *app) printJSON(v any) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	return nil
}

// filterFlags adds --where and --filter to cmd.
func filterFlags(cmd *cobra.Command, where, preset *string) {
	cmd.Flags().StringVarP(where, "where", "w", "", `card filter expression, e.g. '"Fire" in types and hp >= 100'`)
	cmd.Flags().StringVarP(preset, "filter", "f", "", "use a filter preset from the config")
	cmd.MarkFlagsMutuallyExclusive("where", "filter")
}

// compileFilter returns nil when neither a where expression nor a preset
// is given.
func (a *app) compileFilter(where, preset string) (*filter.Filter, error) {
	if preset != "" {
		expression, err := a.cfg.Filter(preset)
		if err != nil {
			return nil, err
		}
		where = expression
	}
	if where == "" {
		return nil, nil
	}

	f, err := filter.Compile(where)
	if err != nil {
		return nil, fmt.Errorf("invalid filter expression: %w", err)
	}
	return f, nil
}

// printCards filters cards with f and prints the result.
func (a *app) printCards(cards []models.Card, f *filter.Filter) error {
	matched, err := f.Apply(cards)
	if err != nil {
		return err
	}
	if f != nil {
		a.logger.Info().
			Str("filter", f.Expression()).
			Int("matched", len(matched)).
			Int("items", len(cards)).
			Msg("Filter applied")
	}
	return a.printJSON(matched)
}
