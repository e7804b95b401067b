package main

import (
	"context"
	"encoding/json"
	"strings"

	"jifdict/adapters/jsonstore"
	"jifdict/domain/journal"
	"jifdict/internal/errors"
	"jifdict/ports"

	"github.com/spf13/cobra"
)

// lookupSource loads data.json for the lookup and serve commands
var lookupSource ports.LookupSource = jsonstore.NewStore()

// loadMatcher loads the lookup at path from source and indexes it for queries
func loadMatcher(ctx context.Context, source ports.LookupSource, path string) (*journal.Matcher, error) {
	lookup, err := source.LoadLookup(ctx, path)
	if err != nil {
		return nil, err
	}
	return journal.NewMatcher(lookup), nil
}

func newLookupCmd() *cobra.Command {
	var dataPath string

	cmd := &cobra.Command{
		Use:   "lookup <journal name...>",
		Short: "Look up a journal in data.json",
		Long: `Look up a journal by full or abbreviated name. Matching ignores case,
punctuation and the words THE, OF, AND and FOR.

Example: jifdict lookup "J. Am. Chem. Soc."`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := dataPath
			if path == "" {
				path = appConfig.Paths.OutputFile
			}
			matcher, err := loadMatcher(cmd.Context(), lookupSource, path)
			if err != nil {
				return err
			}

			query := strings.Join(args, " ")
			match, ok := matcher.Match(query)
			if !ok {
				return errors.NotFound("journal " + query)
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			enc.SetEscapeHTML(false)
			return enc.Encode(match)
		},
	}

	cmd.Flags().StringVar(&dataPath, "data", "", "Lookup file (default from JIF_OUTPUT_FILE or data.json)")
	return cmd
}
