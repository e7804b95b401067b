package main

import (
	"fmt"

	"jifdict/adapters/excel"
	"jifdict/adapters/jsonstore"
	"jifdict/app"

	"github.com/spf13/cobra"
)

var outputPath string

func newConvertCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert [input]",
		Short: "Convert a JCR export into data.json",
		Long: `Convert a JCR impact-factor export into the journal lookup file.

The input defaults to JIF_INPUT_FILE (JCRImpactFactors2025.xlsx). Rows without
a "JIF 2024" value are skipped. If the input cannot be read nothing is written.

Example: jifdict convert JCRImpactFactors2025.csv -o extension/data.json`,
		Args: cobra.MaximumNArgs(1),
		RunE: runConvertCmd,
	}
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file (default from JIF_OUTPUT_FILE or data.json)")
	return cmd
}

func runConvertCmd(cmd *cobra.Command, args []string) error {
	input := appConfig.Paths.InputFile
	if len(args) > 0 {
		input = args[0]
	}
	output := appConfig.Paths.OutputFile
	if outputPath != "" {
		output = outputPath
	}

	svc := app.NewConverterService(excel.NewLoader(excel.DefaultReaderConfig()), jsonstore.NewStore(), logger)
	result, err := svc.Convert(cmd.Context(), input, output)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d journal entries to %s\n", result.Keys, result.OutputPath)
	return nil
}
