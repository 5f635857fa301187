package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yuuyeah/review-and-assessment-powered-by-intelligent-documentation/internal/output"
)

var (
	resultsDataFile string
	resultsFormat   string
)

var resultsCmd = &cobra.Command{
	Use:   "results",
	Short: "Summarize a review data bundle",
	Long: `Summarize the result records of a review data bundle without
expanding a template. Useful for inspecting what a prompt render would see.`,
	Example: `  nextaction results --data results.json
  nextaction results --data results.json --format markdown`,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := output.ParseFormat(resultsFormat)
		if err != nil {
			return err
		}

		bundle, err := readDataBundle(resultsDataFile)
		if err != nil {
			return err
		}

		formatter := output.NewFormatter(format)
		rendered, err := formatter.FormatBundle(bundle)
		if err != nil {
			return err
		}
		if rendered == "" {
			fmt.Fprintln(cmd.OutOrStdout(), "No results available.")
			return nil
		}

		fmt.Fprintln(cmd.OutOrStdout(), rendered)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(resultsCmd)

	resultsCmd.Flags().StringVarP(&resultsDataFile, "data", "d", "", "JSON data bundle file (default: stdin)")
	resultsCmd.Flags().StringVarP(&resultsFormat, "format", "f", "table", "output format: table, json, markdown")
}
