package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/yuuyeah/review-and-assessment-powered-by-intelligent-documentation/internal/observability"
	"github.com/yuuyeah/review-and-assessment-powered-by-intelligent-documentation/internal/prompt"
	"github.com/yuuyeah/review-and-assessment-powered-by-intelligent-documentation/internal/review"
)

var (
	renderTemplateFile string
	renderSlug         string
	renderDataFile     string
	renderOutputFile   string
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Expand a prompt template with a review data bundle",
	Long: `Expand a prompt template's placeholders with a review data bundle.

The template comes from --template (a file) or --slug (a template in the
store; see the templates.dir config for a custom store directory). The data
bundle is a JSON object with an "allResults" array, read from --data or from
stdin.`,
	Example: `  nextaction render --slug next-action --data results.json
  cat results.json | nextaction render --template prompt.md`,
	RunE: func(cmd *cobra.Command, args []string) error {
		text, slug, err := resolveTemplateText()
		if err != nil {
			return err
		}

		bundle, err := readDataBundle(renderDataFile)
		if err != nil {
			return err
		}

		expanded := prompt.Expand(text, bundle)

		observability.CLILogger.Debug("rendered prompt",
			zap.String("template_slug", slug),
			zap.Int("result_count", len(bundle.Results())),
			zap.Int("prompt_bytes", len(expanded)))

		if renderOutputFile != "" {
			if err := os.WriteFile(renderOutputFile, []byte(expanded), 0o644); err != nil {
				return fmt.Errorf("write output %s: %w", renderOutputFile, err)
			}
			return nil
		}

		fmt.Fprintln(cmd.OutOrStdout(), expanded)
		return nil
	},
}

func resolveTemplateText() (text string, slug string, err error) {
	switch {
	case renderTemplateFile != "" && renderSlug != "":
		return "", "", fmt.Errorf("--template and --slug are mutually exclusive")
	case renderTemplateFile != "":
		data, err := os.ReadFile(renderTemplateFile) // #nosec G304 -- template path is user-provided
		if err != nil {
			return "", "", fmt.Errorf("read template %s: %w", renderTemplateFile, err)
		}
		return string(data), "", nil
	case renderSlug != "":
		registry, err := loadTemplateRegistry()
		if err != nil {
			return "", "", err
		}
		tmpl, err := registry.Get(renderSlug)
		if err != nil {
			return "", "", err
		}
		return tmpl.Text, renderSlug, nil
	default:
		return "", "", fmt.Errorf("either --template or --slug is required")
	}
}

// loadTemplateRegistry builds the template registry from the configured
// directory, falling back to the embedded defaults.
func loadTemplateRegistry() (prompt.Registry, error) {
	dir := viper.GetString("templates.dir")
	if dir == "" {
		return prompt.DefaultRegistry()
	}

	templates, err := prompt.LoadFromDir(dir)
	if err != nil {
		return nil, err
	}
	if len(templates) == 0 {
		return nil, fmt.Errorf("no templates found in %s", dir)
	}
	return prompt.NewRegistry(templates)
}

// readDataBundle reads a JSON bundle from path, or stdin when path is empty
// or "-".
func readDataBundle(path string) (*review.Bundle, error) {
	if path != "" && path != "-" {
		return review.ReadBundleFile(path)
	}
	return review.ReadBundle(os.Stdin)
}

func init() {
	rootCmd.AddCommand(renderCmd)

	renderCmd.Flags().StringVarP(&renderTemplateFile, "template", "t", "", "template file to expand")
	renderCmd.Flags().StringVarP(&renderSlug, "slug", "s", "", "template slug from the template store")
	renderCmd.Flags().StringVarP(&renderDataFile, "data", "d", "", "JSON data bundle file (default: stdin)")
	renderCmd.Flags().StringVarP(&renderOutputFile, "output", "o", "", "write the expanded prompt to a file instead of stdout")
}
