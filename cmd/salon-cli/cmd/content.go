package cmd

import (
	"fmt"

	"github.com/nfrund/salon/cmd/salon-cli/internal/catalogfmt"
	"github.com/nfrund/salon/internal/content"
	"github.com/nfrund/salon/internal/domain"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// contentFs is where catalog paths are resolved. Tests swap in a memory fs.
var contentFs = afero.NewOsFs()

var contentCmd = &cobra.Command{
	Use:   "content",
	Short: "Inspect site catalog files",
	Long: `Inspect the catalog that drives the site's services, testimonials and
contact details. Without a path the embedded default catalog is used.`,
}

var contentValidateCmd = &cobra.Command{
	Use:   "validate [path]",
	Short: "Validate a catalog file",
	Long: `Validate a YAML (.yaml, .yml) or TOML (.toml) catalog file. The file is
decoded strictly, so unknown keys are reported, and then checked for
completeness: every service category needs an id and at least one item,
category ids must be unique and usable as anchors, contact entries need a
known kind.

Examples:
  salon-cli content validate                     # Validate the built-in catalog
  salon-cli content validate ./catalog.toml      # Validate a custom catalog`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, source, err := loadCatalog(args)
		if err != nil {
			fmt.Fprintf(cmd.OutOrStdout(), "❌ %s is invalid: %v\n", source, err)
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✅ %s is valid: %d service categories, %d testimonials, %d contact entries\n",
			source, len(cat.Services), len(cat.Testimonials), len(cat.Contact))
		return nil
	},
}

var servicesFormat string

var contentServicesCmd = &cobra.Command{
	Use:   "services [path]",
	Short: "List the service menu of a catalog",
	Long: `List every service with its category and price, in page order.

Examples:
  salon-cli content services                       # Table of the built-in menu
  salon-cli content services ./catalog.yaml -o json`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, _, err := loadCatalog(args)
		if err != nil {
			return err
		}
		switch servicesFormat {
		case "json":
			return catalogfmt.ServicesJSON(cmd.OutOrStdout(), cat)
		case "table":
			return catalogfmt.ServicesTable(cmd.OutOrStdout(), cat)
		default:
			return fmt.Errorf("unknown output format %q (use table or json)", servicesFormat)
		}
	},
}

func loadCatalog(args []string) (*domain.Catalog, string, error) {
	if len(args) == 0 {
		cat, err := content.Default()
		return cat, "built-in catalog", err
	}
	cat, err := content.Load(contentFs, args[0])
	return cat, args[0], err
}

func init() {
	contentServicesCmd.Flags().StringVarP(&servicesFormat, "output", "o", "table", "Output format: table or json")

	contentCmd.AddCommand(contentValidateCmd)
	contentCmd.AddCommand(contentServicesCmd)
	rootCmd.AddCommand(contentCmd)
}
