package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/kicad-tools/pkg/jlcpcb"
)

var (
	partsOpts     jlcpcb.SearchOptions
	partsDownload bool
	partsDBPath   string
)

var partsCmd = &cobra.Command{
	Use:   "parts",
	Short: "Search the JLCPCB parts database",
	Long: `Full-text search over the JLCPCB parts database snapshot used by the
kicad-jlcpcb-tools plugin. The database is looked up in the plugin's
install path first, then in /tmp/jlcpcb-parts; --download fetches it
when neither exists.`,
	RunE: runParts,
}

func init() {
	rootCmd.AddCommand(partsCmd)
	partsCmd.Flags().StringVarP(&partsOpts.Search, "search", "s", "", "free text search (e.g. 'esp32 module')")
	partsCmd.Flags().StringVarP(&partsOpts.Category, "category", "c", "", "filter by first category")
	partsCmd.Flags().StringVarP(&partsOpts.Package, "package", "p", "", "filter by package type")
	partsCmd.Flags().StringVarP(&partsOpts.Manufacturer, "manufacturer", "m", "", "filter by manufacturer")
	partsCmd.Flags().BoolVar(&partsOpts.InStock, "in-stock", false, "only show parts with stock > 0")
	partsCmd.Flags().BoolVar(&partsOpts.BasicOnly, "basic-only", false, "only show 'Basic' library type parts")
	partsCmd.Flags().IntVarP(&partsOpts.Limit, "limit", "l", jlcpcb.DefaultLimit, "maximum number of results")
	partsCmd.Flags().BoolVar(&partsDownload, "download", false, "download the database if not found")
	partsCmd.Flags().StringVar(&partsDBPath, "db", "", "explicit path to the parts database")
}

func runParts(cmd *cobra.Command, args []string) error {
	if !partsOpts.HasCriteria() {
		err := errors.New("at least one search criteria required")
		printJSON(errorEnvelope{
			Error: err.Error(),
			Hint:  "use --search, --category, --package, or --manufacturer",
		})
		return err
	}

	dbPath, err := partsDatabase(cmd)
	if err != nil {
		return err
	}

	return emit(jlcpcb.Search(cmd.Context(), dbPath, partsOpts))
}

func partsDatabase(cmd *cobra.Command) (string, error) {
	var candidates []string
	if partsDBPath != "" {
		candidates = append(candidates, partsDBPath)
	}

	if dbPath, ok := jlcpcb.FindDatabase(candidates...); ok {
		return dbPath, nil
	}

	if partsDownload {
		dbPath, err := jlcpcb.DownloadDatabase(cmd.Context())
		if err != nil {
			wrapped := fmt.Errorf("failed to download database: %w", err)
			printJSON(errorEnvelope{Error: wrapped.Error()})
			return "", wrapped
		}
		return dbPath, nil
	}

	err := errors.New("database not found")
	printJSON(errorEnvelope{
		Error: err.Error(),
		Hint:  "use --download to fetch the database, or ensure the kicad-jlcpcb-tools plugin is installed",
	})
	return "", err
}
