// Package cmd implements the kicad-tools command line interface. Every
// subcommand emits a single JSON document on stdout, including error
// envelopes, so the output is machine-consumable either way.
package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/kicad-tools/pkg/kicad/netlist"
)

var (
	// Global flags
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "kicad-tools",
	Short: "Query KiCad projects and the JLCPCB parts database",
	Long: `kicad-tools answers connectivity and sourcing questions about KiCad projects:

  kicad-tools pins --project ~/kicad/board --ref U101   # pin-to-net connections
  kicad-tools net --project ~/kicad/board --net SCL     # pins on a net
  kicad-tools props --project ~/kicad/board --ref R124  # component properties
  kicad-tools parts --search "0805 capacitor 100nF"     # JLCPCB parts search

All results are printed as JSON on stdout.`,
	Version:       "0.1.0",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// errorEnvelope is the JSON shape of a failed query.
type errorEnvelope struct {
	Error   string   `json:"error"`
	Matches []string `json:"matches,omitempty"`
	Hint    string   `json:"hint,omitempty"`
}

// emit prints the query result, or an error envelope carrying candidate
// matches for ambiguous net names, and passes the error through so the
// process exits non-zero.
func emit(result any, err error) error {
	if err != nil {
		env := errorEnvelope{Error: err.Error()}
		var ambiguous *netlist.AmbiguousMatchError
		if errors.As(err, &ambiguous) {
			env.Matches = ambiguous.Matches
		}
		printJSON(env)
		return err
	}

	printJSON(result)
	return nil
}

func printJSON(v any) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to encode result: %v\n", err)
		return
	}
	fmt.Println(string(data))
}
