package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/kicad-tools/pkg/kicad/netlist"
	"github.com/OpenTraceLab/kicad-tools/pkg/kicad/schematic"
	"github.com/OpenTraceLab/kicad-tools/pkg/kicad/sexp/kicadsexp"
)

var (
	pinsProject string
	pinsRef     string
	pinsCLI     string
)

var pinsCmd = &cobra.Command{
	Use:   "pins",
	Short: "List pin-to-net connections for a component",
	Long: `List each pin of a component and the net it connects to.

The project's root schematic is located automatically and its netlist
exported with kicad-cli before querying.`,
	RunE: runPins,
}

func init() {
	rootCmd.AddCommand(pinsCmd)
	pinsCmd.Flags().StringVarP(&pinsProject, "project", "p", "", "path to the KiCad project directory")
	pinsCmd.Flags().StringVarP(&pinsRef, "ref", "r", "", "reference designator of the component (e.g. U101, R1, C5)")
	pinsCmd.Flags().StringVar(&pinsCLI, "kicad-cli", "", "path to the kicad-cli binary")
	pinsCmd.MarkFlagRequired("project")
	pinsCmd.MarkFlagRequired("ref")
}

func runPins(cmd *cobra.Command, args []string) error {
	return emit(pinsResult(cmd))
}

func pinsResult(cmd *cobra.Command) (*netlist.ComponentPins, error) {
	tree, err := exportedNetlistTree(cmd, pinsProject, pinsCLI)
	if err != nil {
		return nil, err
	}
	return netlist.QueryByReference(tree, pinsRef)
}

// exportedNetlistTree locates the root schematic of a project, exports
// its netlist, and parses it.
func exportedNetlistTree(cmd *cobra.Command, projectDir, cli string) (kicadsexp.Sexp, error) {
	rootSch, err := schematic.FindRootSchematic(projectDir)
	if err != nil {
		return nil, err
	}

	if verbose {
		fmt.Fprintf(cmd.ErrOrStderr(), "exporting netlist from %s\n", rootSch)
	}

	content, err := netlist.NewExporter(cli).ExportNetlist(cmd.Context(), rootSch)
	if err != nil {
		return nil, err
	}

	tree := kicadsexp.ParseString(content)
	if tree == nil {
		return nil, fmt.Errorf("failed to parse netlist")
	}

	return tree, nil
}
