package cmd

import (
	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/kicad-tools/pkg/kicad/schematic"
)

var (
	propsProject string
	propsRef     string
)

var propsCmd = &cobra.Command{
	Use:   "props",
	Short: "Show the schematic properties of a component",
	Long: `Extract a component's properties (Reference, Value, Footprint, custom
fields, library id, uuid) straight from the project's schematic files.`,
	RunE: runProps,
}

func init() {
	rootCmd.AddCommand(propsCmd)
	propsCmd.Flags().StringVarP(&propsProject, "project", "p", "", "path to the KiCad project directory")
	propsCmd.Flags().StringVarP(&propsRef, "ref", "r", "", "reference designator of the component (e.g. R124, C1, U3)")
	propsCmd.MarkFlagRequired("project")
	propsCmd.MarkFlagRequired("ref")
}

func runProps(cmd *cobra.Command, args []string) error {
	return emit(schematic.FindComponentByRef(propsProject, propsRef))
}
