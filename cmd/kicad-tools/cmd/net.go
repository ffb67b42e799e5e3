package cmd

import (
	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/kicad-tools/pkg/kicad/netlist"
)

var (
	netProject string
	netName    string
	netCLI     string
)

var netCmd = &cobra.Command{
	Use:   "net",
	Short: "List the pins connected to a net",
	Long: `List every component pin connected to a net.

The net name is matched exactly first, then case-insensitively as a
substring. An ambiguous match reports the candidate net names so the
query can be repeated with an exact one.`,
	RunE: runNet,
}

func init() {
	rootCmd.AddCommand(netCmd)
	netCmd.Flags().StringVarP(&netProject, "project", "p", "", "path to the KiCad project directory")
	netCmd.Flags().StringVarP(&netName, "net", "n", "", "net name (e.g. GND, SCL)")
	netCmd.Flags().StringVar(&netCLI, "kicad-cli", "", "path to the kicad-cli binary")
	netCmd.MarkFlagRequired("project")
	netCmd.MarkFlagRequired("net")
}

func runNet(cmd *cobra.Command, args []string) error {
	return emit(netResult(cmd))
}

func netResult(cmd *cobra.Command) (*netlist.NetConnections, error) {
	tree, err := exportedNetlistTree(cmd, netProject, netCLI)
	if err != nil {
		return nil, err
	}
	return netlist.QueryByNet(tree, netName)
}
