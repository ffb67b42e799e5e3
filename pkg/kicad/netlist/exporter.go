package netlist

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/exec"
)

// DefaultKiCadCLI is the binary invoked for netlist export when no
// explicit path is configured.
const DefaultKiCadCLI = "kicad-cli"

// Exporter invokes kicad-cli to export a schematic's netlist in KiCad
// S-expression format. Cancellation and timeouts come from the caller's
// context; the parsing layer itself has no suspension points.
type Exporter struct {
	CLI string // path to the kicad-cli binary, DefaultKiCadCLI when empty
}

// NewExporter creates an exporter using the given kicad-cli path, or
// the default binary name when empty.
func NewExporter(cli string) *Exporter {
	if cli == "" {
		cli = DefaultKiCadCLI
	}
	return &Exporter{CLI: cli}
}

// ExportNetlist runs kicad-cli on the given schematic and returns the
// exported netlist text.
func (e *Exporter) ExportNetlist(ctx context.Context, schematicPath string) (string, error) {
	tmp, err := os.CreateTemp("", "netlist-*.net")
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	tmp.Close()
	defer os.Remove(tmpPath)

	cmd := exec.CommandContext(ctx, e.CLI,
		"sch", "export", "netlist",
		"--format", "kicadsexpr",
		"--output", tmpPath,
		schematicPath,
	)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		// exec.ErrNotFound covers bare names missing from PATH,
		// fs.ErrNotExist covers explicit paths that do not exist
		if errors.Is(err, exec.ErrNotFound) || errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%s not found, ensure KiCad is installed: %w", e.CLI, err)
		}
		return "", fmt.Errorf("%s failed: %s: %w", e.CLI, stderr.String(), err)
	}

	content, err := os.ReadFile(tmpPath)
	if err != nil {
		return "", fmt.Errorf("failed to read exported netlist: %w", err)
	}

	return string(content), nil
}
