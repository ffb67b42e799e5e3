// Package schematic locates KiCad schematic files in a project
// directory and extracts component properties from them.
package schematic

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// FindSchematicFiles returns all .kicad_sch files in a project
// directory, sorted by name.
func FindSchematicFiles(projectDir string) ([]string, error) {
	files, err := filepath.Glob(filepath.Join(projectDir, "*.kicad_sch"))
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", projectDir, err)
	}
	sort.Strings(files)
	return files, nil
}

// FindRootSchematic picks the root schematic of a project directory.
// The root is typically named after the directory or the project file,
// or is the only schematic present.
func FindRootSchematic(projectDir string) (string, error) {
	files, err := FindSchematicFiles(projectDir)
	if err != nil {
		return "", err
	}

	if len(files) == 0 {
		return "", fmt.Errorf("no schematic files found in %s", projectDir)
	}

	if len(files) == 1 {
		return files[0], nil
	}

	// Prefer a schematic named after the directory
	dirName := filepath.Base(projectDir)
	for _, f := range files {
		if stem(f) == dirName {
			return f, nil
		}
	}

	// Prefer a schematic named after the project file
	proFiles, err := filepath.Glob(filepath.Join(projectDir, "*.kicad_pro"))
	if err == nil && len(proFiles) > 0 {
		sort.Strings(proFiles)
		expected := filepath.Join(projectDir, stem(proFiles[0])+".kicad_sch")
		if _, err := os.Stat(expected); err == nil {
			return expected, nil
		}
	}

	// Fall back to the first one alphabetically
	return files[0], nil
}

// stem returns the file name without directory or extension.
func stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
