package main

import "github.com/OpenTraceLab/kicad-tools/cmd/kicad-tools/cmd"

func main() {
	cmd.Execute()
}
