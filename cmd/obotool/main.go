/*
 * Copyright (c) 2024-present unTill Pro, Ltd.
 */

package main

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/untillpro/goutils/cobrau"
)

//go:embed version
var version string

func main() {
	if err := execRootCmd(os.Args, version); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func execRootCmd(args []string, ver string) error {
	rootCmd := cobrau.PrepareRootCmd(
		"obotool",
		"OBO format tool: formatting, OBO/OWL conversion, diffs and xref bridges",
		args,
		ver,
		newFmtCmd(),
		newConvertCmd(),
		newRoundtripCmd(),
		newDiffCmd(),
		newXrefsCmd(),
	)

	return cobrau.ExecCommandAndCatchInterrupt(rootCmd)
}
