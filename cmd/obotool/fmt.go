/*
 * Copyright (c) 2024-present unTill Pro, Ltd.
 */

package main

import (
	"github.com/spf13/cobra"
)

func newFmtCmd() *cobra.Command {
	params := toolParams{}
	cmd := &cobra.Command{
		Use:   "fmt in.obo",
		Short: "write OBO document in canonical form",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, params)
			if err != nil {
				return err
			}
			return formatDoc(cmd, cfg, args[0], params.Output)
		},
	}
	initGlobalFlags(cmd, &params)
	return cmd
}

func formatDoc(cmd *cobra.Command, cfg config, in, out string) error {
	l, err := newLoader(cfg)
	if err != nil {
		return err
	}
	loaded, err := l.Load(in)
	if err != nil {
		return err
	}
	return writeDoc(cmd, out, loaded.Doc, cfg, loaded.ImportedDocs()...)
}
