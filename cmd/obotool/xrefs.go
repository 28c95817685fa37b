/*
 * Copyright (c) 2024-present unTill Pro, Ltd.
 */

package main

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/untillpro/goutils/logger"

	"github.com/voedger/oboformat/pkg/xrefexp"
)

type xrefsParams struct {
	toolParams
	Dir          string
	BridgePrefix string
}

func newXrefsCmd() *cobra.Command {
	params := xrefsParams{}
	cmd := &cobra.Command{
		Use:   "xrefs in.obo",
		Short: "expand treat-xrefs-as-* rules into bridge documents",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, params.toolParams)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed(flagBridgePrefix) {
				cfg.Xrefs.BridgePrefix = params.BridgePrefix
			}
			_, err = writeBridges(cmd, cfg, args[0], params.Dir)
			return err
		},
	}
	initGlobalFlags(cmd, &params.toolParams)
	cmd.Flags().StringVarP(&params.Dir, "dir", "d", ".", "directory to write bridge documents to")
	cmd.Flags().StringVar(&params.BridgePrefix, flagBridgePrefix, xrefexp.DefaultBridgePrefix, "bridge document name prefix, empty writes one document")
	return cmd
}

// writeBridges writes bridge documents into the directory and returns written paths
func writeBridges(cmd *cobra.Command, cfg config, in, dir string) ([]string, error) {
	l, err := newLoader(cfg)
	if err != nil {
		return nil, err
	}
	loaded, err := l.Load(in)
	if err != nil {
		return nil, err
	}
	// loaded documents are shared by the loader cache
	doc := loaded.Doc.Clone()
	res, err := xrefexp.Expand(doc, xrefexp.Options{BridgePrefix: cfg.Xrefs.BridgePrefix})
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(dir, defaultDirPermissions); err != nil {
		return nil, err
	}
	var paths []string
	for _, key := range res.Keys {
		path := filepath.Join(dir, key+oboExt)
		if err := writeDoc(cmd, path, res.Cache[key], cfg, doc); err != nil {
			return paths, err
		}
		paths = append(paths, path)
		logger.Info("bridge written to", path)
	}
	return paths, nil
}
