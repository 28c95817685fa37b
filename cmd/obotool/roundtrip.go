/*
 * Copyright (c) 2024-present unTill Pro, Ltd.
 */

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/untillpro/goutils/logger"

	"github.com/voedger/oboformat/pkg/obo2owl"
	"github.com/voedger/oboformat/pkg/obodiff"
	"github.com/voedger/oboformat/pkg/owl2obo"
)

func newRoundtripCmd() *cobra.Command {
	params := toolParams{}
	cmd := &cobra.Command{
		Use:   "roundtrip in.obo",
		Short: "convert OBO document to OWL and back, write the result and report differences",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, params)
			if err != nil {
				return err
			}
			_, err = roundtrip(cmd, cfg, args[0], params.Output)
			return err
		},
	}
	initGlobalFlags(cmd, &params)
	return cmd
}

// roundtrip returns differences between the document and the document converted to OWL and back
func roundtrip(cmd *cobra.Command, cfg config, in, out string) ([]obodiff.Diff, error) {
	l, err := newLoader(cfg)
	if err != nil {
		return nil, err
	}
	loaded, err := l.Load(in)
	if err != nil {
		return nil, err
	}
	owlRes, err := obo2owl.Convert(loaded.Doc, obo2owl.Options{
		DefaultOntologyID: cfg.Convert.DefaultOntologyID,
		Imports:           loaded.ImportClosure(),
	})
	if err != nil {
		return nil, err
	}
	logDiagnostics(owlRes.Diagnostics)

	oboRes, err := owl2obo.Convert(owlRes.Ontology, owl2obo.Options{
		Policy:            owl2obo.StrictnessPolicy{Strict: cfg.Convert.Strict, MuteUntranslatable: cfg.Convert.MuteUntranslatable},
		DefaultOntologyID: cfg.Convert.DefaultOntologyID,
	})
	if err != nil {
		return nil, err
	}
	logDiagnostics(oboRes.Diagnostics)

	diffs := obodiff.Compare(loaded.Doc, oboRes.Doc, obodiff.Options{})
	for _, d := range diffs {
		if logger.IsVerbose() {
			logger.Verbose(d.String())
		}
	}
	logger.Info(fmt.Sprintf("%d differences after round trip", len(diffs)))
	return diffs, writeDoc(cmd, out, oboRes.Doc, cfg)
}
