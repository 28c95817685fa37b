/*
 * Copyright (c) 2024-present unTill Pro, Ltd.
 */

package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/untillpro/goutils/logger"
	"golang.org/x/exp/slices"

	"github.com/voedger/oboformat/pkg/macroexp"
	"github.com/voedger/oboformat/pkg/obo2owl"
	"github.com/voedger/oboformat/pkg/oboids"
	"github.com/voedger/oboformat/pkg/owl"
	"github.com/voedger/oboformat/pkg/owl2obo"
)

type convertParams struct {
	toolParams
	Macros bool
	GCI    bool
	Strict bool
	Mute   bool
}

func newConvertCmd() *cobra.Command {
	params := convertParams{}
	cmd := &cobra.Command{
		Use:   "convert in.obo|in.ofn",
		Short: "convert OBO document to OWL functional syntax or OWL functional syntax to OBO",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, params.toolParams)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed(flagStrict) {
				cfg.Convert.Strict = params.Strict
			}
			if cmd.Flags().Changed(flagMute) {
				cfg.Convert.MuteUntranslatable = params.Mute
			}
			if slices.Contains(owlExts, strings.ToLower(filepath.Ext(args[0]))) {
				return convertOWL(cmd, cfg, args[0], params.Output)
			}
			return convertOBO(cmd, cfg, args[0], params)
		},
	}
	initGlobalFlags(cmd, &params.toolParams)
	cmd.Flags().BoolVar(&params.Macros, "macros", false, "expand relation macros in place")
	cmd.Flags().BoolVar(&params.GCI, "gci", false, "also write macro expansions as a separate GCI ontology, requires --output")
	cmd.Flags().BoolVar(&params.Strict, flagStrict, false, "fail on OWL axioms without OBO form")
	cmd.Flags().BoolVar(&params.Mute, flagMute, false, "do not write OWL axioms without OBO form to the owl-axioms header clause")
	return cmd
}

func convertOBO(cmd *cobra.Command, cfg config, in string, params convertParams) error {
	if params.GCI && params.Output == "" {
		return fmt.Errorf("--gci requires --%s", flagOutput)
	}
	l, err := newLoader(cfg)
	if err != nil {
		return err
	}
	loaded, err := l.Load(in)
	if err != nil {
		return err
	}
	res, err := obo2owl.Convert(loaded.Doc, obo2owl.Options{
		DefaultOntologyID: cfg.Convert.DefaultOntologyID,
		Imports:           loaded.ImportClosure(),
	})
	if err != nil {
		return err
	}
	logDiagnostics(res.Diagnostics)
	o := res.Ontology

	mopts := macroexp.Options{
		PreserveAnnotations: cfg.Macros.PreserveAnnotations,
		AddExpansionMarker:  cfg.Macros.AddExpansionMarker,
		IDs:                 oboids.NewMapper(loaded.Doc.OntologyID(), loaded.Doc.IDSpaces()),
	}
	if params.GCI {
		gci := macroexp.CreateGCIOntology(o, mopts)
		logDiagnostics(gci.Diagnostics)
		ext := filepath.Ext(params.Output)
		path := strings.TrimSuffix(params.Output, ext) + gciSuffix + ext
		if err := writeOntology(cmd, path, gci.Ontology); err != nil {
			return err
		}
	}
	if params.Macros {
		exp := macroexp.ExpandAll(o, mopts)
		logDiagnostics(exp.Diagnostics)
		logger.Info(fmt.Sprintf("macros: %d axioms added, %d removed", len(exp.Added), len(exp.Removed)))
	}
	return writeOntology(cmd, params.Output, o)
}

func writeOntology(cmd *cobra.Command, path string, o *owl.Ontology) error {
	return writeOutput(cmd, path, func(w io.Writer) error {
		_, err := io.WriteString(w, o.String())
		return err
	})
}

func convertOWL(cmd *cobra.Command, cfg config, in, out string) error {
	content, err := os.ReadFile(in)
	if err != nil {
		return err
	}
	fd, err := owl.ParseFunctional(string(content))
	if err != nil {
		return err
	}
	res, err := owl2obo.Convert(fd.Ontology(), owl2obo.Options{
		Policy: owl2obo.StrictnessPolicy{
			Strict:             cfg.Convert.Strict,
			MuteUntranslatable: cfg.Convert.MuteUntranslatable,
		},
		DefaultOntologyID: cfg.Convert.DefaultOntologyID,
	})
	if err != nil {
		return err
	}
	logDiagnostics(res.Diagnostics)
	if n := len(res.Untranslatable); n > 0 {
		logger.Warning(fmt.Sprintf("%d axioms have no OBO form", n))
	}
	return writeDoc(cmd, out, res.Doc, cfg)
}
