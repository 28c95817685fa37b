/*
 * Copyright (c) 2024-present unTill Pro, Ltd.
 */

package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/voedger/oboformat/pkg/obodiff"
	"github.com/voedger/oboformat/pkg/obodoc"
)

type diffParams struct {
	toolParams
	Fail   bool
	Ignore []string
}

func newDiffCmd() *cobra.Command {
	params := diffParams{}
	cmd := &cobra.Command{
		Use:   "diff a.obo b.obo",
		Short: "print clause level differences between two OBO documents",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, params.toolParams)
			if err != nil {
				return err
			}
			diffs, err := diffDocs(cmd, cfg, args[0], args[1], params)
			if err != nil {
				return err
			}
			if params.Fail && len(diffs) > 0 {
				return ErrDocumentsDiffer(len(diffs))
			}
			return nil
		},
	}
	initGlobalFlags(cmd, &params.toolParams)
	cmd.Flags().BoolVar(&params.Fail, "fail", false, "fail if documents differ")
	cmd.Flags().StringSliceVar(&params.Ignore, "ignore", nil, "tags to ignore, e.g. --ignore date,saved-by")
	return cmd
}

func diffDocs(cmd *cobra.Command, cfg config, a, b string, params diffParams) ([]obodiff.Diff, error) {
	l, err := newLoader(cfg)
	if err != nil {
		return nil, err
	}
	docA, err := l.Load(a)
	if err != nil {
		return nil, err
	}
	docB, err := l.Load(b)
	if err != nil {
		return nil, err
	}

	opts := obodiff.Options{}
	for _, name := range params.Ignore {
		tag := obodoc.TagByName(name)
		if tag == obodoc.Tag_Unrecognized {
			return nil, fmt.Errorf("unknown tag «%s» to ignore", name)
		}
		opts.IgnoreTags = append(opts.IgnoreTags, tag)
	}

	diffs := obodiff.Compare(docA.Doc, docB.Doc, opts)
	err = writeOutput(cmd, params.Output, func(w io.Writer) error {
		for _, d := range diffs {
			if _, err := fmt.Fprintln(w, d.String()); err != nil {
				return err
			}
		}
		return nil
	})
	return diffs, err
}
