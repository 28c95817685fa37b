/*
 * Copyright (c) 2024-present unTill Pro, Ltd.
 */

package main

import (
	"bufio"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/untillpro/goutils/logger"

	"github.com/voedger/oboformat/pkg/oboconv"
	"github.com/voedger/oboformat/pkg/obodoc"
	"github.com/voedger/oboformat/pkg/obowriter"
)

// writeOutput writes to the output file or to the command output if the file is not set
func writeOutput(cmd *cobra.Command, path string, write func(io.Writer) error) error {
	if path == "" {
		return write(cmd.OutOrStdout())
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, defaultPermissions)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(f)
	if err := write(w); err != nil {
		f.Close()
		return err
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func writeDoc(cmd *cobra.Command, path string, doc *obodoc.OBODoc, cfg config, names ...*obodoc.OBODoc) error {
	opts := obowriter.Options{NoNameComments: cfg.Writer.NoNameComments}
	if len(names) > 0 {
		opts.Names = obowriter.Names(append([]*obodoc.OBODoc{doc}, names...)...)
	}
	return writeOutput(cmd, path, func(w io.Writer) error {
		return obowriter.Write(w, doc, opts)
	})
}

func logDiagnostics(dd []oboconv.Diagnostic) {
	for _, d := range dd {
		logger.Warning(d.String())
	}
}
