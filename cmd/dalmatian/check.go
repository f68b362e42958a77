// seehuhn.de/go/dalmatian - generative brush-stroke graphics
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"seehuhn.de/go/dalmatian/dlmt"
)

var errCheckFailed = errors.New("check failed")

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <document.dlmt>...",
		Short: "parse documents and report unresolved references",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			failed := 0
			for _, fname := range args {
				m, err := readFile(fname, dlmt.Read)
				if err != nil {
					slog.Error("cannot read document", "file", fname, "err", err)
					failed++
					continue
				}
				problems := m.CheckReferences()
				for _, p := range problems {
					fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", fname, p)
				}
				if len(problems) > 0 {
					failed++
					continue
				}
				slog.Debug("document ok", "file", fname,
					"brushes", len(m.Brushes), "strokes", len(m.Brushstrokes))
			}
			if failed > 0 {
				return fmt.Errorf("%w: %d of %d documents", errCheckFailed, failed, len(args))
			}
			return nil
		},
	}
}
