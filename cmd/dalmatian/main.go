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

// Command dalmatian renders, checks and breeds brush-stroke documents.
package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		slog.Error("dalmatian failed", "err", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose, quiet bool
	root := &cobra.Command{
		Use:           "dalmatian",
		Short:         "generative brush-stroke graphics",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			h := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
				Level: levelFromFlags(verbose, quiet),
			})
			slog.SetDefault(slog.New(h))
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log every candidate")
	root.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "only log errors")

	root.AddCommand(
		newRenderCmd(),
		newCheckCmd(),
		newBreedCmd(),
		newCrossoverCmd(),
	)
	return root
}

// levelFromFlags returns the log level selected by the command line.
func levelFromFlags(verbose, quiet bool) slog.Level {
	switch {
	case verbose:
		return slog.LevelDebug
	case quiet:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// readFile opens fname and decodes it with read.
func readFile[T any](fname string, read func(io.Reader) (T, error)) (T, error) {
	fd, err := os.Open(fname)
	if err != nil {
		var zero T
		return zero, err
	}
	defer fd.Close()
	return read(fd)
}
