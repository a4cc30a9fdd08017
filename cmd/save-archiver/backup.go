package main

import (
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/raoulx24/save-archiver/internal/lock"
	"github.com/raoulx24/save-archiver/internal/ux"
)

func newBackupCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "backup",
		Short: "Copy the live save folder into a new session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.setup(cmd)
			if err != nil {
				return err
			}

			l, err := lock.Acquire(a.paths.Lock)
			if err != nil {
				return err
			}
			defer l.Release()

			snap, err := a.archiver.Backup(cmd.Context())
			if err != nil {
				return err
			}

			out := ux.New(cmd.OutOrStdout())
			out.Success("saved session %s (%d files, %s)", snap.Session.Name(), snap.Files, humanize.Bytes(uint64(snap.Bytes)))
			if snap.Skipped > 0 {
				out.Warn("skipped %d entries that are not regular files", snap.Skipped)
			}
			return nil
		},
	}
}
