package main

import (
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/raoulx24/save-archiver/internal/lock"
	"github.com/raoulx24/save-archiver/internal/ux"
)

func newRestoreCmd(opts *options) *cobra.Command {
	var n int

	cmd := &cobra.Command{
		Use:   "restore",
		Short: "Replace the live save folder with a backup session",
		Long: `Restore replaces the live save folder with the selected session. The
current live folder is kept as the scratch folder until the next restore.

Sessions count from the oldest (-n 0) or from the newest (-n -1, the default).`,
		Example: "  save-archiver restore\n  save-archiver restore -n -2\n  save-archiver restore -n 0",
		Args:    cobra.NoArgs,
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

			snap, err := a.archiver.Restore(cmd.Context(), n)
			if err != nil {
				return err
			}

			out := ux.New(cmd.OutOrStdout())
			out.Success("restored session %s from %s (%d files, %s)",
				snap.Session.Name(),
				humanize.Time(snap.Session.ID.Time()),
				snap.Files,
				humanize.Bytes(uint64(snap.Bytes)),
			)
			out.Muted("previous saves kept in %s", a.paths.Scratch)
			return nil
		},
	}

	cmd.Flags().IntVarP(&n, "number", "n", -1, "session to restore, negative counts from the newest")
	return cmd
}
