package main

import (
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/raoulx24/save-archiver/internal/ux"
)

func newListCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List backup sessions with their numbers",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.setup(cmd)
			if err != nil {
				return err
			}

			sessions, err := a.archiver.Sessions()
			if err != nil {
				return err
			}

			out := ux.New(cmd.OutOrStdout())
			if len(sessions) == 0 {
				out.Muted("no sessions in %s", a.paths.Backups)
				return nil
			}

			out.Title("Sessions in " + a.paths.Backups)
			rows := make([][]string, 0, len(sessions))
			for i, s := range sessions {
				files, size := "?", "?"
				if snap, err := a.archiver.Describe(s); err == nil {
					files = strconv.Itoa(snap.Files)
					size = humanize.Bytes(uint64(snap.Bytes))
				} else {
					a.log.Warn("cannot read session", "session", s.Name(), "error", err)
				}

				rows = append(rows, []string{
					strconv.Itoa(i),
					strconv.Itoa(i - len(sessions)),
					s.Name(),
					s.ID.Time().Format("2006-01-02 15:04:05"),
					humanize.Time(s.ID.Time()),
					files,
					size,
				})
			}
			out.Table([]string{"#", "-#", "SESSION", "TAKEN", "AGE", "FILES", "SIZE"}, rows)
			return nil
		},
	}
}
