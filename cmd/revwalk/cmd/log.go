package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/treeverse/revwalk/pkg/ident"
	"github.com/treeverse/revwalk/pkg/revwalk"
)

var logCmd = &cobra.Command{
	Use:   "log <commit or tag id>...",
	Short: "Show commit history reachable from the given starting points, most recent first",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()
		store := openStore(ctx)
		defer store.Close()

		walker := revwalk.NewWalker(ctx, store)
		for _, arg := range args {
			id, err := ident.Parse(arg)
			if err != nil {
				die(err)
			}
			o, err := walker.ParseCommit(id)
			if err != nil {
				die(err)
			}
			c, ok := o.(*revwalk.Commit)
			if !ok {
				die(fmt.Errorf("%s peels to a %s, not a commit: %w",
					id, o.Type(), revwalk.ErrWrongObjectType))
			}
			if err := walker.MarkStart(c); err != nil {
				die(err)
			}
		}

		it := walker.Iterator()
		for it.Next() {
			c := it.Value()
			fmt.Printf("commit %s\n", c.ID())
			for _, p := range c.Parents() {
				fmt.Printf("parent %s\n", p.ID())
			}
			fmt.Printf("committer %s\ndate %s\n\n    %s\n\n",
				c.Committer(), c.CommitTime().Format("2006-01-02 15:04:05 -0700"), c.Message())
		}
		if err := it.Err(); err != nil {
			die(err)
		}
	},
}

//nolint:gochecknoinits
func init() {
	rootCmd.AddCommand(logCmd)
}
