package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/treeverse/revwalk/pkg/ident"
	"github.com/treeverse/revwalk/pkg/revwalk"
)

var showCmd = &cobra.Command{
	Use:   "show <object id>",
	Short: "Show a single object of any type",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()
		store := openStore(ctx)
		defer store.Close()

		id, err := ident.Parse(args[0])
		if err != nil {
			die(err)
		}
		walker := revwalk.NewWalker(ctx, store)
		o, err := walker.ParseAny(id)
		if err != nil {
			die(err)
		}
		fmt.Printf("%s %s\nmultihash %s\n", o.Type(), o.ID(), ident.Multihash(o.ID()))
		switch v := o.(type) {
		case *revwalk.Commit:
			for _, p := range v.Parents() {
				fmt.Printf("parent %s\n", p.ID())
			}
			fmt.Printf("committer %s\ndate %s\n\n%s\n",
				v.Committer(), v.CommitTime().Format("2006-01-02 15:04:05 -0700"), v.Message())
		case *revwalk.Tag:
			fmt.Printf("tag %s\ntarget %s %s\n", v.Name(), v.Target().Type(), v.Target().ID())
		}
	},
}

//nolint:gochecknoinits
func init() {
	rootCmd.AddCommand(showCmd)
}
