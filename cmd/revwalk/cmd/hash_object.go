package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/treeverse/revwalk/pkg/objstore"
)

var hashObjectType string

var hashObjectCmd = &cobra.Command{
	Use:   "hash-object [file]",
	Short: "Write an object payload into the store and print its content address",
	Long: `Write an object payload into the store and print its content address.
Reads the payload from the given file, or from stdin when no file is given.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()
		typ, err := objstore.ParseType(hashObjectType)
		if err != nil {
			die(err)
		}
		in := io.Reader(os.Stdin)
		if len(args) == 1 {
			f, err := os.Open(args[0])
			if err != nil {
				die(err)
			}
			defer func() { _ = f.Close() }()
			in = f
		}
		data, err := io.ReadAll(in)
		if err != nil {
			die(err)
		}

		store := openStore(ctx)
		defer store.Close()
		id, err := store.Put(ctx, typ, data)
		if err != nil {
			die(err)
		}
		fmt.Println(id)
	},
}

//nolint:gochecknoinits
func init() {
	hashObjectCmd.Flags().StringVarP(&hashObjectType, "type", "t", "blob", "object type to write")
	rootCmd.AddCommand(hashObjectCmd)
}
