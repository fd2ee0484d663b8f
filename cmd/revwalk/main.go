package main

import "github.com/treeverse/revwalk/cmd/revwalk/cmd"

func main() {
	cmd.Execute()
}
