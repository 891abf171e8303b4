package main

import "github.com/tanishapritha/shaft-designer/cmd"

func main() {
	cmd.Execute()
}
