package main

import "github.com/notargets/blazek2d/cmd"

func main() {
	cmd.Execute()
}
