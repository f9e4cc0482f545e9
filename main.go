package main

import "github.com/brainviz/neuroterm/internal/cmd"

func main() {
	cmd.Execute()
}
