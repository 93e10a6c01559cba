package main

import "github.com/notargets/goburgers/cmd"

func main() {
	cmd.Execute()
}
