package main

import "github.com/arl/go-csg/cmd/csg/cmd"

func main() {
	cmd.Execute()
}
