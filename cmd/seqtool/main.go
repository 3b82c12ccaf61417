package main

import "github.com/consensys/go-flux/pkg/cmd"

func main() {
	cmd.Execute()
}
