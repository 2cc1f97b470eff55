package main

import "github.com/cmmoran/modelspec/cmd"

var version = "dev"

func main() {
	cmd.SetVersion(version)
	cmd.Execute()
}
