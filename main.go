package main

import "github.com/netssv/webaudit/cmd"

// execCmd is indirected so tests can verify main wires up the CLI.
var execCmd = cmd.Execute

func main() {
	execCmd()
}
