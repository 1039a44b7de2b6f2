package main

import "github.com/posturescan/posture-cli/cmd"

// execCmd is indirected for testing.
var execCmd = cmd.Execute

func main() {
	execCmd()
}
