package main

import "ghvault.dev/ghvault/cmd"

func main() {
	cmd.Execute()
}
