package main

import "carelink/cmd/server/cmd"

func main() {
	cmd.Execute()
}
