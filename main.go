package main

import "static-host/cmd"

func main() {
	cmd.Execute()
}
