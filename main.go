package main

import "VDOStats/cmd"

func main() {
	cmd.Execute()
}
