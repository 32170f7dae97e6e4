package main

import "district-sync/cmd"

func main() {
	cmd.Execute()
}
