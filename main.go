package main

import "github.com/robertgumeny/wadrun/cmd"

func main() {
	cmd.Execute()
}
