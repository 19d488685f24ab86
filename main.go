package main

import "batchresize/cmd"

func main() {
	cmd.Execute()
}
