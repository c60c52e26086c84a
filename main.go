package main

import "content-indexer/cmd"

func main() {
	cmd.Execute()
}
