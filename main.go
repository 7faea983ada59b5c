package main

import "github.com/DJBen/MusicTheory/cmd"

func main() {
	cmd.Execute()
}
