package main

import "github.com/akempf/spotify-data-tools/cmd"

func main() {
	cmd.Execute()
}
