package main

import "github.com/theirongolddev/motolog/cmd"

func main() {
	cmd.Execute()
}
