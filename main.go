package main

import "github.com/theirongolddev/snapcalc/cmd"

func main() {
	cmd.Execute()
}
