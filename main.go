package main

import "github.com/mpapenbr/lapcompare/cmd"

func main() {
	cmd.Execute()
}
