// Package main provides the tjdelta CLI application.
package main

import "github.com/pitchwise/tjdelta/cmd"

func main() {
	cmd.Execute()
}
