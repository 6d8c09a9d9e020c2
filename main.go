package main

import "github.com/xll-gen/file2header/cmd"

// main is the entry point of the file2header CLI.
// It executes the root command which parses arguments and runs the conversion.
func main() {
	cmd.Execute()
}
