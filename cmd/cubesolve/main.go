// Command cubesolve is the entry point for the Rubik's cube IDA* solver CLI.
package main

import "github.com/HeathKnowles/rubik-ca/internal/cli"

func main() {
	cli.Execute()
}
