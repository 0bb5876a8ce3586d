// Command picsort is the CLI entrypoint for the photo organizer.
//
// It delegates to the cli package, which wires the import and organize
// subcommands, configuration loading, and signal handling.
package main

import "github.com/backmassage/picsort/internal/cli"

func main() {
	cli.Execute()
}
