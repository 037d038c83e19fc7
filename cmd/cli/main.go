// extcmd - external command line parser and checker
//
// extcmd parses "[time] IDENTIFIER;arguments" lines as written to the
// command pipe of an Icinga or Nagios style monitoring core, classifies the
// identifiers and reports malformed, unknown and denied commands.
package main

import (
	"os"

	"github.com/ccollicutt/extcmd/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
