// Command ifcfgctl validates interface declarations and previews the ifcfg
// files and actions the agent would produce, without touching the host.
//
//	ifcfgctl validate --declarations interfaces.yaml --facts facts.yaml
//	ifcfgctl render eth6.203
//	ifcfgctl plan eth6.203
//	ifcfgctl facts
package main

import (
	"fmt"
	"os"
)

var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
