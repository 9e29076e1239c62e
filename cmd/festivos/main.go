// Command festivos prints Colombian public holidays.
//
// Usage:
//
//	festivos year 2010 [--chronological] [--json]
//	festivos date 2010-01-11
//	festivos easter 2010
//	festivos business next 2010-01-08
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
