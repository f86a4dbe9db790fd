// Command hwystat computes NaN-aware statistics and transcendental
// transforms over numeric series read from files or stdin.
package main

import (
	"fmt"
	"os"

	"github.com/ajroetker/hwystat/cmd/hwystat/commands"
	"github.com/ajroetker/hwystat/internal/logging"
)

func main() {
	err := commands.Execute()
	if err != nil {
		logging.Errorf("%v", err)
	}
	if cerr := logging.Close(); cerr != nil {
		fmt.Fprintf(os.Stderr, "closing log file: %v\n", cerr)
	}
	if err != nil {
		os.Exit(1)
	}
}
