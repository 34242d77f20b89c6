// main is the entry point for the examtwin CLI.
package main

import (
	"github.com/huangsam/examtwin/cmd"
	"github.com/huangsam/examtwin/internal/contract"
)

func main() {
	defer func() {
		if err := cmd.StopProfiling(); err != nil {
			contract.LogWarn("Cannot stop profiling", err)
		}
	}()
	if err := cmd.Execute(); err != nil {
		_ = cmd.StopProfiling()
		contract.LogFatal("Cannot run examtwin", err)
	}
}
