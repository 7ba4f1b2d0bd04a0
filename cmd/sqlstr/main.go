package main

import (
	"os"

	"github.com/mitranim/sqlstr/internal/cli"
	"github.com/mitranim/sqlstr/internal/logging"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		logging.Errorf("%v", err)
		os.Exit(1)
	}
}
