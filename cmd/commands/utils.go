package commands

import (
	"fmt"
	"os"

	"github.com/dezh-tech/immortal/pkg/logger"
)

func ExitOnError(err error) {
	logger.Error("diary error", "err", err.Error())
	os.Exit(1)
}

func HandleHelp(_ []string) {
	fmt.Print(`diary: ownership checked diary entries with image uploads.

usage:
  diary run <config.yml>   start the HTTP server and the analysis consumer
  diary version            print the version
  diary help               print this message
`) //nolint
}
