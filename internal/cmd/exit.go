package cmd

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/yuuyeah/review-and-assessment-powered-by-intelligent-documentation/internal/observability"
)

// ExitWithError logs the failure and exits non-zero. Falls back to stderr
// when the CLI logger has not been initialized yet.
func ExitWithError(msg string, err error) {
	if observability.CLILogger != nil {
		observability.CLILogger.Error(msg, zap.Error(err))
	} else if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: %s: %v\n", msg, err)
	} else {
		fmt.Fprintf(os.Stderr, "FATAL: %s\n", msg)
	}
	os.Exit(1)
}
