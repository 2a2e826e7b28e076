package cmdlog

import (
	"happyafrica/internal/logging"
	"happyafrica/internal/metrics"
)

// Run executes f as the named CLI command, counting runs and failures.
func Run(cmd string, f func() error) error {
	metrics.IncCommandRun(cmd)
	err := f()
	if err != nil {
		metrics.IncCommandError(cmd)
		logging.Error(cmd+"_error", map[string]any{"error": err.Error()})
	} else {
		logging.Debug(cmd+"_ok", nil)
	}
	return err
}
