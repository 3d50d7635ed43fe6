package cliconfig

import (
	"errors"
	"fmt"

	"github.com/fuxingloh/ulidkit/pkg/logging"
)

// Validate checks that every value is usable. All problems are reported
// together.
func (c *Config) Validate() error {
	var errs []error

	if c.Count < 1 || c.Count > MaxCount {
		errs = append(errs, fmt.Errorf("count %d is out of range (1-%d)", c.Count, MaxCount))
	}
	if !logging.ValidLevel(c.LogLevel) {
		errs = append(errs, fmt.Errorf("logLevel %q is not one of debug, info, warn, error", c.LogLevel))
	}
	if !logging.ValidFormat(c.LogFormat) {
		errs = append(errs, fmt.Errorf("logFormat %q is not one of text, json", c.LogFormat))
	}

	return errors.Join(errs...)
}
