package matcha

import (
	"log"
	"os"
)

// newTraceLogger builds a *log.Logger writing to the file named by the
// MATCHA_TRACE environment variable, if set. This is the only way to
// get diagnostic output from a running program, since stdout/stderr are
// normally occupied by the alt screen. It returns nil (a no-op logger)
// if the variable isn't set or the file can't be opened.
func newTraceLogger() *log.Logger {
	path, ok := os.LookupEnv("MATCHA_TRACE")
	if !ok || path == "" {
		return nil
	}
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return nil
	}
	return log.New(f, "matcha: ", log.LstdFlags|log.Lshortfile)
}

// logf writes to the program's trace logger, if one is configured. It's
// safe to call on a nil *Program logger field.
func (p *Program) logf(format string, args ...any) {
	if p.logger == nil {
		return
	}
	p.logger.Printf(format, args...)
}
