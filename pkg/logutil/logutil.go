// Package logutil provides logging utilities.
//
// Loggers returned by GetLogger write nowhere until SetOutput or
// SetOutputFile is called, so packages can log freely without cluttering the
// output of a program that has not asked for a debug log.
package logutil

import (
	"io"
	"log"
	"os"
	"sync"
)

var (
	mu      sync.Mutex
	out     io.Writer = io.Discard
	current *os.File
	loggers []*log.Logger
)

// GetLogger gets a logger with the given prefix. Its output follows the
// output set with SetOutput or SetOutputFile.
func GetLogger(prefix string) *log.Logger {
	mu.Lock()
	defer mu.Unlock()
	logger := log.New(out, prefix, log.LstdFlags|log.Lshortfile)
	loggers = append(loggers, logger)
	return logger
}

// SetOutput redirects the output of all loggers obtained with GetLogger to
// newOut. A file previously opened by SetOutputFile is closed.
func SetOutput(newOut io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	setOutput(newOut, nil)
}

// SetOutputFile redirects the output of all loggers obtained with GetLogger
// to the named file, which is created if necessary and appended to. An empty
// name discards the output.
func SetOutputFile(fname string) error {
	if fname == "" {
		SetOutput(io.Discard)
		return nil
	}
	file, err := os.OpenFile(fname, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0644)
	if err != nil {
		return err
	}
	mu.Lock()
	defer mu.Unlock()
	setOutput(file, file)
	return nil
}

func setOutput(newOut io.Writer, file *os.File) {
	if current != nil {
		current.Close()
	}
	out, current = newOut, file
	for _, logger := range loggers {
		logger.SetOutput(out)
	}
}
