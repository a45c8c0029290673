// SPDX-License-Identifier: MIT
//
// Package logging provides severity-gated log functions for the shortpath
// executables and HTTP server. Library packages do not log.
//
// Messages go through the standard log package. When a Config names a log
// file, output is rotated by lumberjack.
package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"sync"
	"time"

	"github.com/natefinch/lumberjack"
)

// ModeFlag is the minimum severity written by the package-level functions.
type ModeFlag uint

const (
	DebugMode ModeFlag = iota
	InfoMode
	WarningMode
	ErrorMode
	CriticalMode
	SilentMode
)

var (
	mu   sync.RWMutex
	mode = InfoMode

	// rotating is non-nil once SetLogger installed a log file.
	rotating *lumberjack.Logger
)

// Config selects where log output goes. An empty Logfile keeps stderr.
type Config struct {
	Logfile string `toml:"logfile"`
	MaxSize int    `toml:"max_log_size"` // megabytes
	MaxAge  int    `toml:"max_log_age"`  // days
}

// SetLogger installs a rotating log file when c names one.
func (c *Config) SetLogger() {
	if c == nil || c.Logfile == "" {
		Infof("Sending log messages to stderr since no log file specified.")
		return
	}
	fmt.Printf("Sending log messages to: %s\n", c.Logfile)
	l := &lumberjack.Logger{
		Filename: c.Logfile,
		MaxSize:  c.MaxSize,
		MaxAge:   c.MaxAge,
	}

	mu.Lock()
	if rotating != nil {
		_ = rotating.Close()
	}
	rotating = l
	mu.Unlock()
	log.SetOutput(l)
}

// SetOutput redirects log output to w, closing any rotating file.
func SetOutput(w io.Writer) {
	mu.Lock()
	if rotating != nil {
		_ = rotating.Close()
		rotating = nil
	}
	mu.Unlock()
	log.SetOutput(w)
}

// SetLogMode sets the severity required for a message to be printed.
// SetLogMode(WarningMode) logs Warningf, Errorf and Criticalf calls;
// SilentMode turns logging off.
func SetLogMode(newMode ModeFlag) {
	mu.Lock()
	mode = newMode
	mu.Unlock()
}

// Mode returns the current severity threshold.
func Mode() ModeFlag {
	mu.RLock()
	defer mu.RUnlock()
	return mode
}

func enabled(level ModeFlag) bool { return Mode() <= level }

// Debugf formats its arguments analogous to fmt.Printf and records the text
// at Debug level.
func Debugf(format string, args ...interface{}) {
	if enabled(DebugMode) {
		log.Printf(" DEBUG "+format, args...)
	}
}

// Infof is like Debugf, but at Info level.
func Infof(format string, args ...interface{}) {
	if enabled(InfoMode) {
		log.Printf(" INFO "+format, args...)
	}
}

// Warningf is like Debugf, but at Warning level.
func Warningf(format string, args ...interface{}) {
	if enabled(WarningMode) {
		log.Printf(" WARNING "+format, args...)
	}
}

// Errorf is like Debugf, but at Error level.
func Errorf(format string, args ...interface{}) {
	if enabled(ErrorMode) {
		log.Printf(" ERROR "+format, args...)
	}
}

// Criticalf is like Debugf, but at Critical level.
func Criticalf(format string, args ...interface{}) {
	if enabled(CriticalMode) {
		log.Printf(" CRITICAL "+format, args...)
	}
}

// Shutdown closes the rotating log file, if any, and restores stderr.
func Shutdown() {
	mu.Lock()
	l := rotating
	rotating = nil
	mu.Unlock()
	if l != nil {
		log.Printf("Closing log file...\n")
		log.SetOutput(os.Stderr)
		_ = l.Close()
	}
}

// TimeLog appends the time elapsed since NewTimeLog to each message.
//
//	tlog := logging.NewTimeLog()
//	...
//	tlog.Infof("path %s→%s computed", from, to)
type TimeLog struct {
	start time.Time
}

// NewTimeLog starts the clock.
func NewTimeLog() TimeLog {
	return TimeLog{start: time.Now()}
}

func (t TimeLog) Debugf(format string, args ...interface{}) {
	Debugf(format+": %s", append(args, time.Since(t.start))...)
}

func (t TimeLog) Infof(format string, args ...interface{}) {
	Infof(format+": %s", append(args, time.Since(t.start))...)
}

func (t TimeLog) Warningf(format string, args ...interface{}) {
	Warningf(format+": %s", append(args, time.Since(t.start))...)
}

func (t TimeLog) Errorf(format string, args ...interface{}) {
	Errorf(format+": %s", append(args, time.Since(t.start))...)
}
