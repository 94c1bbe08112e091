package main

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"time"
)

const (
	logDir      = "logs"
	logFileName = "pipes.log"
	maxLogSize  = 10 * 1024 * 1024
)

// setupLogging routes the standard logger to logs/pipes.log when debug is
// set, rotating an oversized previous log first. Otherwise logs are
// discarded: the terminal is owned by the animation and must not be written to
func setupLogging(debug bool) *os.File {
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	logPath := filepath.Join(logDir, logFileName)
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		rotated := filepath.Join(logDir, "pipes-"+time.Now().Format("20060102-150405")+".log")
		os.Rename(logPath, rotated)
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	return f
}
