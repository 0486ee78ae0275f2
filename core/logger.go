/* YaNFD - Yet another NDN Forwarding Daemon
 *
 * Copyright (C) 2020 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package core

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/apex/log"
	"github.com/apex/log/handlers/json"
	"github.com/apex/log/handlers/text"
)

var shouldPrintTraceLogs = false
var logLevel = log.InfoLevel
var logFileObj *os.File

// InitializeLogger initializes the logger. An empty logFile logs to stdout.
// The handler is selected by core.log_format: "text" (default) or "json".
func InitializeLogger(logFile string) error {
	ShutdownLogger()

	var w io.Writer = os.Stdout
	if logFile != "" {
		var err error
		logFileObj, err = os.Create(logFile)
		if err != nil {
			return err
		}
		w = logFileObj
	}

	format := GetConfigStringDefault("core.log_format", "text")
	switch strings.ToLower(format) {
	case "text":
		log.SetHandler(text.New(w))
	case "json":
		log.SetHandler(json.New(w))
	default:
		ShutdownLogger()
		return &ConfigurationError{Key: "core.log_format", Value: format}
	}

	SetLogLevel(GetConfigStringDefault("core.log_level", "INFO"))
	return nil
}

// SetLogLevel sets the level below which messages are discarded.
func SetLogLevel(logLevelString string) {
	var err error
	shouldPrintTraceLogs = false
	logLevel, err = log.ParseLevel(strings.ToLower(logLevelString))
	switch {
	case err == nil:
	case strings.EqualFold(logLevelString, "TRACE"):
		// Apex has no TRACE level: trace messages are DEBUG messages printed only when TRACE is requested
		logLevel = log.DebugLevel
		shouldPrintTraceLogs = true
	default:
		logLevel = log.InfoLevel
	}
	log.SetLevel(logLevel)
}

// ShutdownLogger closes the log file, if any.
func ShutdownLogger() {
	if logFileObj != nil {
		logFileObj.Close()
		logFileObj = nil
	}
}

func logEntry(module interface{}) *log.Entry {
	return log.WithField("module", fmt.Sprint(module))
}

func generateLogMessage(components ...interface{}) string {
	var message strings.Builder
	for _, component := range components {
		switch v := component.(type) {
		case string:
			message.WriteString(v)
		case int:
			message.WriteString(strconv.Itoa(v))
		case int64:
			message.WriteString(strconv.FormatInt(v, 10))
		case uint64:
			message.WriteString(strconv.FormatUint(v, 10))
		case float64:
			message.WriteString(strconv.FormatFloat(v, 'f', 4, 64))
		case bool:
			message.WriteString(strconv.FormatBool(v))
		case error:
			message.WriteString(v.Error())
		case fmt.Stringer:
			message.WriteString(v.String())
		default:
			fmt.Fprintf(&message, "%v", component)
		}
	}
	return message.String()
}

// LogFatal logs a message at the FATAL level and exits.
func LogFatal(module interface{}, components ...interface{}) {
	logEntry(module).Fatal(generateLogMessage(components...))
}

// LogError logs a message at the ERROR level.
func LogError(module interface{}, components ...interface{}) {
	if logLevel <= log.ErrorLevel {
		logEntry(module).Error(generateLogMessage(components...))
	}
}

// LogWarn logs a message at the WARN level.
func LogWarn(module interface{}, components ...interface{}) {
	if logLevel <= log.WarnLevel {
		logEntry(module).Warn(generateLogMessage(components...))
	}
}

// LogInfo logs a message at the INFO level.
func LogInfo(module interface{}, components ...interface{}) {
	if logLevel <= log.InfoLevel {
		logEntry(module).Info(generateLogMessage(components...))
	}
}

// LogDebug logs a message at the DEBUG level.
func LogDebug(module interface{}, components ...interface{}) {
	if logLevel <= log.DebugLevel {
		logEntry(module).Debug(generateLogMessage(components...))
	}
}

// LogTrace logs a message at the TRACE level (really just additional DEBUG messages).
func LogTrace(module interface{}, components ...interface{}) {
	if shouldPrintTraceLogs {
		logEntry(module).Debug(generateLogMessage(components...))
	}
}
