package cli

import (
	"io"

	"github.com/gostonefire/hashtable/internal/conf"
	"github.com/op/go-logging"
	"gopkg.in/natefinch/lumberjack.v2"
)

// SetupLogging - Installs the log backends for all modules. Log records go to w and, if logFile is not empty,
// to a rotated log file as well.
//   - level is one of debug, info, notice, warning, error or critical
//   - noColor drops the color codes from the records written to w
func SetupLogging(w io.Writer, level string, logFile string, noColor bool) (err error) {
	lvl, err := logging.LogLevel(level)
	if err != nil {
		return
	}

	format := conf.StdoutLogFormat
	if noColor {
		format = conf.FileLogFormat
	}

	backendStdout := logging.NewLogBackend(w, "", 0)
	backends := []logging.Backend{logging.NewBackendFormatter(backendStdout, logging.MustStringFormatter(format))}

	if logFile != "" {
		lj := &lumberjack.Logger{
			Filename:   logFile,
			MaxSize:    conf.LogFileMaxSize, // megabytes
			MaxBackups: conf.LogFileMaxBackups,
			MaxAge:     conf.LogFileMaxAge, // days
		}
		backendFile := logging.NewLogBackend(lj, "", 0)
		backends = append(backends, logging.NewBackendFormatter(backendFile, logging.MustStringFormatter(conf.FileLogFormat)))
	}

	leveled := logging.SetBackend(backends...)
	leveled.SetLevel(lvl, "")

	return
}
