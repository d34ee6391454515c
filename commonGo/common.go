package commonGo

import (
	"fmt"
	"os"

	logger "github.com/multiversx/mx-chain-logger-go"
	"github.com/multiversx/mx-chain-logger-go/file"
)

// AttachFileLogger attaches, if required, a log file
func AttachFileLogger(
	log logger.Logger,
	defaultLogsPath string,
	logFilePrefix string,
	saveLogFile bool,
	workingDir string) (FileLoggingHandler, error) {
	var err error
	var logFile FileLoggingHandler
	if saveLogFile {
		argsFileLogging := file.ArgsFileLogging{
			WorkingDir:      workingDir,
			DefaultLogsPath: defaultLogsPath,
			LogFilePrefix:   logFilePrefix,
		}
		logFile, err = file.NewFileLogging(argsFileLogging)
		if err != nil {
			return nil, fmt.Errorf("%w creating a log file", err)
		}
	}

	err = logger.SetDisplayByteSlice(logger.ToHex)
	log.LogIfError(err)

	return logFile, nil
}

// RedirectLogsToStderr moves the console log output from stdout to stderr, leaving stdout for the sensor result.
// Must be called once, before any other log observer is attached.
func RedirectLogsToStderr() error {
	err := logger.RemoveLogObserver(os.Stdout)
	if err != nil {
		return fmt.Errorf("%w while removing the stdout log observer", err)
	}

	return logger.AddLogObserver(os.Stderr, &logger.ConsoleFormatter{})
}
