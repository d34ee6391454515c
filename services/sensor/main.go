package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/iulianpascalau/rabbitmq-prtg-sensor/commonGo"
	"github.com/iulianpascalau/rabbitmq-prtg-sensor/services/sensor/common"
	"github.com/iulianpascalau/rabbitmq-prtg-sensor/services/sensor/config"
	"github.com/iulianpascalau/rabbitmq-prtg-sensor/services/sensor/factory"
	"github.com/iulianpascalau/rabbitmq-prtg-sensor/services/sensor/output"
	"github.com/iulianpascalau/rabbitmq-prtg-sensor/services/sensor/request"
	"github.com/multiversx/mx-chain-core-go/core/check"
	logger "github.com/multiversx/mx-chain-logger-go"
	"github.com/urfave/cli"
)

const (
	defaultLogsPath      = "logs"
	logFilePrefix        = "sensor"
	logFileLifeSpanInSec = 86400 // 24h
	logFileLifeSpanInMB  = 1024  // 1GB
	numBrokerArguments   = 3
)

// appVersion should be populated at build time using ldflags
// Usage examples:
// Linux/macOS:
//
//	go build -v -ldflags="-X main.appVersion=$(git describe --all | cut -c7-32)
var appVersion = "undefined"
var fileLogging commonGo.FileLoggingHandler

var (
	sensorHelpTemplate = `NAME:
   {{.Name}} - {{.Usage}}
USAGE:
   {{.HelpName}} {{if .VisibleFlags}}[global options]{{end}} {{.ArgsUsage}}
   {{if len .Authors}}
AUTHOR:
   {{range .Authors}}{{ . }}{{end}}
   {{end}}{{if .Commands}}
COMMANDS:
   {{range .Commands}}{{join .Names ", "}}{{ "\t" }}{{.Usage}}
   {{end}}{{end}}{{if .VisibleFlags}}
GLOBAL OPTIONS:
   {{range .VisibleFlags}}{{.}}
   {{end}}{{end}}
VERSION:
   {{.Version}}
`

	log = logger.GetOrCreate("sensor")

	// logLevel defines the logger level
	logLevel = cli.StringFlag{
		Name: "log-level",
		Usage: "This flag specifies the logger `level(s)`. It can contain multiple comma-separated value. For example" +
			", if set to *:INFO the logs for all packages will have the INFO level. However, if set to *:INFO,extractor:DEBUG" +
			" the logs for all packages will have the INFO level, excepting the extractor package which will receive a DEBUG" +
			" log level. Logs are written on stderr.",
		Value: "*:" + logger.LogWarning.String(),
	}
	// logFile is used when the log output needs to be logged in a file
	logSaveFile = cli.BoolFlag{
		Name:  "log-save",
		Usage: "Boolean option for enabling log saving. If set, it will automatically save all the logs into a file.",
	}
	// workingDirectory defines a flag for the path for the working directory.
	workingDirectory = cli.StringFlag{
		Name:  "working-directory",
		Usage: "This flag specifies the `directory` where the sensor will store its logs.",
		Value: "",
	}
	// requestTimeout bounds each management API request. 0 waits indefinitely.
	requestTimeout = cli.UintFlag{
		Name:  "timeout",
		Usage: "The management API request timeout in `seconds`. 0 means no timeout.",
		Value: 0,
	}
	// outputFormat selects how the channels are printed
	outputFormat = cli.StringFlag{
		Name:  "output",
		Usage: "The output `format`: " + config.OutputJSON + " (PRTG envelope) or " + config.OutputTable + ".",
		Value: config.OutputJSON,
	}
	// listenAddress is the address the serve command binds to
	listenAddress = cli.StringFlag{
		Name:  "listen",
		Usage: "The `address` the HTTP server listens on.",
		Value: "127.0.0.1:8090",
	}
)

func main() {
	err := commonGo.RedirectLogsToStderr()
	if err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}

	app := cli.NewApp()
	cli.AppHelpTemplate = sensorHelpTemplate
	app.Name = "RabbitMQ PRTG sensor"
	app.Version = fmt.Sprintf("%s/%s/%s-%s", appVersion, runtime.Version(), runtime.GOOS, runtime.GOARCH)
	app.Usage = "Reads the RabbitMQ management API and prints the PRTG advanced sensor JSON result"
	app.ArgsUsage = "<server:port> <user> <password> <overview|queues> [<vhost>] [<queue>]"
	app.Flags = []cli.Flag{
		logLevel,
		logSaveFile,
		workingDirectory,
		requestTimeout,
		outputFormat,
	}
	app.Authors = []cli.Author{
		{
			Name:  "Iulian Pascalau",
			Email: "iulian.pascalau@gmail.com",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "serve",
			Usage:     "Starts an HTTP server answering PRTG HTTP Data Advanced sensors on /sensor/:type[/:vhost[/:queue]]",
			ArgsUsage: "<server:port> <user> <password>",
			Flags:     []cli.Flag{listenAddress},
			Action:    serve,
		},
	}

	app.Before = initLogging
	app.Action = run

	err = app.Run(os.Args)
	if fileLogging != nil {
		_ = fileLogging.Close()
	}
	if err != nil {
		log.Error(err.Error())
		os.Exit(1)
	}
}

func initLogging(ctx *cli.Context) error {
	err := logger.SetLogLevel(ctx.GlobalString(logLevel.Name))
	if err != nil {
		return err
	}

	fileLogging, err = commonGo.AttachFileLogger(
		log,
		defaultLogsPath,
		logFilePrefix,
		ctx.GlobalBool(logSaveFile.Name),
		ctx.GlobalString(workingDirectory.Name),
	)
	if err != nil {
		return err
	}

	if !check.IfNil(fileLogging) {
		timeLogLifeSpan := time.Second * time.Duration(logFileLifeSpanInSec)
		sizeLogLifeSpanInMB := uint64(logFileLifeSpanInMB)
		err = fileLogging.ChangeFileLifeSpan(timeLogLifeSpan, sizeLogLifeSpanInMB)
		if err != nil {
			return err
		}
	}

	return nil
}

func run(ctx *cli.Context) error {
	descriptor, err := request.NewRequestDescriptor(ctx.Args())
	if err != nil {
		return err
	}

	cfg := config.Config{
		Broker: config.BrokerConfig{
			ServerAndPort: descriptor.ServerAndPort,
			User:          descriptor.User,
			Password:      descriptor.Password,
		},
		RequestTimeoutInSeconds: uint32(ctx.GlobalUint(requestTimeout.Name)),
		OutputFormat:            ctx.GlobalString(outputFormat.Name),
	}
	err = cfg.Validate()
	if err != nil {
		return err
	}

	handler, err := factory.NewComponentsHandler(cfg)
	if err != nil {
		return err
	}
	defer handler.Close()

	log.Debug("starting sensor run", "version", appVersion, "server", descriptor.ServerAndPort, "type", descriptor.Type)

	response, err := handler.GetExtractor().Extract(context.Background(), descriptor)
	if err != nil {
		return err
	}

	return output.Print(os.Stdout, cfg.OutputFormat, response)
}

func serve(ctx *cli.Context) error {
	args := ctx.Args()
	if len(args) < numBrokerArguments {
		return fmt.Errorf("%w: expected %d, got %d", common.ErrMissingArguments, numBrokerArguments, len(args))
	}

	cfg := config.Config{
		Broker: config.BrokerConfig{
			ServerAndPort: args[0],
			User:          args[1],
			Password:      args[2],
		},
		RequestTimeoutInSeconds: uint32(ctx.GlobalUint(requestTimeout.Name)),
		OutputFormat:            config.OutputJSON,
		ListenAddress:           ctx.String(listenAddress.Name),
	}
	err := cfg.Validate()
	if err != nil {
		return err
	}

	handler, err := factory.NewComponentsHandler(cfg)
	if err != nil {
		return err
	}

	log.Info("starting sensor server", "version", appVersion, "pid", os.Getpid(), "broker", cfg.Broker.ServerAndPort)
	handler.Start()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)

	<-sigs

	log.Info("Application closing, calling Close on all subcomponents...")
	handler.Close()

	return nil
}
