package main

import (
	"csvcel/contracts"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/fatih/color"
	"github.com/gin-gonic/gin"
)

const ExitCodeMainError = 1

const (
	FormatTable = "table"
	FormatJson  = "json"
)

var UnknownFormatError = errors.New("unknown output format")

var GridPathMissingError = errors.New("grid file path is required")

type Options struct {
	GridPath   string
	Format     string
	Serve      bool
	Listen     string
	ConfigPath string
	NoColor    bool
	Debug      bool
}

func ParseArgs(args []string, output io.Writer) (*Options, error) {
	options := &Options{}

	flags := flag.NewFlagSet("csvcel", flag.ContinueOnError)
	flags.SetOutput(output)
	flags.StringVar(&options.Format, "format", FormatTable, "output format: table or json")
	flags.BoolVar(&options.Serve, "serve", false, "run the HTTP API instead of rendering a grid file")
	flags.StringVar(&options.Listen, "listen", "", "listen address for -serve (overrides config)")
	flags.StringVar(&options.ConfigPath, "config", "", "path to an HCL config file")
	flags.BoolVar(&options.NoColor, "no-color", false, "disable colorized output")
	flags.BoolVar(&options.Debug, "debug", false, "debug logging and extra output")

	if err := flags.Parse(args); err != nil {
		return nil, err
	}

	options.GridPath = flags.Arg(0)
	if options.GridPath == "" && !options.Serve {
		flags.Usage()
		return nil, GridPathMissingError
	}

	return options, nil
}

func RunApp(options *Options, outW io.Writer, logW io.Writer) error {
	config, err := LoadConfig(options.ConfigPath)
	if err != nil {
		return err
	}

	if options.Listen != "" {
		config.Server.Listen = options.Listen
	}
	if options.NoColor {
		config.Render.Colors = false
	}
	if options.Debug {
		config.Log.Level = "debug"
	}

	if !config.Render.Colors {
		color.NoColor = true
	}

	if options.Serve {
		return runServer(config, logW)
	}

	return renderGridFile(options, config, outW)
}

func runServer(config *Config, logW io.Writer) error {
	gin.SetMode(gin.ReleaseMode)

	container := BuildServiceContainer(config, logW)

	container.ResultDispatcher.Start()
	defer container.ResultDispatcher.Close()

	container.Logger.Info("listening", "addr", config.Server.Listen)

	return http.ListenAndServe(config.Server.Listen, container.Router)
}

func renderGridFile(options *Options, config *Config, outW io.Writer) error {
	source, err := os.ReadFile(options.GridPath)
	if err != nil {
		return err
	}

	sheet, err := ParseGrid(string(source))
	if err != nil {
		return err
	}

	var renderer contracts.Renderer
	switch options.Format {
	case FormatTable:
		renderer = NewTableRenderer(config.Render.Width)
	case FormatJson:
		renderer = NewJsonRenderer()
	default:
		return fmt.Errorf("`%s`: %w", options.Format, UnknownFormatError)
	}

	// the source table goes out before evaluation, so it still appears when
	// a formula fails mid-pass
	if options.Format == FormatTable || options.Debug {
		if err = renderer.RenderGrid(outW, sheet); err != nil {
			return err
		}
	}

	report, err := NewSheetEvaluator().EvaluateSheet(sheet)
	if err != nil {
		return err
	}

	return renderer.RenderReport(outW, report)
}

func HandleExitError(errStream io.Writer, err error) int {
	if err != nil {
		_, _ = fmt.Fprintln(errStream, err)
	}

	if err != nil {
		return ExitCodeMainError
	}

	return 0
}
