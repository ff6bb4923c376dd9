package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"glox/pkg/config"
	"glox/pkg/driver"
	"glox/pkg/interpreter"
	"glox/pkg/report"
)

// Exit codes follow sysexits.h.
const (
	exitUsage    = 64
	exitDataErr  = 65
	exitSoftware = 70
	exitIOErr    = 74
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("glox: ")

	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("glox", flag.ContinueOnError)
	flags.SetOutput(stderr)
	configPath := flags.String("config", "", "path to a "+config.FileName+" settings file")
	rev := flags.String("rev", "", "run the script as committed at this git revision")
	flags.Usage = func() {
		fmt.Fprintln(stderr, "Usage: glox [-config file] [-rev revision] [script]")
		flags.PrintDefaults()
	}

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return exitUsage
	}
	if flags.NArg() > 1 || (*rev != "" && flags.NArg() == 0) {
		flags.Usage()
		return exitUsage
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Print(err)
		return exitUsage
	}

	reporter := report.NewConsole(stderr)
	interp := interpreter.New(interpreter.Options{
		Out:          stdout,
		Reporter:     reporter,
		MaxCallDepth: cfg.MaxCallDepth,
		Globals:      cfg.Globals(),
	})

	if flags.NArg() == 1 {
		return runFile(flags.Arg(0), *rev, interp, reporter)
	}

	if err := runPrompt(cfg, stdin, stdout, interp, reporter); err != nil {
		log.Print(err)
		return exitIOErr
	}
	return 0
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.Load(path)
	}

	cfg, err := config.Find(".")
	if errors.Is(err, config.ErrNotFound) {
		return config.Default(), nil
	}
	return cfg, err
}

func runFile(path, rev string, interp *interpreter.Interpreter, reporter *report.Console) int {
	source, err := driver.ReadSource(path, rev)
	if err != nil {
		log.Print(err)
		return exitIOErr
	}

	if err := driver.Run(source, interp, reporter); err != nil {
		switch {
		case errors.Is(err, driver.ErrStatic):
			return exitDataErr
		case errors.Is(err, driver.ErrRuntime):
			return exitSoftware
		}
		log.Print(err)
		return exitSoftware
	}

	return 0
}

// Errors are reported inside RunLine; the user can just retry.
func runPrompt(cfg *config.Config, stdin io.Reader, stdout io.Writer, interp *interpreter.Interpreter, reporter *report.Console) error {
	reader := bufio.NewReader(stdin)
	for {
		fmt.Fprint(stdout, cfg.Prompt)

		line, err := reader.ReadString('\n')
		if strings.TrimSpace(line) != "" {
			_ = driver.RunLine(line, interp, reporter, stdout, cfg.Echo)
		}

		if errors.Is(err, io.EOF) {
			fmt.Fprintln(stdout)
			return nil
		}
		if err != nil {
			return err
		}
	}
}
