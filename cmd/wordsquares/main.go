// Command wordsquares enumerates every word square of a fixed side
// length over a dictionary file, using a parallel depth-first search.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"wordsquares/internal/config"
	"wordsquares/internal/dictionary"
	"wordsquares/internal/lib/logger/sl"
	"wordsquares/internal/metrics"
	"wordsquares/internal/prefixindex"
	"wordsquares/internal/progress"
	"wordsquares/internal/solutionio"
	"wordsquares/internal/utils/format"
	"wordsquares/internal/workerpool"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// run implements the CLI surface: three positional
// arguments (dictionary path, optional solutions path, optional worker
// count), exit 0 on success, exit 1 on any reported failure. Two
// additional flags are ambient, not part of the core contract: -config
// points at an optional YAML file of defaults, -progress shows a live
// terminal dashboard while the search runs.
func run(args []string) int {
	fs := flag.NewFlagSet("wordsquares", flag.ContinueOnError)
	configPath := fs.String("config", "", "optional path to a YAML file of run defaults")
	showProgress := fs.Bool("progress", false, "show a live terminal dashboard while searching")
	if err := fs.Parse(args); err != nil {
		return 1
	}

	defaults, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "problem loading config: %v\n", err)
		return 1
	}

	log := setupLogger(defaults.Env)

	dictPath, solutionsPath, numWorkers, err := parseArgs(fs.Args(), defaults)
	if err != nil {
		fmt.Fprintf(os.Stderr, "problem parsing arguments: %v\n", err)
		return 1
	}

	words, err := dictionary.Load(dictPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "problem reading dictionary: %v\n", err)
		return 1
	}

	index, err := prefixindex.Build(words)
	if err != nil {
		fmt.Fprintf(os.Stderr, "problem building prefix index: %v\n", err)
		return 1
	}

	run := metrics.NewRun()

	pool, err := workerpool.New(log, numWorkers, words, index, run)
	if err != nil {
		fmt.Fprintf(os.Stderr, "problem starting worker pool: %v\n", err)
		return 1
	}

	var writer *solutionio.Writer
	if solutionsPath != "" {
		writer, err = solutionio.ToFile(solutionsPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "problem opening solutions file: %v\n", err)
			return 1
		}
	} else {
		writer = solutionio.ToStdout()
	}
	defer func() {
		if err := writer.Close(); err != nil {
			log.Error("failed to flush solutions output", "error", sl.Err(err))
		}
	}()

	done := make(chan struct{})
	var dashboard *progress.Dashboard
	if *showProgress {
		dashboard, err = progress.New(log, run, len(words))
		if err != nil {
			log.Error("failed to start progress dashboard", "error", sl.Err(err))
			dashboard = nil
		} else {
			go func() {
				if err := dashboard.Run(done); err != nil {
					log.Error("progress dashboard exited with error", "error", sl.Err(err))
				}
			}()
		}
	}

	start := time.Now()
	for solution := range pool.Solutions {
		if err := writer.Write(solution); err != nil {
			log.Error("failed to write solution", "error", sl.Err(err))
		}
	}
	close(done)
	if dashboard != nil {
		dashboard.Close()
	}

	log.Info("search finished", "elapsed", format.Duration(time.Since(start)))
	run.Log(log)

	return 0
}

// parseArgs resolves the three positional CLI arguments against
// config-file defaults, flag-over-file-over-default priority.
func parseArgs(args []string, defaults *config.Defaults) (dictPath, solutionsPath string, numWorkers int, err error) {
	if len(args) < 1 || len(args) > 3 {
		return "", "", 0, fmt.Errorf("incorrect number of args, accepts 1-3 args: dictionary source file path, solution destination file path, optional number of worker threads")
	}

	dictPath = args[0]

	solutionsPath = defaults.SolutionsDestPath
	if len(args) > 1 && args[1] != "" {
		solutionsPath = args[1]
	}

	numWorkers = defaults.NumWorkers
	if numWorkers <= 0 {
		numWorkers = 1
	}
	if len(args) == 3 {
		n, convErr := strconv.Atoi(args[2])
		if convErr != nil || n <= 0 {
			return "", "", 0, fmt.Errorf("could not parse the number of worker threads argument: %q", args[2])
		}
		numWorkers = n
	}

	return dictPath, solutionsPath, numWorkers, nil
}

func setupLogger(env string) *slog.Logger {
	switch env {
	case envDev:
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envProd:
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	case envLocal:
		fallthrough
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}
