package main

import (
	"flag"
	"fmt"
	"os"

	_ "github.com/joho/godotenv/autoload"

	"github.com/avelko/todoclip/internal/cli"
	"github.com/avelko/todoclip/internal/clipboard"
	"github.com/avelko/todoclip/internal/config"
	"github.com/avelko/todoclip/internal/logging"
	"github.com/avelko/todoclip/internal/store/jsonstore"
	"github.com/avelko/todoclip/internal/ui"
)

func main() {
	// Root flags (apply to every subcommand)
	plain := flag.Bool("plain", false, "print the list instead of opening the TUI")
	group := flag.Bool("group", false, "group plain output by pending/done")
	flag.Parse()

	cfg, err := config.Read()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}
	if err := logging.Init(cfg.DebugLog); err != nil {
		fmt.Fprintln(os.Stderr, "logging:", err)
		os.Exit(1)
	}

	theme := cfg.Theme
	if cfg.ColorDisabled() {
		theme = "mono"
	}
	ui.SetTheme(theme)

	logging.L().Debug().
		Str("data_file", cfg.DataFile).
		Str("theme", theme).
		Msg("starting")

	// Hand the remaining args to the CLI runner.
	args := flag.Args()
	runner := cli.New(jsonstore.New(cfg.DataFile), clipboard.System{})
	if len(args) == 0 {
		runner.Run([]string{"help"}, cli.Options{})
		os.Exit(2)
	}

	code := runner.Run(args, cli.Options{
		Plain: *plain,
		Group: *group,
	})
	os.Exit(code)
}
