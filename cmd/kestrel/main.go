package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/simonhull/firebird-suite/kestrel/internal/commands"
	"github.com/simonhull/firebird-suite/kestrel/output"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	rootCmd := commands.RootCmd()
	rootCmd.AddCommand(commands.GenerateCmd())
	rootCmd.AddCommand(commands.CheckCmd())
	rootCmd.AddCommand(commands.InitCmd())

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		output.Error(err.Error())
		stop()
		os.Exit(1)
	}
}
