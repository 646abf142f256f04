package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"hwbot/internal/app"
	"hwbot/internal/config"
	logx "hwbot/pkg/logx"
)

var (
	configPath string
	envFiles   []string
)

func addConfigFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to config file (yaml or json); defaults apply when empty")
	cmd.Flags().StringSliceVar(&envFiles, "env-file", []string{".env"}, "dotenv files loaded before reading credentials")
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Poll the homework API and send notifications",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer cancel()

		a, err := app.New(app.Options{ConfigPath: configPath, EnvFiles: envFiles})
		if err != nil {
			reportFatal(err)
			return err
		}
		return a.Run(ctx)
	},
}

func reportFatal(err error) {
	log := logx.NewConsole("INFO")
	var cerr *config.ConfigError
	if errors.As(err, &cerr) {
		log.Error("required credentials are missing; exiting", logx.Any("missing", cerr.Missing))
		return
	}
	log.Error("startup failed", logx.Err(err))
}

func init() {
	addConfigFlags(runCmd)
	rootCmd.AddCommand(runCmd)
}
