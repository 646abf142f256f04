package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"hwbot/internal/config"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate credentials and the config file without polling",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.LoadDotEnv(envFiles...); err != nil {
			return err
		}
		if _, err := config.CredentialsFromEnv(nil); err != nil {
			return err
		}
		cfg, err := config.NewManager(configPath).Load()
		if err != nil {
			return err
		}
		interval, _ := config.PollInterval(cfg)
		fmt.Fprintf(cmd.OutOrStdout(), "ok: credentials present, poll interval %s\n", interval)
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "hwbot %s (%s)\n", version, commit)
	},
}

func init() {
	addConfigFlags(checkCmd)
	rootCmd.AddCommand(checkCmd, versionCmd)
}
