// Command hwbot watches the review status of a Practicum homework and
// reports changes to a Telegram chat.
//
// Usage:
//
//	hwbot run [-c hwbot.yaml]    # poll and notify
//	hwbot check [-c hwbot.yaml]  # validate credentials and config
//	hwbot version
package main

import (
	"os"

	"github.com/spf13/cobra"
)

// Set at build time via -ldflags "-X main.version=...".
var (
	version = "dev"
	commit  = "none"
)

var rootCmd = &cobra.Command{
	Use:   "hwbot",
	Short: "Telegram notifier for Practicum homework review statuses",
	Long: `hwbot polls the Practicum homework statuses API every 10 minutes and
sends a Telegram message whenever the review status changes.

Credentials are read from the environment (or a .env file):
  TOKEN_YANDEX  Practicum API OAuth token
  TOKEN         Telegram bot token
  CHAT_ID       Telegram chat to notify`,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
