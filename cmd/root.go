package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	httpcmd "github.com/Tushar123097/hospital-backend/cmd/http"
	systemcmd "github.com/Tushar123097/hospital-backend/cmd/system"
)

var (
	cfgFile string
)

var rootCmd = &cobra.Command{
	Use:   "hospital",
	Short: "Hospital appointment booking backend.",
	Long: `Hospital is the booking backend for a clinic: patients pick a doctor and a
day, receive a queue token and a 15-minute slot, and doctors work the day's
queue through confirm, complete and cancel.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global config flag, available for all commands.
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file path")

	// Attach top-level command trees.
	rootCmd.AddCommand(systemcmd.NewSystemCommand())
	rootCmd.AddCommand(httpcmd.NewHTTPCommand())
}
