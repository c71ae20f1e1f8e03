/*
Package cli implements the defbrief command line interface.
*/
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var (
	// Version info set from main
	version = "dev"
	commit  = "unknown"

	// Global flags
	configPath string
)

// SetVersionInfo sets version information from build flags.
func SetVersionInfo(v, c string) {
	version = v
	commit = c
}

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "defbrief",
	Short: "A daily defense tech news and contract digest",
	Long: `defbrief scans defense industry RSS feeds and SAM.gov contract
opportunities, scores each item for relevance with a keyword tier table
and a Gemini analyst pass, and delivers the high-relevance hits as an
email digest.

Every run writes a JSON log of everything scored, hits and misses alike.`,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "",
		"config file (default: ~/.config/defbrief/config.toml)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(configCmd)
}

func initConfig() {
	if configPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error finding home directory: %v\n", err)
			os.Exit(1)
		}
		configPath = filepath.Join(home, ".config", "defbrief", "config.toml")
	}
}

// versionCmd shows version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("defbrief %s\n", version)
		fmt.Printf("  commit: %s\n", commit)
	},
}
