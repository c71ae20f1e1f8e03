package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/shanehull/defbrief/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create default configuration file",
	RunE:  runConfigInit,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Display current configuration",
	RunE:  runConfigShow,
}

func init() {
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	if _, err := os.Stat(configPath); err == nil {
		fmt.Printf("Config file already exists at %s\n", configPath)
		fmt.Println("Use 'defbrief config show' to view current configuration")
		return nil
	}

	if err := config.WriteDefault(configPath); err != nil {
		return err
	}

	fmt.Printf("Created config file at %s\n", configPath)
	fmt.Println()
	fmt.Println("Next steps:")
	fmt.Println("  1. Set GEMINI_API_KEY for the relevance analyzer")
	fmt.Println("  2. Set SAM_GOV_API_KEY to include contract opportunities (optional)")
	fmt.Println("  3. Set SMTP_PASSWORD and fill in the [email] section to receive the digest (optional)")
	fmt.Println("  4. Run 'defbrief run' to produce your first brief")

	return nil
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			fmt.Println("No config file found. Run 'defbrief config init' to create one.")
			return nil
		}
		return fmt.Errorf("failed to read config: %w", err)
	}

	fmt.Printf("# Config file: %s\n\n", configPath)
	fmt.Println(string(data))
	return nil
}
