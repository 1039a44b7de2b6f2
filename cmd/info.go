package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show configuration and data directory paths",
	Long: `Display posture configuration information including:
  - Data directory location
  - Configuration file path
  - Current user
  - Platform information`,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("posture configuration")
		fmt.Println()

		configPath := viper.ConfigFileUsed()
		if configPath == "" {
			home, _ := os.UserHomeDir()
			configPath = filepath.Join(home, ".posture-cli.yaml") + " (not present)"
		}

		fmt.Printf("  User:         %s\n", currentUser)
		fmt.Printf("  Data dir:     %s\n", dataDir)
		fmt.Printf("  Config file:  %s\n", configPath)
		fmt.Printf("  Scorecards:   %s\n", filepath.Join(dataDir, "scorecards"))
		fmt.Printf("  Submissions:  %s\n", filepath.Join(dataDir, "questionnaires", currentUser))
		fmt.Println()
		fmt.Printf("  Version:      %s\n", Version)
		fmt.Printf("  Platform:     %s/%s (%s)\n", runtime.GOOS, runtime.GOARCH, runtime.Version())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
}
