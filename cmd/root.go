package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var cfgFile string
var logger *zap.SugaredLogger
var currentUser string
var dataDir string

var rootCmd = &cobra.Command{
	Use:   "posture",
	Short: "Security posture scoring for tracked domains",
	Long: `posture rates a domain's external security posture from signal data
(TLS, DNS, open ports, threat feeds, ...) and scores self-assessment
questionnaires into compliance percentages and recommendations.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// init config
		if cfgFile != "" {
			viper.SetConfigFile(cfgFile)
		} else {
			viper.AddConfigPath("$HOME")
			viper.SetConfigName(".posture-cli")
			viper.SetConfigType("yaml")
		}

		_ = viper.ReadInConfig()
		if dataDir == "" {
			dataDir = viper.GetString("data_dir")
		}
		if dataDir == "" {
			dataDir = "./posture-data"
		}

		if err := os.MkdirAll(dataDir, 0o755); err != nil {
			return fmt.Errorf("failed to create data directory: %s", err.Error())
		}

		// init logger
		l, _ := zap.NewProduction()
		logger = l.Sugar()

		// ensure user identity is set (via flag, config, or env)
		if currentUser == "" {
			currentUser = viper.GetString("user")
		}
		if currentUser == "" {
			if env := os.Getenv("USER"); env != "" {
				currentUser = env
			} else if env := os.Getenv("LOGNAME"); env != "" {
				currentUser = env
			}
		}
		if currentUser == "" {
			return fmt.Errorf("user identity is required (use --user or set USER env)")
		}

		// Make final dataDir absolute (for clarity in logs)
		if abs, err := filepath.Abs(dataDir); err == nil {
			dataDir = abs
		}

		logger.Infof("user=%s data_dir=%s", currentUser, dataDir)

		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.posture-cli.yaml)")

	defaultUser := os.Getenv("USER")
	rootCmd.PersistentFlags().StringVarP(&currentUser, "user", "u", defaultUser, "user name (or set via USER env)")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "directory for stored scorecards and questionnaires")

	rootCmd.AddCommand(scoreCmd)
	rootCmd.AddCommand(scorecardCmd)
	rootCmd.AddCommand(questionnaireCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(versionCmd)
}
