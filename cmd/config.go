package cmd

import (
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/posturescan/posture-cli/internal/application"
	ratingapp "github.com/posturescan/posture-cli/internal/application/rating"
	"github.com/posturescan/posture-cli/internal/infrastructure/signals"
)

const (
	defaultSignalTimeoutSecs = 10
	defaultConcurrency       = 6
	defaultFetchRateLimit    = 0
)

// ScanConfig consolidates the flag- and config-driven settings for commands
// that fetch signal data.
type ScanConfig struct {
	SignalsURL  string
	TimeoutSecs int
	Concurrency int
	RateLimit   int
	Offline     bool
}

// resolveScanConfig merges command flags with config file values. Flags win
// when set; the config file fills the rest.
func resolveScanConfig(cmd *cobra.Command) ScanConfig {
	cfg := ScanConfig{
		SignalsURL:  viper.GetString("signals_url"),
		TimeoutSecs: defaultSignalTimeoutSecs,
		Concurrency: defaultConcurrency,
		RateLimit:   defaultFetchRateLimit,
	}
	if v := viper.GetInt("signal_timeout"); v > 0 {
		cfg.TimeoutSecs = v
	}
	if v := viper.GetInt("concurrency"); v > 0 {
		cfg.Concurrency = v
	}
	if v := viper.GetInt("rate_limit"); v > 0 {
		cfg.RateLimit = v
	}

	if cmd.Flags().Changed("signals-url") {
		cfg.SignalsURL, _ = cmd.Flags().GetString("signals-url")
	}
	if cmd.Flags().Changed("timeout") {
		cfg.TimeoutSecs, _ = cmd.Flags().GetInt("timeout")
	}
	if cmd.Flags().Changed("concurrency") {
		cfg.Concurrency, _ = cmd.Flags().GetInt("concurrency")
	}
	if cmd.Flags().Changed("rate-limit") {
		cfg.RateLimit, _ = cmd.Flags().GetInt("rate-limit")
	}
	if cmd.Flags().Changed("offline") {
		cfg.Offline, _ = cmd.Flags().GetBool("offline")
	}
	return cfg
}

// addScanFlags registers the signal-fetching flags shared by score and serve.
func addScanFlags(cmd *cobra.Command) {
	bindScanFlags(cmd.Flags())
}

func bindScanFlags(fs *pflag.FlagSet) {
	fs.String("signals-url", "", "base URL of the signal data service")
	fs.Int("timeout", defaultSignalTimeoutSecs, "per-fetch timeout in seconds")
	fs.Int("concurrency", defaultConcurrency, "maximum in-flight signal fetches")
	fs.Int("rate-limit", defaultFetchRateLimit, "signal fetches per second (0 = unlimited)")
	fs.Bool("offline", false, "score from the embedded demo signal bundle instead of a live service")
}

// newProvider selects the signal provider for a scan config.
func newProvider(cfg ScanConfig) (ratingapp.SignalProvider, error) {
	if cfg.Offline || cfg.SignalsURL == "" {
		provider, err := signals.NewStaticProvider()
		if err != nil {
			return nil, err
		}
		return provider, nil
	}
	return signals.NewClient(cfg.SignalsURL, time.Duration(cfg.TimeoutSecs)*time.Second, logger), nil
}

// newContainer builds the application container for the current invocation.
func newContainer(cfg ScanConfig) (*application.Container, error) {
	provider, err := newProvider(cfg)
	if err != nil {
		return nil, err
	}
	return application.NewContainer(application.ContainerConfig{
		DataDir:     dataDir,
		Provider:    provider,
		Logger:      logger,
		Concurrency: cfg.Concurrency,
		RateLimit:   cfg.RateLimit,
	})
}
