package cmd

import (
	"testing"

	"github.com/spf13/cobra"
)

func newScanCommand() *cobra.Command {
	cmd := &cobra.Command{Use: "test", Run: func(cmd *cobra.Command, args []string) {}}
	addScanFlags(cmd)
	return cmd
}

func TestResolveScanConfigDefaults(t *testing.T) {
	cmd := newScanCommand()

	cfg := resolveScanConfig(cmd)
	if cfg.TimeoutSecs != defaultSignalTimeoutSecs {
		t.Errorf("TimeoutSecs = %d, want %d", cfg.TimeoutSecs, defaultSignalTimeoutSecs)
	}
	if cfg.Concurrency != defaultConcurrency {
		t.Errorf("Concurrency = %d, want %d", cfg.Concurrency, defaultConcurrency)
	}
	if cfg.Offline {
		t.Error("Offline should default to false")
	}
}

func TestResolveScanConfigFlagsWin(t *testing.T) {
	cmd := newScanCommand()
	if err := cmd.Flags().Set("signals-url", "http://localhost:9000"); err != nil {
		t.Fatalf("set signals-url: %v", err)
	}
	if err := cmd.Flags().Set("timeout", "3"); err != nil {
		t.Fatalf("set timeout: %v", err)
	}
	if err := cmd.Flags().Set("offline", "true"); err != nil {
		t.Fatalf("set offline: %v", err)
	}

	cfg := resolveScanConfig(cmd)
	if cfg.SignalsURL != "http://localhost:9000" {
		t.Errorf("SignalsURL = %q", cfg.SignalsURL)
	}
	if cfg.TimeoutSecs != 3 {
		t.Errorf("TimeoutSecs = %d, want 3", cfg.TimeoutSecs)
	}
	if !cfg.Offline {
		t.Error("Offline flag not honored")
	}
}

func TestNewProviderSelectsStaticWhenOffline(t *testing.T) {
	provider, err := newProvider(ScanConfig{Offline: true})
	if err != nil {
		t.Fatalf("newProvider: %v", err)
	}
	if provider == nil {
		t.Fatal("expected a provider")
	}
}

func TestNewProviderSelectsStaticWithoutURL(t *testing.T) {
	provider, err := newProvider(ScanConfig{})
	if err != nil {
		t.Fatalf("newProvider: %v", err)
	}
	if provider == nil {
		t.Fatal("expected the embedded provider when no URL is configured")
	}
}
