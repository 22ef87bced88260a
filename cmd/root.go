// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

// Package cmd wires the CLI surface: flag parsing, backend selection and
// dispatch to the netconf layer.
package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/yupi-devv/MacChanger/internal/logging"
)

type options struct {
	iface           string
	newMAC          string
	random          bool
	showCurrent     bool
	list            bool
	expectedCurrent string
	backend         string
	verbose         bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "macchanger",
		Short: "Change the MAC address of a network interface",
		Long: `macchanger changes the hardware (MAC) address of a network interface by
bringing it down, applying the new address and bringing it back up. It can
set an explicit address, generate a random locally-administered one, list
interfaces, or print the current address of an interface.`,
		Example: `  sudo macchanger -i eth0 -n 00:11:22:33:44:55
  sudo macchanger -i wlan0 -r
  macchanger -c -i eth0
  macchanger -l`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			initLogging(viper.GetBool("verbose"))
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, opts)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.iface, "interface", "i", "", "target interface (default: auto-detect)")
	f.StringVarP(&opts.newMAC, "new-mac", "n", "", "new MAC address, XX:XX:XX:XX:XX:XX or XX-XX-XX-XX-XX-XX")
	f.BoolVarP(&opts.random, "random", "r", false, "generate and set a random locally-administered address")
	f.BoolVarP(&opts.showCurrent, "current", "c", false, "print the current MAC address of the target interface and exit")
	f.BoolVarP(&opts.list, "list", "l", false, "list interfaces and exit")
	f.StringVar(&opts.expectedCurrent, "verify-current", "", "abort unless the interface currently has this address")
	f.StringVar(&opts.backend, "backend", "ip", "network configuration backend (ip or netlink)")
	f.BoolVar(&opts.verbose, "verbose", false, "enable debug logging")

	_ = viper.BindPFlag("backend", f.Lookup("backend"))
	_ = viper.BindPFlag("verbose", f.Lookup("verbose"))

	viper.SetEnvPrefix("MACCHANGER")
	viper.AutomaticEnv()

	return cmd
}

func initLogging(verbose bool) {
	cfg := logging.DefaultConfig()
	if verbose {
		cfg.Level = logging.LevelDebug
	}
	logging.SetDefault(logging.New(cfg))
}

// Execute is the main entry point called from main.go.
func Execute() error {
	return newRootCmd().Execute()
}
