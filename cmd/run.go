// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package cmd

import (
	"context"
	"fmt"
	"math/rand"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/yupi-devv/MacChanger/internal/errors"
	"github.com/yupi-devv/MacChanger/internal/logging"
	"github.com/yupi-devv/MacChanger/internal/macutil"
	"github.com/yupi-devv/MacChanger/internal/netconf"
	"github.com/yupi-devv/MacChanger/internal/validation"
)

func run(cmd *cobra.Command, opts *options) error {
	if opts.newMAC != "" && opts.random {
		return errors.New(errors.KindExclusiveFlags,
			"-n/--new-mac and -r/--random are mutually exclusive")
	}

	ctrl, err := newController()
	if err != nil {
		return err
	}
	changer := netconf.NewChanger(ctrl)
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	switch {
	case opts.list:
		return runList(ctx, cmd, changer)
	case opts.showCurrent:
		return runCurrent(ctx, cmd, changer, opts.iface)
	}

	newMAC := opts.newMAC
	if opts.random {
		newMAC = macutil.Random(rand.New(rand.NewSource(time.Now().UnixNano())))
		logging.Info("generated random MAC address", "mac", newMAC)
	}
	if newMAC == "" {
		_ = cmd.Usage()
		return errors.New(errors.KindExclusiveFlags,
			"nothing to do: specify -n or -r to change an address, -c or -l to inspect")
	}

	res, err := changer.Change(ctx, netconf.ChangeRequest{
		Interface:       opts.iface,
		NewMAC:          newMAC,
		ExpectedCurrent: opts.expectedCurrent,
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s: %s -> %s\n", res.Interface, res.OldMAC, res.NewMAC)
	return nil
}

func newController() (netconf.LinkController, error) {
	backend := viper.GetString("backend")
	if err := validation.ValidateBackend(backend); err != nil {
		return nil, err
	}
	if backend == "netlink" {
		return netconf.NewNetlinkController()
	}
	return netconf.NewIPController(), nil
}

func runList(ctx context.Context, cmd *cobra.Command, changer *netconf.Changer) error {
	links, err := changer.List(ctx)
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "NAME\tMAC\tSTATE\tVENDOR")
	for _, link := range links {
		state := "down"
		if link.Up {
			state = "up"
		}
		mac := link.MAC
		if mac == "" {
			mac = "-"
		}
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", link.Name, mac, state, macutil.LookupVendor(link.MAC))
	}
	return w.Flush()
}

func runCurrent(ctx context.Context, cmd *cobra.Command, changer *netconf.Changer, iface string) error {
	name, mac, err := changer.CurrentMAC(ctx, iface)
	if err != nil {
		return err
	}
	if vendor := macutil.LookupVendor(mac); vendor != "" {
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s (%s)\n", name, mac, vendor)
		return nil
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", name, mac)
	return nil
}
