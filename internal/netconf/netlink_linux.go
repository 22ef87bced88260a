// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

//go:build linux
// +build linux

package netconf

import (
	"context"
	"net"

	"github.com/vishvananda/netlink"

	"github.com/yupi-devv/MacChanger/internal/errors"
	"github.com/yupi-devv/MacChanger/internal/logging"
)

// NetlinkController implements LinkController directly over rtnetlink,
// avoiding the ip(8) subprocess entirely.
type NetlinkController struct {
	log *logging.Logger
}

// NewNetlinkController returns the rtnetlink-backed controller.
func NewNetlinkController() (LinkController, error) {
	return &NetlinkController{
		log: logging.Default().WithComponent("netconf.netlink"),
	}, nil
}

func (c *NetlinkController) List(_ context.Context) ([]Link, error) {
	nlLinks, err := netlink.LinkList()
	if err != nil {
		return nil, errors.Wrap(err, errors.KindOperationFailed, "list interfaces")
	}
	links := make([]Link, 0, len(nlLinks))
	for _, nl := range nlLinks {
		attrs := nl.Attrs()
		links = append(links, Link{
			Name:     attrs.Name,
			MAC:      attrs.HardwareAddr.String(),
			Up:       attrs.Flags&net.FlagUp != 0,
			Loopback: attrs.Flags&net.FlagLoopback != 0,
		})
	}
	return links, nil
}

func (c *NetlinkController) HardwareAddr(_ context.Context, name string) (string, error) {
	link, err := c.linkByName(name)
	if err != nil {
		return "", err
	}
	hw := link.Attrs().HardwareAddr
	if len(hw) == 0 {
		return "", errors.Errorf(errors.KindOperationFailed, "interface %s has no hardware address", name)
	}
	return hw.String(), nil
}

func (c *NetlinkController) SetAdminState(_ context.Context, name string, up bool) error {
	link, err := c.linkByName(name)
	if err != nil {
		return err
	}
	if up {
		c.log.Debug("setting admin state", "interface", name, "state", "up")
		err = netlink.LinkSetUp(link)
	} else {
		c.log.Debug("setting admin state", "interface", name, "state", "down")
		err = netlink.LinkSetDown(link)
	}
	if err != nil {
		return errors.Wrapf(err, errors.KindOperationFailed, "set admin state on %s", name)
	}
	return nil
}

func (c *NetlinkController) SetHardwareAddr(_ context.Context, name string, mac string) error {
	link, err := c.linkByName(name)
	if err != nil {
		return err
	}
	hw, err := net.ParseMAC(mac)
	if err != nil {
		return errors.Wrapf(err, errors.KindInvalidMAC, "parse %s", mac)
	}
	c.log.Debug("setting hardware address", "interface", name, "mac", mac)
	if err := netlink.LinkSetHardwareAddr(link, hw); err != nil {
		return errors.Wrapf(err, errors.KindOperationFailed, "set address on %s", name)
	}
	return nil
}

func (c *NetlinkController) linkByName(name string) (netlink.Link, error) {
	link, err := netlink.LinkByName(name)
	if err != nil {
		return nil, errors.Wrapf(err, errors.KindInterfaceNotFound, "interface %s", name)
	}
	return link, nil
}
