// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package netconf

import (
	"context"
	"regexp"
	"strings"

	"github.com/yupi-devv/MacChanger/internal/errors"
	"github.com/yupi-devv/MacChanger/internal/logging"
	"github.com/yupi-devv/MacChanger/internal/macutil"
	"github.com/yupi-devv/MacChanger/internal/validation"
)

var (
	// "2: eth0: <BROADCAST,MULTICAST,UP,LOWER_UP> ..." — the @parent suffix
	// on VLAN/bond members is stripped, matching what ip(8) itself accepts.
	linkLineRegex = regexp.MustCompile(`^\d+:\s+([^:@\s]+)(?:@\S+)?:\s+<([^>]*)>`)
	hwAddrRegex   = regexp.MustCompile(`link/(ether|loopback)\s+([0-9A-Fa-f:]+)`)
)

// IPController implements LinkController by shelling out to ip(8).
type IPController struct {
	exec CommandExecutor
	log  *logging.Logger
}

// NewIPController returns a controller backed by the host ip binary.
func NewIPController() *IPController {
	return NewIPControllerWithExecutor(DefaultCommandExecutor)
}

// NewIPControllerWithExecutor returns a controller with an injected executor.
func NewIPControllerWithExecutor(exec CommandExecutor) *IPController {
	return &IPController{
		exec: exec,
		log:  logging.Default().WithComponent("netconf.ip"),
	}
}

func (c *IPController) List(ctx context.Context) ([]Link, error) {
	out, err := c.exec.RunCommand(ctx, "ip", "-o", "link", "show")
	if err != nil {
		return nil, errors.Wrap(err, errors.KindOperationFailed, "list interfaces")
	}
	return parseLinkShow(out), nil
}

func (c *IPController) HardwareAddr(ctx context.Context, name string) (string, error) {
	if err := validation.ValidateInterfaceName(name); err != nil {
		return "", err
	}
	out, err := c.exec.RunCommand(ctx, "ip", "-o", "link", "show", "dev", name)
	if err != nil {
		return "", errors.Wrapf(err, errors.KindInterfaceNotFound, "interface %s", name)
	}
	m := hwAddrRegex.FindStringSubmatch(out)
	if m == nil {
		return "", errors.Errorf(errors.KindOperationFailed, "interface %s has no hardware address", name)
	}
	return strings.ToLower(m[2]), nil
}

func (c *IPController) SetAdminState(ctx context.Context, name string, up bool) error {
	if err := validation.ValidateInterfaceName(name); err != nil {
		return err
	}
	state := "down"
	if up {
		state = "up"
	}
	c.log.Debug("setting admin state", "interface", name, "state", state)
	_, err := c.exec.RunCommand(ctx, "ip", "link", "set", "dev", name, state)
	if err != nil {
		return errors.Wrapf(err, errors.KindOperationFailed, "bring %s %s", name, state)
	}
	return nil
}

func (c *IPController) SetHardwareAddr(ctx context.Context, name string, mac string) error {
	if err := validation.ValidateInterfaceName(name); err != nil {
		return err
	}
	normalized, err := macutil.Normalize(mac)
	if err != nil {
		return err
	}
	c.log.Debug("setting hardware address", "interface", name, "mac", normalized)
	_, err = c.exec.RunCommand(ctx, "ip", "link", "set", "dev", name, "address", normalized)
	if err != nil {
		return errors.Wrapf(err, errors.KindOperationFailed, "set address on %s", name)
	}
	return nil
}

// parseLinkShow extracts Link entries from `ip -o link show` output.
func parseLinkShow(out string) []Link {
	var links []Link
	for _, line := range strings.Split(out, "\n") {
		m := linkLineRegex.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		link := Link{Name: m[1]}
		for _, flag := range strings.Split(m[2], ",") {
			switch flag {
			case "UP":
				link.Up = true
			case "LOOPBACK":
				link.Loopback = true
			}
		}
		if hw := hwAddrRegex.FindStringSubmatch(line); hw != nil {
			link.MAC = strings.ToLower(hw[2])
		}
		links = append(links, link)
	}
	return links
}
