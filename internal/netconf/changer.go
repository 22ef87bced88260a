// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package netconf

import (
	"context"
	"strings"

	"golang.org/x/sys/unix"

	"github.com/yupi-devv/MacChanger/internal/errors"
	"github.com/yupi-devv/MacChanger/internal/logging"
	"github.com/yupi-devv/MacChanger/internal/macutil"
	"github.com/yupi-devv/MacChanger/internal/validation"
)

// ChangeRequest describes one MAC address change.
type ChangeRequest struct {
	// Interface to operate on. Empty means auto-detect.
	Interface string

	// NewMAC is the address to apply, in any accepted textual form.
	NewMAC string

	// ExpectedCurrent, when set, must match the interface's address before
	// any mutation happens.
	ExpectedCurrent string
}

// ChangeResult reports a completed change.
type ChangeResult struct {
	Interface string
	OldMAC    string
	NewMAC    string
}

// Changer drives the down -> set address -> up sequence against a
// LinkController. It holds no state between calls.
type Changer struct {
	ctrl      LinkController
	log       *logging.Logger
	euid      func() int
	routePath string
}

// NewChanger returns a Changer bound to the given controller.
func NewChanger(ctrl LinkController) *Changer {
	return NewChangerWithDeps(ctrl, unix.Geteuid)
}

// NewChangerWithDeps returns a Changer with an injected privilege probe.
func NewChangerWithDeps(ctrl LinkController, euid func() int) *Changer {
	return &Changer{
		ctrl:      ctrl,
		log:       logging.Default().WithComponent("netconf"),
		euid:      euid,
		routePath: procNetRoute,
	}
}

// List returns all interfaces on the host.
func (c *Changer) List(ctx context.Context) ([]Link, error) {
	return c.ctrl.List(ctx)
}

// Resolve maps an interface argument to a concrete interface name. An empty
// name triggers auto-detection; a non-empty name must exist on the host.
func (c *Changer) Resolve(ctx context.Context, name string) (string, error) {
	if name == "" {
		return c.autodetect(ctx)
	}
	if err := validation.ValidateInterfaceName(name); err != nil {
		return "", err
	}
	links, err := c.ctrl.List(ctx)
	if err != nil {
		return "", err
	}
	var available []string
	for _, link := range links {
		if link.Name == name {
			return name, nil
		}
		available = append(available, link.Name)
	}
	return "", errors.Attr(
		errors.Errorf(errors.KindInterfaceNotFound, "interface %s not found (available: %s)",
			name, strings.Join(available, ", ")),
		"interface", name)
}

// CurrentMAC resolves the target interface and reads its address.
func (c *Changer) CurrentMAC(ctx context.Context, name string) (string, string, error) {
	resolved, err := c.Resolve(ctx, name)
	if err != nil {
		return "", "", err
	}
	mac, err := c.ctrl.HardwareAddr(ctx, resolved)
	if err != nil {
		return "", "", err
	}
	return resolved, mac, nil
}

// Change applies a new MAC address. The interface is brought down, the
// address set, and the interface brought back up. If down or set fails, one
// best-effort up is attempted before the original error is returned, so a
// half-finished change does not strand the interface in the down state.
// No retries: a transient failure (a network manager re-asserting state, a
// busy driver) is surfaced to the caller as-is.
func (c *Changer) Change(ctx context.Context, req ChangeRequest) (*ChangeResult, error) {
	newMAC, err := macutil.Normalize(req.NewMAC)
	if err != nil {
		return nil, err
	}
	if macutil.IsMulticast(newMAC) {
		return nil, errors.Errorf(errors.KindInvalidMAC,
			"%s is a multicast address and cannot be assigned to a device", newMAC)
	}

	if c.euid() != 0 {
		return nil, errors.New(errors.KindPermission,
			"changing a MAC address requires root privileges (try sudo)")
	}

	name, err := c.Resolve(ctx, req.Interface)
	if err != nil {
		return nil, err
	}

	current, err := c.ctrl.HardwareAddr(ctx, name)
	if err != nil {
		return nil, err
	}

	if req.ExpectedCurrent != "" {
		expected, err := macutil.Normalize(req.ExpectedCurrent)
		if err != nil {
			return nil, err
		}
		if expected != current {
			return nil, errors.Attr(errors.Errorf(errors.KindOperationFailed,
				"current address verification failed: expected %s, interface %s reports %s",
				expected, name, current), "interface", name)
		}
	}

	c.log.Info("changing hardware address", "interface", name, "old", current, "new", newMAC)

	c.log.Debug("bringing interface down", "interface", name)
	if err := c.ctrl.SetAdminState(ctx, name, false); err != nil {
		c.restore(ctx, name)
		return nil, errors.Attr(err, "interface", name)
	}

	if err := c.ctrl.SetHardwareAddr(ctx, name, newMAC); err != nil {
		c.restore(ctx, name)
		return nil, errors.Attr(errors.Attr(err, "interface", name), "mac", newMAC)
	}

	c.log.Debug("bringing interface up", "interface", name)
	if err := c.ctrl.SetAdminState(ctx, name, true); err != nil {
		return nil, errors.Attr(err, "interface", name)
	}

	got, err := c.ctrl.HardwareAddr(ctx, name)
	if err != nil {
		return nil, errors.Wrapf(err, errors.KindOperationFailed, "verify new address on %s", name)
	}
	if got != newMAC {
		return nil, errors.Attr(errors.Errorf(errors.KindOperationFailed,
			"address change not applied: requested %s, interface %s reports %s", newMAC, name, got),
			"interface", name)
	}

	c.log.Info("hardware address changed", "interface", name, "mac", got)
	return &ChangeResult{Interface: name, OldMAC: current, NewMAC: got}, nil
}

// restore brings the interface back up after a failed step. Best effort: if
// the underlying cause persists (no privilege, device gone) this fails too,
// and the original error is what the caller sees.
func (c *Changer) restore(ctx context.Context, name string) {
	if err := c.ctrl.SetAdminState(ctx, name, true); err != nil {
		c.log.Warn("failed to restore interface after error", "interface", name, "error", err)
	}
}
