// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

// Package netconf drives network interface configuration through a narrow,
// substitutable collaborator so the rest of the tool stays testable without
// root or a live network stack.
package netconf

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// Link describes one network interface as reported by the host.
type Link struct {
	Name     string
	MAC      string
	Up       bool
	Loopback bool
}

// LinkController is the collaborator interface for host network
// configuration. Implementations: IPController (ip(8) subprocess) and
// NetlinkController (rtnetlink, linux only).
type LinkController interface {
	// List returns all interfaces present on the host.
	List(ctx context.Context) ([]Link, error)

	// HardwareAddr returns the current MAC address of the named interface
	// in canonical form.
	HardwareAddr(ctx context.Context, name string) (string, error)

	// SetAdminState administratively enables or disables the interface.
	SetAdminState(ctx context.Context, name string, up bool) error

	// SetHardwareAddr applies a new MAC address to the interface. Most
	// drivers require the interface to be administratively down.
	SetHardwareAddr(ctx context.Context, name string, mac string) error
}

// CommandExecutor runs an external command and returns its stdout.
type CommandExecutor interface {
	RunCommand(ctx context.Context, name string, arg ...string) (string, error)
}

// RealCommandExecutor executes commands on the host.
type RealCommandExecutor struct{}

func (e *RealCommandExecutor) RunCommand(ctx context.Context, name string, arg ...string) (string, error) {
	cmd := exec.CommandContext(ctx, name, arg...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			return "", fmt.Errorf("%s %s: %w", name, strings.Join(arg, " "), err)
		}
		return "", fmt.Errorf("%s %s: %w: %s", name, strings.Join(arg, " "), err, msg)
	}
	return stdout.String(), nil
}

// DefaultCommandExecutor is the default RealCommandExecutor instance.
var DefaultCommandExecutor CommandExecutor = &RealCommandExecutor{}

// RunCommand runs a command and returns its stdout.
func RunCommand(ctx context.Context, name string, arg ...string) (string, error) {
	return DefaultCommandExecutor.RunCommand(ctx, name, arg...)
}
