// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

//go:build !linux
// +build !linux

package netconf

import "github.com/yupi-devv/MacChanger/internal/errors"

// NewNetlinkController is only available on Linux.
func NewNetlinkController() (LinkController, error) {
	return nil, errors.New(errors.KindInternal, "netlink backend is only supported on linux")
}
