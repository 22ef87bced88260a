// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package netconf

import (
	"bufio"
	"context"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/sys/unix"

	"github.com/yupi-devv/MacChanger/internal/errors"
)

const procNetRoute = "/proc/net/route"

// autodetect picks the target interface when none was given. The interface
// carrying the default route wins; without one, a single active non-loopback
// interface is accepted. Anything else is an explicit failure rather than a
// guess.
func (c *Changer) autodetect(ctx context.Context) (string, error) {
	if name, err := defaultRouteInterface(c.routePath); err == nil {
		c.log.Debug("auto-detected default route interface", "interface", name)
		return name, nil
	}

	links, err := c.ctrl.List(ctx)
	if err != nil {
		return "", errors.Wrap(err, errors.KindAutoDetection, "auto-detect interface")
	}

	var candidates []string
	for _, link := range links {
		if link.Up && !link.Loopback {
			candidates = append(candidates, link.Name)
		}
	}

	switch len(candidates) {
	case 1:
		c.log.Debug("auto-detected sole active interface", "interface", candidates[0])
		return candidates[0], nil
	case 0:
		return "", errors.New(errors.KindAutoDetection,
			"no active interface found; specify one with -i")
	default:
		return "", errors.Errorf(errors.KindAutoDetection,
			"multiple active interfaces (%s); specify one with -i", strings.Join(candidates, ", "))
	}
}

// defaultRouteInterface reads the kernel routing table and returns the
// interface holding the default gateway route.
func defaultRouteInterface(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", errors.Wrap(err, errors.KindAutoDetection, "read routing table")
	}
	defer f.Close()
	return parseDefaultRoute(f)
}

// parseDefaultRoute scans /proc/net/route content for an entry with a zero
// destination and the gateway flag set.
func parseDefaultRoute(r io.Reader) (string, error) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 4 || fields[1] != "00000000" {
			continue
		}
		flags, err := strconv.ParseUint(fields[3], 16, 64)
		if err != nil {
			continue
		}
		if flags&unix.RTF_GATEWAY != 0 {
			return fields[0], nil
		}
	}
	if err := scanner.Err(); err != nil {
		return "", errors.Wrap(err, errors.KindAutoDetection, "scan routing table")
	}
	return "", errors.New(errors.KindAutoDetection, "no default route found")
}
