// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package validation

import (
	"regexp"
	"strings"

	"github.com/yupi-devv/MacChanger/internal/errors"
)

// Interface name validation
var (
	// Valid interface name: alphanumeric, dash, underscore, dot (for VLANs), max 15 chars
	interfaceNameRegex = regexp.MustCompile(`^[a-zA-Z0-9_.-]{1,15}$`)

	// Dangerous characters that should never appear in values handed to an external argv
	dangerousChars = []string{";", "|", "&", "$", "`", "(", ")", "<", ">", "\\", "\"", "'", "\n", "\r"}
)

// ValidateInterfaceName validates a network interface name. Names are passed
// verbatim to ip(8), so anything shell-suspicious is rejected up front.
func ValidateInterfaceName(name string) error {
	if name == "" {
		return errors.New(errors.KindInterfaceNotFound, "interface name cannot be empty")
	}

	if len(name) > 15 {
		return errors.Errorf(errors.KindInterfaceNotFound, "interface name too long (max 15 characters): %s", name)
	}

	if !interfaceNameRegex.MatchString(name) {
		return errors.Errorf(errors.KindInterfaceNotFound, "invalid interface name: %s (must be alphanumeric with -_.)", name)
	}

	for _, char := range dangerousChars {
		if strings.Contains(name, char) {
			return errors.Errorf(errors.KindInterfaceNotFound, "interface name contains dangerous character: %s", char)
		}
	}

	return nil
}

// ValidateBackend checks a collaborator backend selector.
func ValidateBackend(backend string) error {
	switch backend {
	case "ip", "netlink":
		return nil
	}
	return errors.Errorf(errors.KindInternal, "unknown backend: %s (must be ip or netlink)", backend)
}

// SanitizeString removes dangerous characters from a string (for display purposes)
func SanitizeString(s string) string {
	for _, char := range dangerousChars {
		s = strings.ReplaceAll(s, char, "")
	}
	return s
}
