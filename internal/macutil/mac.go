// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package macutil

import (
	"fmt"
	"math/rand"
	"net"
	"regexp"
	"strings"

	"github.com/yupi-devv/MacChanger/internal/errors"
	"github.com/yupi-devv/MacChanger/internal/validation"
)

// Six groups of two hex digits, colon or hyphen separated. Mixed separators
// are tolerated on input; Normalize settles them.
var macRegex = regexp.MustCompile(`^([0-9A-Fa-f]{2}[:-]){5}[0-9A-Fa-f]{2}$`)

// Normalize validates a MAC address string and returns its canonical form:
// lowercase hex digits, colon separated. It is pure and idempotent.
func Normalize(s string) (string, error) {
	if !macRegex.MatchString(s) {
		return "", errors.Errorf(errors.KindInvalidMAC,
			"invalid MAC address format: %q (expected XX:XX:XX:XX:XX:XX or XX-XX-XX-XX-XX-XX)",
			validation.SanitizeString(s))
	}
	return strings.ToLower(strings.ReplaceAll(s, "-", ":")), nil
}

// FormatMAC renders a 6-octet hardware address in canonical form.
func FormatMAC(mac []byte) string {
	if len(mac) != 6 {
		return ""
	}
	return fmt.Sprintf("%02x:%02x:%02x:%02x:%02x:%02x",
		mac[0], mac[1], mac[2], mac[3], mac[4], mac[5])
}

// Random generates a locally-administered unicast MAC address from r.
// The first octet has the local bit set and the multicast bit cleared, so
// the result never collides with an IEEE-assigned vendor range and is always
// usable as a device address. Output is in canonical form.
func Random(r *rand.Rand) string {
	buf := make([]byte, 6)
	r.Read(buf) //nolint:errcheck // math/rand Read never fails

	// Set local bit, ensure unicast address.
	buf[0] = (buf[0] | 0x02) & 0xfe

	return FormatMAC(buf)
}

// IsLocallyAdministered reports whether the address has the local bit set in
// its first octet.
func IsLocallyAdministered(mac string) bool {
	hw, err := net.ParseMAC(mac)
	return err == nil && len(hw) == 6 && hw[0]&0x02 != 0
}

// IsMulticast reports whether the address has the multicast bit set in its
// first octet. A multicast MAC is not valid as a device's own address.
func IsMulticast(mac string) bool {
	hw, err := net.ParseMAC(mac)
	return err == nil && len(hw) == 6 && hw[0]&0x01 != 0
}
