// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package macutil

import "strings"

// A small builtin table of well-known 24-bit OUI prefixes, keyed by raw
// uppercase hex. Enough to annotate typical lab and virtualization hardware;
// not a substitute for the full IEEE registry.
var ouiVendors = map[string]string{
	"00000C": "Cisco Systems",
	"000C29": "VMware",
	"005056": "VMware",
	"00163E": "Xensource",
	"001B21": "Intel Corporate",
	"001B63": "Apple",
	"001E58": "D-Link",
	"0023AE": "Dell",
	"00259C": "Cisco-Linksys",
	"086266": "ASUSTek Computer",
	"18C04D": "GIGA-BYTE Technology",
	"3C5AB4": "Google",
	"44650D": "Amazon Technologies",
	"485B39": "ASUSTek Computer",
	"5C514F": "Intel Corporate",
	"74D435": "GIGA-BYTE Technology",
	"B827EB": "Raspberry Pi Foundation",
	"DCA632": "Raspberry Pi Trading",
	"F01FAF": "Dell",
	"F4F5E8": "Google",
}

// LookupVendor returns the manufacturer for a MAC address, or "" when the
// prefix is not in the builtin table. Locally administered addresses report
// "locally administered" since no vendor assigned them.
func LookupVendor(mac string) string {
	raw := strings.ReplaceAll(mac, ":", "")
	raw = strings.ReplaceAll(raw, "-", "")
	raw = strings.ReplaceAll(raw, ".", "")

	if len(raw) < 6 {
		return ""
	}
	raw = strings.ToUpper(raw)

	// Second hex character carries the local bit: 2, 6, A or E.
	switch raw[1] {
	case '2', '6', 'A', 'E':
		return "locally administered"
	}

	if vendor, ok := ouiVendors[raw[:6]]; ok {
		return vendor
	}
	return ""
}
