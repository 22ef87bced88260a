// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yupi-devv/MacChanger/internal/errors"
)

func TestValidateInterfaceName(t *testing.T) {
	valid := []string{"eth0", "wlan0", "enp3s0", "br-lan", "vlan.100", "wg_0", "lo"}
	for _, name := range valid {
		assert.NoError(t, ValidateInterfaceName(name), "expected %q to be valid", name)
	}

	invalid := []string{
		"",
		"averyveryverylongname", // > 15 chars
		"eth0; rm -rf /",
		"eth0$(reboot)",
		"eth0|cat",
		"eth 0",
		"eth0\n",
	}
	for _, name := range invalid {
		err := ValidateInterfaceName(name)
		assert.Error(t, err, "expected %q to be rejected", name)
		assert.Equal(t, errors.KindInterfaceNotFound, errors.GetKind(err))
	}
}

func TestValidateBackend(t *testing.T) {
	assert.NoError(t, ValidateBackend("ip"))
	assert.NoError(t, ValidateBackend("netlink"))
	assert.Error(t, ValidateBackend("ifconfig"))
	assert.Error(t, ValidateBackend(""))
}

func TestSanitizeString(t *testing.T) {
	assert.Equal(t, "eth0 rm -rf /", SanitizeString("eth0; rm -rf /"))
	assert.Equal(t, "plain", SanitizeString("plain"))
}
