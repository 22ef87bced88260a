// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package macutil

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yupi-devv/MacChanger/internal/errors"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"aa:bb:cc:dd:ee:ff", "aa:bb:cc:dd:ee:ff"},
		{"AA:BB:CC:DD:EE:FF", "aa:bb:cc:dd:ee:ff"},
		{"AA-BB-CC-DD-EE-FF", "aa:bb:cc:dd:ee:ff"},
		{"00-11-22-33-44-55", "00:11:22:33:44:55"},
		{"aA-Bb:cC-dD:Ee-fF", "aa:bb:cc:dd:ee:ff"}, // mixed separators tolerated
		{"52:54:00:12:34:56", "52:54:00:12:34:56"},
	}
	for _, tc := range cases {
		got, err := Normalize(tc.in)
		require.NoError(t, err, "input %q", tc.in)
		assert.Equal(t, tc.want, got)
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{"AA-BB-CC-DD-EE-FF", "00:11:22:33:44:55", "dE:aD:bE:eF:00:01"}
	for _, in := range inputs {
		once, err := Normalize(in)
		require.NoError(t, err)
		twice, err := Normalize(once)
		require.NoError(t, err)
		assert.Equal(t, once, twice)
	}
}

func TestNormalizeRejects(t *testing.T) {
	cases := []string{
		"",
		"00:11:22:33:44",       // 5 groups
		"00:11:22:33:44:55:66", // 7 groups
		"00:11:22:33:44:5",     // short group
		"00:11:22:33:44:555",   // long group
		"00:11:22:33:44:gg",    // non-hex
		"001122334455",         // no separators
		"00.11.22.33.44.55",    // wrong separator
		"aa:bb:cc:dd:ee:ff ",   // trailing space
	}
	for _, in := range cases {
		_, err := Normalize(in)
		require.Error(t, err, "input %q", in)
		assert.Equal(t, errors.KindInvalidMAC, errors.GetKind(err))
	}
}

func TestRandomProperties(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 1000; i++ {
		mac := Random(r)

		normalized, err := Normalize(mac)
		require.NoError(t, err, "generated %q", mac)
		assert.Equal(t, mac, normalized, "generated address should already be canonical")

		assert.True(t, IsLocallyAdministered(mac), "local bit must be set in %q", mac)
		assert.False(t, IsMulticast(mac), "multicast bit must be clear in %q", mac)
	}
}

func TestRandomDeterministic(t *testing.T) {
	a := Random(rand.New(rand.NewSource(42)))
	b := Random(rand.New(rand.NewSource(42)))
	assert.Equal(t, a, b, "same seed must produce same address")
}

func TestFormatMAC(t *testing.T) {
	assert.Equal(t, "02:42:ac:11:00:02", FormatMAC([]byte{0x02, 0x42, 0xac, 0x11, 0x00, 0x02}))
	assert.Equal(t, "", FormatMAC([]byte{0x02, 0x42}))
	assert.Equal(t, "", FormatMAC(nil))
}

func TestBitHelpers(t *testing.T) {
	assert.True(t, IsLocallyAdministered("02:00:00:00:00:01"))
	assert.False(t, IsLocallyAdministered("00:50:56:00:00:01"))
	assert.True(t, IsMulticast("01:00:5e:00:00:01"))
	assert.False(t, IsMulticast("02:00:00:00:00:01"))
	assert.False(t, IsLocallyAdministered("not-a-mac"))
}
