// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package cmd

import (
	"io"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yupi-devv/MacChanger/internal/errors"
)

func newTestCmd(args ...string) *cobra.Command {
	cmd := newRootCmd()
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)
	return cmd
}

func TestMutuallyExclusiveFlags(t *testing.T) {
	cmd := newTestCmd("-n", "aa:bb:cc:dd:ee:ff", "-r")

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, errors.KindExclusiveFlags, errors.GetKind(err))
}

func TestNothingToDo(t *testing.T) {
	cmd := newTestCmd()

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, errors.KindExclusiveFlags, errors.GetKind(err))
}

func TestBackendFromEnvironment(t *testing.T) {
	t.Setenv("MACCHANGER_BACKEND", "ifconfig")
	cmd := newTestCmd("-l")

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown backend")
}
