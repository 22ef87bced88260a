// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package main

import (
	"os"

	"github.com/yupi-devv/MacChanger/cmd"
	"github.com/yupi-devv/MacChanger/internal/errors"
	"github.com/yupi-devv/MacChanger/internal/logging"
)

func main() {
	if err := cmd.Execute(); err != nil {
		keyvals := []any{"kind", errors.GetKind(err).String()}
		for k, v := range errors.GetAttributes(err) {
			keyvals = append(keyvals, k, v)
		}
		logging.Error(err.Error(), keyvals...)
		os.Exit(1)
	}
}
