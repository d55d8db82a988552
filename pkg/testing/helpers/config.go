// ./play.it Wizard
// Copyright (c) 2025 The ./play.it Wizard Contributors.
// SPDX-License-Identifier: GPL-3.0-or-later
//
// This file is part of ./play.it Wizard.
//
// ./play.it Wizard is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// ./play.it Wizard is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with ./play.it Wizard.  If not, see <http://www.gnu.org/licenses/>.

package helpers

import (
	"testing"

	"github.com/dotslashplay/playit-wizard/pkg/config"
	"github.com/stretchr/testify/require"
)

// NewTestConfig creates a config file in a temporary directory from the
// base defaults, adjusted by configure when it is not nil.
func NewTestConfig(t *testing.T, configure func(*config.Values)) *config.Instance {
	t.Helper()

	vals := config.BaseDefaults
	if configure != nil {
		configure(&vals)
	}
	cfg, err := config.NewConfig(t.TempDir(), vals)
	require.NoError(t, err)
	return cfg
}
