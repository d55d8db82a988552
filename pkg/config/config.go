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

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dotslashplay/playit-wizard/pkg/helpers/syncutil"
	"github.com/go-playground/validator/v10"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog/log"
)

const (
	SchemaVersion = 1
	CfgEnv        = "PLAYIT_CFG"
)

type Values struct {
	Catalog      Catalog `toml:"catalog"`
	Install      Install `toml:"install"`
	ConfigSchema int     `toml:"config_schema"`
	DebugLogging bool    `toml:"debug_logging"`
}

// Catalog holds the remote endpoints of the game catalog.
type Catalog struct {
	APIURL    string `toml:"api_url" validate:"required,http_url"`
	ImagesURL string `toml:"images_url" validate:"required,http_url"`
	WikiURL   string `toml:"wiki_url" validate:"required,http_url"`
	Language  string `toml:"language,omitempty" validate:"omitempty,alpha,max=8"`
}

// Install holds the defaults of the installation panel.
type Install struct {
	Folder string `toml:"folder,omitempty"`
	Script string `toml:"script" validate:"required"`
}

var BaseDefaults = Values{
	ConfigSchema: SchemaVersion,
	Catalog: Catalog{
		APIURL:    "http://api.dotslashplay.it/",
		ImagesURL: "https://img.dotslashplay.it/",
		WikiURL:   "https://wiki.dotslashplay.it/",
	},
	Install: Install{
		Script: "play.it",
	},
}

var validate = validator.New(validator.WithRequiredStructEnabled())

type Instance struct {
	cfgPath  string
	vals     Values
	defaults Values
	mu       syncutil.RWMutex
}

//nolint:gocritic // config struct copied for immutability
func NewConfig(configDir string, defaults Values) (*Instance, error) {
	cfgPath := os.Getenv(CfgEnv)
	log.Debug().Msgf("env config path: %s", cfgPath)

	if cfgPath == "" {
		cfgPath = filepath.Join(configDir, CfgFile)
	}

	cfg := Instance{
		cfgPath:  cfgPath,
		vals:     defaults,
		defaults: defaults,
	}

	if _, err := os.Stat(cfgPath); os.IsNotExist(err) {
		log.Info().Msg("saving new default config to disk")

		err := os.MkdirAll(filepath.Dir(cfgPath), 0o750)
		if err != nil {
			return nil, fmt.Errorf("failed to create config directory: %w", err)
		}

		err = cfg.Save()
		if err != nil {
			return nil, err
		}
	}

	err := cfg.Load()
	if err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the catalog endpoints and install settings.
//
//nolint:gocritic // values are checked by copy
func Validate(vals Values) error {
	if err := validate.Struct(vals); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

func (c *Instance) Load() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cfgPath == "" {
		return errors.New("config path not set")
	}

	data, err := os.ReadFile(c.cfgPath)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	// Fields missing from the file keep their default values.
	newVals := c.defaults
	err = toml.Unmarshal(data, &newVals)
	if err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if newVals.ConfigSchema != SchemaVersion {
		log.Error().Msgf(
			"schema version mismatch: got %d, expecting %d",
			newVals.ConfigSchema,
			SchemaVersion,
		)
		return errors.New("schema version mismatch")
	}

	if err := Validate(newVals); err != nil {
		return err
	}

	c.vals = newVals
	return nil
}

func (c *Instance) Save() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cfgPath == "" {
		return errors.New("config path not set")
	}

	c.vals.ConfigSchema = SchemaVersion

	data, err := toml.Marshal(&c.vals)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	err = os.WriteFile(c.cfgPath, data, 0o600)
	if err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

func (c *Instance) DebugLogging() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.DebugLogging
}

func (c *Instance) SetDebugLogging(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.vals.DebugLogging = enabled
}

// APIURL returns the catalog API root, always ending with a slash.
func (c *Instance) APIURL() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return withTrailingSlash(c.vals.Catalog.APIURL)
}

// ImagesURL returns the thumbnail host root, always ending with a slash.
func (c *Instance) ImagesURL() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return withTrailingSlash(c.vals.Catalog.ImagesURL)
}

// WikiURL returns the wiki root, always ending with a slash.
func (c *Instance) WikiURL() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return withTrailingSlash(c.vals.Catalog.WikiURL)
}

// Language returns the configured wiki language, empty to detect it from
// the locale.
func (c *Instance) Language() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.Catalog.Language
}

// InstallFolder returns the folder archives are looked up and downloaded
// into. It falls back to the working directory when unset.
func (c *Instance) InstallFolder() string {
	c.mu.RLock()
	folder := c.vals.Install.Folder
	c.mu.RUnlock()

	if folder != "" {
		return folder
	}
	wd, err := os.Getwd()
	if err != nil {
		log.Warn().Err(err).Msg("error getting working directory")
		return "."
	}
	return wd
}

func (c *Instance) SetInstallFolder(folder string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.vals.Install.Folder = folder
}

// SetupScript returns the installation script run on the selected archive.
func (c *Instance) SetupScript() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.Install.Script
}

func withTrailingSlash(s string) string {
	if s == "" || strings.HasSuffix(s, "/") {
		return s
	}
	return s + "/"
}
