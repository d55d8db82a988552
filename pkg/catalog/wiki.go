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

package catalog

import (
	"os"
	"strings"

	"golang.org/x/text/language"
)

const defaultLanguage = "en"

// DetectLanguage returns the base language of the user's locale, looked up
// the same way as gettext: LC_ALL, then LC_MESSAGES, then LANG.
func DetectLanguage() string {
	for _, env := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		if v := os.Getenv(env); v != "" {
			return LocaleLanguage(v)
		}
	}
	return defaultLanguage
}

// LocaleLanguage extracts the base language from a POSIX locale name such as
// "fr_FR.UTF-8" or "de_DE@euro".
func LocaleLanguage(locale string) string {
	if i := strings.IndexAny(locale, ".@"); i >= 0 {
		locale = locale[:i]
	}
	if locale == "" || locale == "C" || locale == "POSIX" {
		return defaultLanguage
	}

	tag, err := language.Parse(strings.ReplaceAll(locale, "_", "-"))
	if err != nil {
		return defaultLanguage
	}
	base, conf := tag.Base()
	if conf == language.No {
		return defaultLanguage
	}
	return base.String()
}

// Wiki builds links to the ./play.it wiki in a given language.
type Wiki struct {
	Base     string
	Language string
}

func (w Wiki) root() string {
	base := w.Base
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}
	lang := w.Language
	if lang == "" {
		lang = defaultLanguage
	}
	return base + lang + "/"
}

// StartURL is the wiki home page.
func (w Wiki) StartURL() string {
	return w.root() + "start"
}

// GameURL is the wiki page of a game.
func (w Wiki) GameURL(slug string) string {
	return w.root() + "games/" + slug
}
