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

package fixtures

// CatalogGames is a search result in the shape served by the catalog API.
// The second game has no banner and falls back on its thumbnail, the third
// has no image at all.
const CatalogGames = `[
  {
    "id": 42,
    "game_id": "the-witcher",
    "game_name": "The Witcher",
    "images": {
      "thumbnail": "thumbnails/the-witcher.png",
      "banner": {"small": "banners/small/the-witcher.png", "large": null}
    }
  },
  {
    "id": 7,
    "game_id": "baldurs-gate-1",
    "game_name": "Baldur's Gate",
    "images": {
      "thumbnail": "thumbnails/baldurs-gate-1.png",
      "banner": {"small": null, "large": null}
    }
  },
  {
    "id": 8,
    "game_id": "beneath-a-steel-sky",
    "game_name": "Beneath a Steel Sky",
    "images": {
      "thumbnail": null,
      "banner": {"small": null}
    }
  }
]`

// CatalogWitcherShow is the flat archive view of "The Witcher": a GOG
// installer split over two files plus an optional patch, and an
// alternative retail edition nobody links to.
const CatalogWitcherShow = `{
  "id": 42,
  "game_id": "the-witcher",
  "script": {
    "archives": [
      [
        {
          "name": "setup_the_witcher.exe",
          "url": "https://www.gog.com/game/the_witcher",
          "required": true,
          "dependencies": {"debian": ["innoextract", "unar | unrar"], "archlinux": ["innoextract"]},
          "download_torrent": "https://dl.example.org/setup_the_witcher.exe.torrent",
          "download_direct": null
        },
        {
          "name": "setup_the_witcher-1.bin",
          "url": null,
          "required": true,
          "dependencies": [],
          "download_torrent": null,
          "download_direct": "https://dl.example.org/setup_the_witcher-1.bin"
        },
        {
          "name": "witcher_patch_fr.exe",
          "url": null,
          "required": false,
          "dependencies": null,
          "download_torrent": null,
          "download_direct": null
        }
      ],
      [
        {
          "name": "the_witcher_retail.iso",
          "url": null,
          "required": true,
          "dependencies": {},
          "download_torrent": null,
          "download_direct": null
        }
      ]
    ]
  }
}`

// CatalogEmptyShow is a game the catalog knows but cannot install yet.
const CatalogEmptyShow = `{"id": 9, "game_id": "unsupported", "script": {"archives": []}}`
