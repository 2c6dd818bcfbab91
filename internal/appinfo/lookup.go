/*
 * stl-next: steam launch tinkering, the next one
 * Copyright © 2026 stl-next contributors
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as published by
 * the Free Software Foundation, either version 3 of the License, or
 * (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with this program. If not, see <https://www.gnu.org/licenses/>.
 */

package appinfo

import (
	"context"
	"os"

	"github.com/stl-next/stl-next/internal/errs"
	"github.com/stl-next/stl-next/internal/steamlocate"
)

// LookupGame resolves appID's GameInfo from the appinfo database at
// dbPath, joined against libraries (C2) to learn whether the game has
// a local install. When cache is non-nil it is consulted first: a hit
// is only trusted if re-reading the entry header at the cached offset
// still shows the same app_id and change_number, otherwise the lookup
// falls back to a full scan from the start of the file.
func LookupGame(ctx context.Context, dbPath string, appID int, cache *Cache, libraries []string) (GameInfo, error) {
	r, err := Open(dbPath)
	if err != nil {
		return GameInfo{}, err
	}
	defer r.Close()

	installed := isInstalled(libraries, appID)

	if cache != nil {
		if entry, ok, err := cache.Lookup(ctx, dbPath, appID); err == nil && ok {
			if eh, hit := tryCachedOffset(r, appID, entry); hit {
				payload, err := r.ReadPayload(eh)
				if err != nil {
					return GameInfo{}, err
				}
				return Materialize(appID, payload, installed), nil
			}
			// Stale or corrupt cache entry: rewind past the header and
			// fall through to a full scan.
			if err := r.SeekToOffset(fixedHeaderSize); err != nil {
				return GameInfo{}, err
			}
		}
	}

	eh, entryOffset, found, err := r.Seek(appID)
	if err != nil {
		return GameInfo{}, err
	}
	if !found {
		return GameInfo{}, errs.New(errs.KindNotFound, "app id not present in appinfo database")
	}

	payload, err := r.ReadPayload(eh)
	if err != nil {
		return GameInfo{}, err
	}
	gi := Materialize(appID, payload, installed)

	if cache != nil {
		mtime := int64(0)
		if info, statErr := os.Stat(dbPath); statErr == nil {
			mtime = info.ModTime().Unix()
		}
		_ = cache.Store(ctx, dbPath, mtime, appID, entryOffset, eh.ChangeNumber, gi.DisplayName)
	}

	return gi, nil
}

// tryCachedOffset attempts to resume at a previously cached entry
// offset. It reports hit == false (without error) on any mismatch, so
// the caller can fall back to a full scan rather than propagating a
// cache-consistency problem as a user-facing failure.
func tryCachedOffset(r *Reader, appID int, entry Entry) (EntryHeader, bool) {
	if err := r.SeekToOffset(entry.ByteOffset); err != nil {
		return EntryHeader{}, false
	}
	eh, ok, err := r.nextEntryHeader()
	if err != nil || !ok {
		return EntryHeader{}, false
	}
	if int(eh.AppID) != appID || eh.ChangeNumber != entry.ChangeNumber {
		return EntryHeader{}, false
	}
	return eh, true
}

// isInstalled reports whether appID has a manifest in any of the
// given library folders. Manifest parse warnings are not the caller's
// concern here; an unreadable or missing manifest simply means "not
// installed".
func isInstalled(libraries []string, appID int) bool {
	manifests, _ := steamlocate.ListInstalledGames(libraries)
	for _, m := range manifests {
		if m.AppID == appID {
			return true
		}
	}
	return false
}
