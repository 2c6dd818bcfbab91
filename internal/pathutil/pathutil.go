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

// Package pathutil holds small filesystem-path helpers shared across
// the discovery, appinfo, and launcher packages.
package pathutil

import (
	"path/filepath"
	"strings"
)

// IsUnderDir reports whether path resides within dir, computing the
// relative path between the two rather than comparing string
// prefixes (a prefix check alone would treat "/foo/bar-baz" as inside
// "/foo/bar"). Used to reject an appinfo-reported installdir that
// would resolve outside its owning library folder.
//
// Symlinks are not resolved; callers that need symlink-aware
// containment should run both paths through filepath.EvalSymlinks
// first.
func IsUnderDir(path, dir string) (bool, error) {
	ap, err := filepath.Abs(path)
	if err != nil {
		return false, err
	}
	ad, err := filepath.Abs(dir)
	if err != nil {
		return false, err
	}

	rel, err := filepath.Rel(ad, ap)
	if err != nil {
		return false, err
	}
	if rel == "." {
		return true, nil
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return false, nil
	}
	if filepath.IsAbs(rel) {
		return false, nil
	}
	return true, nil
}
