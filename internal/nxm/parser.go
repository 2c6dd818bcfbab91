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

package nxm

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/stl-next/stl-next/internal/errs"
)

// Parse decomposes raw according to the nxm:// grammar: scheme, then
// a path-part split on '/', then an optional '?'-delimited query part
// recognizing "key" and "expires". It accepts the percent-encoded tail
// encode_for_host produces, so parse(encode_for_host(u)) always
// recovers u's fields.
func Parse(raw string) (URL, error) {
	if raw == "" {
		return URL{}, errs.Wrap(errs.KindMalformed, "nxm url", ErrEmptyURL)
	}
	if len(raw) > MaxURLBytes {
		return URL{}, errs.Wrap(errs.KindMalformed, "nxm url", ErrTooLong)
	}
	if !strings.HasPrefix(raw, scheme) {
		return URL{}, errs.Wrap(errs.KindMalformed, "nxm url", ErrInvalidScheme)
	}

	tail, err := url.PathUnescape(strings.TrimPrefix(raw, scheme))
	if err != nil {
		return URL{}, errs.Wrap(errs.KindMalformed, "nxm url", err)
	}

	pathPart := tail
	queryPart := ""
	if i := strings.IndexByte(tail, '?'); i >= 0 {
		pathPart = tail[:i]
		queryPart = tail[i+1:]
	}

	segments := strings.Split(pathPart, "/")
	if len(segments) < 1 || segments[0] == "" {
		return URL{}, errs.Wrap(errs.KindMalformed, "nxm url", ErrMissingGameDomain)
	}

	u := URL{GameDomain: segments[0]}

	linkType := seg(segments, 1)
	switch linkType {
	case "mods":
		if err := parseMod(&u, segments); err != nil {
			return URL{}, err
		}
	case "collections":
		if err := parseCollection(&u, segments); err != nil {
			return URL{}, err
		}
	default:
		return URL{}, errs.Wrap(errs.KindMalformed, "nxm url", ErrInvalidLinkType)
	}

	parseQuery(&u, queryPart)
	return u, nil
}

func seg(segments []string, i int) string {
	if i < 0 || i >= len(segments) {
		return ""
	}
	return segments[i]
}

func parseMod(u *URL, segments []string) error {
	u.Kind = KindMod

	modID, err := strconv.ParseUint(seg(segments, 2), 10, 32)
	if err != nil {
		return errs.Wrap(errs.KindMalformed, "nxm mod url", ErrInvalidModId)
	}
	u.ModID = uint32(modID)

	switch third := seg(segments, 3); third {
	case "":
		// no file id present
	case "files":
		fileID, err := strconv.ParseUint(seg(segments, 4), 10, 32)
		if err != nil {
			return errs.Wrap(errs.KindMalformed, "nxm mod url", ErrInvalidFileId)
		}
		u.FileID = uint32(fileID)
		u.HasFileID = true
	default:
		// compat form: segments[3] is the file id directly
		fileID, err := strconv.ParseUint(third, 10, 32)
		if err != nil {
			return errs.Wrap(errs.KindMalformed, "nxm mod url", ErrInvalidFileId)
		}
		u.FileID = uint32(fileID)
		u.HasFileID = true
	}
	return nil
}

func parseCollection(u *URL, segments []string) error {
	u.Kind = KindCollection

	slug := seg(segments, 2)
	if slug == "" {
		return errs.Wrap(errs.KindMalformed, "nxm collection url", ErrMissingSlug)
	}
	u.CollectionSlug = slug

	if seg(segments, 3) == "revisions" {
		revisionID, err := strconv.ParseUint(seg(segments, 4), 10, 32)
		if err != nil {
			return errs.Wrap(errs.KindMalformed, "nxm collection url", ErrInvalidRevisionId)
		}
		u.RevisionID = uint32(revisionID)
		u.HasRevisionID = true
	}
	return nil
}

func parseQuery(u *URL, queryPart string) {
	if queryPart == "" {
		return
	}
	for _, pair := range strings.Split(queryPart, "&") {
		if pair == "" {
			continue
		}
		key, value, _ := strings.Cut(pair, "=")
		switch key {
		case "key":
			u.DownloadKey = value
		case "expires":
			if n, err := strconv.ParseUint(value, 10, 64); err == nil {
				u.ExpiresAt = n
				u.HasExpires = true
			}
		}
	}
}
