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
	"database/sql"
	"embed"
	"fmt"
	"io/fs"

	_ "github.com/mattn/go-sqlite3"
	"github.com/pressly/goose/v3"

	"github.com/stl-next/stl-next/internal/errs"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

const dbPragmas = "?_foreign_keys=ON&_journal_mode=WAL&_synchronous=NORMAL"

// Cache is a seek-offset accelerator for repeat lookups against a
// binary appinfo database: it remembers the byte offset at which an
// app_id's entry started and the change_number observed there, so a
// subsequent lookup can jump straight to it instead of scanning from
// the top. On a hit no entries are skipped: the entry header at the
// cached offset is re-read and used only if its app_id and
// change_number still match.
type Cache struct {
	db *sql.DB
}

// OpenCache opens (creating if necessary) the SQLite cache at path and
// migrates it to the latest schema.
func OpenCache(ctx context.Context, path string) (*Cache, error) {
	db, err := sql.Open("sqlite3", fmt.Sprintf("file:%s%s", path, dbPragmas))
	if err != nil {
		return nil, errs.Wrap(errs.KindIO, "open appinfo offset cache", err)
	}

	fsys, err := fs.Sub(migrationsFS, "migrations")
	if err != nil {
		db.Close()
		return nil, errs.Wrap(errs.KindIO, "prepare offset cache migrations", err)
	}
	provider, err := goose.NewProvider(goose.DialectSQLite3, db, fsys)
	if err != nil {
		db.Close()
		return nil, errs.Wrap(errs.KindIO, "prepare offset cache migration provider", err)
	}
	if _, err := provider.Up(ctx); err != nil {
		db.Close()
		return nil, errs.Wrap(errs.KindIO, "migrate appinfo offset cache", err)
	}

	return &Cache{db: db}, nil
}

// Close releases the underlying database handle.
func (c *Cache) Close() error {
	return c.db.Close()
}

// Entry is a cached seek position for one (database path, app id) pair.
type Entry struct {
	ByteOffset   int64
	ChangeNumber uint32
	DisplayName  string
}

// Lookup returns the cached entry for appID within dbPath, if any. A
// miss is not an error; callers fall back to a full scan.
func (c *Cache) Lookup(ctx context.Context, dbPath string, appID int) (Entry, bool, error) {
	row := c.db.QueryRowContext(ctx,
		`SELECT byte_offset, change_number, display_name FROM offset_cache WHERE db_path = ? AND app_id = ?`,
		dbPath, appID)

	var e Entry
	var changeNumber int64
	if err := row.Scan(&e.ByteOffset, &changeNumber, &e.DisplayName); err != nil {
		if err == sql.ErrNoRows {
			return Entry{}, false, nil
		}
		return Entry{}, false, errs.Wrap(errs.KindIO, "query appinfo offset cache", err)
	}
	e.ChangeNumber = uint32(changeNumber)
	return e, true, nil
}

// Store records (or overwrites) the seek position for appID within
// dbPath, alongside the mtime of dbPath at the time of caching so a
// future cache implementation could bulk-invalidate on file
// replacement; the current Lookup path relies on change_number alone.
func (c *Cache) Store(ctx context.Context, dbPath string, dbMtimeUnix int64, appID int, offset int64, changeNumber uint32, displayName string) error {
	_, err := c.db.ExecContext(ctx, `
		INSERT INTO offset_cache (db_path, app_id, db_mtime_unix, byte_offset, change_number, display_name)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (db_path, app_id) DO UPDATE SET
			db_mtime_unix = excluded.db_mtime_unix,
			byte_offset   = excluded.byte_offset,
			change_number = excluded.change_number,
			display_name  = excluded.display_name
	`, dbPath, appID, dbMtimeUnix, offset, int64(changeNumber), displayName)
	if err != nil {
		return errs.Wrap(errs.KindIO, "store appinfo offset cache entry", err)
	}
	return nil
}
