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

// Package appinfo implements the seek-by-id protocol against Steam's
// binary appinfo.vdf database: an 8-byte header followed by
// a flat run of fixed-layout entries, each carrying a binary-VDF
// payload, terminated by an app_id == 0 sentinel.
package appinfo

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/stl-next/stl-next/internal/errs"
	"github.com/stl-next/stl-next/internal/vdf"
)

// knownMagics lists the header magic words observed across Steam
// client releases. The list is inherently incomplete — Valve has never
// published a schema for it — so an unrecognized value is not a
// failure: it is recorded as Header.KnownMagic == false and parsing
// continues. Nothing is logged for it.
var knownMagics = map[uint32]bool{
	0x07564427: true, // "'DV\x07" - appinfo v0x27
	0x07564428: true, // v0x28
	0x07564429: true, // v0x29
}

const fixedHeaderSize = 8 // magic (u32) + universe (u32)

// entryFixedSize is the size, in bytes, of an entry's fixed-layout
// fields that precede its variable-length payload:
// app_id + payload_size + info_state + last_updated +
// pics_token(u64) + sha1(20) + change_number.
const entryFixedSize = 4 + 4 + 4 + 4 + 8 + 20 + 4

// Header is the 8-byte appinfo database preamble.
type Header struct {
	Magic      uint32
	Universe   uint32
	KnownMagic bool
}

// EntryHeader is the fixed portion of one appinfo entry.
type EntryHeader struct {
	AppID        uint32
	PayloadSize  uint32
	InfoState    uint32
	LastUpdated  uint32
	PicsToken    uint64
	SHA1         [20]byte
	ChangeNumber uint32
}

// LaunchOption is one appinfo.config.launch.<n> slot.
type LaunchOption struct {
	ID          string
	Executable  string
	Arguments   string
	Description string
	OSList      string
}

// GameInfo is the materialized view of one appinfo entry, joined with
// a library manifest to learn whether the game is actually installed.
type GameInfo struct {
	AppID             int
	DisplayName       string
	InstallDir        string
	PrimaryExecutable string
	LaunchOptions     []LaunchOption
	ProtonRuntimeHint string
	IsInstalled       bool
}

// Reader streams a binary appinfo database, supporting the seek-by-id
// protocol and lazy iteration. It is not safe for concurrent use.
type Reader struct {
	f      *os.File
	br     *bufio.Reader
	offset int64
	header Header
}

// Open reads the header and returns a positioned Reader. Callers must
// Close it when done.
func Open(path string) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errs.Wrap(errs.KindIO, "open appinfo database", err)
	}

	r := &Reader{f: f, br: bufio.NewReaderSize(f, 4096)}
	if err := r.readHeader(); err != nil {
		f.Close()
		return nil, err
	}
	return r, nil
}

// Close releases the underlying file handle.
func (r *Reader) Close() error {
	return r.f.Close()
}

// Header returns the parsed database header.
func (r *Reader) Header() Header {
	return r.header
}

// Offset returns the current absolute byte position in the database.
func (r *Reader) Offset() int64 {
	return r.offset
}

// SeekToOffset repositions the reader at an absolute byte offset
// previously obtained from Offset, discarding any buffered data. Used
// to resume directly at a cached entry position.
func (r *Reader) SeekToOffset(off int64) error {
	if _, err := r.f.Seek(off, io.SeekStart); err != nil {
		return errs.Wrap(errs.KindIO, "seek appinfo database", err)
	}
	r.br.Reset(r.f)
	r.offset = off
	return nil
}

func (r *Reader) readHeader() error {
	buf, err := r.readN(fixedHeaderSize)
	if err != nil {
		return err
	}
	magic := binary.LittleEndian.Uint32(buf[0:4])
	universe := binary.LittleEndian.Uint32(buf[4:8])
	r.header = Header{Magic: magic, Universe: universe, KnownMagic: knownMagics[magic]}
	return nil
}

func (r *Reader) readN(n int) ([]byte, error) {
	buf := make([]byte, n)
	if _, err := io.ReadFull(r.br, buf); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return nil, errs.Wrap(errs.KindMalformed, "appinfo database truncated", err)
		}
		return nil, errs.Wrap(errs.KindIO, "read appinfo database", err)
	}
	r.offset += int64(n)
	return buf, nil
}

// nextEntryHeader reads one fixed-size entry header at the current
// position. ok is false at the zero-app_id end-of-file sentinel, which
// is four bytes wide on the wire -- not a padded entryFixedSize record
// -- so the app_id is read and checked before the remaining fields are
// ever attempted. ok is also false when the file ends exactly at an
// entry boundary (e.g. a file holding only the 8-byte header).
func (r *Reader) nextEntryHeader() (eh EntryHeader, ok bool, err error) {
	if _, peekErr := r.br.Peek(1); peekErr == io.EOF {
		return EntryHeader{}, false, nil
	}
	idBuf, err := r.readN(4)
	if err != nil {
		return EntryHeader{}, false, err
	}
	eh.AppID = binary.LittleEndian.Uint32(idBuf)
	if eh.AppID == 0 {
		return EntryHeader{}, false, nil
	}

	buf, err := r.readN(entryFixedSize - 4)
	if err != nil {
		return EntryHeader{}, false, err
	}
	eh.PayloadSize = binary.LittleEndian.Uint32(buf[0:4])
	eh.InfoState = binary.LittleEndian.Uint32(buf[4:8])
	eh.LastUpdated = binary.LittleEndian.Uint32(buf[8:12])
	eh.PicsToken = binary.LittleEndian.Uint64(buf[12:20])
	copy(eh.SHA1[:], buf[20:40])
	eh.ChangeNumber = binary.LittleEndian.Uint32(buf[40:44])
	return eh, true, nil
}

func (r *Reader) skip(n uint32) error {
	if n == 0 {
		return nil
	}
	if _, err := io.CopyN(io.Discard, r.br, int64(n)); err != nil {
		if err == io.EOF {
			return errs.Wrap(errs.KindMalformed, "appinfo database truncated", err)
		}
		return errs.Wrap(errs.KindIO, "skip appinfo payload", err)
	}
	r.offset += int64(n)
	return nil
}

// Seek advances from the current position to the entry whose app_id
// equals target, reading and discarding intervening entries' payloads
// without parsing them. found is false if the sentinel was reached
// first; the Reader is then positioned at end-of-file. entryOffset is
// the absolute byte offset at which the matched entry's header began,
// suitable for caching and later SeekToOffset.
func (r *Reader) Seek(target int) (eh EntryHeader, entryOffset int64, found bool, err error) {
	for {
		start := r.offset
		h, ok, err := r.nextEntryHeader()
		if err != nil {
			return EntryHeader{}, 0, false, err
		}
		if !ok {
			return EntryHeader{}, 0, false, nil
		}
		if int(h.AppID) == target {
			return h, start, true, nil
		}
		if err := r.skip(h.PayloadSize); err != nil {
			return EntryHeader{}, 0, false, err
		}
	}
}

// ReadPayload decodes the binary-VDF payload belonging to the entry
// header just returned by Seek or the iteration cursor.
func (r *Reader) ReadPayload(eh EntryHeader) (*vdf.Map, error) {
	limited := io.LimitReader(r.br, int64(eh.PayloadSize))
	m, err := vdf.DecodeBinary(bufio.NewReader(limited))
	r.offset += int64(eh.PayloadSize)
	if err != nil {
		return nil, err
	}
	return m, nil
}

// IndexEntry is the lightweight view yielded by Iterate, useful for
// building a name index without materializing every payload.
type IndexEntry struct {
	AppID       int
	PayloadSize uint32
}

// Iterate returns a lazy, finite, restartable sequence over every
// entry's (app_id, payload_size), skipping payload bytes without
// parsing them. visit returning an error stops iteration early.
func (r *Reader) Iterate(visit func(IndexEntry) error) error {
	for {
		h, ok, err := r.nextEntryHeader()
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		if visitErr := visit(IndexEntry{AppID: int(h.AppID), PayloadSize: h.PayloadSize}); visitErr != nil {
			return visitErr
		}
		if err := r.skip(h.PayloadSize); err != nil {
			return err
		}
	}
}

// Materialize builds a GameInfo from a decoded payload map and the
// installed flag learned from a library manifest. DisplayName falls
// back to "Game <id>" and InstallDir to "" when absent; launch slots
// are taken in ascending numeric key order; PrimaryExecutable is the
// first option whose oslist includes linux and ProtonRuntimeHint the
// first whose oslist includes windows (an empty oslist counts as both).
func Materialize(appID int, payload *vdf.Map, installed bool) GameInfo {
	gi := GameInfo{AppID: appID, IsInstalled: installed}

	gi.DisplayName = fmt.Sprintf("Game %d", appID)
	if v, ok := payload.Lookup("appinfo.common.name"); ok {
		if s := v.AsString(); s != "" {
			gi.DisplayName = s
		}
	}

	if v, ok := payload.Lookup("appinfo.config.installdir"); ok {
		gi.InstallDir = v.AsString()
	}

	launchRoot, ok := payload.Lookup("appinfo.config.launch")
	if !ok {
		return gi
	}
	launchMap, ok := launchRoot.Map()
	if !ok {
		return gi
	}

	for _, slotKey := range orderedNumericKeys(launchMap) {
		entryVal, _ := launchMap.Get(slotKey)
		entry, ok := entryVal.Map()
		if !ok {
			continue
		}

		opt := LaunchOption{ID: slotKey}
		if v, ok := entry.Get("executable"); ok {
			opt.Executable = v.AsString()
		}
		if v, ok := entry.Get("arguments"); ok {
			opt.Arguments = v.AsString()
		}
		if v, ok := entry.Get("description"); ok {
			opt.Description = v.AsString()
		}
		if v, ok := entry.Get("oslist"); ok {
			opt.OSList = v.AsString()
		}
		gi.LaunchOptions = append(gi.LaunchOptions, opt)
	}

	for _, opt := range gi.LaunchOptions {
		if includesLinux(opt.OSList) {
			gi.PrimaryExecutable = opt.Executable
			break
		}
	}
	for _, opt := range gi.LaunchOptions {
		if includesWindows(opt.OSList) {
			gi.ProtonRuntimeHint = opt.Executable
			break
		}
	}

	return gi
}

// includesWindows reports whether an oslist value (empty, or a
// comma-separated list like "windows,linux") permits running under
// Proton.
func includesWindows(osList string) bool {
	return osListContains(osList, "windows")
}

// includesLinux reports whether an oslist value (empty, or a
// comma-separated list like "windows,linux") permits the native host.
func includesLinux(osList string) bool {
	return osListContains(osList, "linux")
}

func osListContains(osList, platform string) bool {
	if osList == "" {
		return true
	}
	start := 0
	for i := 0; i <= len(osList); i++ {
		if i == len(osList) || osList[i] == ',' {
			if osList[start:i] == platform {
				return true
			}
			start = i + 1
		}
	}
	return false
}
