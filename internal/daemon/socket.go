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

// Package daemon implements the wait-requester: a single-threaded
// cooperative loop serving pre-launch countdown/pause state over a
// per-app Unix domain socket.
package daemon

import (
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/stl-next/stl-next/internal/errs"
)

// SocketPath returns the per-app control socket path:
// $XDG_RUNTIME_DIR/stl-next-<app_id>.sock, falling back to /tmp when
// XDG_RUNTIME_DIR is unset.
func SocketPath(appID int) string {
	base := os.Getenv("XDG_RUNTIME_DIR")
	if base == "" {
		base = "/tmp"
	}
	return filepath.Join(base, fmt.Sprintf("stl-next-%s.sock", strconv.Itoa(appID)))
}

// maxSocketPathLen is the conventional sun_path limit on common Linux
// systems.
const maxSocketPathLen = 108

// connectProbeTimeout bounds the pre-bind liveness check.
const connectProbeTimeout = 200 * time.Millisecond

// ErrAlreadyRunning indicates a live daemon already owns the socket.
var ErrAlreadyRunning = fmt.Errorf("a daemon is already serving this socket")

// Bind attempts to connect first; a successful connect means another
// daemon instance is already live, so the caller should become a
// client of it instead. Only on connection refusal/absence is the
// stale path unlinked and a fresh listener bound.
func Bind(path string) (net.Listener, error) {
	if len(path) > maxSocketPathLen {
		return nil, errs.New(errs.KindMalformed, "control socket path exceeds platform limit: "+path)
	}

	if conn, err := net.DialTimeout("unix", path, connectProbeTimeout); err == nil {
		conn.Close()
		return nil, ErrAlreadyRunning
	}

	_ = os.Remove(path)

	l, err := net.Listen("unix", path)
	if err != nil {
		return nil, errs.Wrap(errs.KindIO, "bind control socket", err)
	}
	if err := os.Chmod(path, 0o600); err != nil {
		l.Close()
		return nil, errs.Wrap(errs.KindIO, "chmod control socket", err)
	}
	return l, nil
}
