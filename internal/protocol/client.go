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

package protocol

import (
	"io"
	"net"
	"time"

	"github.com/stl-next/stl-next/internal/errs"
)

const (
	clientTimeout = 5 * time.Second
	clientRetries = 3
	clientBackoff = 100 * time.Millisecond
)

// Call sends req over a single connection to the Unix socket at path
// and returns the decoded response, retrying up to clientRetries times
// after the first attempt with a clientBackoff delay between attempts.
func Call(path string, req Request) (Response, error) {
	var lastErr error
	for attempt := 0; attempt <= clientRetries; attempt++ {
		if attempt > 0 {
			time.Sleep(clientBackoff)
		}
		resp, err := callOnce(path, req)
		if err == nil {
			return resp, nil
		}
		lastErr = err
	}
	return Response{}, errs.Wrap(errs.KindProtocol, "control socket call failed after retries", lastErr)
}

func callOnce(path string, req Request) (Response, error) {
	conn, err := net.DialTimeout("unix", path, clientTimeout)
	if err != nil {
		return Response{}, err
	}
	defer conn.Close()

	if err := conn.SetDeadline(time.Now().Add(clientTimeout)); err != nil {
		return Response{}, err
	}

	payload, err := EncodeRequest(req)
	if err != nil {
		return Response{}, err
	}
	if _, err := conn.Write(payload); err != nil {
		return Response{}, err
	}
	if cw, ok := conn.(interface{ CloseWrite() error }); ok {
		_ = cw.CloseWrite()
	}

	data, err := io.ReadAll(io.LimitReader(conn, MaxMessageBytes+1))
	if err != nil {
		return Response{}, err
	}
	if len(data) == 0 {
		return Response{}, errs.New(errs.KindProtocol, "empty response from control socket")
	}

	return DecodeResponse(data)
}
