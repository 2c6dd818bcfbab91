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

package daemon

import (
	"context"
	"net"
	"os"
	"strconv"
	"time"

	"github.com/stl-next/stl-next/internal/config"
	"github.com/stl-next/stl-next/internal/errs"
	"github.com/stl-next/stl-next/internal/protocol"
)

// pollInterval bounds how long Accept blocks per loop iteration before
// the daemon re-checks the countdown tick and terminal conditions.
const pollInterval = 100 * time.Millisecond

// DefaultCountdownSeconds is used when neither the request nor
// STL_COUNTDOWN override it.
const DefaultCountdownSeconds = 5

// LaunchFunc starts the actual game process once the wait is over. It
// returns the child PID so Daemon can report it, or an error that
// drives the daemon into the Error state.
type LaunchFunc func() (pid int, err error)

// Daemon is the wait-requester's in-memory state for one app run. It
// is not safe for concurrent use; the control loop is single
// threaded by design.
type Daemon struct {
	AppID       int
	GameName    string
	ConfigDir   string
	Config      config.GameConfig
	Countdown   int
	State       State
	ErrorMsg    string
	PID         int
	listener    net.Listener
	socketPath  string
	lastTick    time.Time
	tinkers     *tinkerSnapshot
	launch      LaunchFunc
}

// New builds a Daemon ready to Run. countdownSeconds <= 0 falls back
// to STL_COUNTDOWN then DefaultCountdownSeconds; skipWait short
// circuits straight to Launching on the first iteration.
func New(appID int, gameName, configDir string, gc config.GameConfig, countdownSeconds int, skipWait bool, launch LaunchFunc) *Daemon {
	if countdownSeconds <= 0 {
		countdownSeconds = countdownFromEnv()
	}

	initial := make(map[string]bool)
	for id, raw := range gc.TinkerSettings {
		if m, ok := raw.(map[string]interface{}); ok {
			if b, ok := m["enabled"].(bool); ok {
				initial[id] = b
			}
		}
	}

	state := StateInitializing
	if skipWait || os.Getenv("STL_SKIP_WAIT") != "" {
		state = StateLaunching
	}

	return &Daemon{
		AppID:     appID,
		GameName:  gameName,
		ConfigDir: configDir,
		Config:    gc,
		Countdown: countdownSeconds,
		State:     state,
		tinkers:   newTinkerSnapshot(initial),
		launch:    launch,
	}
}

func countdownFromEnv() int {
	if v := os.Getenv("STL_COUNTDOWN"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			return n
		}
	}
	return DefaultCountdownSeconds
}

// Run binds the control socket and drives the cooperative loop until
// a terminal state is reached, then unbinds and returns. A bind
// failure moves the daemon straight to Error and returns immediately
// rather than looping: an unservable daemon must not silently proceed
// to launch.
func (d *Daemon) Run(ctx context.Context) error {
	d.socketPath = SocketPath(d.AppID)

	l, err := Bind(d.socketPath)
	if err != nil {
		d.State = StateError
		d.ErrorMsg = err.Error()
		return err
	}
	d.listener = l
	defer func() {
		_ = d.listener.Close()
		_ = os.Remove(d.socketPath)
	}()

	if d.State == StateInitializing {
		d.State = StateCountdown
	}
	d.lastTick = time.Now()

	for !d.State.Terminal() {
		select {
		case <-ctx.Done():
			d.State = StateFinished
			d.ErrorMsg = "canceled"
			return ctx.Err()
		default:
		}

		d.serveOneConnection()

		if d.State == StateCountdown {
			now := time.Now()
			if now.Sub(d.lastTick) >= time.Second {
				d.lastTick = now
				d.Countdown--
				if d.Countdown <= 0 {
					d.State = StateLaunching
				}
			}
		}

		if d.State == StateLaunching {
			d.doLaunch()
		}
	}

	return nil
}

// serveOneConnection accepts at most one pending connection per call
// and handles exactly one request/response cycle. It never blocks
// past pollInterval.
func (d *Daemon) serveOneConnection() {
	ul, ok := d.listener.(*net.UnixListener)
	if ok {
		_ = ul.SetDeadline(time.Now().Add(pollInterval))
	}

	conn, err := d.listener.Accept()
	if err != nil {
		return
	}
	defer conn.Close()

	_ = conn.SetDeadline(time.Now().Add(5 * time.Second))

	buf := make([]byte, protocol.MaxMessageBytes+1)
	n, err := conn.Read(buf)
	if err != nil && n == 0 {
		return
	}

	req, err := protocol.DecodeRequest(buf[:n])
	if err != nil {
		return
	}

	resp := d.handle(req)
	data, err := protocol.EncodeResponse(resp)
	if err != nil {
		return
	}
	_, _ = conn.Write(data)
}

// handle computes a response for req and applies any state mutation
// the action implies. Each connection is independent; I/O failures on
// one connection are dropped without affecting the daemon's state.
func (d *Daemon) handle(req protocol.Request) protocol.Response {
	switch req.Action {
	case protocol.ActionPauseLaunch:
		if d.State == StateCountdown {
			d.State = StateWaiting
		}
	case protocol.ActionResumeLaunch:
		if d.State == StateWaiting {
			d.State = StateCountdown
			d.lastTick = time.Now()
		}
	case protocol.ActionProceed:
		if d.State == StateCountdown || d.State == StateWaiting {
			d.State = StateLaunching
		}
	case protocol.ActionAbort:
		d.State = StateFinished
		d.ErrorMsg = "aborted by client"
	case protocol.ActionToggleTinker:
		d.tinkers.Toggle(req.TinkerID, req.Enabled)
	case protocol.ActionUpdateConfig:
		// Configuration edits land through the config package directly;
		// the control protocol only round-trips tinker toggles today.
	case protocol.ActionGetGameInfo, protocol.ActionGetTinkers, protocol.ActionGetStatus:
		// read-only, handled uniformly below
	}

	return protocol.Response{
		State:            string(d.State),
		CountdownSeconds: d.Countdown,
		GameName:         d.GameName,
		AppID:            d.AppID,
		TinkerEnabled:    d.tinkers.Snapshot(),
		ErrorMessage:     d.ErrorMsg,
	}
}

// doLaunch persists the tinker snapshot into the game's configuration,
// invokes the launch callback, and transitions to Running or Error.
func (d *Daemon) doLaunch() {
	d.Config.TinkerSettings = d.tinkers.ApplyTo(d.Config.TinkerSettings)
	if err := config.SaveGameConfig(d.ConfigDir, d.Config); err != nil {
		d.State = StateError
		d.ErrorMsg = errs.Wrap(errs.KindIO, "persist tinker selections", err).Error()
		return
	}

	if d.launch == nil {
		d.State = StateError
		d.ErrorMsg = "no launch callback configured"
		return
	}

	pid, err := d.launch()
	if err != nil {
		d.State = StateError
		d.ErrorMsg = err.Error()
		return
	}
	d.PID = pid
	d.State = StateRunning
}
