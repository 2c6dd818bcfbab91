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

// Package protocol implements the wait-requester daemon's wire format
//: flat newline-separated key=value text, one message per
// connection, explicitly not JSON (the original defect this protocol
// replaces leaned on a JSON codec that several front-ends across the
// ecosystem disagreed on field casing for).
package protocol

import (
	"strconv"
	"strings"

	"github.com/stl-next/stl-next/internal/errs"
)

// MaxMessageBytes is the largest single-direction message accepted
//.
const MaxMessageBytes = 64 * 1024

// Action enumerates the recognized request verbs.
type Action string

const (
	ActionPauseLaunch  Action = "PauseLaunch"
	ActionResumeLaunch Action = "ResumeLaunch"
	ActionProceed      Action = "Proceed"
	ActionAbort        Action = "Abort"
	ActionGetStatus    Action = "GetStatus"
	ActionGetGameInfo  Action = "GetGameInfo"
	ActionGetTinkers   Action = "GetTinkers"
	ActionToggleTinker Action = "ToggleTinker"
	ActionUpdateConfig Action = "UpdateConfig"
)

// Request is a decoded client request. Enabled is nil when the field
// was absent, distinguishing "not specified" (flip) from "set to
// false".
type Request struct {
	Action   Action
	TinkerID string
	Enabled  *bool
}

// Response is always returned on every action.
type Response struct {
	State            string
	CountdownSeconds int
	GameName         string
	AppID            int
	TinkerEnabled    map[string]bool
	ErrorMessage     string
}

// encodeFields renders a key-value message as newline-separated
// "key=value" pairs, in map iteration order (not sorted); the order
// only affects wire bytes, not meaning.
func encodeFields(fields map[string]string) []byte {
	var b strings.Builder
	for k, v := range fields {
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(v)
		b.WriteByte('\n')
	}
	return []byte(b.String())
}

func decodeFields(data []byte) map[string]string {
	fields := make(map[string]string)
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimRight(line, "\r")
		if line == "" {
			continue
		}
		i := strings.IndexByte(line, '=')
		if i < 0 {
			continue
		}
		fields[line[:i]] = line[i+1:]
	}
	return fields
}

// EncodeRequest renders req as wire bytes.
func EncodeRequest(req Request) ([]byte, error) {
	fields := map[string]string{"action": string(req.Action)}
	if req.TinkerID != "" {
		fields["tinker_id"] = req.TinkerID
	}
	if req.Enabled != nil {
		fields["enabled"] = strconv.FormatBool(*req.Enabled)
	}
	out := encodeFields(fields)
	if len(out) > MaxMessageBytes {
		return nil, errs.New(errs.KindProtocol, "request exceeds max message size")
	}
	return out, nil
}

// DecodeRequest parses wire bytes into a Request. An unrecognized
// action value falls back to GetStatus
// rather than erroring, so older and newer clients stay interoperable.
func DecodeRequest(data []byte) (Request, error) {
	if len(data) > MaxMessageBytes {
		return Request{}, errs.New(errs.KindProtocol, "request exceeds max message size")
	}
	fields := decodeFields(data)

	req := Request{Action: normalizeAction(fields["action"])}
	req.TinkerID = fields["tinker_id"]
	if v, ok := fields["enabled"]; ok {
		b, err := strconv.ParseBool(v)
		if err == nil {
			req.Enabled = &b
		}
	}
	return req, nil
}

func normalizeAction(raw string) Action {
	switch Action(raw) {
	case ActionPauseLaunch, ActionResumeLaunch, ActionProceed, ActionAbort,
		ActionGetStatus, ActionGetGameInfo, ActionGetTinkers, ActionToggleTinker, ActionUpdateConfig:
		return Action(raw)
	default:
		return ActionGetStatus
	}
}

// EncodeResponse renders resp as wire bytes.
func EncodeResponse(resp Response) ([]byte, error) {
	fields := map[string]string{
		"state":             resp.State,
		"countdown_seconds": strconv.Itoa(resp.CountdownSeconds),
		"game_name":         resp.GameName,
		"app_id":            strconv.Itoa(resp.AppID),
	}
	if resp.State == "Error" {
		fields["error_message"] = resp.ErrorMessage
	}
	for id, enabled := range resp.TinkerEnabled {
		fields[id+"_enabled"] = strconv.FormatBool(enabled)
	}

	out := encodeFields(fields)
	if len(out) > MaxMessageBytes {
		return nil, errs.New(errs.KindProtocol, "response exceeds max message size")
	}
	return out, nil
}

// DecodeResponse parses wire bytes into a Response. Missing optional
// fields default to their zero value; unknown fields are ignored
//. The countdown is read from "countdown_seconds", or from the
// shorter historical "countdown_secs" key when the canonical one is
// absent; EncodeResponse always emits "countdown_seconds".
func DecodeResponse(data []byte) (Response, error) {
	if len(data) > MaxMessageBytes {
		return Response{}, errs.New(errs.KindProtocol, "response exceeds max message size")
	}
	fields := decodeFields(data)

	resp := Response{
		State:    fields["state"],
		GameName: fields["game_name"],
	}
	if v, ok := fields["app_id"]; ok {
		resp.AppID, _ = strconv.Atoi(v)
	}
	if v, ok := fields["countdown_seconds"]; ok {
		resp.CountdownSeconds, _ = strconv.Atoi(v)
	} else if v, ok := fields["countdown_secs"]; ok {
		resp.CountdownSeconds, _ = strconv.Atoi(v)
	}
	resp.ErrorMessage = fields["error_message"]

	resp.TinkerEnabled = make(map[string]bool)
	for k, v := range fields {
		if strings.HasSuffix(k, "_enabled") {
			id := strings.TrimSuffix(k, "_enabled")
			b, err := strconv.ParseBool(v)
			if err == nil {
				resp.TinkerEnabled[id] = b
			}
		}
	}

	return resp, nil
}
