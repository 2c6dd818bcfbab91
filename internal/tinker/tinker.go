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

// Package tinker implements the capability-record pipeline that
// mutates a launch's environment and argument vector: a
// tagged set of built-in effects, run in strict priority order through
// prepare, modify_env and modify_argv phases.
package tinker

import (
	"github.com/stl-next/stl-next/internal/config"
)

// Context is the read-only per-launch state every tinker observes.
// Tinkers never mutate it directly; the mutable outputs are the EnvMap
// and ArgVec passed alongside it.
type Context struct {
	AppID      int
	GameName   string
	InstallDir string
	PrefixPath string
	ScratchDir string
	ConfigDir  string
	Config     *config.GameConfig
}

// EnvMap is the mutable environment under construction for the child
// process, seeded from the invoker's own environment.
type EnvMap struct {
	entries map[string]string
}

// NewEnvMap builds an EnvMap from an initial set of "KEY=VALUE" pairs,
// typically os.Environ().
func NewEnvMap(pairs []string) *EnvMap {
	m := &EnvMap{entries: make(map[string]string, len(pairs))}
	for _, p := range pairs {
		for i := 0; i < len(p); i++ {
			if p[i] == '=' {
				m.entries[p[:i]] = p[i+1:]
				break
			}
		}
	}
	return m
}

// Set assigns key, overwriting any existing value.
func (m *EnvMap) Set(key, value string) {
	m.entries[key] = value
}

// Get returns key's value and whether it was present.
func (m *EnvMap) Get(key string) (string, bool) {
	v, ok := m.entries[key]
	return v, ok
}

// Unset removes key if present.
func (m *EnvMap) Unset(key string) {
	delete(m.entries, key)
}

// Len reports the number of entries, used for LaunchReport.EnvVarCount.
func (m *EnvMap) Len() int {
	return len(m.entries)
}

// Pairs renders the map back into "KEY=VALUE" form suitable for
// exec.Cmd.Env. Order is unspecified.
func (m *EnvMap) Pairs() []string {
	out := make([]string, 0, len(m.entries))
	for k, v := range m.entries {
		out = append(out, k+"="+v)
	}
	return out
}

// ArgVec is the mutable argument vector under construction, argv[0]
// being the program to execute.
type ArgVec struct {
	args []string
}

// NewArgVec seeds an ArgVec with its initial program-and-arguments.
func NewArgVec(args ...string) *ArgVec {
	return &ArgVec{args: append([]string{}, args...)}
}

// PushFront prepends args, used by wrapping tinkers (e.g. a compositor
// or the power hook) so the wrapped command remains the tail.
func (a *ArgVec) PushFront(args ...string) {
	a.args = append(append([]string{}, args...), a.args...)
}

// Append adds args to the end of the vector.
func (a *ArgVec) Append(args ...string) {
	a.args = append(a.args, args...)
}

// Slice returns the current argv as a plain slice.
func (a *ArgVec) Slice() []string {
	return append([]string{}, a.args...)
}

// TinkerError is the error type returned by a tinker's lifecycle
// methods. Fatal errors short-circuit the launch; non-fatal ones are
// downgraded to a warning and the pipeline continues.
type TinkerError struct {
	Fatal   bool
	Message string
}

func (e *TinkerError) Error() string {
	return e.Message
}

// Warn builds a non-fatal TinkerError.
func Warn(message string) *TinkerError {
	return &TinkerError{Fatal: false, Message: message}
}

// Fatal builds a fatal TinkerError.
func Fatal(message string) *TinkerError {
	return &TinkerError{Fatal: true, Message: message}
}

// Tinker is a polymorphic capability record. Built-ins implement this
// interface directly rather than through embedding or inheritance.
type Tinker interface {
	ID() string
	Priority() int
	Applicable(ctx *Context) bool
	Prepare(ctx *Context) error
	ModifyEnv(ctx *Context, env *EnvMap) error
	ModifyArgv(ctx *Context, argv *ArgVec) error
}
