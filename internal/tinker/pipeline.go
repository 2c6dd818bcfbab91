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

package tinker

import "fmt"

// Warning is a non-fatal issue surfaced by a tinker, carrying enough
// context to log without halting the launch.
type Warning struct {
	TinkerID string
	Message  string
}

// Run executes the three-phase pipeline protocol against the
// applicable subset of reg, in priority order: all prepare calls
// complete before any modify_env, and all modify_env before any
// modify_argv. A tinker whose call errors with Fatal
// aborts the whole launch immediately; a Warn error is recorded and
// that tinker is excluded from the pipeline's remaining phases, but
// the launch continues.
func Run(ctx *Context, reg *Registry, env *EnvMap, argv *ArgVec) ([]Warning, error) {
	var warnings []Warning

	applicable := make([]Tinker, 0, len(reg.All()))
	for _, t := range reg.All() {
		if t.Applicable(ctx) {
			applicable = append(applicable, t)
		}
	}

	failed := make(map[string]bool, len(applicable))

	for _, t := range applicable {
		if err := t.Prepare(ctx); err != nil {
			w, fatalErr := classify(t.ID(), "prepare", err)
			if fatalErr != nil {
				return warnings, fatalErr
			}
			warnings = append(warnings, *w)
			failed[t.ID()] = true
		}
	}

	for _, t := range applicable {
		if failed[t.ID()] {
			continue
		}
		if err := t.ModifyEnv(ctx, env); err != nil {
			w, fatalErr := classify(t.ID(), "modify_env", err)
			if fatalErr != nil {
				return warnings, fatalErr
			}
			warnings = append(warnings, *w)
			failed[t.ID()] = true
		}
	}

	for _, t := range applicable {
		if failed[t.ID()] {
			continue
		}
		if err := t.ModifyArgv(ctx, argv); err != nil {
			w, fatalErr := classify(t.ID(), "modify_argv", err)
			if fatalErr != nil {
				return warnings, fatalErr
			}
			warnings = append(warnings, *w)
			failed[t.ID()] = true
		}
	}

	return warnings, nil
}

// classify turns a tinker lifecycle error into either a recorded
// Warning or a fatal error, per the tinker's own classification (spec
// §7: "Tinkers classify their own errors"). A plain (non-TinkerError)
// error is treated as fatal, since it indicates a programming mistake
// rather than a deliberate classification.
func classify(tinkerID, phase string, err error) (*Warning, error) {
	te, ok := err.(*TinkerError)
	if !ok {
		return nil, fmt.Errorf("tinker %s: %s: %w", tinkerID, phase, err)
	}
	if te.Fatal {
		return nil, fmt.Errorf("tinker %s: %s: %s", tinkerID, phase, te.Message)
	}
	return &Warning{TinkerID: tinkerID, Message: te.Message}, nil
}
