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

import "sort"

// Registry is the ordered collection of known tinkers, sorted by
// ascending priority with ties broken by registration order (spec
// §4.5: "smaller runs earlier; stable order for ties").
type Registry struct {
	tinkers []Tinker
}

// NewRegistry builds a Registry from an unordered set of tinkers.
func NewRegistry(tinkers ...Tinker) *Registry {
	r := &Registry{tinkers: append([]Tinker{}, tinkers...)}
	sort.SliceStable(r.tinkers, func(i, j int) bool {
		return r.tinkers[i].Priority() < r.tinkers[j].Priority()
	})
	return r
}

// All returns every registered tinker in priority order.
func (r *Registry) All() []Tinker {
	return r.tinkers
}

// ByID returns the tinker with the given id, if registered.
func (r *Registry) ByID(id string) (Tinker, bool) {
	for _, t := range r.tinkers {
		if t.ID() == id {
			return t, true
		}
	}
	return nil, false
}
