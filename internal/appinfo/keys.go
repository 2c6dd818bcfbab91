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
	"sort"
	"strconv"

	"github.com/stl-next/stl-next/internal/vdf"
)

// orderedNumericKeys returns m's keys that parse as non-negative
// integers, sorted in ascending numeric order. Non-numeric keys are
// dropped; launch slots are always numeric.
func orderedNumericKeys(m *vdf.Map) []string {
	type pair struct {
		key string
		n   int
	}
	var pairs []pair
	for _, k := range m.Keys() {
		n, err := strconv.Atoi(k)
		if err != nil || n < 0 {
			continue
		}
		pairs = append(pairs, pair{key: k, n: n})
	}
	sort.Slice(pairs, func(i, j int) bool { return pairs[i].n < pairs[j].n })

	out := make([]string, len(pairs))
	for i, p := range pairs {
		out[i] = p.key
	}
	return out
}
