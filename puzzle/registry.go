// SPDX-License-Identifier: MIT

package puzzle

import (
	"fmt"
	"slices"
)

// All returns every solver in day order.
func All() []Solver {
	return []Solver{
		SecretEntrance{},
		GiftShop{},
		Lobby{},
		PrintingDepartment{},
		Cafeteria{},
	}
}

// Days returns the registered day numbers in ascending order.
func Days() []int {
	all := All()
	days := make([]int, len(all))
	for i, s := range all {
		days[i] = s.Day()
	}
	slices.Sort(days)

	return days
}

// Lookup returns the solver for day, or ErrUnknownDay.
func Lookup(day int) (Solver, error) {
	for _, s := range All() {
		if s.Day() == day {
			return s, nil
		}
	}

	return nil, fmt.Errorf("%w: %d", ErrUnknownDay, day)
}
