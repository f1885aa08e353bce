// SPDX-License-Identifier: MIT

// Package dial folds signed rotations over a circular 0..99 dial that starts
// at 50, counting how often the pointer reaches 0.
//
// Two counting rules are provided:
//
//   - Stops (StepStop): count rotations that end exactly on 0.
//   - Crossings (StepCross): count every click that passes through or lands
//     on 0, including several full turns within one rotation.
//
// Crossings are computed from the floor-division difference of the unbounded
// positions before and after a rotation, corrected for leftward rotations
// that start or end on 0:
//
//	left, ends on 0, starts on 0  → no correction
//	left, ends on 0, starts off 0 → +1
//	left, ends off 0, starts on 0 → −1
//	anything else                 → no correction
//
// Both folds are O(1) per rotation.
package dial
