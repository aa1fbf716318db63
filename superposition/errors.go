// SPDX-License-Identifier: MIT

package superposition

import "errors"

// ErrObservableShape indicates an observable that is not len(set) × grid.Len().
var ErrObservableShape = errors.New("superposition: observable shape mismatch")

const panicToleranceInvalid = "superposition: WithDegeneracyTolerance: tol must be finite and >= 0"
