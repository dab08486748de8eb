// Package assertions provides the named checks used inside test procedures.
//
// Supported checks:
//   - Condition checks (True, False, Fail)
//   - Structural equality (Equals, NotEquals), including nested slices of any rank
//   - Identity (Same, NotSame)
//   - Presence (Null, NotNull)
//   - Tolerance equality for floats and float sequences (EqualsWithin, NotEqualsWithin)
//   - JSON document equality (JSONEquals)
//
// Every check returns nil when it holds and a *Failure otherwise. Checks have
// no side effects, so a procedure can return the first failure directly:
//
//	func() error {
//		return assertions.First(
//			assertions.Equals(2, add(1, 1), "add"),
//			assertions.EqualsWithin(0.3, 0.1+0.2, 1e-9),
//		)
//	}
//
// The trailing msgAndArgs of every check is either a plain message or a format
// string followed by its arguments.
package assertions
