// Package predicate evaluates structured filter predicates against records.
//
// A predicate is either a Leaf, which reads one value from a record and
// compares it against an operand, or a Group, which combines child predicates
// with And or Or.
//
//	status, _ := predicate.New(predicate.Spec{
//		ID:      "status",
//		Type:    "str",
//		Op:      predicate.Contains,
//		Operand: "progress",
//		Role:    "status",
//	})
//	ok := status.Accepts(rec)
//
// Comparison semantics depend on the data type:
//
//   - str: Contains is a case-insensitive literal substring test
//   - number: numeric strings are coerced, nil never orders
//   - list: Contains tests membership of any operand element
//   - date_time: values are compared by date bucket ("Today", "Last Week")
//
// Operators are validated when a predicate is constructed. Evaluating a
// predicate whose operator does not fit its type panics with *OpError.
package predicate
