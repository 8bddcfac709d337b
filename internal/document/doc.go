// Package document parses the input JSON and exposes it as a tagged union
// of object, array, string, number, boolean and null values.
//
// Every access narrows explicitly: Object and Array return a *TypeError when
// the value has another kind, and Require returns a *MissingFieldError when a
// key on the path is absent or null. Nothing panics on an unexpected shape.
//
// # Absent values
//
// Looking up a key that does not exist yields a Value of KindMissing instead
// of nil, so callers can treat "absent" and "null" the same way through
// IsAbsent while still telling them apart through Kind.
//
// # Text rendering
//
// Text renders a scalar the way it is written into a CSV cell:
//   - strings verbatim
//   - numbers in their shortest round-trip form ("10", "2.5", "1e+21")
//   - booleans as "true" or "false"
//   - null and absent values as ""
//   - objects and arrays as compact JSON
package document
