// Package writers serializes the distance matrix.
//
// Design:
//   - Writers own all presentation knowledge: separators, the header row,
//     and which half of each row is printed.
//   - The engine stays domain-only; writers only read a finished matrix.
//   - Formats register themselves by name (tsv, arrow).
package writers
