// SPDX-License-Identifier: MIT

// Package dataset reads and appends the flat text files that hold training
// examples.
//
// Feature file: one example per line, values separated by single spaces.
// Label file: one integer class id per line, index-aligned with the
// feature file. Writers emit a space after every value and a trailing
// newline; readers accept that and also skip blank lines, so anything
// AppendExample writes reads back unchanged.
package dataset
