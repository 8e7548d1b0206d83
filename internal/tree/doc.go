// Package tree turns a text template into colored display units.
//
// Template characters fall into three classes:
//
//   - stars: '*' and the blink identifiers '1'-'4', always drawn as '*'
//   - trunk: '|' and '-', drawn as themselves in a fixed color
//   - anything else: a non-breaking blank
//
// [Render] writes the units into a [Target]. [Canvas] is the in-memory
// target; it keeps star handles so colors can change later without
// rendering again.
package tree
