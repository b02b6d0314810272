// SPDX-License-Identifier: MIT

// Package render turns generated tasks into plain-text problem statements:
// a cost grid with supply column and demand row for transportation tasks,
// an objective line with a constraint block and nonnegativity line for LP
// tasks. The output is stable for a fixed instance and suitable for
// monospaced PDF embedding.
//
// Rendering never defends against malformed shapes — generators and
// persist.ReadSet guarantee validated instances.
package render
