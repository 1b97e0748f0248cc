// Package rcdot writes an rctree.Store out as Graphviz DOT, for visual
// inspection of a tree before and after buffer insertion. It is not part
// of the engine's required contract; the driver wires it behind a
// --dot flag.
package rcdot
