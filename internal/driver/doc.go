// Package driver composes the technology/tree readers, the buffer
// insertion engine, the materializer, and the tree writer into the single
// run spec.md §4.G and §6 describe: read two JSON files, run the engine,
// splice the chosen buffers into the tree, write the result, and print a
// textual report of what was inserted.
package driver
