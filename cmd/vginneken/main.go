// Command vginneken reads a technology file and an RC tree file, inserts
// buffers along the tree's edges to meet timing, and writes the
// materialized tree back out as JSON.
package main

import "github.com/vginneken/bufferinsert/cmd/vginneken/cmd"

func main() {
	cmd.Execute()
}
