// Package rcio reads the technology/module configuration and RC tree from
// JSON, and writes the (possibly materialized) tree back out, per the
// schemas fixed in spec.md §6. No JSON library appears anywhere in the
// retrieval pack, so this package uses encoding/json directly; see
// DESIGN.md for why that is the one stdlib-only exception.
package rcio
