// Package rlog is a small leveled logger used by the driver and CLI to
// report progress without pulling in an external logging framework the
// rest of the retrieval pack never reaches for either.
package rlog
