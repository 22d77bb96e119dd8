// Package tape records every evaluation the calculator performs, like the
// paper tape of a desk calculator.
//
// A Recorder subscribes to calc.evaluated events and appends one Entry per
// event to a Store. MemoryStore keeps a bounded ring for the current run;
// SQLiteStore persists entries across runs in a single "entries" table.
package tape
