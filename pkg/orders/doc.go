// Package orders implements the order list pipeline: the filter engine, the
// incremental paginator, and the status aggregator, plus Board, which owns
// the criteria and cursor state a dashboard page threads through them.
//
// Every function here is pure and synchronous. The only mutable state is the
// pagination cursor, held by a Paginator value owned by its caller.
package orders
