// Package invest is the aggregation and valuation engine behind the tin
// command: it turns raw brokerage positions and operation records into a
// currency-aware Portfolio snapshot and per-instrument history ledgers.
//
// The engine is synchronous, pure and stateless: given the same inputs it
// returns the same outputs, with no shared state and no I/O. Fetching data
// from the remote API is the tinvest package's concern; turning the results
// into text is the renderer package's concern.
package invest
