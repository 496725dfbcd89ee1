// Package folio reconstructs the current composition of a set of holdings
// from an append-only transaction ledger, and derives allocation,
// performance and risk reports from it.
//
// The package is a pure computation engine. It never persists derived
// state and never reaches the network on its own: live quotes and price
// histories are supplied by callers through the QuoteProvider and
// SeriesProvider interfaces. Positions and cash balances are recomputed
// from the full ordered ledger on every read, which keeps the ledger the
// single source of truth.
package folio
