// Package reports composes financial statements from aggregated ledger rows.
//
// Every builder is a pure function: it receives rows already fetched by the
// aggregation source and never touches storage. Money is rounded to two
// decimals after each combination so totals agree across statements.
package reports
