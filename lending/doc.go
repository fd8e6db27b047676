// Package lending is the merchant lending application built on the engine:
// merchants, customers and transactions tables, a post-insert hook that
// credits completed transactions to the merchant balance, and a Ledger for
// recording and summarizing transactions.
package lending
