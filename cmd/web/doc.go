// Package web serves the lending application as a JSON API.
//
// API Endpoints:
//   - GET /transactions: transactions with merchant and customer names, plus
//     revenue and pending, failed and fraud counts
//   - POST /transactions: record {merchant_id, customer_id, amount, status}
//   - GET /merchants, GET /customers: raw table rows
package web
