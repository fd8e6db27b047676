package lending

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"kopadb/database"
	"kopadb/storage"
)

// FraudThreshold is the amount above which a transaction is flagged.
const FraudThreshold = 10000.0

// Ledger records transactions and summarizes them.
type Ledger struct {
	db    *database.Database
	log   logrus.FieldLogger
	newID func() string
}

// NewLedger creates a ledger over a database with the lending tables installed.
func NewLedger(db *database.Database, log logrus.FieldLogger) *Ledger {
	return &Ledger{db: db, log: log, newID: uuid.NewString}
}

// Record validates and stores one transaction. An empty status means pending.
func (l *Ledger) Record(merchantID, customerID string, amount float64, status string) (*storage.Row, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("amount must be positive, got %v", amount)
	}
	if status == "" {
		status = StatusPending
	}
	switch status {
	case StatusPending, StatusComplete, StatusFailed:
	default:
		return nil, fmt.Errorf("invalid status %q", status)
	}

	fraud := "No"
	if amount > FraudThreshold {
		fraud = "Yes"
	}
	row, err := l.db.InsertMap(Transactions, map[string]interface{}{
		"id":          l.newID(),
		"merchant_id": merchantID,
		"customer_id": customerID,
		"amount":      amount,
		"status":      status,
		"fraud_flag":  fraud,
	})
	if err != nil {
		return row, err
	}
	l.log.WithFields(logrus.Fields{
		"id":       row.Value("id").String(),
		"merchant": merchantID,
		"amount":   amount,
		"status":   status,
	}).Info("transaction recorded")
	return row, nil
}

// Summary is the dashboard view of all transactions.
type Summary struct {
	TotalRevenue float64
	Pending      int
	Failed       int
	Fraud        int
}

// Summary totals completed revenue and counts pending, failed and flagged
// transactions.
func (l *Ledger) Summary() (Summary, error) {
	rows, err := l.db.SelectAll(Transactions)
	if err != nil {
		return Summary{}, err
	}
	var s Summary
	for _, r := range rows {
		status, _ := r.Value("status").AsText()
		switch status {
		case StatusComplete:
			amount, _ := r.Value("amount").AsFloat()
			s.TotalRevenue += amount
		case StatusPending:
			s.Pending++
		case StatusFailed:
			s.Failed++
		}
		if flag, _ := r.Value("fraud_flag").AsText(); flag == "Yes" {
			s.Fraud++
		}
	}
	return s, nil
}

// Entry is a transaction with its merchant and customer names resolved.
type Entry struct {
	Transaction  *storage.Row
	MerchantName string
	CustomerName string
}

// Entries lists transactions in insertion order. Unknown references get a
// placeholder name.
func (l *Ledger) Entries() ([]Entry, error) {
	rows, err := l.db.SelectAll(Transactions)
	if err != nil {
		return nil, err
	}
	merchants, err := l.names(Merchants)
	if err != nil {
		return nil, err
	}
	customers, err := l.names(Customers)
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(rows))
	for _, r := range rows {
		e := Entry{Transaction: r, MerchantName: "Unknown Merchant", CustomerName: "Unknown Customer"}
		if name, ok := merchants[r.Value("merchant_id").String()]; ok {
			e.MerchantName = name
		}
		if name, ok := customers[r.Value("customer_id").String()]; ok {
			e.CustomerName = name
		}
		entries = append(entries, e)
	}
	return entries, nil
}

func (l *Ledger) names(tableName string) (map[string]string, error) {
	rows, err := l.db.SelectAll(tableName)
	if err != nil {
		return nil, err
	}
	out := make(map[string]string, len(rows))
	for _, r := range rows {
		out[r.Value("id").String()] = r.Value("name").String()
	}
	return out, nil
}
