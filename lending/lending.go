package lending

import (
	"kopadb/database"
	"kopadb/schema"
	"kopadb/storage"
	"kopadb/table"
)

const (
	Merchants    = "merchants"
	Customers    = "customers"
	Transactions = "transactions"
)

const (
	StatusPending  = "pending"
	StatusComplete = "complete"
	StatusFailed   = "failed"
)

var tables = []struct {
	name    string
	columns []schema.Column
}{
	{Merchants, []schema.Column{
		{Name: "id", Type: schema.TypeText},
		{Name: "name", Type: schema.TypeText},
		{Name: "balance", Type: schema.TypeFloat},
		{Name: "created_at", Type: schema.TypeTimestamp},
	}},
	{Customers, []schema.Column{
		{Name: "id", Type: schema.TypeText},
		{Name: "name", Type: schema.TypeText},
		{Name: "email", Type: schema.TypeText},
		{Name: "created_at", Type: schema.TypeTimestamp},
	}},
	{Transactions, []schema.Column{
		{Name: "id", Type: schema.TypeText},
		{Name: "merchant_id", Type: schema.TypeText},
		{Name: "customer_id", Type: schema.TypeText},
		{Name: "amount", Type: schema.TypeFloat},
		{Name: "status", Type: schema.TypeText},
		{Name: "timestamp", Type: schema.TypeTimestamp},
		{Name: "fraud_flag", Type: schema.TypeText},
	}},
}

// Install creates the lending tables that do not exist yet and registers
// the merchant balance hook on transactions.
func Install(db *database.Database) error {
	for _, t := range tables {
		if db.TableExists(t.name) {
			continue
		}
		if _, err := db.CreateTable(t.name, t.columns, database.WithPrimaryKey("id")); err != nil {
			return err
		}
	}
	db.OnInsert(Transactions, BalanceHook)
	return nil
}

// Seed adds a default merchant and customer to empty tables.
func Seed(db *database.Database) error {
	seeds := []struct {
		table string
		row   map[string]interface{}
	}{
		{Merchants, map[string]interface{}{"id": "1", "name": "Pesapal", "balance": 0.0}},
		{Customers, map[string]interface{}{"id": "1", "name": "Ivy", "email": "ivy@example.com"}},
	}
	for _, s := range seeds {
		t, err := db.Table(s.table)
		if err != nil {
			return err
		}
		if t.Len() > 0 {
			continue
		}
		if _, err := db.InsertMap(s.table, s.row); err != nil {
			return err
		}
	}
	return nil
}

// BalanceHook adds the amount of a completed transaction to its merchant's
// balance. A missing merchants table or merchant is not an error.
func BalanceHook(db *database.Database, _ string, row *storage.Row) error {
	if status, _ := row.Value("status").AsText(); status != StatusComplete {
		return nil
	}
	merchants, err := db.Table(Merchants)
	if err != nil {
		return nil
	}

	byID := []table.Filter{{Column: "id", Value: row.Value("merchant_id")}}
	matched, err := merchants.Select(byID)
	if err != nil || len(matched) == 0 {
		return err
	}
	amount, _ := row.Value("amount").AsFloat()
	balance, _ := matched[0].Value("balance").AsFloat()

	_, err = merchants.Update(byID, map[string]schema.Value{"balance": schema.Float(balance + amount)})
	return err
}
