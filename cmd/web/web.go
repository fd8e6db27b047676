package web

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"

	"github.com/sirupsen/logrus"

	"kopadb/database"
	"kopadb/lending"
)

// LendingApp is a JSON API over the lending ledger. net/http serves requests
// concurrently, so every handler runs under mu.
type LendingApp struct {
	mu     sync.Mutex
	db     *database.Database
	ledger *lending.Ledger
	log    logrus.FieldLogger
}

func New(db *database.Database, log logrus.FieldLogger) *LendingApp {
	return &LendingApp{db: db, ledger: lending.NewLedger(db, log), log: log}
}

// Initialize installs the lending tables and seeds them when empty.
func (app *LendingApp) Initialize() error {
	if err := lending.Install(app.db); err != nil {
		return err
	}
	return lending.Seed(app.db)
}

// Handler routes the API endpoints.
func (app *LendingApp) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/transactions", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			app.handleGetTransactions(w, r)
		case http.MethodPost:
			app.handleAddTransaction(w, r)
		default:
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	})
	mux.HandleFunc("/merchants", app.handleGetTable(lending.Merchants))
	mux.HandleFunc("/customers", app.handleGetTable(lending.Customers))
	return app.serialize(mux)
}

// serialize lets one request at a time reach the database.
func (app *LendingApp) serialize(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		app.mu.Lock()
		defer app.mu.Unlock()
		next.ServeHTTP(w, r)
	})
}

type transactionView struct {
	Transaction  interface{} `json:"transaction"`
	MerchantName string      `json:"merchant_name"`
	CustomerName string      `json:"customer_name"`
}

type dashboard struct {
	Transactions []transactionView `json:"transactions"`
	TotalRevenue float64           `json:"total_revenue"`
	PendingCount int               `json:"pending_count"`
	FailedCount  int               `json:"failed_count"`
	FraudCount   int               `json:"fraud_count"`
}

func (app *LendingApp) handleGetTransactions(w http.ResponseWriter, r *http.Request) {
	entries, err := app.ledger.Entries()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	summary, err := app.ledger.Summary()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	resp := dashboard{
		Transactions: make([]transactionView, 0, len(entries)),
		TotalRevenue: summary.TotalRevenue,
		PendingCount: summary.Pending,
		FailedCount:  summary.Failed,
		FraudCount:   summary.Fraud,
	}
	for _, e := range entries {
		resp.Transactions = append(resp.Transactions, transactionView{
			Transaction:  e.Transaction,
			MerchantName: e.MerchantName,
			CustomerName: e.CustomerName,
		})
	}
	app.writeJSON(w, http.StatusOK, resp)
}

type addTransactionRequest struct {
	MerchantID string  `json:"merchant_id"`
	CustomerID string  `json:"customer_id"`
	Amount     float64 `json:"amount"`
	Status     string  `json:"status"`
}

func (app *LendingApp) handleAddTransaction(w http.ResponseWriter, r *http.Request) {
	var req addTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	row, err := app.ledger.Record(req.MerchantID, req.CustomerID, req.Amount, req.Status)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	app.writeJSON(w, http.StatusCreated, map[string]interface{}{"message": "Transaction added", "transaction": row})
}

func (app *LendingApp) handleGetTable(name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		rows, err := app.db.SelectAll(name)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		app.writeJSON(w, http.StatusOK, rows)
	}
}

func (app *LendingApp) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		app.log.WithError(err).Error("encode response")
	}
}

// RunServer initializes the lending app and serves its API on addr.
func RunServer(db *database.Database, log logrus.FieldLogger, addr string) error {
	app := New(db, log)
	if err := app.Initialize(); err != nil {
		return fmt.Errorf("error initializing lending app: %w", err)
	}

	log.WithField("addr", addr).Info("lending API listening")
	if err := http.ListenAndServe(addr, app.Handler()); err != nil {
		return fmt.Errorf("error starting server: %w", err)
	}
	return nil
}
