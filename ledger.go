// Package ledger is the shared-expense ledger and debt-settlement
// engine. The surrounding assistant embeds it in-process: it records
// who paid for what, splits costs among group members, derives net
// bilateral balances, and settles debts between pairs of users.
//
// Open wires the storage backend and the four components together;
// everything else is invoked through the Engine's services.
package ledger

import (
	"github.com/Felypee/monedita-backend-sub001/internal/config"
	"github.com/Felypee/monedita-backend-sub001/internal/service"
	"github.com/Felypee/monedita-backend-sub001/internal/storage/sqlite"
	"github.com/Felypee/monedita-backend-sub001/pkg/logging"
)

// Engine bundles the ledger's components over one shared store. It is
// safe for concurrent use; all state lives in the store.
type Engine struct {
	Groups      *service.GroupService
	Expenses    *service.ExpenseService
	Balances    *service.BalanceService
	Settlements *service.SettlementService

	store *sqlite.SQLiteStore
}

// Open creates an Engine backed by the SQLite database at cfg.DBPath
// and configures logging at cfg.LogLevel.
func Open(cfg config.Config) (*Engine, error) {
	logging.Setup(cfg.LogLevel)

	store, err := sqlite.New(cfg.DBPath)
	if err != nil {
		return nil, err
	}

	return &Engine{
		Groups:      service.NewGroupService(store),
		Expenses:    service.NewExpenseService(store),
		Balances:    service.NewBalanceService(store),
		Settlements: service.NewSettlementService(store),
		store:       store,
	}, nil
}

// OpenFromEnv is Open with configuration read from the environment
// (LEDGER_DB_PATH, LOG_LEVEL).
func OpenFromEnv() (*Engine, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	return Open(cfg)
}

// Close releases the underlying store.
func (e *Engine) Close() error {
	return e.store.Close()
}
