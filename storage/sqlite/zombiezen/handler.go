package zombiezen

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/revelaction/textnorm/storage"
	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"
)

// ResultHandler persists normalization results in a results table: one row
// per document name, tokens as a JSON array.
type ResultHandler struct {
	pool *sqlitex.Pool
}

var _ storage.ResultRepository = (*ResultHandler)(nil)

// NewResultHandler creates a pool for dbPath and bootstraps the results
// schema.
func NewResultHandler(dbPath string) (*ResultHandler, error) {
	pool, err := NewPool(dbPath)
	if err != nil {
		return nil, err
	}

	if err := CreateSchemas(pool, "results.sql"); err != nil {
		pool.Close()
		return nil, err
	}

	return &ResultHandler{pool: pool}, nil
}

func (h *ResultHandler) Close() error {
	return h.pool.Close()
}

// Write upserts a result by name.
func (h *ResultHandler) Write(res storage.Result) error {
	conn, err := h.pool.Take(context.TODO())
	if err != nil {
		return err
	}
	defer h.pool.Put(conn)

	tokensJSON, err := json.Marshal(res.Tokens)
	if err != nil {
		return err
	}

	return sqlitex.Execute(conn, `
		INSERT INTO results (name, tokens, updated)
		VALUES (?, ?, strftime('%Y-%m-%dT%H:%M:%SZ', 'now'))
		ON CONFLICT(name) DO UPDATE SET
			tokens = excluded.tokens,
			updated = excluded.updated
	`, &sqlitex.ExecOptions{
		Args: []interface{}{res.Name, string(tokensJSON)},
	})
}

// Names returns the names of all stored results, sorted.
func (h *ResultHandler) Names() ([]string, error) {
	conn, err := h.pool.Take(context.TODO())
	if err != nil {
		return nil, err
	}
	defer h.pool.Put(conn)

	var names []string
	err = sqlitex.Execute(conn, "SELECT name FROM results ORDER BY name", &sqlitex.ExecOptions{
		ResultFunc: func(stmt *sqlite.Stmt) error {
			names = append(names, stmt.ColumnText(0))
			return nil
		},
	})
	if err != nil {
		return nil, err
	}

	return names, nil
}

// Read returns the stored result for a name.
func (h *ResultHandler) Read(name string) (storage.Result, error) {
	conn, err := h.pool.Take(context.TODO())
	if err != nil {
		return storage.Result{}, err
	}
	defer h.pool.Put(conn)

	res := storage.Result{Name: name}
	found := false

	err = sqlitex.Execute(conn, "SELECT tokens FROM results WHERE name = ? LIMIT 1", &sqlitex.ExecOptions{
		Args: []interface{}{name},
		ResultFunc: func(stmt *sqlite.Stmt) error {
			found = true
			return json.Unmarshal([]byte(stmt.ColumnText(0)), &res.Tokens)
		},
	})
	if err != nil {
		return storage.Result{}, err
	}
	if !found {
		return storage.Result{}, fmt.Errorf("result not found: %s", name)
	}

	return res, nil
}
