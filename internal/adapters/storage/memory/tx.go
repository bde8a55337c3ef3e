package memory

import (
	"context"
	"sync"
)

type journalKey struct{}

// journal acumula las operaciones inversas de una transacción en curso.
type journal struct {
	undo []func()
}

// Transactor serializa las transacciones del store en memoria y deshace
// las escrituras si fn falla. Las escrituras fuera de WithinTx no esperan al lock.
type Transactor struct {
	mu sync.Mutex
}

func NewTransactor() *Transactor {
	return &Transactor{}
}

func (t *Transactor) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	// Anidada: se suma a la transacción externa.
	if _, ok := ctx.Value(journalKey{}).(*journal); ok {
		return fn(ctx)
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	j := &journal{}
	if err := fn(context.WithValue(ctx, journalKey{}, j)); err != nil {
		for i := len(j.undo) - 1; i >= 0; i-- {
			j.undo[i]()
		}
		return err
	}
	return nil
}

// onRollback registra undo si ctx lleva una transacción; si no, no hace nada.
func onRollback(ctx context.Context, undo func()) {
	if j, ok := ctx.Value(journalKey{}).(*journal); ok {
		j.undo = append(j.undo, undo)
	}
}
