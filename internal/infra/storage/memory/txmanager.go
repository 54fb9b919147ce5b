package memory

import "context"

type txKey struct{}

// TransactionManager сериализует транзакционные секции хранилища
// Отката нет: репозитории в памяти сами проверяют условия атомарно
type TransactionManager struct {
	store *Store
}

// NewTransactionManager создаёт менеджер транзакций для хранилища
func NewTransactionManager(store *Store) *TransactionManager {
	return &TransactionManager{store: store}
}

func (m *TransactionManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, fn)
}

func (m *TransactionManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, fn)
}

func (m *TransactionManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, fn)
}

func (m *TransactionManager) run(ctx context.Context, fn func(ctx context.Context) error) error {
	// Вложенные вызовы выполняются под уже захваченной блокировкой
	if ctx.Value(txKey{}) != nil {
		return fn(ctx)
	}

	m.store.txMu.Lock()
	defer m.store.txMu.Unlock()

	return fn(context.WithValue(ctx, txKey{}, struct{}{}))
}
