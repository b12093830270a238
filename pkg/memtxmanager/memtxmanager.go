package memtxmanager

import (
	"context"
	"sync"
)

// TransactionManager менеджер транзакций для in-memory хранилища.
// Транзакций БД здесь нет, поэтому DoSerializable выполняет fn под
// общим мьютексом: проверка и запись внутри сериализуемой секции не
// перемежаются с конкурентными вызовами. Do и DoReadOnly выполняют fn
// как есть, коллекции хранилища защищены собственными мьютексами.
type TransactionManager struct {
	mu sync.Mutex
}

// NewTransactionManager создает менеджер транзакций для in-memory хранилища
func NewTransactionManager() *TransactionManager {
	return &TransactionManager{}
}

// Do выполняет fn как есть
func (m *TransactionManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// DoSerializable выполняет fn под общим мьютексом
func (m *TransactionManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return fn(ctx)
}

// DoReadOnly выполняет fn как есть
func (m *TransactionManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
