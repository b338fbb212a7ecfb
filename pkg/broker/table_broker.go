// Package broker distributes backend table-change notifications in process.
// PocketBase record hooks publish into it; snapshot stores and the browser SSE
// stream subscribe. Any insert/update/delete on a table reaches every
// subscriber of that table — subscribers refetch the whole collection rather
// than patching, which keeps snapshots consistent at this data volume.
package broker

import "sync"

// Change describes one row mutation on a backend table.
type Change struct {
	Table     string `json:"table"`
	Action    string `json:"action"` // create | update | delete
	RecordID  string `json:"record_id"`
	Timestamp int64  `json:"timestamp"`
}

// AllTables subscribes to every table's changes (used by the SSE stream).
const AllTables = "*"

// TableBroker manages per-table change distribution.
type TableBroker struct {
	// table -> set of client channels
	clients map[string]map[chan Change]bool

	mutex sync.RWMutex
}

// NewTableBroker creates an empty broker.
func NewTableBroker() *TableBroker {
	return &TableBroker{
		clients: make(map[string]map[chan Change]bool),
	}
}

// Subscribe registers a new client channel for one table (or AllTables) and
// returns it. The channel is buffered so a slow consumer cannot block the
// publishing request handler.
func (b *TableBroker) Subscribe(table string) chan Change {
	b.mutex.Lock()
	defer b.mutex.Unlock()

	clientChan := make(chan Change, 16)
	if _, exists := b.clients[table]; !exists {
		b.clients[table] = make(map[chan Change]bool)
	}
	b.clients[table][clientChan] = true
	return clientChan
}

// Unsubscribe releases a client channel. Required on consumer teardown so
// listeners do not accumulate across navigations.
func (b *TableBroker) Unsubscribe(table string, clientChan chan Change) {
	b.mutex.Lock()
	defer b.mutex.Unlock()

	if clients, exists := b.clients[table]; exists {
		if clients[clientChan] {
			delete(clients, clientChan)
			close(clientChan)
		}
		if len(clients) == 0 {
			delete(b.clients, table)
		}
	}
}

// Publish fans a change out to the table's subscribers and to wildcard
// subscribers. Clients that are not ready are skipped, never waited on.
func (b *TableBroker) Publish(change Change) {
	b.mutex.RLock()
	defer b.mutex.RUnlock()

	for _, table := range []string{change.Table, AllTables} {
		for clientChan := range b.clients[table] {
			select {
			case clientChan <- change:
			default:
				// Client not ready, skip to avoid blocking
			}
		}
	}
}

// Stats returns the subscriber count per table.
func (b *TableBroker) Stats() map[string]int {
	b.mutex.RLock()
	defer b.mutex.RUnlock()

	stats := make(map[string]int, len(b.clients))
	for table, clients := range b.clients {
		stats[table] = len(clients)
	}
	return stats
}
