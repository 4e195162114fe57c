package smoother

// CruiseStateParam holds the persisted STOCK/SMOOTH mode digit, the only
// state this package keeps across restarts.
const CruiseStateParam = "SccdCruiseState"

// Store is the narrow capability the smoother needs from the persistent
// settings store. The daemon backs it with the params directory; tests use
// an in-memory map.
type Store interface {
	Get(name string) ([]byte, error)
	Put(name string, data []byte) error
}
