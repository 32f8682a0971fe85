// Package balance keeps the side table of last known balances, keyed by address.
//
// Records are independent of each other: a pending or failed fetch for one address
// never touches the record of another. A failed fetch keeps the last known balance.
package balance

import (
	"math/big"
	"sort"
	"sync"
	"time"

	"github.com/cryptowall/go-wallet/internal/wallet/chain"
	"github.com/dropbox/godropbox/time2"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// Record is the last known balance of an address
type Record struct {
	Address string
	Chain   chain.ID
	Raw     *big.Int        // base units (lamports or wei), nil until the first successful fetch
	Balance decimal.Decimal // whole units (SOL or ETH)
	// UpdatedAt is the time of the last successful fetch
	UpdatedAt time.Time
	// Pending is set while at least one fetch for the address is in flight
	Pending bool
	Err     error

	inFlight int
}

// Known reports whether at least one fetch succeeded.
func (r Record) Known() bool {
	return r.Raw != nil
}

// Table is a concurrency safe balance table
type Table struct {
	mu      sync.RWMutex
	clock   time2.Clock
	records map[string]*Record
}

// NewTable creates an empty balance table stamping records with clock.
func NewTable(clock time2.Clock) *Table {
	return &Table{
		clock:   clock,
		records: make(map[string]*Record),
	}
}

// ToWholeUnits converts base units into whole units of the chain's native currency
// (lamports / 1e9, wei / 1e18) without rounding.
func ToWholeUnits(chainID chain.ID, raw *big.Int) (decimal.Decimal, error) {
	info, err := chainID.Info()
	if err != nil {
		return decimal.Zero, err
	}
	if raw == nil {
		return decimal.Zero, errors.New("raw balance is nil")
	}

	return decimal.NewFromBigInt(raw, -info.Decimals), nil
}

// MarkPending flags a fetch for address as in flight.
func (t *Table) MarkPending(addr string, chainID chain.ID) {
	t.mu.Lock()
	defer t.mu.Unlock()

	r := t.recordLocked(addr, chainID)
	r.inFlight++
	r.Pending = true
}

// Set stores a successfully fetched balance.
func (t *Table) Set(addr string, chainID chain.ID, raw *big.Int) (Record, error) {
	whole, err := ToWholeUnits(chainID, raw)
	if err != nil {
		return Record{}, err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	r := t.recordLocked(addr, chainID)
	r.Raw = new(big.Int).Set(raw)
	r.Balance = whole
	r.UpdatedAt = t.clock.Now()
	r.finishFetch()
	r.Err = nil

	return r.copy(), nil
}

// MarkFailed records a failed fetch. The last known balance of addr is kept.
func (t *Table) MarkFailed(addr string, chainID chain.ID, fetchErr error) Record {
	t.mu.Lock()
	defer t.mu.Unlock()

	r := t.recordLocked(addr, chainID)
	r.finishFetch()
	r.Err = fetchErr

	return r.copy()
}

// Get returns the record of addr.
func (t *Table) Get(addr string) (Record, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	r, ok := t.records[addr]
	if !ok {
		return Record{}, false
	}

	return r.copy(), true
}

// All returns every record ordered by address.
func (t *Table) All() []Record {
	t.mu.RLock()
	defer t.mu.RUnlock()

	records := make([]Record, 0, len(t.records))
	for _, r := range t.records {
		records = append(records, r.copy())
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].Address < records[j].Address
	})

	return records
}

func (t *Table) recordLocked(addr string, chainID chain.ID) *Record {
	r, ok := t.records[addr]
	if !ok {
		r = &Record{Address: addr, Chain: chainID}
		t.records[addr] = r
	}

	return r
}

func (r *Record) finishFetch() {
	if r.inFlight > 0 {
		r.inFlight--
	}
	r.Pending = r.inFlight > 0
}

func (r *Record) copy() Record {
	c := *r
	if r.Raw != nil {
		c.Raw = new(big.Int).Set(r.Raw)
	}

	return c
}
