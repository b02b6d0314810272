// SPDX-License-Identifier: MIT
// Package: opgen/transport
//
// types.go — Ledger, CostTable and Instance with order-preserving JSON.
//
// Design:
//   • Go maps do not preserve insertion order, but the document contract
//     requires deterministic display order (A1..An, B1..Bm). Ledger and
//     CostTable therefore pair a label slice with a value map and emit
//     JSON objects manually, keys in insertion order.
//   • UnmarshalJSON walks the token stream so that order survives a
//     round-trip through persisted documents.

package transport

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// TypeName is the tagged-union discriminator carried by serialized
// transport tasks.
const TypeName = "transport_task"

// Ledger is an insertion-ordered mapping from node label to a quantity
// (supply or demand). The zero value is NOT ready; use NewLedger.
type Ledger struct {
	labels []string
	values map[string]int
}

// NewLedger returns an empty Ledger.
func NewLedger() *Ledger {
	return &Ledger{values: make(map[string]int)}
}

// Set inserts or overwrites the quantity for label. First insertion fixes
// the label's position in the display order.
func (l *Ledger) Set(label string, qty int) {
	if l.values == nil {
		l.values = make(map[string]int)
	}
	if _, seen := l.values[label]; !seen {
		l.labels = append(l.labels, label)
	}
	l.values[label] = qty
}

// Get returns the quantity for label and whether it is present.
func (l *Ledger) Get(label string) (int, bool) {
	qty, ok := l.values[label]
	return qty, ok
}

// Labels returns the labels in insertion order (a copy).
func (l *Ledger) Labels() []string {
	out := make([]string, len(l.labels))
	copy(out, l.labels)
	return out
}

// Len returns the number of entries.
func (l *Ledger) Len() int { return len(l.labels) }

// Sum returns the total of all quantities.
func (l *Ledger) Sum() int {
	var total int
	for _, label := range l.labels {
		total += l.values[label]
	}
	return total
}

// MarshalJSON emits a JSON object with keys in insertion order.
func (l *Ledger) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, label := range l.labels {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(label)
		if err != nil {
			return nil, fmt.Errorf("ledger: marshal key %q: %w", label, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.WriteString(strconv.Itoa(l.values[label]))
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads a JSON object preserving key order.
func (l *Ledger) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("ledger: %w", err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("ledger: expected object, got %v", tok)
	}

	l.labels = nil
	l.values = make(map[string]int)
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("ledger: %w", err)
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("ledger: expected string key, got %v", keyTok)
		}
		valTok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("ledger: value for %q: %w", key, err)
		}
		num, ok := valTok.(json.Number)
		if !ok {
			return fmt.Errorf("ledger: value for %q is not a number", key)
		}
		qty, err := num.Int64()
		if err != nil {
			return fmt.Errorf("ledger: value for %q is not an integer: %w", key, err)
		}
		l.Set(key, int(qty))
	}
	if _, err = dec.Token(); err != nil { // closing '}'
		return fmt.Errorf("ledger: %w", err)
	}
	return nil
}

// CostTable is an insertion-ordered supplier→(consumer→cost) mapping.
// The zero value is NOT ready; use NewCostTable.
type CostTable struct {
	suppliers []string
	rows      map[string]*Ledger
}

// NewCostTable returns an empty CostTable.
func NewCostTable() *CostTable {
	return &CostTable{rows: make(map[string]*Ledger)}
}

// Set records the unit cost of shipping from supplier to consumer.
func (t *CostTable) Set(supplier, consumer string, cost int) {
	if t.rows == nil {
		t.rows = make(map[string]*Ledger)
	}
	row, seen := t.rows[supplier]
	if !seen {
		row = NewLedger()
		t.rows[supplier] = row
		t.suppliers = append(t.suppliers, supplier)
	}
	row.Set(consumer, cost)
}

// Cost returns the cost cell and whether it is present.
func (t *CostTable) Cost(supplier, consumer string) (int, bool) {
	row, ok := t.rows[supplier]
	if !ok {
		return 0, false
	}
	return row.Get(consumer)
}

// Row returns the ordered consumer→cost ledger for supplier.
func (t *CostTable) Row(supplier string) (*Ledger, bool) {
	row, ok := t.rows[supplier]
	return row, ok
}

// Suppliers returns the supplier labels in insertion order (a copy).
func (t *CostTable) Suppliers() []string {
	out := make([]string, len(t.suppliers))
	copy(out, t.suppliers)
	return out
}

// MarshalJSON emits a nested JSON object with all keys in insertion order.
func (t *CostTable) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, supplier := range t.suppliers {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(supplier)
		if err != nil {
			return nil, fmt.Errorf("costs: marshal key %q: %w", supplier, err)
		}
		row, err := t.rows[supplier].MarshalJSON()
		if err != nil {
			return nil, fmt.Errorf("costs: row %q: %w", supplier, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(row)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads a nested JSON object preserving key order.
func (t *CostTable) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("costs: %w", err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("costs: expected object, got %v", tok)
	}

	t.suppliers = nil
	t.rows = make(map[string]*Ledger)
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("costs: %w", err)
		}
		supplier, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("costs: expected string key, got %v", keyTok)
		}
		row := NewLedger()
		if err := dec.Decode(row); err != nil {
			return fmt.Errorf("costs: row %q: %w", supplier, err)
		}
		t.suppliers = append(t.suppliers, supplier)
		t.rows[supplier] = row
	}
	if _, err = dec.Token(); err != nil { // closing '}'
		return fmt.Errorf("costs: %w", err)
	}
	return nil
}

// Instance is one closed-type transportation problem. Instances are value
// records: created in a single Generate pass and never mutated afterwards.
type Instance struct {
	Suppliers   *Ledger
	Consumers   *Ledger
	Costs       *CostTable
	TotalSupply int
	TotalDemand int
}

// instanceWire fixes the serialized field order of the document contract.
type instanceWire struct {
	Type        string     `json:"type"`
	Suppliers   *Ledger    `json:"suppliers"`
	Consumers   *Ledger    `json:"consumers"`
	Costs       *CostTable `json:"costs"`
	TotalSupply int        `json:"total_supply"`
	TotalDemand int        `json:"total_demand"`
}

// MarshalJSON emits the document shape with the type discriminator first.
func (in *Instance) MarshalJSON() ([]byte, error) {
	return json.Marshal(instanceWire{
		Type:        TypeName,
		Suppliers:   in.Suppliers,
		Consumers:   in.Consumers,
		Costs:       in.Costs,
		TotalSupply: in.TotalSupply,
		TotalDemand: in.TotalDemand,
	})
}

// UnmarshalJSON reads the document shape. Additive unknown fields are
// tolerated; a foreign type discriminator is not.
func (in *Instance) UnmarshalJSON(data []byte) error {
	wire := instanceWire{
		Suppliers: NewLedger(),
		Consumers: NewLedger(),
		Costs:     NewCostTable(),
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	if wire.Type != "" && wire.Type != TypeName {
		return fmt.Errorf("transport: unexpected type %q: %w", wire.Type, ErrMalformedInstance)
	}
	in.Suppliers = wire.Suppliers
	in.Consumers = wire.Consumers
	in.Costs = wire.Costs
	in.TotalSupply = wire.TotalSupply
	in.TotalDemand = wire.TotalDemand
	// Older documents may omit the totals; derive them from the ledgers.
	if in.TotalSupply == 0 {
		in.TotalSupply = in.Suppliers.Sum()
	}
	if in.TotalDemand == 0 {
		in.TotalDemand = in.Consumers.Sum()
	}
	return nil
}

// Validate checks every structural invariant of the closed type:
// non-empty ledgers, strictly positive quantities, exact balance and a
// complete non-negative cost table. All violations wrap ErrMalformedInstance.
func (in *Instance) Validate() error {
	if in.Suppliers == nil || in.Suppliers.Len() == 0 {
		return fmt.Errorf("no suppliers: %w", ErrMalformedInstance)
	}
	if in.Consumers == nil || in.Consumers.Len() == 0 {
		return fmt.Errorf("no consumers: %w", ErrMalformedInstance)
	}
	if in.Costs == nil {
		return fmt.Errorf("no cost table: %w", ErrMalformedInstance)
	}
	for _, label := range in.Suppliers.Labels() {
		if qty, _ := in.Suppliers.Get(label); qty <= 0 {
			return fmt.Errorf("supply %s=%d not positive: %w", label, qty, ErrMalformedInstance)
		}
	}
	for _, label := range in.Consumers.Labels() {
		if qty, _ := in.Consumers.Get(label); qty <= 0 {
			return fmt.Errorf("demand %s=%d not positive: %w", label, qty, ErrMalformedInstance)
		}
	}
	supply, demand := in.Suppliers.Sum(), in.Consumers.Sum()
	if supply != demand {
		return fmt.Errorf("unbalanced: supply=%d demand=%d: %w", supply, demand, ErrMalformedInstance)
	}
	if in.TotalSupply != supply || in.TotalDemand != demand {
		return fmt.Errorf("stale totals: %w", ErrMalformedInstance)
	}
	// Completeness: exactly one non-negative cost per supplier×consumer pair.
	for _, supplier := range in.Suppliers.Labels() {
		row, ok := in.Costs.Row(supplier)
		if !ok {
			return fmt.Errorf("missing cost row %s: %w", supplier, ErrMalformedInstance)
		}
		if row.Len() != in.Consumers.Len() {
			return fmt.Errorf("cost row %s has %d cells, want %d: %w",
				supplier, row.Len(), in.Consumers.Len(), ErrMalformedInstance)
		}
		for _, consumer := range in.Consumers.Labels() {
			cost, ok := row.Get(consumer)
			if !ok {
				return fmt.Errorf("missing cost %s→%s: %w", supplier, consumer, ErrMalformedInstance)
			}
			if cost < 0 {
				return fmt.Errorf("negative cost %s→%s=%d: %w", supplier, consumer, cost, ErrMalformedInstance)
			}
		}
	}
	return nil
}
