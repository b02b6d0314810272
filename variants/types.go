// SPDX-License-Identifier: MIT
// Package: opgen/variants
//
// types.go — Task, Variant and Set records with the document JSON shape.
//
// The union encoding follows the persisted contract: a task is
// {"task_number": N, "task_data": {...}} and task_data carries its own
// "type" discriminator, so readers dispatch without peeking at position.

package variants

import (
	"encoding/json"
	"fmt"

	"github.com/katalvlaran/opgen/linprog"
	"github.com/katalvlaran/opgen/transport"
)

// Fixed task positions inside a variant.
const (
	TransportTaskNumber = 1
	LPTaskNumber        = 2
	tasksPerVariant     = 2
)

// Task is a tagged union: exactly one of Transport / LP is non-nil.
type Task struct {
	Number    int
	Transport *transport.Instance
	LP        *linprog.Instance
}

// Type returns the discriminator of the populated side, or "" when empty.
func (t Task) Type() string {
	switch {
	case t.Transport != nil:
		return transport.TypeName
	case t.LP != nil:
		return linprog.TypeName
	default:
		return ""
	}
}

// taskWire is the serialized envelope.
type taskWire struct {
	Number int             `json:"task_number"`
	Data   json.RawMessage `json:"task_data"`
}

// MarshalJSON emits the envelope; the instance brings its own "type" field.
func (t Task) MarshalJSON() ([]byte, error) {
	var (
		data []byte
		err  error
	)
	switch {
	case t.Transport != nil:
		data, err = json.Marshal(t.Transport)
	case t.LP != nil:
		data, err = json.Marshal(t.LP)
	default:
		return nil, fmt.Errorf("task %d has no data: %w", t.Number, ErrUnknownTaskType)
	}
	if err != nil {
		return nil, fmt.Errorf("task %d: %w", t.Number, err)
	}
	return json.Marshal(taskWire{Number: t.Number, Data: data})
}

// UnmarshalJSON reads the envelope and dispatches on the "type" field.
func (t *Task) UnmarshalJSON(data []byte) error {
	var wire taskWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	var probe struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(wire.Data, &probe); err != nil {
		return fmt.Errorf("task %d: %w", wire.Number, err)
	}

	t.Number = wire.Number
	t.Transport, t.LP = nil, nil
	switch probe.Type {
	case transport.TypeName:
		in := &transport.Instance{}
		if err := json.Unmarshal(wire.Data, in); err != nil {
			return fmt.Errorf("task %d: %w", wire.Number, err)
		}
		t.Transport = in
	case linprog.TypeName:
		in := &linprog.Instance{}
		if err := json.Unmarshal(wire.Data, in); err != nil {
			return fmt.Errorf("task %d: %w", wire.Number, err)
		}
		t.LP = in
	default:
		return fmt.Errorf("task %d: type %q: %w", wire.Number, probe.Type, ErrUnknownTaskType)
	}
	return nil
}

// Variant is one exercise unit: task 1 (transport) and task 2 (LP).
type Variant struct {
	Number int    `json:"variant_number"`
	Tasks  []Task `json:"tasks"`
}

// Set is the ordered variant list handed to persistence and rendering.
type Set struct {
	Variants []Variant `json:"variants"`
	Count    int       `json:"count"`
}

// Validate checks the full document shape: count freshness, sequential
// 1-based numbering, two tasks per variant in fixed order, and every
// instance's own invariants. Shape violations wrap ErrMalformedSet;
// per-instance violations keep their packages' sentinels.
func (s *Set) Validate() error {
	if s.Count != len(s.Variants) {
		return fmt.Errorf("count=%d but %d variants: %w", s.Count, len(s.Variants), ErrMalformedSet)
	}
	for i, v := range s.Variants {
		if v.Number != i+1 {
			return fmt.Errorf("variant at index %d numbered %d: %w", i, v.Number, ErrMalformedSet)
		}
		if len(v.Tasks) != tasksPerVariant {
			return fmt.Errorf("variant %d has %d tasks: %w", v.Number, len(v.Tasks), ErrMalformedSet)
		}
		first, second := v.Tasks[0], v.Tasks[1]
		if first.Number != TransportTaskNumber || first.Transport == nil {
			return fmt.Errorf("variant %d task 1 is not a transport task: %w", v.Number, ErrMalformedSet)
		}
		if second.Number != LPTaskNumber || second.LP == nil {
			return fmt.Errorf("variant %d task 2 is not an lp task: %w", v.Number, ErrMalformedSet)
		}
		if err := first.Transport.Validate(); err != nil {
			return fmt.Errorf("variant %d task 1: %w", v.Number, err)
		}
		if err := second.LP.Validate(); err != nil {
			return fmt.Errorf("variant %d task 2: %w", v.Number, err)
		}
	}
	return nil
}
