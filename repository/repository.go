// Copyright 2025 soabench Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package repository holds the abstraction-heavy counterpart to the flat
// dataset view: the same logical records stored as a slice of composite
// structs and exposed only through an interface. Every record access goes
// through dynamic dispatch and a per-record callback, which is exactly the
// access pattern the benchmark contrasts against direct array scans.
package repository

import "github.com/soabench/soabench/dataset"

// Record is one account in interleaved (array-of-structs) form.
type Record struct {
	ID      int32
	Balance float32
	Active  bool
}

// Repository is the capability interface of the comparison baseline: visit
// every record read-only, or look one up by identifier. Nothing else.
type Repository interface {
	// ForEach calls visit for every record in storage order. The pointed-to
	// record is only valid for the duration of the call.
	ForEach(visit func(*Record))

	// FindByID returns the record with the given identifier, and whether
	// one was found.
	FindByID(id int32) (Record, bool)
}

// SliceRepository is a Repository backed by a single slice of records. It is
// built once and immutable thereafter.
type SliceRepository struct {
	records []Record
}

var _ Repository = (*SliceRepository)(nil)

// New builds a SliceRepository that takes ownership of records.
func New(records []Record) *SliceRepository {
	return &SliceRepository{records: records}
}

// FromView builds a SliceRepository holding the same logical records as the
// flat view, so both representations can be benchmarked over one dataset.
// Activity follows the kernels' convention: any non-zero flag byte is active.
func FromView(v dataset.View) *SliceRepository {
	records := make([]Record, v.Len())
	for i := range records {
		records[i] = Record{
			ID:      v.IDs[i],
			Balance: v.Balances[i],
			Active:  v.Active[i] != 0,
		}
	}
	return New(records)
}

// ForEach calls visit for every record in storage order.
func (r *SliceRepository) ForEach(visit func(*Record)) {
	for i := range r.records {
		visit(&r.records[i])
	}
}

// FindByID scans for the record with the given identifier.
func (r *SliceRepository) FindByID(id int32) (Record, bool) {
	for i := range r.records {
		if r.records[i].ID == id {
			return r.records[i], true
		}
	}
	return Record{}, false
}

// Len returns the record count.
func (r *SliceRepository) Len() int {
	return len(r.records)
}

// qualifies reports whether a record contributes to the sum.
func qualifies(rec *Record, minBalance float32) bool {
	return rec.Active && rec.Balance >= minBalance
}

// SumActiveBalances computes the same aggregate as the kernel package, but
// through the repository indirection: one interface call plus one closure
// call per record. Accumulation order is storage order, so the result
// matches the scalar kernel bit for bit on the same dataset.
func SumActiveBalances(r Repository, minBalance float32) float32 {
	var acc float32
	r.ForEach(func(rec *Record) {
		if qualifies(rec, minBalance) {
			acc += rec.Balance
		}
	})
	return acc
}
