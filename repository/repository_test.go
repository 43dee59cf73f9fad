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

package repository

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/soabench/soabench/dataset"
	"github.com/soabench/soabench/kernel"
)

func TestFromViewPreservesRecords(t *testing.T) {
	v := dataset.Generate(1_000, 17).View()
	repo := FromView(v)

	require.Equal(t, v.Len(), repo.Len())

	i := 0
	repo.ForEach(func(rec *Record) {
		require.Equal(t, v.IDs[i], rec.ID)
		require.Equal(t, v.Balances[i], rec.Balance)
		require.Equal(t, v.Active[i] != 0, rec.Active)
		i++
	})
	require.Equal(t, v.Len(), i)
}

func TestFindByID(t *testing.T) {
	repo := New([]Record{
		{ID: 0, Balance: 100, Active: true},
		{ID: 1, Balance: 300, Active: true},
		{ID: 2, Balance: 260, Active: false},
	})

	rec, ok := repo.FindByID(1)
	require.True(t, ok)
	require.Equal(t, float32(300), rec.Balance)

	_, ok = repo.FindByID(42)
	require.False(t, ok)
}

func TestSumActiveBalancesScenario(t *testing.T) {
	repo := New([]Record{
		{ID: 0, Balance: 100, Active: true},
		{ID: 1, Balance: 300, Active: true},
		{ID: 2, Balance: 260, Active: false},
		{ID: 3, Balance: 999, Active: true},
	})

	require.Equal(t, float32(1299), SumActiveBalances(repo, 250.0))
}

func TestSumActiveBalancesEmpty(t *testing.T) {
	repo := New(nil)
	require.Zero(t, SumActiveBalances(repo, 250.0))
}

func TestSumMatchesScalarKernel(t *testing.T) {
	// Both baselines accumulate in storage order over the same logical
	// dataset, so they agree exactly, not just within tolerance.
	v := dataset.Generate(10_000, 17).View()
	repo := FromView(v)

	require.Equal(t, kernel.SumScalar(v, 250.0), SumActiveBalances(repo, 250.0))
}
