// Package memory is an in-process sink that assigns auto-increment ids per
// table. It backs the seeder's unit tests and dry runs.
package memory

import (
	"context"
	"fmt"

	"github.com/Rana718/spotseed/internal/database/common"
)

type Session struct {
	committed map[string][]common.Record
	pending   map[string][]common.Record
	nextID    map[string]int64
	failOn    map[string]error

	// AddBatchCalls counts non-empty AddBatch calls.
	AddBatchCalls int
	// Commits counts Commit calls that flushed at least one record.
	Commits int
}

func NewSession() *Session {
	return &Session{
		committed: make(map[string][]common.Record),
		pending:   make(map[string][]common.Record),
		nextID:    make(map[string]int64),
		failOn:    make(map[string]error),
	}
}

// FailOn makes every AddBatch against table return err.
func (s *Session) FailOn(table string, err error) {
	s.failOn[table] = err
}

func (s *Session) AddBatch(ctx context.Context, records []common.Record) error {
	if len(records) == 0 {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	table, ok := common.SameTable(records)
	if !ok {
		return fmt.Errorf("batch must target exactly one table")
	}
	if err := s.failOn[table]; err != nil {
		return err
	}

	s.AddBatchCalls++
	for _, r := range records {
		s.nextID[table]++
		r.SetID(s.nextID[table])
		s.pending[table] = append(s.pending[table], r)
	}
	return nil
}

func (s *Session) Commit(ctx context.Context) error {
	if len(s.pending) == 0 {
		return nil
	}
	for table, records := range s.pending {
		s.committed[table] = append(s.committed[table], records...)
	}
	s.pending = make(map[string][]common.Record)
	s.Commits++
	return nil
}

// Rows returns the committed records of table in insertion order.
func (s *Session) Rows(table string) []common.Record {
	return s.committed[table]
}

func (s *Session) Count(table string) int {
	return len(s.committed[table])
}

// Pending returns how many records are waiting for Commit.
func (s *Session) Pending() int {
	n := 0
	for _, records := range s.pending {
		n += len(records)
	}
	return n
}
