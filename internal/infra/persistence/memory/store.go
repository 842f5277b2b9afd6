// Package memory is a process-local repository backend. Each table is a map
// guarded by the store's RWMutex; values are copied on the way in and out so
// callers never share state with the store.
package memory

import (
	"cmp"
	"slices"
	"sync"
	"time"

	"deliwer/internal/domain/entity"

	"github.com/google/uuid"
)

type row[T any] struct {
	seq   uint64
	value T
}

type table[T any] map[uuid.UUID]row[T]

func (t table[T]) clone(copyValue func(T) T) table[T] {
	out := make(table[T], len(t))
	for id, r := range t {
		out[id] = row[T]{seq: r.seq, value: copyValue(r.value)}
	}

	return out
}

// sorted returns rows ordered by insertion.
func (t table[T]) sorted() []row[T] {
	rows := make([]row[T], 0, len(t))
	for _, r := range t {
		rows = append(rows, r)
	}
	slices.SortFunc(rows, func(a, b row[T]) int {
		return cmp.Compare(a.seq, b.seq)
	})

	return rows
}

type tables struct {
	seq            uint64
	users          table[*entity.User]
	tradeIns       table[*entity.TradeIn]
	orders         table[*entity.AquacafeOrder]
	affiliates     table[*entity.Affiliate]
	leaderboard    table[*entity.LeaderboardEntry]
	challenges     table[*entity.CommunityChallenge]
	droughtRegions table[*entity.DroughtRegion]
}

func newTables() *tables {
	return &tables{
		users:          table[*entity.User]{},
		tradeIns:       table[*entity.TradeIn]{},
		orders:         table[*entity.AquacafeOrder]{},
		affiliates:     table[*entity.Affiliate]{},
		leaderboard:    table[*entity.LeaderboardEntry]{},
		challenges:     table[*entity.CommunityChallenge]{},
		droughtRegions: table[*entity.DroughtRegion]{},
	}
}

func (t *tables) clone() *tables {
	return &tables{
		seq:            t.seq,
		users:          t.users.clone((*entity.User).Clone),
		tradeIns:       t.tradeIns.clone(copyPtr[entity.TradeIn]),
		orders:         t.orders.clone((*entity.AquacafeOrder).Clone),
		affiliates:     t.affiliates.clone(copyPtr[entity.Affiliate]),
		leaderboard:    t.leaderboard.clone(copyPtr[entity.LeaderboardEntry]),
		challenges:     t.challenges.clone((*entity.CommunityChallenge).Clone),
		droughtRegions: t.droughtRegions.clone(copyPtr[entity.DroughtRegion]),
	}
}

func (t *tables) nextSeq() uint64 {
	t.seq++

	return t.seq
}

// Store owns every table. The zero value is not usable; call NewStore.
type Store struct {
	mu sync.RWMutex
	t  *tables
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{t: newTables()}
}

func (s *Store) read(fn func(t *tables) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return fn(s.t)
}

func (s *Store) write(fn func(t *tables) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return fn(s.t)
}

// copyPtr copies structs without reference fields.
func copyPtr[T any](v *T) *T {
	if v == nil {
		return nil
	}
	c := *v

	return &c
}

func now() time.Time {
	return time.Now().UTC()
}

func ensureID(id *uuid.UUID) {
	if *id == uuid.Nil {
		*id = newID()
	}
}

func newID() uuid.UUID {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New()
	}

	return id
}
