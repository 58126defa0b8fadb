// Package cache memoizes damage distributions for repeated matchups.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"sync"

	"dicesim/internal/engine"
)

type MemoryStore[T any] struct {
	mu sync.RWMutex
	m  map[string]T
}

func NewMemoryStore[T any]() *MemoryStore[T] {
	return &MemoryStore[T]{m: map[string]T{}}
}

func (s *MemoryStore[T]) Get(_ context.Context, key string) (T, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.m[key]
	return v, ok, nil
}

func (s *MemoryStore[T]) Put(_ context.Context, key string, v T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m[key] = v
	return nil
}

// Len reports how many entries are stored.
func (s *MemoryStore[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.m)
}

// Key hashes every input that affects a calculation. Results for a zero
// seed are random, so callers should not cache them.
func Key(attacker, defender engine.Model, opts engine.Options) string {
	h := sha256.New()
	var b [8]byte
	put := func(v uint64) {
		binary.LittleEndian.PutUint64(b[:], v)
		h.Write(b[:])
	}
	for _, m := range []engine.Model{attacker, defender} {
		for _, v := range []int{m.NumDice, m.DiceStat, m.NumRerolls, m.Armor, m.AP, m.NumShieldDice, m.ToxicDmg} {
			put(uint64(v))
		}
	}
	put(uint64(opts.NumSimulations))
	put(uint64(opts.NumRounds))
	immune := uint64(0)
	if opts.AttackerImmune {
		immune = 1
	}
	put(immune)
	put(opts.Seed)
	return hex.EncodeToString(h.Sum(nil))
}
