package store

import (
	"encoding/json"
	"fmt"
	"log"
	"sync/atomic"

	"github.com/dgraph-io/badger/v4"
	"github.com/pkg/errors"
)

// perftRecord 是落盘的子树大小；lock 用来识别 key 碰撞
type perftRecord struct {
	Lock  uint64 `json:"lock"`
	Nodes uint64 `json:"nodes"`
}

// Store 用 BadgerDB 持久化 perft 结果，可以直接当 perft.Cache 用
type Store struct {
	db *badger.DB

	collisions atomic.Int64
}

func Open(dir string) (*Store, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil
	return open(opts)
}

// OpenInMemory 不落盘，测试和一次性命令行用
func OpenInMemory() (*Store, error) {
	opts := badger.DefaultOptions("").WithInMemory(true)
	opts.Logger = nil
	return open(opts)
}

func open(opts badger.Options) (*Store, error) {
	db, err := badger.Open(opts)
	if err != nil {
		return nil, errors.Wrap(err, "open badger")
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func perftKey(key uint64, depth int) []byte {
	return []byte(fmt.Sprintf("perft/%016x/%d", key, depth))
}

// Lookup 返回 (nodes, found)；key 相同但 lock 不同算作碰撞，当作没找到
func (s *Store) Lookup(key, lock uint64, depth int) (uint64, bool, error) {
	var rec perftRecord
	found := false
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(perftKey(key, depth))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		found = true
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &rec)
		})
	})
	if err != nil {
		return 0, false, errors.Wrapf(err, "lookup perft %016x/%d", key, depth)
	}
	if !found {
		return 0, false, nil
	}
	if rec.Lock != lock {
		s.collisions.Add(1)
		log.Printf("[STORE] key collision %016x depth %d: lock %016x vs %016x", key, depth, lock, rec.Lock)
		return 0, false, nil
	}
	return rec.Nodes, true, nil
}

func (s *Store) Save(key, lock uint64, depth int, nodes uint64) error {
	data, err := json.Marshal(perftRecord{Lock: lock, Nodes: nodes})
	if err != nil {
		return err
	}
	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(perftKey(key, depth), data)
	})
	return errors.Wrapf(err, "save perft %016x/%d", key, depth)
}

// Probe/Store 满足 perft.Cache；出错只记日志，按未命中处理
func (s *Store) Probe(key, lock uint64, depth int) (uint64, bool) {
	n, ok, err := s.Lookup(key, lock, depth)
	if err != nil {
		log.Printf("[STORE] %v", err)
		return 0, false
	}
	return n, ok
}

func (s *Store) Store(key, lock uint64, depth int, nodes uint64) {
	if err := s.Save(key, lock, depth, nodes); err != nil {
		log.Printf("[STORE] %v", err)
	}
}

func (s *Store) Collisions() int64 { return s.collisions.Load() }
