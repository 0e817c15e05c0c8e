package hashtable

import (
	"fmt"
	"sync"

	"xiangqi/internal/xiangqi"
)

// entry 以带走子方的 key 定位，lock 校验是否真的是同一局面
type entry struct {
	Key   uint64
	Lock  uint64
	Depth int32
	Value uint64
	used  bool
}

type Stats struct {
	Hits       int
	Misses     int
	Writes     int
	Collisions int
}

// Table 是定长的置换表。槽位序列：key&mask，之后依次换成 (key^probe[i])&mask，
// 所以 key 相同而 lock 不同的两个局面可以各占一个槽。
type Table struct {
	mu      sync.Mutex
	entries []entry
	mask    uint64
	stats   Stats
}

func New(pow uint8) *Table {
	n := uint64(1) << pow
	return &Table{
		entries: make([]entry, n),
		mask:    n - 1,
	}
}

func (t *Table) slot(key uint64, attempt int) uint64 {
	if attempt == 0 {
		return key & t.mask
	}
	return (key ^ xiangqi.CollisionProbe(attempt-1)) & t.mask
}

func (t *Table) collision(key, lock, other uint64) {
	t.stats.Collisions++
	if fatalCollisions {
		panic(fmt.Sprintf("hashtable: key %016x collides: lock %016x vs %016x", key, lock, other))
	}
}

// Probe 查找 (key, lock, depth)；找不到返回 ok=false
func (t *Table) Probe(key, lock uint64, depth int) (uint64, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for attempt := 0; attempt <= xiangqi.ProbeCount; attempt++ {
		e := &t.entries[t.slot(key, attempt)]
		if !e.used {
			break
		}
		if e.Key != key {
			continue
		}
		if e.Lock != lock {
			t.collision(key, lock, e.Lock)
			continue
		}
		if e.Depth == int32(depth) {
			t.stats.Hits++
			return e.Value, true
		}
	}
	t.stats.Misses++
	return 0, false
}

// Store 写入；槽位都被别的局面占满时覆盖第一个槽
func (t *Table) Store(key, lock uint64, depth int, value uint64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stats.Writes++
	first := &t.entries[t.slot(key, 0)]
	for attempt := 0; attempt <= xiangqi.ProbeCount; attempt++ {
		e := &t.entries[t.slot(key, attempt)]
		if !e.used || (e.Key == key && e.Lock == lock && e.Depth == int32(depth)) {
			*e = entry{Key: key, Lock: lock, Depth: int32(depth), Value: value, used: true}
			return
		}
	}
	*first = entry{Key: key, Lock: lock, Depth: int32(depth), Value: value, used: true}
}

func (t *Table) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()
	for i := range t.entries {
		t.entries[i] = entry{}
	}
	t.stats = Stats{}
}

func (t *Table) Stats() Stats {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.stats
}
