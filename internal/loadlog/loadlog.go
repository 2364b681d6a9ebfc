package loadlog

// Entry is the recorded load history of one identifier.
// Entry 是单个标识符的加载记录。
type Entry struct {
	ID    string
	Sites []string
}

// LoadLog is a two-level insertion-ordered mapping: type name → identifier →
// ordered call sites. Go maps do not preserve order, so each level pairs a
// map with a key slice. The total counter always equals the sum of all site
// sequence lengths.
// LoadLog 是两级按插入顺序排列的映射：类型名 → 标识符 → 有序调用位置。
// Go 的 map 不保序，因此每一级都由 map 加键切片组成。
// 总计数器始终等于所有调用位置序列长度之和。
type LoadLog struct {
	typeOrder []string
	idOrder   map[string][]string
	sites     map[string]map[string][]string
	total     int
}

// New creates an empty load log.
// New 创建空的加载日志。
func New() *LoadLog {
	return &LoadLog{
		idOrder: make(map[string][]string),
		sites:   make(map[string]map[string][]string),
	}
}

// Add appends one call site under (typeName, id) and bumps the total counter.
// Add 在 (typeName, id) 下追加一个调用位置并递增总计数器。
func (l *LoadLog) Add(typeName, id, site string) {
	bucket, ok := l.sites[typeName]
	if !ok {
		bucket = make(map[string][]string)
		l.sites[typeName] = bucket
		l.typeOrder = append(l.typeOrder, typeName)
	}
	if _, seen := bucket[id]; !seen {
		l.idOrder[typeName] = append(l.idOrder[typeName], id)
	}
	bucket[id] = append(bucket[id], site)
	l.total++
}

// Total returns the number of recorded loads.
// Total 返回记录的加载次数。
func (l *LoadLog) Total() int {
	return l.total
}

// IsEmpty reports whether nothing is recorded.
// IsEmpty 报告是否没有任何记录。
func (l *LoadLog) IsEmpty() bool {
	return len(l.typeOrder) == 0
}

// Types returns the type names in first-seen order.
// Types 返回按首次出现顺序排列的类型名。
func (l *LoadLog) Types() []string {
	out := make([]string, len(l.typeOrder))
	copy(out, l.typeOrder)
	return out
}

// Entries returns one type's identifier entries in first-seen order.
// Site slices are copies; mutating them does not affect the log.
// Entries 返回某类型按首次出现顺序排列的标识符条目。
// 调用位置切片是副本；修改它们不会影响日志。
func (l *LoadLog) Entries(typeName string) []Entry {
	ids := l.idOrder[typeName]
	bucket := l.sites[typeName]

	out := make([]Entry, 0, len(ids))
	for _, id := range ids {
		sites := make([]string, len(bucket[id]))
		copy(sites, bucket[id])
		out = append(out, Entry{ID: id, Sites: sites})
	}
	return out
}

// Repeated returns a deep copy holding only identifiers loaded at least
// twice. Type buckets left empty by the filter are dropped. Both insertion
// orders carry over.
// Repeated 返回仅包含加载至少两次的标识符的深拷贝。
// 过滤后变空的类型桶会被丢弃。两级插入顺序均保留。
func (l *LoadLog) Repeated() *LoadLog {
	out := New()
	for _, typeName := range l.typeOrder {
		for _, id := range l.idOrder[typeName] {
			sites := l.sites[typeName][id]
			if len(sites) < 2 {
				continue
			}
			for _, site := range sites {
				out.Add(typeName, id, site)
			}
		}
	}
	return out
}
