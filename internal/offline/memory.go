package offline

import (
	"context"
	"slices"
	"sync"
	"time"
)

// MemoryStorage keeps buckets in process memory.
type MemoryStorage struct {
	mu      sync.RWMutex
	order   []string
	buckets map[string]map[string]*Response
	now     func() time.Time
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		buckets: make(map[string]map[string]*Response),
		now:     time.Now,
	}
}

func (m *MemoryStorage) Buckets(_ context.Context) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return slices.Clone(m.order), nil
}

func (m *MemoryStorage) DeleteBucket(_ context.Context, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.buckets[name]; !ok {
		return nil
	}
	delete(m.buckets, name)
	m.order = slices.DeleteFunc(m.order, func(b string) bool { return b == name })
	return nil
}

// bucket returns the named bucket, creating it. The caller holds m.mu.
func (m *MemoryStorage) bucket(name string) map[string]*Response {
	b, ok := m.buckets[name]
	if !ok {
		b = make(map[string]*Response)
		m.buckets[name] = b
		m.order = append(m.order, name)
	}
	return b
}

func (m *MemoryStorage) Put(_ context.Context, bucket, key string, resp *Response) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.bucket(bucket)[key] = m.stamp(resp)
	return nil
}

func (m *MemoryStorage) PutAll(_ context.Context, bucket string, entries map[string]*Response) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	b := m.bucket(bucket)
	for key, resp := range entries {
		b[key] = m.stamp(resp)
	}
	return nil
}

func (m *MemoryStorage) Match(_ context.Context, key string) (*Response, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, name := range m.order {
		if resp, ok := m.buckets[name][key]; ok {
			return clone(resp), nil
		}
	}
	return nil, ErrMiss
}

func (m *MemoryStorage) stamp(resp *Response) *Response {
	c := clone(resp)
	c.StoredAt = m.now()
	return c
}

func clone(resp *Response) *Response {
	c := *resp
	c.Header = resp.Header.Clone()
	c.Body = slices.Clone(resp.Body)
	return &c
}

