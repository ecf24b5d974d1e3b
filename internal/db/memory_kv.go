package db

type MemoryKV struct {
	entries map[string][]byte
}

func NewMemoryKV() *MemoryKV {
	return &MemoryKV{entries: make(map[string][]byte)}
}

func (kv *MemoryKV) Get(key string) ([]byte, bool, error) {
	value, ok := kv.entries[key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), value...), true, nil
}

func (kv *MemoryKV) Put(key string, value []byte) error {
	kv.entries[key] = append([]byte(nil), value...)
	return nil
}

func (kv *MemoryKV) Delete(keys ...string) error {
	for _, key := range keys {
		delete(kv.entries, key)
	}
	return nil
}
