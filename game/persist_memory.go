package game

import (
	"github.com/pkg/errors"
)

type MemorySessionTracker struct {
	activeSessions map[string][]byte
}

func NewMemorySessionTracker() *MemorySessionTracker {
	return &MemorySessionTracker{
		activeSessions: make(map[string][]byte),
	}
}

func (m *MemorySessionTracker) Load(code string) (*SessionRecord, error) {
	recordBytes, ok := m.activeSessions[code]
	if !ok {
		return nil, errors.Errorf("Session state for code: %s is not found", code)
	}
	record := &SessionRecord{}
	if err := persistJSON.Unmarshal(recordBytes, record); err != nil {
		return nil, err
	}
	return record, nil
}

func (m *MemorySessionTracker) Save(code string, record *SessionRecord) error {
	recordBytes, err := persistJSON.Marshal(record)
	if err != nil {
		return err
	}
	m.activeSessions[code] = recordBytes
	return nil
}

func (m *MemorySessionTracker) Remove(code string) error {
	delete(m.activeSessions, code)
	return nil
}
