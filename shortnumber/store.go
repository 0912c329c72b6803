package shortnumber

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"golang.org/x/sync/singleflight"
)

// ErrUnknownRegion is returned by callers that need to distinguish
// "region not in this collection" from a false classification result.
var ErrUnknownRegion = errors.New("shortnumber: unknown region")

// Store lazily decodes and serves short-number Metadata, mirroring
// metadata.Store's concurrency contract: Register during process
// init, Get* freely afterward from any number of goroutines.
type Store struct {
	mu      sync.RWMutex
	raw     map[string]json.RawMessage
	decoded map[string]*Metadata
	byCC    map[int][]string
	group   singleflight.Group
}

// NewStore returns an empty Store ready for Register calls.
func NewStore() *Store {
	return &Store{
		raw:     make(map[string]json.RawMessage),
		decoded: make(map[string]*Metadata),
		byCC:    make(map[int][]string),
	}
}

// Register records region's still-undecoded JSON blob.
func (s *Store) Register(id string, blob []byte) {
	id = strings.ToUpper(id)
	s.mu.Lock()
	s.raw[id] = json.RawMessage(blob)
	s.mu.Unlock()
}

// RegisterCountryCode records every region sharing cc.
func (s *Store) RegisterCountryCode(cc int, regions ...string) {
	s.mu.Lock()
	s.byCC[cc] = append([]string(nil), regions...)
	s.mu.Unlock()
}

// GetForRegion returns the decoded metadata for id, or nil if unknown.
func (s *Store) GetForRegion(id string) *Metadata {
	id = strings.ToUpper(id)
	s.mu.RLock()
	if m, ok := s.decoded[id]; ok {
		s.mu.RUnlock()
		return m
	}
	blob, ok := s.raw[id]
	s.mu.RUnlock()
	if !ok {
		return nil
	}
	v, _, _ := s.group.Do(id, func() (interface{}, error) {
		var m Metadata
		if err := json.Unmarshal(blob, &m); err != nil {
			return nil, fmt.Errorf("shortnumber: region %s: %w", id, err)
		}
		s.mu.Lock()
		s.decoded[id] = &m
		s.mu.Unlock()
		return &m, nil
	})
	if v == nil {
		return nil
	}
	return v.(*Metadata)
}

// RegionsForCountryCode returns every region sharing cc, or nil.
func (s *Store) RegionsForCountryCode(cc int) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if regions, ok := s.byCC[cc]; ok {
		return append([]string(nil), regions...)
	}
	return nil
}
