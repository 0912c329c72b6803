package metadata

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"golang.org/x/sync/singleflight"
)

// Common errors.
var (
	ErrUnknownRegion = errors.New("metadata: unknown region")
	ErrDecode        = errors.New("metadata: malformed metadata blob")
)

// NonGeographicRegion is the pseudo-region identifier used for country
// calling codes shared by more than one region with no single "main"
// region (e.g. +800 international freephone, +808 shared cost).
const NonGeographicRegion = "001"

// Store is a lazily-populated, concurrency-safe mapping from region
// identifier or country calling code to decoded PhoneMetadata. The
// zero value is not usable; construct one with NewStore and feed it
// with Register (itself normally called from an init() in a data
// package built around go:embed, as metadata/data.go does for the
// default store).
type Store struct {
	mu       sync.RWMutex
	raw      map[string]json.RawMessage // region -> undecoded blob
	decoded  map[string]*PhoneMetadata  // region -> decoded
	byCC     map[int][]string           // country code -> regions, main first
	group    singleflight.Group
}

// NewStore returns an empty Store ready for Register calls.
func NewStore() *Store {
	return &Store{
		raw:     make(map[string]json.RawMessage),
		decoded: make(map[string]*PhoneMetadata),
		byCC:    make(map[int][]string),
	}
}

// Register records the still-undecoded JSON blob for region under its
// CLDR identifier, deferring the actual decode (and therefore the cost
// of compiling its regexes) until the region is first requested. id is
// upper-cased, per §4.2's case-insensitivity rule. Register is only
// safe to call during process initialization, before any concurrent
// Get calls begin; the Store's own locking only needs to protect the
// decode step, not registration.
func (s *Store) Register(id string, blob []byte) {
	id = strings.ToUpper(id)
	s.mu.Lock()
	s.raw[id] = json.RawMessage(blob)
	s.mu.Unlock()
}

// RegisterCountryCode records the region order (main region first) for
// a shared or single-region country calling code.
func (s *Store) RegisterCountryCode(cc int, regions ...string) {
	s.mu.Lock()
	s.byCC[cc] = append([]string(nil), regions...)
	s.mu.Unlock()
}

// GetForRegion returns the decoded metadata for the upper-cased region
// identifier, or nil if the region is unknown.
func (s *Store) GetForRegion(id string) *PhoneMetadata {
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
		m, err := decode(blob)
		if err != nil {
			return nil, fmt.Errorf("%w: region %s: %v", ErrDecode, id, err)
		}
		s.mu.Lock()
		s.decoded[id] = m
		s.mu.Unlock()
		return m, nil
	})
	if v == nil {
		return nil
	}
	return v.(*PhoneMetadata)
}

// GetForCountryCode returns the main region's metadata for cc (the
// nongeographic "001" metadata when the code is shared and has no
// single main region), or nil if cc is unknown.
func (s *Store) GetForCountryCode(cc int) *PhoneMetadata {
	s.mu.RLock()
	regions := s.byCC[cc]
	s.mu.RUnlock()
	if len(regions) == 0 {
		return nil
	}
	return s.GetForRegion(regions[0])
}

// RegionsForCountryCode returns every region sharing cc, main region
// first, or nil if cc is unknown.
func (s *Store) RegionsForCountryCode(cc int) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if regions, ok := s.byCC[cc]; ok {
		return append([]string(nil), regions...)
	}
	return nil
}

// CountryCodeForRegion returns the calling code registered for region,
// or 0 if the region is unknown.
func (s *Store) CountryCodeForRegion(id string) int {
	m := s.GetForRegion(id)
	if m == nil {
		return 0
	}
	return m.CountryCode
}

func decode(blob json.RawMessage) (*PhoneMetadata, error) {
	var m PhoneMetadata
	if err := json.Unmarshal(blob, &m); err != nil {
		return nil, err
	}
	return &m, nil
}
