package metadata

import (
	"embed"
	"fmt"
	"strings"
)

//go:embed data/*.json
var embeddedRegions embed.FS

// countryCodeRegions lists, for every country calling code carried by
// the embedded data set, its regions in main-region-first order. This
// is the decoded form of the lookup table described in §6; the source
// of truth (which region is "main") is each region's own
// mainCountryForCode flag, asserted here by construction.
var countryCodeRegions = map[int][]string{
	1:   {"US", "CA", "BS"},
	7:   {"RU", "KZ"},
	33:  {"FR"},
	39:  {"IT"},
	44:  {"GB"},
	49:  {"DE"},
	54:  {"AR"},
	55:  {"BR"},
	61:  {"AU"},
	64:  {"NZ"},
	81:  {"JP"},
	800: {"001"},
}

// defaultStore is the process-wide metadata store, lazily populated by
// Default's init-time Register calls and decoded on first real use by
// Store.GetForRegion. See metadata.Store for the concurrency contract.
var defaultStore = NewStore()

func init() {
	entries, err := embeddedRegions.ReadDir("data")
	if err != nil {
		panic(fmt.Errorf("metadata: reading embedded region data: %w", err))
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		blob, err := embeddedRegions.ReadFile("data/" + entry.Name())
		if err != nil {
			panic(fmt.Errorf("metadata: reading %s: %w", entry.Name(), err))
		}
		id := strings.TrimSuffix(entry.Name(), ".json")
		defaultStore.Register(id, blob)
	}
	for cc, regions := range countryCodeRegions {
		defaultStore.RegisterCountryCode(cc, regions...)
	}
}

// Default returns the process-wide Store backed by this module's
// embedded region data.
func Default() *Store {
	return defaultStore
}
