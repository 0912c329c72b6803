package shortnumber

import (
	"embed"
	"fmt"
	"strings"
)

//go:embed data/*.json
var embeddedRegions embed.FS

// countryCodeRegions lists every region this collection carries per
// country calling code; unlike metadata's table there is no single
// "main" region semantics needed here since §4.8's multi-region
// operations (GetExpectedCost, IsPossibleShortNumber) explicitly
// range over every sharing region rather than picking one.
var countryCodeRegions = map[int][]string{
	1:   {"US"},
	44:  {"GB"},
	64:  {"NZ"},
	61:  {"AU"},
	55:  {"BR"},
	56:  {"CL"},
	505: {"NI"},
	49:  {"DE"},
	33:  {"FR"},
	39:  {"IT"},
	54:  {"AR"},
}

var defaultStore = NewStore()

func init() {
	entries, err := embeddedRegions.ReadDir("data")
	if err != nil {
		panic(fmt.Errorf("shortnumber: reading embedded region data: %w", err))
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		blob, err := embeddedRegions.ReadFile("data/" + entry.Name())
		if err != nil {
			panic(fmt.Errorf("shortnumber: reading %s: %w", entry.Name(), err))
		}
		id := strings.TrimSuffix(entry.Name(), ".json")
		defaultStore.Register(id, blob)
	}
	for cc, regions := range countryCodeRegions {
		defaultStore.RegisterCountryCode(cc, regions...)
	}
}

// Default returns the process-wide short-number Store.
func Default() *Store {
	return defaultStore
}
