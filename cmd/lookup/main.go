// Command lookup parses a phone number from the command line and
// prints its classification and formatted renderings, mirroring the
// role example/daemon/main.go plays for the teacher's AT-command
// library: a small, runnable demonstration of the library, not part
// of its public API.
package main

import (
	"flag"
	"log"

	"github.com/xlab/phonenumber"
	"github.com/xlab/phonenumber/shortnumber"
)

func main() {
	region := flag.String("region", "US", "default region used to resolve numbers without a country code")
	flag.Parse()

	if flag.NArg() != 1 {
		log.Fatal("usage: lookup [-region CC] <number>")
	}
	raw := flag.Arg(0)

	n, err := phonenumber.ParseAndKeepRawInput(raw, *region)
	if err != nil {
		log.Fatalf("parse %q: %v", raw, err)
	}

	log.Printf("E164:          %s", phonenumber.Format(n, phonenumber.Formats.E164))
	log.Printf("International: %s", phonenumber.Format(n, phonenumber.Formats.International))
	log.Printf("National:      %s", phonenumber.Format(n, phonenumber.Formats.National))
	log.Printf("RFC3966:       %s", phonenumber.Format(n, phonenumber.Formats.RFC3966))
	log.Printf("Type:          %s", phonenumber.GetNumberType(n))
	log.Printf("Valid:         %v", phonenumber.IsValidNumber(n))
	log.Printf("Possible:      %v", phonenumber.IsPossibleNumberWithReason(n))
	log.Printf("Region:        %s", phonenumber.GetRegionCodeForNumber(n))

	if shortnumber.IsPossibleShortNumber(n) {
		log.Printf("Short number expected cost: %s", shortnumber.GetExpectedCost(n))
	}
}
