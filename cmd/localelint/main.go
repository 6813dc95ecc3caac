// Command localelint checks the embedded locale catalog: every key shipped
// in any locale must exist in the fallback locale, and translations must
// use the same placeholders as their fallback counterpart. Run in CI so an
// incomplete fallback never reaches production.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"fitcoach/internal/catalog"
)

func main() {
	fallback := flag.String("fallback", "en", "fallback locale that must carry every key")
	flag.Parse()

	cat, err := catalog.Embedded()
	if err != nil {
		log.Fatalf("localelint: %v", err)
	}

	findings, coverage, err := catalog.Verify(cat, *fallback)
	if err != nil {
		log.Fatalf("localelint: %v", err)
	}

	for _, cov := range coverage {
		fmt.Printf("%s: %d/%d keys translated\n", cov.Locale, cov.Translated, cov.Total)
	}
	for _, finding := range findings {
		fmt.Println(finding)
	}
	if len(findings) > 0 {
		os.Exit(1)
	}
}
