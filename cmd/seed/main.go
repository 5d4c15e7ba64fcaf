// Package main provides a tool to restore the built-in pick-list values.
//
// Deleted defaults are filled back in without touching values the user
// added or edited. With no arguments every seeded field type is restored.
//
// Usage:
//
//	DATA_PATH=~/MediaTrack go run ./cmd/seed
//	DATA_PATH=~/MediaTrack go run ./cmd/seed -field-type platform
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/mediatrackapp/mediatrack-server/internal/store/sqlite"
)

var fieldType = flag.String("field-type", "", "Restore a single field type instead of all of them")

func main() {
	flag.Parse()

	dataPath := os.Getenv("DATA_PATH")
	if dataPath == "" {
		dataPath = os.ExpandEnv("$HOME/MediaTrack")
	}
	dbPath := filepath.Join(dataPath, "mediatrack.db")

	fmt.Printf("Opening database at: %s\n", dbPath)

	s, err := sqlite.Open(dbPath, nil)
	if err != nil {
		log.Fatalf("Failed to open store: %v", err)
	}
	defer s.Close()

	fieldTypes := sqlite.SeededFieldTypes()
	if *fieldType != "" {
		fieldTypes = []string{*fieldType}
	}

	total := 0
	for _, ft := range fieldTypes {
		n, err := s.ReseedFieldType(ft)
		if err != nil {
			log.Fatalf("Failed to reseed %q: %v", ft, err)
		}
		if n > 0 {
			fmt.Printf("  %s: restored %d value(s)\n", ft, n)
		}
		total += n
	}

	if total == 0 {
		fmt.Println("Nothing to restore, all defaults present")
		return
	}
	fmt.Printf("Restored %d default value(s)\n", total)
}
