// Command schema-generator writes the JSON schema of mantra.yml so editors
// can validate project configuration files.
package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"

	"github.com/grovetools/mantra/config"
)

func main() {
	output := flag.String("o", "schema/mantra.schema.json", "output path")
	flag.Parse()

	schemaBytes, err := config.GenerateSchema()
	if err != nil {
		log.Fatalf("Error generating schema: %v", err)
	}

	if err := os.MkdirAll(filepath.Dir(*output), 0755); err != nil {
		log.Fatalf("Error creating schema directory: %v", err)
	}
	if err := os.WriteFile(*output, schemaBytes, 0644); err != nil {
		log.Fatalf("Error writing schema file: %v", err)
	}

	log.Printf("Generated schema at %s", *output)
}
