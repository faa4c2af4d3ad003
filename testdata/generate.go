package main

import (
	"log"
	"os"
	"path/filepath"
	"strings"
)

// Generates a demo directory for exercising lsq by hand:
//
//	go run generate.go
//	lsq demo --group-by extension --aggregate count
func main() {
	files := map[string]int{
		"readme.txt":     512,
		"notes.txt":      2048,
		"report.csv":     9000,
		"main.rs":        1200,
		"lib.rs":         4096,
		"archive.tar.gz": 1 << 20,
		".gitignore":     64,
	}

	if err := os.MkdirAll(filepath.Join("demo", "src"), 0o755); err != nil {
		log.Fatal(err)
	}

	for name, size := range files {
		content := strings.Repeat("x", size)
		if err := os.WriteFile(filepath.Join("demo", name), []byte(content), 0o644); err != nil {
			log.Fatal(err)
		}
	}

	log.Printf("Generated demo/ with %d files", len(files))
}
