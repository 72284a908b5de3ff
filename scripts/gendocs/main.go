// Package main generates the markdown reference for the ptdb CLI, its
// configuration and the CDClient tables the bindings cover.
//
// Usage:
//
//	go run ./scripts/gendocs -gen=cli -outdir=docs/cli
//	go run ./scripts/gendocs -gen=schema -outdir=docs/reference
//	go run ./scripts/gendocs -gen=all
package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"
)

var (
	genFlag    = flag.String("gen", "all", "what to generate: cli, schema, all")
	outDirFlag = flag.String("outdir", "", "output directory (defaults based on gen type)")
)

func main() {
	flag.Parse()

	generators := map[string]func(string) error{
		"cli":    generateCLIDocs,
		"schema": generateSchemaDocs,
	}
	defaultDirs := map[string]string{
		"cli":    filepath.Join("docs", "cli"),
		"schema": filepath.Join("docs", "reference"),
	}

	var selected []string
	switch *genFlag {
	case "all":
		if *outDirFlag != "" {
			log.Fatal("-outdir cannot be combined with -gen=all")
		}
		selected = []string{"cli", "schema"}
	case "cli", "schema":
		selected = []string{*genFlag}
	default:
		log.Fatalf("unknown -gen value: %s (use: cli, schema, all)", *genFlag)
	}

	projectRoot, err := findProjectRoot()
	if err != nil {
		log.Fatalf("failed to find project root: %v", err)
	}
	log.Printf("Project root: %s", projectRoot)

	for _, gen := range selected {
		outDir := *outDirFlag
		if outDir == "" {
			outDir = filepath.Join(projectRoot, defaultDirs[gen])
		}
		if err := generators[gen](outDir); err != nil {
			log.Fatalf("failed to generate %s docs: %v", gen, err)
		}
	}

	log.Println("Done!")
}

// findProjectRoot walks up from current directory to find go.mod.
func findProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", os.ErrNotExist
		}
		dir = parent
	}
}
