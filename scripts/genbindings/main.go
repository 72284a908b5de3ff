// Package main generates typed table bindings from a schema document.
//
// Usage:
//
//	go run ./scripts/genbindings -schema=pkg/cdclient/schema.yaml -out=pkg/cdclient -package=cdclient
//
// With -watch it keeps running and regenerates whenever the schema changes.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"os/signal"

	"github.com/LUDevNet/paradox-typed-db/internal/bindgen"
)

var (
	schemaFlag  = flag.String("schema", "schema.yaml", "schema document (YAML or JSON)")
	outFlag     = flag.String("out", ".", "output directory")
	packageFlag = flag.String("package", "", "package name of the generated files (required)")
	watchFlag   = flag.Bool("watch", false, "regenerate when the schema changes")
)

func main() {
	flag.Parse()

	if *packageFlag == "" {
		log.Fatal("--package flag is required")
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	opts := bindgen.Options{Package: *packageFlag}
	generate := func() error {
		return bindgen.Run(*schemaFlag, *outFlag, opts, logger)
	}

	if err := generate(); err != nil {
		log.Fatalf("failed to generate bindings: %v", err)
	}

	if !*watchFlag {
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := bindgen.Watch(ctx, *schemaFlag, generate, logger); err != nil {
		log.Printf("watch failed: %v", err)
		stop()
		os.Exit(1)
	}
}
