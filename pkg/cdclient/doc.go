// Package cdclient provides typed bindings to CDClient.fdb.
//
// The bindings in tables_gen.go and database_gen.go are generated from
// schema.yaml. Open a Database over any fdb.Tables to get a typed view of
// every table; tables that only newer clients ship are nil when missing.
package cdclient

import _ "embed"

//go:generate go run ../../scripts/genbindings -schema=schema.yaml -out=. -package=cdclient

//go:embed schema.yaml
var schemaDocument []byte

// SchemaDocument returns the schema the bindings were generated from.
func SchemaDocument() []byte {
	return append([]byte(nil), schemaDocument...)
}
