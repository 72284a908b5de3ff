// Package fdb defines the contract between the typed view layer and a
// read-only, hash-bucketed row store.
//
// This package contains:
//   - Value types and the Field tagged union
//   - Latin-1 text handling (Latin1Str)
//   - Store interfaces (Tables, Table, Column, Row)
//   - Bucket addressing shared by stores and lookups
//
// The Golden Rule: pkg/fdb imports ONLY stdlib and golang.org/x/text.
// Stores and typed views depend on fdb, not the reverse.
package fdb
