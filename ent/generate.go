// Package ent is generated by entc from the schemas in ent/schema.
// Run `go generate ./ent` after changing any schema to regenerate the client.
package ent

//go:generate go run -mod=mod entgo.io/ent/cmd/ent generate ./schema
