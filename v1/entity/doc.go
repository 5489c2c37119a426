// Package entity defines the metadata contract between user-defined data
// types and the query layer. A mapped type describes itself through a Model
// (table name, column set, primary key), produces identifier/value pairs as
// FieldValue when used in filters, and is reconstructed from result rows by
// a RowMapper.
//
// The metadata here is what a schema generator would emit; nothing in this
// package inspects struct tags or uses reflection.
package entity
