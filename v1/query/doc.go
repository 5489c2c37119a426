// Package query builds and runs parameterized SQL statements against a
// resolved datasource. The Builder accumulates filter clauses and renders
// them with the placeholder dialect of the executing backend; SQL text and
// the parameter list are produced in one pass so positional placeholders
// and arguments can never drift apart.
//
// A Builder is single-use: its terminal methods run the statement exactly
// once and any further terminal call fails with ErrBuilderConsumed. The
// Result they return is reusable and can be decoded any number of times.
package query
