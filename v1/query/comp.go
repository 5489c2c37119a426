package query

// Comp is a comparison operator usable in a filter clause.
type Comp int

const (
	Eq Comp = iota
	Neq
	Gt
	Gte
	Lt
	Lte
	Like
)

var compSQL = map[Comp]string{
	Eq:   "=",
	Neq:  "<>",
	Gt:   ">",
	Gte:  ">=",
	Lt:   "<",
	Lte:  "<=",
	Like: "LIKE",
}

// SQL returns the operator's SQL spelling, or "" for an undefined operator.
func (c Comp) SQL() string {
	return compSQL[c]
}

// Valid reports whether c is one of the defined operators.
func (c Comp) Valid() bool {
	_, ok := compSQL[c]
	return ok
}
