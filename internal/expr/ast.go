package expr

// Node is a node of the parsed formula tree. The same tree drives both
// numeric evaluation and symbolic rendering, which keeps the two outputs
// structurally consistent by construction.
type Node interface {
	node()
}

// NumberLit is an integer or decimal literal.
type NumberLit struct {
	Value float64
	// Text preserves the literal as written for rendering.
	Text string
}

// Ident references a declared variable or the constant pi.
type Ident struct {
	Name string
}

// Unary is a prefix operation; the only operator is "-".
type Unary struct {
	Op string
	X  Node
}

// Binary is an infix arithmetic operation: + - * / **.
type Binary struct {
	Op   string
	L, R Node
}

// Call is an invocation of an allow-listed function.
type Call struct {
	Func string
	Args []Node
}

// Compare is a top-level comparison; it only appears as the root of a
// check formula.
type Compare struct {
	Op   string
	L, R Node
}

func (*NumberLit) node() {}
func (*Ident) node()     {}
func (*Unary) node()     {}
func (*Binary) node()    {}
func (*Call) node()      {}
func (*Compare) node()   {}
