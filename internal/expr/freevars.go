package expr

import "sort"

// FreeVars returns the variable names referenced by the tree, excluding
// built-in constants, sorted for deterministic output.
func FreeVars(root Node) []string {
	seen := make(map[string]struct{})
	walkIdents(root, seen)
	names := make([]string, 0, len(seen))
	for name := range seen {
		if _, ok := builtinConsts[name]; ok {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func walkIdents(n Node, seen map[string]struct{}) {
	switch e := n.(type) {
	case *Ident:
		seen[e.Name] = struct{}{}
	case *Unary:
		walkIdents(e.X, seen)
	case *Binary:
		walkIdents(e.L, seen)
		walkIdents(e.R, seen)
	case *Call:
		for _, arg := range e.Args {
			walkIdents(arg, seen)
		}
	case *Compare:
		walkIdents(e.L, seen)
		walkIdents(e.R, seen)
	}
}
