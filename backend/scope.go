package codegen

// scope tracks which names a function body has declared with `let` and,
// inside a component, which instance variables are state.
type scope struct {
	parent   *scope
	declared map[string]struct{}
	// state is nil outside components.
	state map[string]struct{}
	// methods holds the component's local closures.
	methods   map[string]struct{}
	component bool
}

func newScope(parent *scope) *scope {
	sc := &scope{parent: parent, declared: make(map[string]struct{})}
	if parent != nil {
		sc.state = parent.state
		sc.methods = parent.methods
		sc.component = parent.component
	}
	return sc
}

func (sc *scope) isDeclared(name string) bool {
	for s := sc; s != nil; s = s.parent {
		if _, ok := s.declared[name]; ok {
			return true
		}
	}
	return false
}

func (sc *scope) declare(name string) {
	sc.declared[name] = struct{}{}
}

func (sc *scope) isMethod(name string) bool {
	_, ok := sc.methods[name]
	return ok
}

// isState reports whether @name is a component state cell.
func (sc *scope) isState(name string) bool {
	_, ok := sc.state[name]
	return ok
}
