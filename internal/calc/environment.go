package calc

// Environment stores variable bindings. Function calls run in a fresh
// environment holding the parameters, everything else runs in the globals.
type Environment struct {
	enclosing *Environment
	values    map[string]interface{}
}

func NewEnvironment(enclosing *Environment) *Environment {
	return &Environment{enclosing, make(map[string]interface{})}
}

// Define binds name in this environment, replacing any previous value.
func (env *Environment) Define(name string, value interface{}) {
	env.values[name] = value
}

func (env *Environment) Get(name string) (interface{}, bool) {
	if value, ok := env.values[name]; ok {
		return value, true
	}
	if env.enclosing != nil {
		return env.enclosing.Get(name)
	}
	return nil, false
}

func (env *Environment) Has(name string) bool {
	_, ok := env.Get(name)
	return ok
}
