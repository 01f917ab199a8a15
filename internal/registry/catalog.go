package registry

import (
	"fmt"
	"reflect"
)

// EffectDecl declares one effect function: its name, arity, and optional
// default implementation. A nil Default means the effect has no fallback and
// every call must be explicitly bound or explicitly deferred is an error.
type EffectDecl struct {
	Name    string
	Arity   int
	Default any
}

// funcKey identifies a declared effect within an interface.
type funcKey struct {
	name  string
	arity int
}

// catalog is the runtime declaration table that stands in for the excluded
// compile-time generation layer: each effect interface registers its declared
// (name, arity) set and default implementations at startup, and the registry
// consults it at bind and call time.
//
// The catalog is owned by the Registry and shares its mutex; it has no
// locking of its own.
type catalog struct {
	interfaces map[string]map[funcKey]EffectDecl
}

func newCatalog() *catalog {
	return &catalog{interfaces: make(map[string]map[funcKey]EffectDecl)}
}

// declare registers the declared set for iface, replacing any prior
// declaration. Each default must be a func whose parameter count matches the
// declared arity.
func (c *catalog) declare(iface string, effects []EffectDecl) error {
	declared := make(map[funcKey]EffectDecl, len(effects))

	for _, effect := range effects {
		if effect.Default != nil {
			defType := reflect.TypeOf(effect.Default)
			if defType.Kind() != reflect.Func {
				return fmt.Errorf("%w: %s.%s default is %T, not a func",
					ErrBadDeclaration, iface, effect.Name, effect.Default)
			}

			if defType.NumIn() != effect.Arity {
				return fmt.Errorf("%w: %s.%s declared arity %d but default takes %d args",
					ErrBadDeclaration, iface, effect.Name, effect.Arity, defType.NumIn())
			}
		}

		declared[funcKey{name: effect.Name, arity: effect.Arity}] = effect
	}

	c.interfaces[iface] = declared

	return nil
}

// declared reports whether (name, arity) is among iface's declared effects.
func (c *catalog) declared(iface, name string, arity int) bool {
	_, ok := c.interfaces[iface][funcKey{name: name, arity: arity}]
	return ok
}

// defaultImpl returns the declared default for (iface, name, arity), or
// false if the effect is undeclared or declared without a default.
func (c *catalog) defaultImpl(iface, name string, arity int) (any, bool) {
	decl, ok := c.interfaces[iface][funcKey{name: name, arity: arity}]
	if !ok || decl.Default == nil {
		return nil, false
	}

	return decl.Default, true
}

// keys returns iface's declared (name, arity) pairs for seeding placeholder
// entries. Order is unspecified; seeding order does not matter because
// placeholders never compete for selection.
func (c *catalog) keys(iface string) []funcKey {
	declared := c.interfaces[iface]

	out := make([]funcKey, 0, len(declared))
	for key := range declared {
		out = append(out, key)
	}

	return out
}
