// Package demo wires a small, concrete native-function universe on top of
// the dispatch core: a handful of descriptor types, a few implicit
// conversions (including one insight-sensitive edge), and a handful of
// overloaded sets exercising the common resolution scenarios. It exists so
// the REPL and tests have something real to dispatch against without
// inventing a production language binding.
package demo

import (
	"fmt"
	"strconv"

	"overcall/internal/cache"
	"overcall/internal/candidate"
	"overcall/internal/convert"
	"overcall/internal/convtable"
	"overcall/internal/descriptor"
	"overcall/internal/host"
	"overcall/internal/insight"
	"overcall/internal/overload"
	"overcall/internal/value"
	"overcall/internal/weight"
)

// ZeroInt is the Insight reported for an int64 actual whose value is exactly
// zero. The "describe" overload set uses it to make the Int->Bool edge
// cheaper for an obviously-falsy value than for any other integer,
// demonstrating that a route's scored weight (not its shape) depends on the
// runtime Insight of the value flowing into it.
const ZeroInt insight.Insight = 1

// Universe bundles a conversion table and a name -> OverloadedSet directory,
// the demo host's equivalent of a scripting runtime's native-function
// registry.
type Universe struct {
	Table    *convtable.ConversionTable
	Frontend host.Frontend
	Memory   host.MemoryManager
	Sets     map[string]*overload.OverloadedSet
}

// Dispatch looks up name and calls it with actuals, failing with an
// "unknown name" error if no such overloaded set was registered.
func (u *Universe) Dispatch(name string, actuals []value.Value) (value.Value, error) {
	set, ok := u.Sets[name]
	if !ok {
		return nil, fmt.Errorf("no such callable: %s", name)
	}
	return set.Call(actuals)
}

// New builds the demo universe: Int/Double/String/Bool types, their
// implicit conversions, and the add/combine/greet/describe overloaded sets.
func New() (*Universe, error) {
	reg := descriptor.NewRegistry()
	intT := reg.Intern("Int")
	doubleT := reg.Intern("Double")
	stringT := reg.Intern("String")
	boolT := reg.Intern("Bool")

	table := convtable.New()
	for _, t := range []*descriptor.TypeDescriptor{intT, doubleT, stringT, boolT} {
		table.RegisterType(t)
	}

	if err := table.RegisterEdge(intT, doubleT, convert.Constant(weight.Of(1)), func(v value.Value) (value.Value, error) {
		return float64(v.(int64)), nil
	}); err != nil {
		return nil, err
	}
	if err := table.RegisterEdge(boolT, stringT, convert.Constant(weight.Of(2)), func(v value.Value) (value.Value, error) {
		return strconv.FormatBool(v.(bool)), nil
	}); err != nil {
		return nil, err
	}
	if err := table.RegisterEdge(intT, boolT, func(ins insight.Insight) weight.Weight {
		if ins == ZeroInt {
			return weight.Of(1)
		}
		return weight.Of(2)
	}, func(v value.Value) (value.Value, error) {
		return v.(int64) != 0, nil
	}); err != nil {
		return nil, err
	}

	frontend := &demoFrontend{intT: intT, doubleT: doubleT, stringT: stringT, boolT: boolT}
	memory := &demoMemory{}

	resolutionCache := cache.New(cache.DefaultCapacity)
	u := &Universe{Table: table, Frontend: frontend, Memory: memory, Sets: map[string]*overload.OverloadedSet{}}

	add := overload.New("add", table, frontend, memory, resolutionCache)
	if err := add.AddAlternatives(
		candidate.New("add", []*descriptor.TypeDescriptor{intT, intT}, intT, func(a []value.Value) (value.Value, error) {
			return a[0].(int64) + a[1].(int64), nil
		}),
		candidate.New("add", []*descriptor.TypeDescriptor{doubleT, doubleT}, doubleT, func(a []value.Value) (value.Value, error) {
			return a[0].(float64) + a[1].(float64), nil
		}),
		candidate.New("add", []*descriptor.TypeDescriptor{stringT, stringT}, stringT, func(a []value.Value) (value.Value, error) {
			return a[0].(string) + a[1].(string), nil
		}),
	); err != nil {
		return nil, err
	}
	u.Sets["add"] = add

	combine := overload.New("combine", table, frontend, memory, resolutionCache)
	if err := combine.AddAlternatives(
		candidate.New("combine", []*descriptor.TypeDescriptor{intT, doubleT}, stringT, func(a []value.Value) (value.Value, error) {
			return fmt.Sprintf("%d+%g", a[0].(int64), a[1].(float64)), nil
		}),
		candidate.New("combine", []*descriptor.TypeDescriptor{doubleT, intT}, stringT, func(a []value.Value) (value.Value, error) {
			return fmt.Sprintf("%g+%d", a[0].(float64), a[1].(int64)), nil
		}),
	); err != nil {
		return nil, err
	}
	u.Sets["combine"] = combine

	greet := overload.New("greet", table, frontend, memory, resolutionCache)
	if err := greet.AddAlternative(candidate.New("greet", nil, stringT, func(a []value.Value) (value.Value, error) {
		return "hello", nil
	})); err != nil {
		return nil, err
	}
	u.Sets["greet"] = greet

	describe := overload.New("describe", table, frontend, memory, resolutionCache)
	if err := describe.AddAlternatives(
		candidate.New("describe", []*descriptor.TypeDescriptor{boolT}, stringT, func(a []value.Value) (value.Value, error) {
			return "bool:" + strconv.FormatBool(a[0].(bool)), nil
		}),
		candidate.New("describe", []*descriptor.TypeDescriptor{stringT}, stringT, func(a []value.Value) (value.Value, error) {
			return "string:" + a[0].(string), nil
		}),
	); err != nil {
		return nil, err
	}
	u.Sets["describe"] = describe

	return u, nil
}

type demoFrontend struct {
	intT, doubleT, stringT, boolT *descriptor.TypeDescriptor
}

func (f *demoFrontend) DetectType(v value.Value) *descriptor.TypeDescriptor {
	switch v.(type) {
	case int64:
		return f.intT
	case float64:
		return f.doubleT
	case string:
		return f.stringT
	case bool:
		return f.boolT
	default:
		return nil
	}
}

func (f *demoFrontend) DetectInsight(v value.Value) insight.Insight {
	if n, ok := v.(int64); ok && n == 0 {
		return ZeroInt
	}
	return insight.None
}

type demoMemory struct{}

func (*demoMemory) Release(value.Value) {}

var (
	_ host.Frontend      = (*demoFrontend)(nil)
	_ host.MemoryManager = (*demoMemory)(nil)
)
