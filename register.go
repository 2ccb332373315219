package hashfuncs

import (
	"fmt"
	"sort"

	"github.com/segmentio/hashfuncs/internal/debug"
)

// Function is one callable overload of a hash function: the unseeded form
// f(value) or the seeded form f(value, seed) of one algorithm, with its
// declared result kind.
type Function struct {
	Name   string
	Args   []Kind
	Result Kind
	Eval   func(batch *Batch) (*Vector, error)
}

// Registry is the catalog of hash function overloads exposed to a host
// engine. It is fully populated at construction and read-only afterwards,
// so lookups need no locking.
type Registry struct {
	functions map[string][]Function
}

// NewRegistry constructs a registry binding the two overloads of every
// supported algorithm.
func NewRegistry() *Registry {
	r := &Registry{functions: make(map[string][]Function, numAlgorithms)}
	for alg := Algorithm(0); alg < numAlgorithms; alg++ {
		r.register(alg)
	}
	return r
}

func (r *Registry) register(alg Algorithm) {
	info := &algorithms[alg]
	r.add(Function{
		Name:   info.name,
		Args:   []Kind{Any},
		Result: info.output,
		Eval: func(b *Batch) (*Vector, error) {
			return Evaluate(alg, b.Column(0), nil)
		},
	})
	r.add(Function{
		Name:   info.name,
		Args:   []Kind{Any, info.seed},
		Result: info.output,
		Eval: func(b *Batch) (*Vector, error) {
			return Evaluate(alg, b.Column(0), b.Column(1))
		},
	})
	debug.Format("hashfuncs: registered %s(ANY) and %s(ANY, %s) returning %s",
		info.name, info.name, info.seed, info.output)
}

func (r *Registry) add(f Function) {
	r.functions[f.Name] = append(r.functions[f.Name], f)
}

// Bind resolves the overload of name accepting the given argument kinds.
// The value argument of every overload is declared ANY, so unsupported
// value kinds bind successfully and fail at evaluation time, while the
// seed argument must be exactly the algorithm's declared seed kind.
func (r *Registry) Bind(name string, args ...Kind) (*Function, error) {
	overloads, ok := r.functions[name]
	if !ok {
		return nil, fmt.Errorf("no function named %q", name)
	}
	for i := range overloads {
		if matches(overloads[i].Args, args) {
			return &overloads[i], nil
		}
	}
	return nil, fmt.Errorf("no overload of %s accepts arguments %v", name, args)
}

func matches(decl, args []Kind) bool {
	if len(decl) != len(args) {
		return false
	}
	for i, d := range decl {
		if d != Any && d != args[i] {
			return false
		}
	}
	return true
}

// Names returns the sorted names of the registered functions.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.functions))
	for name := range r.functions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
