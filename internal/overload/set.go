// Package overload implements OverloadedSet, the tournament that picks a
// single winning CandidateFunction for a call site's actual arguments.
package overload

import (
	"sync"

	"github.com/tliron/commonlog"

	"overcall/internal/cache"
	"overcall/internal/candidate"
	"overcall/internal/convtable"
	"overcall/internal/descriptor"
	"overcall/internal/dispatcherrors"
	"overcall/internal/gcsink"
	"overcall/internal/host"
	"overcall/internal/insight"
	"overcall/internal/value"
	"overcall/internal/weight"
)

// MaxArity bounds how many actual arguments a single call may carry.
// Checked before any frontend interaction beyond counting the actuals.
const MaxArity = 12

// OverloadedSet is a named group of candidate functions resolved together
// at each call site.
type OverloadedSet struct {
	name     string
	table    *convtable.ConversionTable
	frontend host.Frontend
	memory   host.MemoryManager
	cache    *cache.ResolutionCache
	logger   commonlog.Logger

	mu         sync.RWMutex
	candidates []*candidate.CandidateFunction
}

// New creates an empty OverloadedSet named name. table supplies conversion
// routes, frontend fingerprints actuals, memory releases the scoped garbage
// sink after each call, and resolutionCache memoizes tournament outcomes.
// Pass cache.Default() for resolutionCache to share the process-wide cache.
// Pass WithLogger to report tournament verdicts; the default is silent.
func New(name string, table *convtable.ConversionTable, frontend host.Frontend, memory host.MemoryManager, resolutionCache *cache.ResolutionCache, opts ...Option) *OverloadedSet {
	s := &OverloadedSet{
		name:     name,
		table:    table,
		frontend: frontend,
		memory:   memory,
		cache:    resolutionCache,
		logger:   commonlog.NewNilLogger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Name returns the set's diagnostic name.
func (s *OverloadedSet) Name() string { return s.name }

// SeekAlternative returns the first registered candidate whose signature is
// element-wise identical to signature, if any. This deliberately allows
// multiple alternatives to share a signature (e.g. const and non-const
// overloads of the same native function): registration never rejects a
// duplicate, it only lets callers look one up.
func (s *OverloadedSet) SeekAlternative(signature []*descriptor.TypeDescriptor) (*candidate.CandidateFunction, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	probe := candidate.New("", signature, nil, nil)
	for _, existing := range s.candidates {
		if candidate.Identical(existing, probe) {
			return existing, true
		}
	}
	return nil, false
}

// AddAlternative appends fn as a new overload. Order is preserved and never
// reordered; a signature already registered under another alternative is
// permitted (see SeekAlternative).
func (s *OverloadedSet) AddAlternative(fn *candidate.CandidateFunction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.candidates = append(s.candidates, fn)
	return nil
}

// AddAlternatives appends each fn in order, stopping at the first error.
func (s *OverloadedSet) AddAlternatives(fns ...*candidate.CandidateFunction) error {
	for _, fn := range fns {
		if err := s.AddAlternative(fn); err != nil {
			return err
		}
	}
	return nil
}

// Call resolves and invokes the overload matching actuals: arity gate,
// fingerprint, cache probe, tournament on miss, then invocation with
// scoped transient-value release.
func (s *OverloadedSet) Call(actuals []value.Value) (value.Value, error) {
	if len(actuals) > MaxArity {
		return nil, &dispatcherrors.ArgumentArrayLimitExceededError{Got: len(actuals), Limit: MaxArity}
	}

	types := make([]*descriptor.TypeDescriptor, len(actuals))
	insights := make([]insight.Insight, len(actuals))
	for i, a := range actuals {
		types[i] = s.frontend.DetectType(a)
		insights[i] = s.frontend.DetectInsight(a)
	}

	key := cache.Key{Set: s, Arity: len(actuals), Types: types, Insights: insights}

	s.mu.RLock()
	candidates := append([]*candidate.CandidateFunction(nil), s.candidates...)
	s.mu.RUnlock()

	if idx, sentinel := s.cache.Lookup(key); sentinel == cache.Hit {
		return s.invoke(candidates[idx], types, insights, actuals)
	} else if sentinel == cache.Impossible {
		return nil, &dispatcherrors.OverloadingNoMatchError{SetName: s.name, Arity: len(actuals)}
	}

	championIdx, ambiguous, err := s.tournament(candidates, types, insights)
	if err != nil {
		s.logger.Debugf("%s: no viable candidate for %d actuals", s.name, len(actuals))
		s.cache.StoreImpossible(key)
		return nil, err
	}
	if len(ambiguous) > 0 {
		names := []string{candidates[championIdx].String()}
		for _, idx := range ambiguous {
			names = append(names, candidates[idx].String())
		}
		s.logger.Debugf("%s: ambiguous between %v", s.name, names)
		return nil, &dispatcherrors.OverloadingAmbiguityError{SetName: s.name, Candidates: names}
	}

	s.logger.Debugf("%s: tournament selected %s", s.name, candidates[championIdx].String())
	s.cache.Store(key, championIdx)
	return s.invoke(candidates[championIdx], types, insights, actuals)
}

// tournament runs the per-call champion-comparison loop across every
// candidate whose arity matches, returning the champion's index and the
// indices of any candidates left tied with it.
func (s *OverloadedSet) tournament(candidates []*candidate.CandidateFunction, types []*descriptor.TypeDescriptor, insights []insight.Insight) (champion int, ambiguous []int, err error) {
	champion = -1
	var championWeights []weight.Weight

	for i, fn := range candidates {
		if fn.Arity() != len(types) {
			continue
		}
		routes, rerr := s.table.BestSequenceRoute(types, insights, fn.Signature())
		if rerr != nil {
			continue // no applicable conversion at some position: not viable
		}
		w := make([]weight.Weight, len(routes))
		possible := true
		for p, r := range routes {
			w[p] = r.TotalWeight(insights[p])
			if !w[p].IsPossible() {
				possible = false
			}
		}
		if !possible {
			continue // an Infinite position weight: not viable
		}

		if champion == -1 {
			champion = i
			championWeights = w
			continue
		}

		switch CompareWeightVectors(championWeights, w) {
		case Better:
			champion = i
			championWeights = w
			ambiguous = ambiguous[:0]
		case Worse:
			// candidate loses the tie outright; champion unchanged
		case Equivalent, Ambiguous:
			// Tied (or crossed) with the champion: not ambiguous only when
			// the two alternatives are structurally identical (e.g. a
			// const/non-const pair sharing a signature), per spec.md §4.3.
			if !candidate.Identical(candidates[champion], fn) {
				ambiguous = append(ambiguous, i)
			}
		}
	}

	if champion == -1 {
		return 0, nil, &dispatcherrors.OverloadingNoMatchError{SetName: s.name, Arity: len(types)}
	}
	return champion, ambiguous, nil
}

func (s *OverloadedSet) invoke(fn *candidate.CandidateFunction, types []*descriptor.TypeDescriptor, insights []insight.Insight, actuals []value.Value) (value.Value, error) {
	routes, err := s.table.BestSequenceRoute(types, insights, fn.Signature())
	if err != nil {
		return nil, err
	}

	sink := gcsink.New()
	converted := make([]value.Value, len(actuals))
	for i, r := range routes {
		v, cerr := r.Apply(actuals[i], sink)
		if cerr != nil {
			sink.Release(s.memory)
			return nil, cerr
		}
		converted[i] = v
	}

	result, callErr := fn.Call(converted)
	if callErr != nil {
		sink.Release(s.memory)
		return nil, callErr
	}

	if conv, ok := s.table.GetEdgeConversion(fn.ReturnType()); ok {
		original := result
		result, err = conv(result)
		if err != nil {
			sink.Release(s.memory)
			return nil, err
		}
		s.memory.Release(original)
	}

	sink.Release(s.memory)
	return result, nil
}
