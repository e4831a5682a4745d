package params

import (
	"fmt"

	"github.com/rs/zerolog"
)

// Resolver looks up requested parameter names across an ordered list of
// collections. Resolution is first-match-wins: the earliest collection
// containing a name owns it, and the same name in any later collection is
// silently shadowed. The policy lets a caller override a parameter by
// listing a collection earlier, but it can also hide a
// data-provenance mistake, so when debug logging is enabled the resolver
// reports every shadowed occurrence.
type Resolver struct {
	collections []*Collection
	log         zerolog.Logger
}

// NewResolver creates a resolver over collections, consulted in the given
// order. Logging is off until WithLogger is called.
func NewResolver(collections []*Collection) *Resolver {
	return &Resolver{
		collections: collections,
		log:         zerolog.Nop(),
	}
}

// WithLogger sets the logger used to report shadowed duplicates and returns
// the resolver for chaining.
func (r *Resolver) WithLogger(log zerolog.Logger) *Resolver {
	r.log = log
	return r
}

// Collections returns the ordered collection list the resolver consults.
func (r *Resolver) Collections() []*Collection {
	return r.collections
}

// Resolve returns the collection owning the named parameter and the row
// index of the parameter within it. Collections are scanned in order and
// the first exact match wins; if no collection contains the name, it fails
// with ErrParameterNotFound.
func (r *Resolver) Resolve(name string) (*Collection, int, error) {
	for ci, c := range r.collections {
		for row, pn := range c.ParNames {
			if pn == name {
				r.logShadowed(name, ci)
				return c, row, nil
			}
		}
	}
	return nil, 0, fmt.Errorf("%w: %q", ErrParameterNotFound, name)
}

// logShadowed reports later occurrences of name that first-match-wins hides.
// The scan only happens when debug logging is enabled, so in normal operation
// collections after the winning one are never consulted.
func (r *Resolver) logShadowed(name string, winner int) {
	if r.log.GetLevel() > zerolog.DebugLevel {
		return
	}
	for _, c := range r.collections[winner+1:] {
		for _, pn := range c.ParNames {
			if pn == name {
				r.log.Debug().
					Str("parameter", name).
					Str("winner", r.collections[winner].Name).
					Str("shadowed", c.Name).
					Msg("parameter defined in multiple collections, first match wins")
			}
		}
	}
}

// AllNames returns the effective request list when the caller supplies none:
// every parameter name from every collection, in collection order then
// intra-collection order. Duplicates across collections are kept, so a
// shared name yields two output columns, each resolved independently (and,
// under first-match-wins, both to the same source row).
func AllNames(collections []*Collection) []string {
	var names []string
	for _, c := range collections {
		names = append(names, c.ParNames...)
	}
	return names
}

// AllNames is the resolver-scoped variant of the package function.
func (r *Resolver) AllNames() []string {
	return AllNames(r.collections)
}
