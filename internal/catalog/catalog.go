// Package catalog maps user-facing category selectors such as
// "mood/family-movie-night" to provider discovery filters.
//
// The table is static and built once at package init. Resolve either returns
// exactly one Spec or an UNSUPPORTED_CATEGORY error; it never falls back to a
// default.
package catalog

import (
	"maps"
	"slices"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/cinescope/cinescope-server/internal/domain"
	domainerrors "github.com/cinescope/cinescope-server/internal/errors"
	"github.com/cinescope/cinescope-server/internal/util"
)

// Type is a category group.
type Type string

// Category groups.
const (
	Mood     Type = "mood"
	Awards   Type = "awards"
	Studios  Type = "studios"
	Networks Type = "networks"
	Genres   Type = "genres"
)

// FilterValue is a provider filter parameter value.
type FilterValue interface {
	ProviderValue() string
}

// IDs is a list of genre, company or network ids, sent comma-joined.
type IDs []int

// ProviderValue implements FilterValue.
func (ids IDs) ProviderValue() string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}
	return strings.Join(parts, ",")
}

// Text is a scalar parameter passed through verbatim, e.g. a sort order.
type Text string

// ProviderValue implements FilterValue.
func (t Text) ProviderValue() string {
	return string(t)
}

// Threshold is a numeric bound such as vote_count.gte.
type Threshold float64

// ProviderValue implements FilterValue.
func (t Threshold) ProviderValue() string {
	return strconv.FormatFloat(float64(t), 'f', -1, 64)
}

// Spec is one resolved category.
type Spec struct {
	Type    Type
	Key     string
	Label   string
	Filters map[string]FilterValue

	// MediaType selects the movie or TV discovery endpoint. Empty means movie.
	MediaType domain.MediaType
}

// Name returns the "<type>/<key>" selector.
func (s Spec) Name() string {
	return string(s.Type) + "/" + s.Key
}

// Media returns the implied media type, defaulting to movie.
func (s Spec) Media() domain.MediaType {
	if s.MediaType == "" {
		return domain.MediaMovie
	}
	return s.MediaType
}

// ProviderParams flattens the filters into provider query parameters.
// The implied media type is not a filter and is never included.
func (s Spec) ProviderParams() map[string]string {
	params := make(map[string]string, len(s.Filters))
	for k, v := range s.Filters {
		params[k] = v.ProviderValue()
	}
	return params
}

var (
	index   map[Type]map[string]Spec
	ordered map[Type][]string
)

func init() {
	titler := cases.Title(language.English)

	index = make(map[Type]map[string]Spec, len(types))
	ordered = make(map[Type][]string, len(types))
	for _, s := range table {
		if !util.IsSlug(s.Key) {
			panic("catalog: non-canonical key " + s.Name())
		}
		if s.Label == "" {
			s.Label = titler.String(util.SlugWords(s.Key))
		}
		if index[s.Type] == nil {
			index[s.Type] = make(map[string]Spec)
		}
		if _, dup := index[s.Type][s.Key]; dup {
			panic("catalog: duplicate key " + s.Name())
		}
		index[s.Type][s.Key] = s
		ordered[s.Type] = append(ordered[s.Type], s.Key)
	}
}

// Resolve looks up a category. Unknown types, malformed keys and keys outside
// the allow-list all fail with UNSUPPORTED_CATEGORY naming the offending input.
func Resolve(categoryType, categoryKey string) (Spec, error) {
	keys, ok := index[Type(categoryType)]
	if !ok {
		return Spec{}, domainerrors.UnsupportedCategoryf("unsupported category type: %q", categoryType)
	}
	if !util.IsSlug(categoryKey) {
		return Spec{}, domainerrors.UnsupportedCategoryf("unsupported %s category: %q", categoryType, categoryKey)
	}
	s, ok := keys[categoryKey]
	if !ok {
		return Spec{}, domainerrors.UnsupportedCategoryf("unsupported %s category: %q", categoryType, categoryKey)
	}

	s.Filters = maps.Clone(s.Filters)
	return s, nil
}

// Types returns the category groups in display order.
func Types() []Type {
	return slices.Clone(types)
}

// Keys returns the allowed keys of t in table order.
func Keys(t Type) []string {
	return slices.Clone(ordered[t])
}

// All returns every spec of t in table order.
func All(t Type) []Spec {
	keys := ordered[t]
	out := make([]Spec, 0, len(keys))
	for _, k := range keys {
		s := index[t][k]
		s.Filters = maps.Clone(s.Filters)
		out = append(out, s)
	}
	return out
}
