/*
Copyright 2026 The Locale Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package locale

import (
	"errors"
	"fmt"
	"strings"
)

// Errors reported for inconsistent mapping data.
var (
	// ErrDataInvariant signals that the mapping tables are inconsistent
	// with the canonicalization rules, e.g. a subtag appears in both the
	// simple and the complex table. This is always a construction-time
	// bug in the data, never an end-user-triggerable condition.
	ErrDataInvariant = errors.New("mapping tables violate a data invariant")
	// ErrMissingLikelyData signals that no likely-subtags search key
	// matched a canonicalized tag, which requires an unlisted language
	// combined with a script absent from the und-script entries. Callers
	// should treat it as fatal.
	ErrMissingLikelyData = errors.New("no likely-subtags data for language")
)

// MappingData is the plain-data form of the CLDR-derived mapping tables, as
// produced by the external data-acquisition tooling. It is the input to
// NewCanonicalizerFromMappings and the schema of the embedded data file.
type MappingData struct {
	// Version is the CLDR release the mappings were derived from.
	Version string `json:"version"`
	// GrandfatheredMappings maps a regular grandfathered tag (language
	// plus exactly one variant, e.g. "no-bok") to its replacement.
	GrandfatheredMappings map[string]ReplacementTag `json:"grandfatheredMappings"`
	// LanguageMappings maps a deprecated language subtag to exactly one
	// preferred language subtag, e.g. "in" -> "id".
	LanguageMappings map[string]string `json:"languageMappings"`
	// ComplexLanguageMappings maps a deprecated language subtag to a
	// replacement that may imply a script and/or region, e.g.
	// "sh" -> sr-Latn.
	ComplexLanguageMappings map[string]ReplacementTag `json:"complexLanguageMappings"`
	// RegionMappings maps a deprecated region subtag to exactly one
	// preferred region subtag, e.g. "DD" -> "DE".
	RegionMappings map[string]string `json:"regionMappings"`
	// ComplexRegionMappings maps a deprecated region subtag to a default
	// region plus an ordered list of language-dependent replacements,
	// e.g. "SU" -> RU unless the tag's language points elsewhere.
	ComplexRegionMappings map[string]RegionReplacement `json:"complexRegionMappings"`
	// LikelySubtags maps a canonical "language[-Script][-REGION]" key to
	// its maximized form, e.g. "und-Hant" -> "zh-Hant-TW".
	LikelySubtags map[string]string `json:"likelySubtags"`
}

// ReplacementTag is the replacement side of a grandfathered or complex
// language mapping. Empty optional fields mean "no replacement value".
type ReplacementTag struct {
	Language   string   `json:"language"`
	Script     string   `json:"script,omitempty"`
	Region     string   `json:"region,omitempty"`
	Variants   []string `json:"variants,omitempty"`
	PrivateUse string   `json:"privateuse,omitempty"`
}

// RegionReplacement is the replacement side of a complex region mapping.
type RegionReplacement struct {
	// Default is the region used when no entry in Replacements matches.
	Default string `json:"default"`
	// Replacements is scanned in order; the first entry whose language
	// (and script, if the entry carries one) matches the tag wins.
	Replacements []RegionEntry `json:"replacements"`
}

// RegionEntry is a single language-dependent region replacement. An entry
// with an empty Script matches on language alone.
type RegionEntry struct {
	Language string `json:"language"`
	Script   string `json:"script,omitempty"`
	Region   string `json:"region"`
}

// coreTag is the (language, script, region) core of a locale identifier,
// used as the likely-subtags lookup key. Empty fields mean "absent".
type coreTag struct {
	language, script, region string
}

// grandfatheredKey identifies a regular grandfathered tag by its language
// subtag and its single variant.
type grandfatheredKey struct {
	language, variant string
}

// langScriptKey is the (language, script) match key of a complex region
// replacement entry. An empty script means the entry matches on language
// alone.
type langScriptKey struct {
	language, script string
}

// tables holds the immutable mapping tables used by a Canonicalizer. It is
// built once by newTables and never mutated afterwards.
type tables struct {
	version          string
	grandfathered    map[grandfatheredKey]ReplacementTag
	languages        map[string]string
	complexLanguages map[string]ReplacementTag
	regions          map[string]string
	complexRegions   map[string]RegionReplacement
	likely           map[coreTag]coreTag
}

// splitCoreTag parses a "language[-Script][-REGION]" string into a coreTag,
// normalizing the case of each subtag. Subtag kinds are recognized by shape:
// 4 letters is a script, 2 letters or 3 digits is a region.
func splitCoreTag(s string) (coreTag, error) {
	parts := strings.Split(s, "-")
	lang := strings.ToLower(parts[0])
	if len(lang) < 2 || len(lang) > 8 || len(lang) == 4 || !isAlphabetic(lang) {
		return coreTag{}, fmt.Errorf("%w: invalid language subtag in %q", ErrDataInvariant, s)
	}
	core := coreTag{language: lang}
	for _, part := range parts[1:] {
		switch {
		case len(part) == 4 && isAlphabetic(part) && core.script == "" && core.region == "":
			core.script = titleCase(part)
		case (len(part) == 2 && isAlphabetic(part)) || (len(part) == 3 && isNumeric(part)):
			if core.region != "" {
				return coreTag{}, fmt.Errorf("%w: duplicate region subtag in %q", ErrDataInvariant, s)
			}
			core.region = strings.ToUpper(part)
		default:
			return coreTag{}, fmt.Errorf("%w: unexpected subtag %q in %q", ErrDataInvariant, part, s)
		}
	}
	return core, nil
}

// newTables builds the lookup tables from plain mapping data and validates
// the cross-table invariants the canonicalization logic depends on.
func newTables(data *MappingData) (*tables, error) {
	t := &tables{
		version:          data.Version,
		grandfathered:    make(map[grandfatheredKey]ReplacementTag, len(data.GrandfatheredMappings)),
		languages:        make(map[string]string, len(data.LanguageMappings)),
		complexLanguages: make(map[string]ReplacementTag, len(data.ComplexLanguageMappings)),
		regions:          make(map[string]string, len(data.RegionMappings)),
		complexRegions:   make(map[string]RegionReplacement, len(data.ComplexRegionMappings)),
		likely:           make(map[coreTag]coreTag, len(data.LikelySubtags)),
	}

	if err := t.addGrandfathered(data.GrandfatheredMappings); err != nil {
		return nil, err
	}
	if err := t.addLanguages(data.LanguageMappings, data.ComplexLanguageMappings); err != nil {
		return nil, err
	}
	if err := t.addRegions(data.RegionMappings, data.ComplexRegionMappings); err != nil {
		return nil, err
	}
	if err := t.addLikelySubtags(data.LikelySubtags); err != nil {
		return nil, err
	}
	return t, nil
}

// addGrandfathered fills the grandfathered table. Every entry must have the
// language-plus-one-variant shape; anything else cannot be matched by the
// grandfathered rule and indicates drifted data.
func (t *tables) addGrandfathered(mappings map[string]ReplacementTag) error {
	for tag, repl := range mappings {
		language, variant, found := strings.Cut(strings.ToLower(tag), "-")
		if !found || language == "" || variant == "" || strings.Contains(variant, "-") {
			return fmt.Errorf("%w: grandfathered tag %q is not language plus one variant", ErrDataInvariant, tag)
		}
		if repl.Language == "" {
			return fmt.Errorf("%w: grandfathered tag %q has no replacement language", ErrDataInvariant, tag)
		}
		t.grandfathered[grandfatheredKey{language, variant}] = repl
	}
	return nil
}

// addLanguages fills the simple and complex language tables. The key sets
// must be disjoint and no replacement may itself be deprecated, so that a
// single pass fully canonicalizes a language subtag.
func (t *tables) addLanguages(simple map[string]string, complexMappings map[string]ReplacementTag) error {
	for deprecated, preferred := range simple {
		if preferred == "" {
			return fmt.Errorf("%w: language %q has an empty replacement", ErrDataInvariant, deprecated)
		}
		t.languages[strings.ToLower(deprecated)] = strings.ToLower(preferred)
	}
	for deprecated, repl := range complexMappings {
		key := strings.ToLower(deprecated)
		if _, dup := t.languages[key]; dup {
			return fmt.Errorf("%w: language %q is in both the simple and the complex table", ErrDataInvariant, deprecated)
		}
		if repl.Language == "" {
			return fmt.Errorf("%w: language %q has no replacement language", ErrDataInvariant, deprecated)
		}
		if len(repl.Variants) != 0 || repl.PrivateUse != "" {
			return fmt.Errorf("%w: language %q replacement carries variant or private-use subtags", ErrDataInvariant, deprecated)
		}
		t.complexLanguages[key] = repl
	}
	for deprecated, preferred := range t.languages {
		if _, chained := t.languages[preferred]; chained {
			return fmt.Errorf("%w: language %q maps to deprecated language %q", ErrDataInvariant, deprecated, preferred)
		}
		if _, chained := t.complexLanguages[preferred]; chained {
			return fmt.Errorf("%w: language %q maps to deprecated language %q", ErrDataInvariant, deprecated, preferred)
		}
	}
	return nil
}

// addRegions fills the simple and complex region tables. Replacement lists
// keep their order; entries within one list must be mutually exclusive on
// (language, script) so that first-match is deterministic data, not luck.
func (t *tables) addRegions(simple map[string]string, complexMappings map[string]RegionReplacement) error {
	for deprecated, preferred := range simple {
		if preferred == "" {
			return fmt.Errorf("%w: region %q has an empty replacement", ErrDataInvariant, deprecated)
		}
		t.regions[strings.ToUpper(deprecated)] = strings.ToUpper(preferred)
	}
	for deprecated, repl := range complexMappings {
		key := strings.ToUpper(deprecated)
		if _, dup := t.regions[key]; dup {
			return fmt.Errorf("%w: region %q is in both the simple and the complex table", ErrDataInvariant, deprecated)
		}
		if repl.Default == "" {
			return fmt.Errorf("%w: region %q has no default replacement", ErrDataInvariant, deprecated)
		}
		seen := make(map[langScriptKey]struct{}, len(repl.Replacements))
		normalized := RegionReplacement{
			Default:      strings.ToUpper(repl.Default),
			Replacements: make([]RegionEntry, 0, len(repl.Replacements)),
		}
		for _, entry := range repl.Replacements {
			if entry.Language == "" || entry.Region == "" {
				return fmt.Errorf("%w: region %q has a replacement without language or region", ErrDataInvariant, deprecated)
			}
			match := langScriptKey{strings.ToLower(entry.Language), titleCase(entry.Script)}
			if _, dup := seen[match]; dup {
				return fmt.Errorf("%w: region %q has duplicate replacement for language %q", ErrDataInvariant, deprecated, entry.Language)
			}
			seen[match] = struct{}{}
			normalized.Replacements = append(normalized.Replacements, RegionEntry{
				Language: match.language,
				Script:   match.script,
				Region:   strings.ToUpper(entry.Region),
			})
		}
		t.complexRegions[key] = normalized
	}
	for deprecated, preferred := range t.regions {
		if _, chained := t.regions[preferred]; chained {
			return fmt.Errorf("%w: region %q maps to deprecated region %q", ErrDataInvariant, deprecated, preferred)
		}
		if _, chained := t.complexRegions[preferred]; chained {
			return fmt.Errorf("%w: region %q maps to deprecated region %q", ErrDataInvariant, deprecated, preferred)
		}
	}
	return nil
}

// addLikelySubtags fills the likely-subtags table. Every language that
// appears on either side of an entry must have its bare-language fallback
// key present, and the "und" fallback must exist; the lookup in
// AddLikelySubtags relies on both.
func (t *tables) addLikelySubtags(mappings map[string]string) error {
	for from, to := range mappings {
		fromCore, err := splitCoreTag(from)
		if err != nil {
			return err
		}
		toCore, err := splitCoreTag(to)
		if err != nil {
			return err
		}
		if _, dup := t.likely[fromCore]; dup {
			return fmt.Errorf("%w: duplicate likely-subtags key %q", ErrDataInvariant, from)
		}
		t.likely[fromCore] = toCore
	}
	if _, ok := t.likely[coreTag{language: "und"}]; !ok {
		return fmt.Errorf("%w: likely-subtags table has no \"und\" fallback", ErrDataInvariant)
	}
	for from, to := range t.likely {
		if _, ok := t.likely[coreTag{language: from.language}]; !ok {
			return fmt.Errorf("%w: language %q has no bare-language likely-subtags entry", ErrDataInvariant, from.language)
		}
		if _, ok := t.likely[coreTag{language: to.language}]; !ok {
			return fmt.Errorf("%w: language %q has no bare-language likely-subtags entry", ErrDataInvariant, to.language)
		}
	}
	return nil
}
