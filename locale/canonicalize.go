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

import "sort"

// Canonicalizer rewrites deprecated subtags of locale identifiers to their
// preferred values and resolves likely subtags. It contains the immutable
// mapping tables and should be created once and reused; it is safe for
// concurrent use.
type Canonicalizer struct {
	tables *tables
}

// NewCanonicalizerFromMappings builds a Canonicalizer from plain mapping
// data, validating the cross-table invariants. It returns an error wrapping
// ErrDataInvariant if the data is inconsistent with the canonicalization
// rules.
func NewCanonicalizerFromMappings(data *MappingData) (*Canonicalizer, error) {
	t, err := newTables(data)
	if err != nil {
		return nil, err
	}
	return &Canonicalizer{tables: t}, nil
}

// CLDRVersion returns the CLDR release the mapping tables were derived from.
func (c *Canonicalizer) CLDRVersion() string {
	return c.tables.version
}

// Canonicalize returns the tag with deprecated language and region subtags
// replaced by their preferred values, and regular grandfathered tags
// rewritten wholesale. Variants, extensions and private-use subtags pass
// through untouched except where a grandfathered replacement sets them.
// Subtags absent from every table are already canonical and kept as-is.
//
// The returned tag shares the input's variant slice unless the grandfathered
// rule replaced it; callers must not mutate a returned tag concurrently with
// further calls on the same value.
func (c *Canonicalizer) Canonicalize(t Tag) Tag {
	t = c.canonicalizeGrandfathered(t)
	t = c.canonicalizeLanguage(t)
	t = c.canonicalizeRegion(t)
	return t
}

// canonicalizeGrandfathered rewrites regular grandfathered tags to their
// modern form. Only a tag with no script, no region, exactly one variant, no
// extensions and no private-use subtags can be grandfathered; every other
// tag is left unchanged by this step.
func (c *Canonicalizer) canonicalizeGrandfathered(t Tag) Tag {
	if t.Script != "" || t.Region != "" || len(t.Variants) != 1 ||
		len(t.Extensions) != 0 || t.PrivateUse != "" {
		return t
	}
	repl, ok := c.tables.grandfathered[grandfatheredKey{t.Language, t.Variants[0]}]
	if !ok {
		return t
	}

	t.Language = repl.Language
	if repl.Script != "" {
		t.Script = repl.Script
	}
	if repl.Region != "" {
		t.Region = repl.Region
	}
	// The matched variant is consumed; the replacement list, sorted, takes
	// the place of the whole variant sequence.
	if len(repl.Variants) > 0 {
		variants := make([]string, len(repl.Variants))
		copy(variants, repl.Variants)
		sort.Strings(variants)
		t.Variants = variants
	} else {
		t.Variants = nil
	}
	if repl.PrivateUse != "" {
		t.PrivateUse = repl.PrivateUse
	}
	return t
}

// canonicalizeLanguage replaces a deprecated language subtag with its
// preferred value. A complex replacement may also imply a script or region,
// but an explicit script or region on the tag always wins over the implied
// one.
func (c *Canonicalizer) canonicalizeLanguage(t Tag) Tag {
	if preferred, ok := c.tables.languages[t.Language]; ok {
		t.Language = preferred
		return t
	}
	repl, ok := c.tables.complexLanguages[t.Language]
	if !ok {
		return t
	}
	t.Language = repl.Language
	if t.Script == "" && repl.Script != "" {
		t.Script = repl.Script
	}
	if t.Region == "" && repl.Region != "" {
		t.Region = repl.Region
	}
	return t
}

// canonicalizeRegion replaces a deprecated region subtag with its preferred
// value. For a complex replacement the tag's language (and script, if the
// entry carries one) selects the region; the first matching entry wins, and
// the default region applies when none matches.
func (c *Canonicalizer) canonicalizeRegion(t Tag) Tag {
	if t.Region == "" {
		return t
	}
	if preferred, ok := c.tables.regions[t.Region]; ok {
		t.Region = preferred
		return t
	}
	repl, ok := c.tables.complexRegions[t.Region]
	if !ok {
		return t
	}
	for _, entry := range repl.Replacements {
		if entry.Language != t.Language {
			continue
		}
		if entry.Script != "" && entry.Script != t.Script {
			continue
		}
		t.Region = entry.Region
		return t
	}
	t.Region = repl.Default
	return t
}
