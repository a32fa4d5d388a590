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

import "fmt"

// Sentinel subtags that mean "unknown" rather than a real value. The
// likely-subtags operations treat them as absent.
const (
	unknownScript = "Zzzz"
	unknownRegion = "ZZ"
)

// AddLikelySubtags returns the tag with its most likely script and region
// filled in, per the TR35 Likely Subtags algorithm. The language and region
// are canonicalized first, a script of "Zzzz" or region of "ZZ" is treated
// as absent, and an explicit subtag is never overridden by an inferred one.
// Variants, extensions and private-use subtags are preserved unchanged.
//
// It returns an error wrapping ErrMissingLikelyData when no search key
// matches. Since the table always carries the ("und", "", "") fallback, a
// script-less tag never fails; the error is only reachable for a tag whose
// language is unlisted and whose script has no und-script entry.
func (c *Canonicalizer) AddLikelySubtags(t Tag) (Tag, error) {
	core, err := c.maximize(coreTag{t.Language, t.Script, t.Region})
	if err != nil {
		return t, err
	}
	t.Language, t.Script, t.Region = core.language, core.script, core.region
	return t, nil
}

// RemoveLikelySubtags returns the tag with redundant script and region
// subtags stripped: the shortest form that AddLikelySubtags expands back to
// the same maximized tag. If no reduced form round-trips, the maximized tag
// is returned. Variants, extensions and private-use subtags are preserved
// unchanged.
func (c *Canonicalizer) RemoveLikelySubtags(t Tag) (Tag, error) {
	core, err := c.minimize(coreTag{t.Language, t.Script, t.Region})
	if err != nil {
		return t, err
	}
	t.Language, t.Script, t.Region = core.language, core.script, core.region
	return t, nil
}

// maximize implements the Add Likely Subtags algorithm from
// https://unicode.org/reports/tr35/#Likely_Subtags over the core subtags.
func (c *Canonicalizer) maximize(core coreTag) (coreTag, error) {
	// Step 1: canonicalize, then drop the "unknown" placeholders.
	canonical := c.Canonicalize(Tag{Language: core.language, Script: core.script, Region: core.region})
	core = coreTag{canonical.Language, canonical.Script, canonical.Region}
	if core.script == unknownScript {
		core.script = ""
	}
	if core.region == unknownRegion {
		core.region = ""
	}

	// Step 2: look up the first matching key, from most to least specific.
	searches := [...]coreTag{
		{core.language, core.script, core.region},
		{core.language, "", core.region},
		{core.language, core.script, ""},
		{core.language, "", ""},
		{"und", core.script, ""},
	}
	for _, key := range searches {
		match, ok := c.tables.likely[key]
		if !ok {
			continue
		}
		// Step 3: a field equal to the key's field was matched away and
		// takes the inferred value; anything else was explicit input and
		// wins over inference.
		result := core
		if core.language == key.language {
			result.language = match.language
		}
		if core.script == key.script {
			result.script = match.script
		}
		if core.region == key.region {
			result.region = match.region
		}
		return result, nil
	}
	return coreTag{}, fmt.Errorf("%w: %q", ErrMissingLikelyData, core.language)
}

// minimize implements the Remove Likely Subtags algorithm from
// https://unicode.org/reports/tr35/#Likely_Subtags over the core subtags.
func (c *Canonicalizer) minimize(core coreTag) (coreTag, error) {
	max, err := c.maximize(core)
	if err != nil {
		return coreTag{}, err
	}

	// Try the reduced forms in order; the first one that expands back to
	// the maximized tag carried only redundant subtags.
	trials := [...]coreTag{
		{max.language, "", ""},
		{max.language, "", max.region},
		{max.language, max.script, ""},
	}
	for _, trial := range trials {
		expanded, err := c.maximize(trial)
		if err != nil {
			return coreTag{}, err
		}
		if expanded == max {
			return trial, nil
		}
	}
	// No reduced form round-trips; the maximized tag is already minimal.
	return max, nil
}
