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

// Package locale canonicalizes Unicode BCP 47 locale identifiers and
// implements the TR35 "Likely Subtags" algorithm.
//
// Canonicalization rewrites deprecated language and region subtags to their
// preferred modern values as defined by the CLDR alias data: simple renames
// (such as "in" to "id"), complex replacements that imply a script or region
// (such as "sh" to "sr-Latn"), region replacements whose result depends on
// the language of the tag (such as "SU" to one of the former USSR states),
// and whole-tag rewrites of the regular grandfathered tags ("no-bok" to
// "nb"). The likely-subtags operations infer the most probable script and
// region for an under-specified identifier, or strip script and region
// subtags that the inference would re-derive.
//
// # Key Features
//
//   - Exact CLDR semantics: the complex replacement rules preserve the
//     first-match ordering and precedence defined by TR35, including the
//     rule that an explicit subtag always wins over an implied one.
//   - Self-Contained: the CLDR-derived mapping data is embedded directly
//     into the library, so it has no external file dependencies at runtime.
//   - High Performance: NewCanonicalizer() returns a reusable, thread-safe
//     instance whose tables are built once and never mutated.
//   - Interop: tags convert to and from golang.org/x/text/language.Tag.
//
// The package assumes syntactically valid input. The Parse method accepts
// only well-formed Unicode BCP 47 locale identifiers and rejects anything
// else; Canonicalize corrects subtag values, never subtag syntax. A Tag with
// impossible structure (for example a region subtag that is neither two
// letters nor three digits) is returned unchanged rather than causing a
// panic.
package locale

import (
	"encoding/json"
	"strings"
)

// Tag represents a parsed Unicode BCP 47 locale identifier. All subtags are
// held in canonical case: language lower case, script title case, region
// upper case, variants and private-use lower case. The zero value with a
// non-empty PrivateUse field represents a private-use-only tag ("x-...").
type Tag struct {
	// Language is the primary language subtag, 2-3 or 5-8 letters.
	Language string
	// Script is the optional script subtag, 4 letters, or "".
	Script string
	// Region is the optional region subtag, 2 letters or 3 digits, or "".
	Region string
	// Variants holds the variant subtags in order. Order is significant
	// for grandfathered matching; replacement variant lists are sorted.
	Variants []string
	// Extensions holds the extension sequences in order. Canonicalization
	// passes them through untouched.
	Extensions []Extension
	// PrivateUse holds the private-use subtags joined with "-", without
	// the leading "x-", or "".
	PrivateUse string
}

// Extension represents a single extension in a locale identifier,
// e.g. `-u-co-phonebk`.
type Extension struct {
	Singleton rune
	Value     string
}

// String renders the tag in canonical subtag order. It implements the
// fmt.Stringer interface.
func (t Tag) String() string {
	var b strings.Builder
	if t.Language == "" {
		if t.PrivateUse != "" {
			b.WriteString("x-")
			b.WriteString(t.PrivateUse)
		}
		return b.String()
	}
	b.WriteString(t.Language)
	if t.Script != "" {
		b.WriteByte('-')
		b.WriteString(t.Script)
	}
	if t.Region != "" {
		b.WriteByte('-')
		b.WriteString(t.Region)
	}
	for _, v := range t.Variants {
		b.WriteByte('-')
		b.WriteString(v)
	}
	for _, ext := range t.Extensions {
		b.WriteByte('-')
		b.WriteRune(ext.Singleton)
		if ext.Value != "" {
			b.WriteByte('-')
			b.WriteString(ext.Value)
		}
	}
	if t.PrivateUse != "" {
		b.WriteString("-x-")
		b.WriteString(t.PrivateUse)
	}
	return b.String()
}

// MarshalJSON implements the json.Marshaler interface. It marshals the tag
// as a JSON string.
func (t Tag) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// UnmarshalJSON implements the json.Unmarshaler interface. It parses the tag
// from the JSON string without canonicalizing it.
//
// Performance Warning: This method creates a new canonicalizer by calling
// NewCanonicalizer() on every invocation, which is an expensive operation.
// For performance-critical applications, it is highly recommended to
// unmarshal into a string and then use a pre-initialized, long-lived
// canonicalizer instance to parse the tag.
func (t *Tag) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	if s == "" {
		*t = Tag{}
		return nil
	}

	c, err := NewCanonicalizer()
	if err != nil {
		return err
	}

	parsed, err := c.Parse(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
