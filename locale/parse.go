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
	"strings"
)

// Errors that can occur during locale identifier parsing.
var (
	ErrEmptyExtension     = errors.New("if an extension singleton is present, it must not be empty")
	ErrEmptyPrivateUse    = errors.New("if the 'x' subtag is present, it must not be empty")
	ErrForbiddenChar      = errors.New("the locale identifier contains a char not allowed")
	ErrInvalidSubtag      = errors.New("a subtag fails to parse as a Unicode locale identifier subtag")
	ErrInvalidLanguage    = errors.New("the given language subtag is invalid")
	ErrSubtagTooLong      = errors.New("a subtag may be eight characters in length at maximum")
	ErrEmptySubtag        = errors.New("a subtag should not be empty")
	ErrDuplicateVariant   = errors.New("the same variant subtag appears more than once")
	ErrDuplicateSingleton = errors.New("the same extension singleton appears more than once")
)

// Subtag length constants from the unicode_locale_id grammar.
const (
	maxSubtagLen       = 8 // Maximum length of any subtag.
	scriptLen          = 4 // A script subtag is always 4 letters.
	regionAlphaLen     = 2 // An alphabetic region subtag is always 2 letters.
	regionNumericLen   = 3 // A numeric region subtag is always 3 digits.
	minVariantLenAlpha = 5 // Min length of a variant starting with a letter.
	minVariantLenDigit = 4 // Min length of a variant starting with a digit.
)

// parseState represents the current position in the subtag sequence.
type parseState int

const (
	stateAfterLanguage parseState = iota // Expecting script, region, variant or singleton.
	stateAfterScript                     // Expecting region, variant or singleton.
	stateAfterRegion                     // Expecting variant or singleton.
	stateInVariant                       // In a sequence of one or more variants.
	stateInExtension                     // In an extension sequence (after a singleton).
	stateInPrivateUse                    // In a private-use sequence (after 'x').
)

// parseRun holds the state for a single parsing operation.
type parseRun struct {
	language   string
	script     string
	region     string
	variants   []string
	extensions []Extension
	privateuse []string

	state             parseState
	seenVariants      map[string]struct{}
	seenSingletons    map[byte]struct{}
	extensionExpected bool
}

// Parse checks that a string is a well-formed Unicode BCP 47 locale
// identifier (language, optional script, optional region, variants,
// extensions, private-use) and splits it into a Tag with each subtag
// normalized to its canonical case. Extended language subtags are not part
// of the grammar and are rejected.
//
// Regular grandfathered tags whose variant is too short for the grammar
// (e.g. "no-bok") are recognized against the grandfathered table and
// returned as language plus one variant, so that Canonicalize can rewrite
// them.
//
// Parse does not replace deprecated subtags; use ParseAndCanonicalize for
// that.
func (c *Canonicalizer) Parse(tag string) (Tag, error) {
	for _, r := range tag {
		// Only US-ASCII alphanumeric chars and hyphens are allowed.
		if !isLocaleChar(r) {
			return Tag{}, ErrForbiddenChar
		}
	}

	lower := strings.ToLower(tag)
	subtags := strings.Split(lower, "-")

	if subtags[0] == "x" {
		return parsePrivateUseOnly(subtags)
	}

	if language, variant, found := strings.Cut(lower, "-"); found {
		if _, ok := c.tables.grandfathered[grandfatheredKey{language, variant}]; ok {
			return Tag{Language: language, Variants: []string{variant}}, nil
		}
	}

	var run parseRun
	if err := run.parseLanguage(subtags[0]); err != nil {
		return Tag{}, err
	}
	for _, subtag := range subtags[1:] {
		if err := run.parseSubtag(subtag); err != nil {
			return Tag{}, err
		}
	}
	if err := run.checkFinalState(); err != nil {
		return Tag{}, err
	}
	return run.tag(), nil
}

// ParseAndCanonicalize parses a locale identifier and replaces its
// deprecated subtags with their preferred values.
func (c *Canonicalizer) ParseAndCanonicalize(tag string) (Tag, error) {
	parsed, err := c.Parse(tag)
	if err != nil {
		return Tag{}, err
	}
	return c.Canonicalize(parsed), nil
}

// parsePrivateUseOnly handles tags that start with the private-use
// singleton "x".
func parsePrivateUseOnly(subtags []string) (Tag, error) {
	if len(subtags) == 1 {
		return Tag{}, ErrEmptyPrivateUse
	}
	for _, subtag := range subtags[1:] {
		if err := validateSubtag(subtag); err != nil {
			return Tag{}, err
		}
	}
	return Tag{PrivateUse: strings.Join(subtags[1:], "-")}, nil
}

// validateSubtag performs the length checks shared by all subtag kinds.
func validateSubtag(subtag string) error {
	if len(subtag) == 0 {
		return ErrEmptySubtag
	}
	if len(subtag) > maxSubtagLen {
		return ErrSubtagTooLong
	}
	return nil
}

// parseLanguage handles the primary language subtag: 2-3 or 5-8 letters.
// A 4-letter first subtag is a script shape, never a language.
func (run *parseRun) parseLanguage(subtag string) error {
	if len(subtag) < 2 || len(subtag) > maxSubtagLen || len(subtag) == scriptLen || !isAlphabetic(subtag) {
		return ErrInvalidLanguage
	}
	run.language = subtag
	return nil
}

// parseSubtag dispatches a single subtag according to the current state.
func (run *parseRun) parseSubtag(subtag string) error {
	if err := validateSubtag(subtag); err != nil {
		return err
	}

	switch run.state {
	case stateInPrivateUse:
		run.privateuse = append(run.privateuse, subtag)
		return nil
	case stateInExtension:
		if len(subtag) == 1 {
			return run.parseSingleton(subtag[0])
		}
		last := &run.extensions[len(run.extensions)-1]
		if last.Value == "" {
			last.Value = subtag
		} else {
			last.Value += "-" + subtag
		}
		run.extensionExpected = false
		return nil
	default:
		return run.parseCoreSubtag(subtag)
	}
}

// parseCoreSubtag handles a subtag in the script/region/variant portion of
// the identifier, in the order defined by the grammar.
func (run *parseRun) parseCoreSubtag(subtag string) error {
	if len(subtag) == 1 {
		return run.parseSingleton(subtag[0])
	}

	isScript := len(subtag) == scriptLen && isAlphabetic(subtag)
	if run.state == stateAfterLanguage && isScript {
		run.script = subtag
		run.state = stateAfterScript
		return nil
	}

	isRegion := (len(subtag) == regionAlphaLen && isAlphabetic(subtag)) ||
		(len(subtag) == regionNumericLen && isNumeric(subtag))
	if run.state <= stateAfterScript && isRegion {
		run.region = subtag
		run.state = stateAfterRegion
		return nil
	}

	isVariant := (len(subtag) >= minVariantLenAlpha ||
		(len(subtag) >= minVariantLenDigit && isDigit(subtag[0]))) &&
		isAlphanumeric(subtag)
	if isVariant {
		if run.seenVariants == nil {
			run.seenVariants = make(map[string]struct{})
		}
		if _, seen := run.seenVariants[subtag]; seen {
			return ErrDuplicateVariant
		}
		run.seenVariants[subtag] = struct{}{}
		run.variants = append(run.variants, subtag)
		run.state = stateInVariant
		return nil
	}

	return ErrInvalidSubtag
}

// parseSingleton handles a single-character subtag, which starts an
// extension or a private-use sequence.
func (run *parseRun) parseSingleton(singleton byte) error {
	if run.extensionExpected {
		return ErrEmptyExtension
	}
	if run.seenSingletons == nil {
		run.seenSingletons = make(map[byte]struct{})
	}
	if _, seen := run.seenSingletons[singleton]; seen {
		return ErrDuplicateSingleton
	}
	run.seenSingletons[singleton] = struct{}{}

	if singleton == 'x' {
		run.state = stateInPrivateUse
		return nil
	}
	if !isAlphanum(singleton) {
		return ErrInvalidSubtag
	}
	run.extensions = append(run.extensions, Extension{Singleton: rune(singleton)})
	run.extensionExpected = true
	run.state = stateInExtension
	return nil
}

// checkFinalState rejects identifiers that end in the middle of an
// extension or private-use sequence.
func (run *parseRun) checkFinalState() error {
	if run.extensionExpected {
		return ErrEmptyExtension
	}
	if run.state == stateInPrivateUse && len(run.privateuse) == 0 {
		return ErrEmptyPrivateUse
	}
	return nil
}

// tag assembles the parsed subtags into a Tag in canonical case. The input
// was lower-cased up front, so only script and region need re-casing.
func (run *parseRun) tag() Tag {
	t := Tag{
		Language:   run.language,
		Script:     titleCase(run.script),
		Region:     strings.ToUpper(run.region),
		Variants:   run.variants,
		Extensions: run.extensions,
	}
	if len(run.privateuse) > 0 {
		t.PrivateUse = strings.Join(run.privateuse, "-")
	}
	return t
}
