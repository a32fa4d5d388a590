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

import "golang.org/x/text/language"

// TextTag converts the tag to a golang.org/x/text/language.Tag for use with
// libraries built on the x/text locale machinery (collation, display names,
// message catalogs). The conversion goes through language.Parse, which
// applies x/text's own canonicalization; round-tripping a tag through
// TextTag is therefore not guaranteed to be the identity for deprecated
// subtags.
func (t Tag) TextTag() (language.Tag, error) {
	return language.Parse(t.String())
}

// FromTextTag converts a golang.org/x/text/language.Tag into a Tag. The
// result is parsed, not canonicalized; use Canonicalize on the result to
// apply the CLDR alias rules.
func (c *Canonicalizer) FromTextTag(lt language.Tag) (Tag, error) {
	return c.Parse(lt.String())
}
