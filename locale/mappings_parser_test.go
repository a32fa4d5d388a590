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

//nolint:testpackage // This is a white-box test file for an internal package. It needs to be in the same package to test unexported functions.
package locale

import (
	"strings"
	"testing"
)

// TestParseMappings_Valid verifies that a well-formed document in the
// MappingData schema is decoded with all tables populated.
func TestParseMappings_Valid(t *testing.T) {
	const doc = `{
		"version": "36",
		"grandfatheredMappings": {"no-bok": {"language": "nb"}},
		"languageMappings": {"in": "id"},
		"complexLanguageMappings": {"sh": {"language": "sr", "script": "Latn"}},
		"regionMappings": {"DD": "DE"},
		"complexRegionMappings": {
			"SU": {"default": "RU", "replacements": [{"language": "uz", "region": "UZ"}]}
		},
		"likelySubtags": {"und": "en-Latn-US", "en": "en-Latn-US"}
	}`

	data, err := ParseMappings(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("ParseMappings() returned an unexpected error: %v", err)
	}

	if data.Version != "36" {
		t.Errorf("Version = %q, want %q", data.Version, "36")
	}
	if got := data.GrandfatheredMappings["no-bok"].Language; got != "nb" {
		t.Errorf(`GrandfatheredMappings["no-bok"].Language = %q, want "nb"`, got)
	}
	if got := data.ComplexLanguageMappings["sh"].Script; got != "Latn" {
		t.Errorf(`ComplexLanguageMappings["sh"].Script = %q, want "Latn"`, got)
	}
	if got := data.ComplexRegionMappings["SU"].Default; got != "RU" {
		t.Errorf(`ComplexRegionMappings["SU"].Default = %q, want "RU"`, got)
	}
	if got := len(data.ComplexRegionMappings["SU"].Replacements); got != 1 {
		t.Errorf(`len(ComplexRegionMappings["SU"].Replacements) = %d, want 1`, got)
	}
}

// TestParseMappings_Invalid verifies that malformed documents are rejected.
func TestParseMappings_Invalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{
			name: "Not JSON",
			doc:  "Type: language\nSubtag: en",
		},
		{
			name: "Unknown field",
			doc:  `{"version": "36", "likelySubtags": {"und": "en-Latn-US"}, "bogus": 1}`,
		},
		{
			name: "Missing version",
			doc:  `{"likelySubtags": {"und": "en-Latn-US"}}`,
		},
		{
			name: "Missing likely subtags",
			doc:  `{"version": "36"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseMappings(strings.NewReader(tt.doc)); err == nil {
				t.Errorf("ParseMappings() should have failed for %s but did not", tt.name)
			}
		})
	}
}
