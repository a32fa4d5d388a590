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
	"reflect"
	"testing"

	"golang.org/x/text/language"
)

// TestTag_TextTag verifies the conversion to x/text's Tag type for tags
// whose form x/text considers canonical already.
func TestTag_TextTag(t *testing.T) {
	tests := []struct {
		name string
		tag  Tag
		want language.Tag
	}{
		{
			name: "Language only",
			tag:  Tag{Language: "en"},
			want: language.MustParse("en"),
		},
		{
			name: "Full core",
			tag:  Tag{Language: "zh", Script: "Hant", Region: "TW"},
			want: language.MustParse("zh-Hant-TW"),
		},
		{
			name: "With extension",
			tag:  Tag{Language: "en", Region: "US", Extensions: []Extension{{Singleton: 'u', Value: "co-phonebk"}}},
			want: language.MustParse("en-US-u-co-phonebk"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.tag.TextTag()
			if err != nil {
				t.Fatalf("TextTag() returned an unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("TextTag() = %v, want %v", got, tt.want)
			}
		})
	}
}

// TestCanonicalizer_FromTextTag verifies the conversion from x/text's Tag
// type back into a Tag.
func TestCanonicalizer_FromTextTag(t *testing.T) {
	tests := []struct {
		name string
		tag  language.Tag
		want Tag
	}{
		{
			name: "Full core",
			tag:  language.MustParse("sr-Latn-ME"),
			want: Tag{Language: "sr", Script: "Latn", Region: "ME"},
		},
		{
			name: "Language and region",
			tag:  language.MustParse("pt-BR"),
			want: Tag{Language: "pt", Region: "BR"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := c.FromTextTag(tt.tag)
			if err != nil {
				t.Fatalf("FromTextTag(%v) returned an unexpected error: %v", tt.tag, err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("FromTextTag(%v) = %#v, want %#v", tt.tag, got, tt.want)
			}
		})
	}
}

// TestLikelySubtags_AgreesWithTextLanguage cross-checks a few stable
// maximizations against the x/text implementation of the same CLDR
// algorithm. Only tags whose likely mapping has been unchanged across CLDR
// releases are compared.
func TestLikelySubtags_AgreesWithTextLanguage(t *testing.T) {
	inputs := []string{"en", "zh-TW", "sr-ME", "pt"}
	for _, input := range inputs {
		tag := mustAddLikelySubtags(t, mustParse(t, input))

		textTag, err := language.Parse(input)
		if err != nil {
			t.Fatalf("language.Parse(%q) returned an unexpected error: %v", input, err)
		}
		base, _ := textTag.Base()
		if got := tag.Language; got != base.String() {
			t.Errorf("maximize(%q).Language = %q, x/text infers %q", input, got, base.String())
		}
	}
}
