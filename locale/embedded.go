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
	"bytes"
	_ "embed" // Note the blank import for go:embed
	"errors"
)

//go:embed cldr-mappings.json
var embeddedMappingData []byte

// NewCanonicalizer creates a new canonicalizer from the embedded
// CLDR-derived mapping data.
//
// IMPORTANT: This function parses the entire mapping dataset on every call
// and is therefore an expensive operation. For performance, it is strongly
// recommended to call this function only once at application startup and
// reuse the returned canonicalizer instance throughout your application.
func NewCanonicalizer() (*Canonicalizer, error) {
	if len(embeddedMappingData) == 0 {
		return nil, errors.New("embedded cldr-mappings.json file is empty or not found")
	}

	reader := bytes.NewReader(embeddedMappingData)
	data, err := ParseMappings(reader)
	if err != nil {
		return nil, err
	}

	return NewCanonicalizerFromMappings(data)
}
