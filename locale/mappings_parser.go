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
	"encoding/json"
	"fmt"
	"io"
)

// ParseMappings reads a JSON mapping dataset in the MappingData schema, as
// produced by the external CLDR data-acquisition tooling. It checks only
// the document shape; the cross-table invariants are validated when the
// data is turned into tables by NewCanonicalizerFromMappings.
func ParseMappings(r io.Reader) (*MappingData, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	var data MappingData
	if err := dec.Decode(&data); err != nil {
		return nil, fmt.Errorf("parsing mapping data: %w", err)
	}
	if data.Version == "" {
		return nil, fmt.Errorf("parsing mapping data: missing CLDR version")
	}
	if len(data.LikelySubtags) == 0 {
		return nil, fmt.Errorf("parsing mapping data: missing likely-subtags table")
	}
	return &data, nil
}
