// Copyright 2025 The HashSuite Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package algorithms

// SecurityLevel is a coarse, human-facing rating of an algorithm.
type SecurityLevel string

const (
	SecurityHigh      SecurityLevel = "High"
	SecurityVeryHigh  SecurityLevel = "Very High"
	SecurityExcellent SecurityLevel = "Excellent"
)

// Info describes an algorithm for listing and help output.
type Info struct {
	ID            ID            `json:"name"`
	DisplayName   string        `json:"displayName"`
	Description   string        `json:"description"`
	OutputBits    int           `json:"outputLength"`
	SecurityLevel SecurityLevel `json:"securityLevel"`
	UseCase       string        `json:"useCase"`
}

var catalogue = map[ID]Info{
	SHA256: {
		ID:            SHA256,
		DisplayName:   "SHA-256",
		Description:   "Secure Hash Algorithm 2 (256-bit). Industry standard widely adopted for digital signatures and certificates.",
		OutputBits:    256,
		SecurityLevel: SecurityVeryHigh,
		UseCase:       "Digital signatures, SSL/TLS certificates, blockchain (Bitcoin)",
	},
	SHA512: {
		ID:            SHA512,
		DisplayName:   "SHA-512",
		Description:   "Secure Hash Algorithm 2 (512-bit). Larger output size, suitable for long-term security.",
		OutputBits:    512,
		SecurityLevel: SecurityExcellent,
		UseCase:       "Long-term archival, high-security applications",
	},
	SHA3256: {
		ID:            SHA3256,
		DisplayName:   "SHA3-256",
		Description:   "SHA-3 (256-bit). Keccak sponge construction, independent of the SHA-2 design.",
		OutputBits:    256,
		SecurityLevel: SecurityExcellent,
		UseCase:       "Modern cryptographic applications, NIST standard",
	},
	BLAKE2b: {
		ID:            BLAKE2b,
		DisplayName:   "BLAKE2b",
		Description:   "BLAKE2b (512-bit). High-performance hash, faster than SHA-2 and SHA-3 in software.",
		OutputBits:    512,
		SecurityLevel: SecurityExcellent,
		UseCase:       "High-performance hashing, file integrity, real-time applications",
	},
}

// Lookup returns the catalogue entry for id.
func Lookup(id ID) (Info, bool) {
	info, ok := catalogue[id]
	return info, ok
}

// Catalogue returns the entries for every algorithm in display order.
func Catalogue() []Info {
	out := make([]Info, 0, len(all))
	for _, id := range all {
		out = append(out, catalogue[id])
	}
	return out
}
