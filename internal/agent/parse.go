// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package agent

import (
	"strings"

	"github.com/MuhammadDevX/ngen-consultor/pkg/types"
)

// Markers of the two-field response contract analyst delegates are asked to
// honor. The report instruction block requests both tags explicitly.
const (
	technicalMarker = "TECHNICAL ANALYSIS:"
	financialMarker = "FINANCIAL ANALYSIS:"
)

// ParseAnalysis splits a delegate reply into its technical and financial
// halves on the literal financial marker. When the marker is absent the
// entire trimmed reply is technical and the financial half is empty; that
// fallback is the defined behavior, not an error.
func ParseAnalysis(reply string) types.Analysis {
	before, after, found := strings.Cut(reply, financialMarker)

	technical := strings.TrimSpace(strings.ReplaceAll(before, technicalMarker, ""))
	if !found {
		return types.Analysis{Technical: technical}
	}

	return types.Analysis{
		Technical: technical,
		Financial: strings.TrimSpace(after),
	}
}
