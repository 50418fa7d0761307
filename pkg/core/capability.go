package core

import "sort"

// Capability declares which metric families an algorithm produces.
type Capability struct {
	SupportsRatingMetrics bool
}

// capabilities is the static registry of known algorithms. Rating metrics
// exist only for algorithms that predict explicit rating scores; for the
// similarity-based recommenders their absence is expected, not an error.
var capabilities = map[string]Capability{
	"als":    {SupportsRatingMetrics: true},
	"svd":    {SupportsRatingMetrics: true},
	"fastai": {SupportsRatingMetrics: true},
	"sar":    {SupportsRatingMetrics: false},
	"ncf":    {SupportsRatingMetrics: false},
	"bpr":    {SupportsRatingMetrics: false},
}

// CapabilityFor resolves the capability flags for an algorithm id.
func CapabilityFor(algorithm string) (Capability, error) {
	capability, ok := capabilities[algorithm]
	if !ok {
		return Capability{}, &ConfigurationError{Subject: algorithm, Reason: "unrecognized algorithm"}
	}
	return capability, nil
}

// Algorithms returns the known algorithm ids in sorted order.
func Algorithms() []string {
	names := make([]string, 0, len(capabilities))
	for name := range capabilities {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
