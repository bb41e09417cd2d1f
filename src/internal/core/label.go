// FILE: ecosnap/src/internal/core/label.go
package core

// Waste labels as they appear in the log file
const (
	PlasticBottle = "Plastic Bottle"
	FoodWrapper   = "Food Wrapper"
	Battery       = "Battery"
	AluminumCan   = "Aluminum Can"
	Paper         = "Paper"
	EWaste        = "E-Waste"
)

var labels = []string{PlasticBottle, FoodWrapper, Battery, AluminumCan, Paper, EWaste}

var harmful = map[string]bool{
	PlasticBottle: true,
	FoodWrapper:   true,
	Battery:       true,
	EWaste:        true,
}

// Labels returns the fixed label set in a stable order.
func Labels() []string {
	out := make([]string, len(labels))
	copy(out, labels)
	return out
}

// IsKnown reports whether label belongs to the fixed label set.
func IsKnown(label string) bool {
	for _, l := range labels {
		if l == label {
			return true
		}
	}
	return false
}

// IsHarmful reports whether label is penalised by the EcoScore.
func IsHarmful(label string) bool {
	return harmful[label]
}
