// FILE: ecosnap/src/internal/tip/tip.go
package tip

import "ecosnap/src/internal/core"

// Fallback is returned for labels without a dedicated tip
const Fallback = "Be mindful of your waste and dispose responsibly!"

var tips = map[string]string{
	core.PlasticBottle: "Try using a reusable bottle instead of single-use plastics.",
	core.FoodWrapper:   "Buy in bulk or use cloth packaging to reduce wrapper waste.",
	core.Battery:       "Switch to rechargeable batteries to reduce hazardous waste.",
	core.AluminumCan:   "Recycle aluminum — it saves 95% of energy vs new production.",
	core.Paper:         "Avoid unnecessary printing. Go digital!",
	core.EWaste:        "Donate or recycle electronics through certified e-waste centers.",
}

// For returns the advisory text for label, or Fallback when none exists.
func For(label string) string {
	if t, ok := tips[label]; ok {
		return t
	}
	return Fallback
}

// All returns a copy of the tip table keyed by label
func All() map[string]string {
	out := make(map[string]string, len(tips))
	for k, v := range tips {
		out[k] = v
	}
	return out
}
