package convert

import "lyrickana/toggle"

// ToggleWaHa swaps は and わ in a finished reading.
func ToggleWaHa(text string) string { return toggle.WaHa(text) }

// ToggleHeE swaps へ and え in a finished reading.
func ToggleHeE(text string) string { return toggle.HeE(text) }
