// Package uid builds the stable identifier strings used for sensors and
// device grouping. IDs survive restarts, so the formats here must not change.
package uid

import "strings"

const prefix = "abaco"

// ForAttr returns the unique ID for an endpoint attribute sensor.
// ForAttr("accounts", "summary.0.total_balance") -> "abaco_accounts_summary_0_total_balance".
func ForAttr(endpoint, attrPath string) string {
	return prefix + "_" + Sanitize(endpoint) + "_" + Sanitize(attrPath)
}

// ForItem returns the unique ID for a per-item sensor.
// ForItem("account", "42") -> "abaco_account_42".
func ForItem(kind, itemID string) string {
	return prefix + "_" + Sanitize(kind) + "_" + Sanitize(itemID)
}

// ForDevice returns the device identifier for an endpoint group.
func ForDevice(endpoint string) string {
	return prefix + "_" + Sanitize(endpoint)
}

// Sanitize lowercases s and maps every character outside [a-z0-9] to an
// underscore, collapsing runs so dotted paths stay readable.
func Sanitize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	lastUnderscore := false
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastUnderscore = false
		default:
			if !lastUnderscore {
				b.WriteByte('_')
				lastUnderscore = true
			}
		}
	}
	return strings.Trim(b.String(), "_")
}
