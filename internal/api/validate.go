package api

import "strings"

// Rule maps a required payload field to the message reported when the field
// is missing. Rule lists are declared once per route and evaluated per
// request.
type Rule struct {
	Field   string
	Message string
}

// CheckRequired evaluates every rule against the payload fields and returns
// the collected failure messages, in rule order. A field fails when it is
// absent, null, or an empty or whitespace-only string.
func CheckRequired(rules []Rule, fields map[string]string) []string {
	var failures []string
	for _, rule := range rules {
		if strings.TrimSpace(fields[rule.Field]) == "" {
			failures = append(failures, rule.Message)
		}
	}
	return failures
}
