package zumrails

import "regexp"

// scrubRules redact credential-bearing and identifier-bearing fields from
// logged request/response traffic. The optional backslashes keep the rules
// working on transcripts where the JSON appears inside quoted log strings.
var scrubRules = []struct {
	re   *regexp.Regexp
	repl string
}{
	{regexp.MustCompile(`(?i)(Authorization: Bearer )[a-zA-Z0-9._-]+`), "${1}[FILTERED]"},
	{regexp.MustCompile(`(?i)("Username\\?":\\?")[^"]*`), "${1}[FILTERED]"},
	{regexp.MustCompile(`(?i)("Password\\?":\\?")[^"]*`), "${1}[FILTERED]"},
	{regexp.MustCompile(`(?i)("Token\\?":\\?")[^"]*`), "${1}[FILTERED]"},
	{regexp.MustCompile(`(?i)("WalletId\\?":\\?")[^"]*`), "${1}[FILTERED]"},
	{regexp.MustCompile(`(?i)("FundingSourceId\\?":\\?")[^"]*`), "${1}[FILTERED]"},
	{regexp.MustCompile(`(?i)("UserId\\?":\\?")[^"]*`), "${1}[FILTERED]"},
	{regexp.MustCompile(`(?i)("CustomerId\\?":\\?")[^"]*`), "${1}[FILTERED]"},
}

// Scrub redacts sensitive material from a request/response transcript so it
// can be stored for diagnostics. Scrubbing is idempotent: already-filtered
// text passes through unchanged.
func Scrub(transcript string) string {
	for _, rule := range scrubRules {
		transcript = rule.re.ReplaceAllString(transcript, rule.repl)
	}
	return transcript
}
