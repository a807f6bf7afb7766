// Package sanitizer normalizes user-supplied booking input before it is
// validated or forwarded to the provider.
//
// All functions are idempotent and never fail: unparseable input is returned
// trimmed rather than dropped, so nothing the traveler typed is lost.
//
// Normalization includes:
//   - Phone numbers: E.164 when valid for the written or a default region
//   - Codes: IATA airport/city codes are upper-cased
//   - Names: whitespace collapsed and trimmed
//   - Emails: trimmed and lower-cased
package sanitizer
