package cnj

import "regexp"

// candidatePattern matches case-number candidates in free text: the
// canonical punctuated form with any of the separators omitted, or a bare
// 20-digit run. Candidates still have to pass check-digit validation.
var candidatePattern = regexp.MustCompile(
	`\d{7}[-.\s]?\d{2}[.\s]?\d{4}[.\s]?\d[.\s]?\d{2}[.\s]?\d{4}`,
)

// Detect scans free text for case identifiers and returns the valid ones
// in order of appearance. Candidates that fail digit-count or check-digit
// validation are silently discarded. The scan is stateless: calling
// Detect twice on the same text yields identical results.
func Detect(text string) []CaseIdentifier {
	matches := candidatePattern.FindAllString(text, -1)
	identifiers := make([]CaseIdentifier, 0, len(matches))
	for _, match := range matches {
		id, err := Parse(match)
		if err != nil {
			continue
		}
		identifiers = append(identifiers, id)
	}
	return identifiers
}
