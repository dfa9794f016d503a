package logx

import (
	"fmt"
	"regexp"
)

type SensitiveDataMaskerInterface interface {
	Mask(input []byte) []byte
}

const masked = "${1}[MASKED]${2}"

// DefaultSensitiveFields are JSON string fields that are always masked.
//
//nolint:gochecknoglobals
var DefaultSensitiveFields = []string{"password", "Password", "accessToken", "refreshToken", "email", "phone"}

//nolint:gochecknoglobals
var fixedPatterns = []*regexp.Regexp{
	regexp.MustCompile("(?s)(Authorization: Bearer ).+?(\r)"),
	// Query string tokens.
	regexp.MustCompile(`([?&](?:token|api_key)=)[^&\s]+()`),
}

// SensitiveDataMasker hides bearer headers, query string tokens and the values
// of the listed JSON string fields.
type SensitiveDataMasker struct {
	patterns []*regexp.Regexp
}

// NewSensitiveDataMasker masks DefaultSensitiveFields plus extra.
func NewSensitiveDataMasker(extra ...string) SensitiveDataMasker {
	fields := append(append([]string{}, DefaultSensitiveFields...), extra...)

	patterns := make([]*regexp.Regexp, 0, len(fixedPatterns)+len(fields))
	patterns = append(patterns, fixedPatterns...)

	for _, field := range fields {
		patterns = append(patterns, regexp.MustCompile(fmt.Sprintf(`(?s)("%s":\s?").+?(")`, regexp.QuoteMeta(field))))
	}

	return SensitiveDataMasker{patterns: patterns}
}

func (s SensitiveDataMasker) Mask(input []byte) []byte {
	for _, pattern := range s.patterns {
		input = pattern.ReplaceAll(input, []byte(masked))
	}

	return input
}

// NopSensitiveDataMasker leaves input untouched.
type NopSensitiveDataMasker struct{}

func NewNopSensitiveDataMasker() NopSensitiveDataMasker {
	return NopSensitiveDataMasker{}
}

func (NopSensitiveDataMasker) Mask(input []byte) []byte {
	return input
}
