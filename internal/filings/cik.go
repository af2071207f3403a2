package filings

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const cikWidth = 10

var ErrCIKMissing = errors.New("CIK is missing")

// NormalizeCIK returns CIK zero padded to 10 characters. Numeric CIKs are
// padded by value, so "0320193" and "320193" give the same result. Anything
// else is left padded with zeros as is and never truncated.
func NormalizeCIK(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", ErrCIKMissing
	}

	if n, err := strconv.ParseUint(s, 10, 64); err == nil {
		return fmt.Sprintf("%0*d", cikWidth, n), nil
	} else if len(s) >= cikWidth {
		return s, nil
	}
	return strings.Repeat("0", cikWidth-len(s)) + s, nil
}

// DecimalCIK strips leading zeros of normalized CIK, as used in archive paths.
func DecimalCIK(cik string) string {
	if s := strings.TrimLeft(cik, "0"); s != "" {
		return s
	}
	return "0"
}
