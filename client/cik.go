package client

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// CIK is an EDGAR registrant identifier. EDGAR serves it as a JSON number in
// some documents and as a zero padded string in others.
type CIK uint64

func (self *CIK) UnmarshalJSON(b []byte) error {
	s := string(b)
	if len(b) > 0 && b[0] == '"' {
		if err := json.Unmarshal(b, &s); err != nil {
			return fmt.Errorf("unmarshal CIK from %s: %w", b, err)
		}
	}

	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return fmt.Errorf("parse CIK %q: %w", s, err)
	}
	*self = CIK(v)
	return nil
}

func (self CIK) String() string {
	return strconv.FormatUint(uint64(self), 10)
}

// URI returns CIK as it used in data.sec.gov paths.
func (self CIK) URI() string {
	return fmt.Sprintf("%010d", uint64(self))
}
