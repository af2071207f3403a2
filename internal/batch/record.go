package batch

import (
	"errors"
	"strings"

	"github.com/cespare/xxhash/v2"

	"github.com/dsh2dsh/edgar-links/client"
	"github.com/dsh2dsh/edgar-links/internal/filings"
)

const (
	ColumnCIK          = "CIK"
	ColumnCompanyName  = "Company Name"
	ColumnIssuerId     = "Issuer ID"
	ColumnAnalystName  = "Analyst Name"
	ColumnAvailability = "FilingAvailable"

	unknownCIK = "Unknown"
)

// IdentityColumns are leading columns of every record, followed by links.
var IdentityColumns = [...]string{
	ColumnCIK, ColumnCompanyName, ColumnIssuerId, ColumnAnalystName,
	ColumnAvailability,
}

// Company is one row of a batch. Everything except CIK passes through as is.
type Company struct {
	CIK         string
	Name        string
	IssuerId    string
	AnalystName string
}

type Failure int

const (
	FailureNone Failure = iota
	FailureCIKMissing
	FailureFetch
	FailureSchema
)

func (self Failure) String() string {
	switch self {
	case FailureNone:
		return "none"
	case FailureCIKMissing:
		return "CIK missing"
	case FailureFetch:
		return "fetch failure"
	case FailureSchema:
		return "schema mismatch"
	}
	return "unknown"
}

func failureOf(err error) Failure {
	switch {
	case err == nil:
		return FailureNone
	case errors.Is(err, filings.ErrCIKMissing):
		return FailureCIKMissing
	case errors.Is(err, client.ErrSchemaMismatch):
		return FailureSchema
	}
	return FailureFetch
}

// --------------------------------------------------

// Record is the result of one company. Groups is nil if the company failed.
type Record struct {
	Company Company
	CIK     string
	Groups  *filings.Groups
	Failure Failure
	Err     error
}

func (self *Record) fail(err error) *Record {
	self.Failure = failureOf(err)
	self.Err = err
	return self
}

func (self *Record) Availability() filings.Availability {
	switch self.Failure {
	case FailureCIKMissing:
		return filings.NoCIKFound
	case FailureFetch, FailureSchema:
		return filings.Failed
	}

	if self.Groups == nil {
		return filings.NotAvailable
	}
	return self.Groups.Availability()
}

func (self *Record) identityCIK() string {
	if self.Failure == FailureCIKMissing {
		return unknownCIK
	}
	return strings.TrimSpace(self.Company.CIK)
}

// Fields returns identity fields followed by link fields.
func (self *Record) Fields() []filings.Field {
	fields := []filings.Field{
		{Name: ColumnCIK, Value: self.identityCIK()},
		{Name: ColumnCompanyName, Value: self.Company.Name},
		{Name: ColumnIssuerId, Value: self.Company.IssuerId},
		{Name: ColumnAnalystName, Value: self.Company.AnalystName},
		{Name: ColumnAvailability, Value: string(self.Availability())},
	}
	if self.Groups != nil && self.Failure == FailureNone {
		fields = append(fields, self.Groups.Fields()...)
	}
	return fields
}

// Digest returns hash of fields. Equal records give equal digests.
func (self *Record) Digest() uint64 {
	h := xxhash.New()
	for _, field := range self.Fields() {
		_, _ = h.WriteString(field.Name)
		_, _ = h.Write([]byte{0})
		_, _ = h.WriteString(field.Value)
		_, _ = h.Write([]byte{0})
	}
	return h.Sum64()
}
