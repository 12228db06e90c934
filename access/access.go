// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package access

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/danielhkuo/censo-electoral/models"
)

var (
	ErrMissingJurisdiction = errors.New("user has no local district or municipality assigned")
	ErrInvalidFilter       = errors.New("invalid filter")
)

// Filters are the optional exact-match search filters of a request
type Filters struct {
	FederalDistrict string
	LocalDistrict   string
	Municipality    string
	SectionNumber   *int
}

// Predicate is the row scope a request may read. Nil jurisdiction ids mean
// unrestricted.
type Predicate struct {
	LocalDistrictID *int64
	MunicipalityID  *int64
	Filters
}

// Restricted reports whether the predicate carries a jurisdiction
func (p Predicate) Restricted() bool {
	return p.LocalDistrictID != nil || p.MunicipalityID != nil
}

// Allows reports whether a section falls inside the predicate
func (p Predicate) Allows(s models.SectionRef) bool {
	if p.LocalDistrictID != nil && (s.LocalDistrictID == nil || *s.LocalDistrictID != *p.LocalDistrictID) {
		return false
	}
	if p.MunicipalityID != nil && s.MunicipalityID != *p.MunicipalityID {
		return false
	}
	if p.FederalDistrict != "" && s.FederalDistrictName != p.FederalDistrict {
		return false
	}
	if p.LocalDistrict != "" && s.LocalDistrictName != p.LocalDistrict {
		return false
	}
	if p.Municipality != "" && s.MunicipalityName != p.Municipality {
		return false
	}
	if p.SectionNumber != nil && s.Number != *p.SectionNumber {
		return false
	}
	return true
}

// NewPredicate builds the query scope for a caller. SUPER_USER and ADMIN read
// everything; every other role is limited to its local district and
// municipality and must have both assigned.
func NewPredicate(session models.Session, filters Filters) (Predicate, error) {
	pred := Predicate{Filters: filters}

	switch session.Role {
	case models.RoleSuper, models.RoleAdmin:
		return pred, nil
	}

	if session.LocalDistrictID == nil || session.MunicipalityID == nil {
		return Predicate{}, ErrMissingJurisdiction
	}

	localDistrictID := *session.LocalDistrictID
	municipalityID := *session.MunicipalityID
	pred.LocalDistrictID = &localDistrictID
	pred.MunicipalityID = &municipalityID

	return pred, nil
}

// ParseFilters reads distritoFederal, distritoLocal, municipio and seccion
// from a query string. Blank values are ignored.
func ParseFilters(q url.Values) (Filters, error) {
	f := Filters{
		FederalDistrict: strings.TrimSpace(q.Get("distritoFederal")),
		LocalDistrict:   strings.TrimSpace(q.Get("distritoLocal")),
		Municipality:    strings.TrimSpace(q.Get("municipio")),
	}

	if raw := strings.TrimSpace(q.Get("seccion")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return Filters{}, fmt.Errorf("%w: seccion must be a number", ErrInvalidFilter)
		}
		f.SectionNumber = &n
	}

	return f, nil
}
