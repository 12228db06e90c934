// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package access turns a verified session into the row scope of a request.

SUPER_USER and ADMIN sessions are unrestricted. Any other role, including
roles this package does not know, is confined to its assigned local district
and municipality and is rejected with ErrMissingJurisdiction when either is
missing:

	pred, err := access.NewPredicate(session, filters)

Query filters parsed by ParseFilters are ANDed onto the jurisdiction, so a
filter can only narrow what the caller sees.
*/
package access
