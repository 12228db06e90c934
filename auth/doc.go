// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth verifies session tokens issued by the external auth provider.

# Session Tokens

Sessions are HS256 JWTs signed with the secret shared with the provider:

	session, err := auth.ParseSession(token, cfg.SessionSecret)

Claims:

  - sub: user id
  - role: SUPER_USER, ADMIN, EDITOR or USER
  - distritoLocalId, municipioId: jurisdiction (EDITOR and USER)
  - exp: expiry

Any failure (bad signature, expired, unexpected algorithm, unknown role) is
reported as ErrUnauthorized so callers can reject before touching data.

# Bearer Header

	token, err := auth.BearerToken(r.Header.Get("Authorization"))

# Issuing

IssueSession signs a token with the same claims. Production tokens come from the
provider; this is for tooling and tests.
*/
package auth
