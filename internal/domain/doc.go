// Package domain contains the core model for the domain status pipeline.
//
// The domain is transport- and persistence-agnostic: it does not depend on
// net/http, WHOIS clients, or the filesystem. Infra adapters map into/from
// these types.
package domain
