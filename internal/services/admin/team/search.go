package team

import (
	"strings"

	"github.com/louisbranch/storeadmin/internal/services/admin/commerce"
)

// SearchPredicate matches records where any present searchable field contains
// term. Matching is case-sensitive; empty fields are treated as absent.
func SearchPredicate(term string) Predicate {
	return func(r Record) bool {
		return Visit(r,
			func(u commerce.User) bool {
				return containsPresent(u.FirstName, term) ||
					containsPresent(u.LastName, term) ||
					containsPresent(u.Email, term)
			},
			func(i commerce.Invite) bool {
				return containsPresent(i.UserEmail, term)
			},
		)
	}
}

func containsPresent(field, term string) bool {
	if field == "" {
		return false
	}
	return strings.Contains(field, term)
}
