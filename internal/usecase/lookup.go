package usecase

import (
	"billiar/internal/infra"
)

// notFoundAs substitutes sentinel when the repository reported a
// missing row. Any other repository failure (connection loss,
// constraint violations) propagates unchanged and surfaces as an
// internal error instead of a misleading not-found.
func notFoundAs(err, sentinel error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return sentinel
	}
	return err
}
