package shared

import (
	"time"

	"cloud.google.com/go/spanner"

	contracts "github.com/murkotick/showcase-catalog-service/internal/app/product/contracts"
	"github.com/murkotick/showcase-catalog-service/internal/app/product/domain"
	commitplan "github.com/murkotick/showcase-catalog-service/internal/pkg/committer"
)

// MemberPlan builds the commit for a change to one owned collection: the member mutations,
// the parent's updated_at stamp and the outbox row for the change.
func MemberPlan(
	p *domain.Product,
	productRepo contracts.ProductRepo,
	outboxRepo contracts.OutboxRepo,
	kind domain.MemberKind,
	action domain.MemberAction,
	memberID string,
	now time.Time,
	muts ...*spanner.Mutation,
) (*commitplan.Plan, error) {
	plan := commitplan.NewPlan()
	for _, m := range muts {
		plan.Add(m)
	}
	p.RecordMemberChange(kind, action, memberID, now)
	plan.Add(productRepo.UpdateMut(p))
	if err := StageEvents(plan, outboxRepo, p, now); err != nil {
		return nil, err
	}
	return plan, nil
}
