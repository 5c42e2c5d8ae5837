package committer_test

import (
	"context"
	"errors"
	"testing"

	"cloud.google.com/go/spanner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	commitplan "github.com/murkotick/showcase-catalog-service/internal/pkg/committer"
	"github.com/murkotick/showcase-catalog-service/internal/pkg/committer/committertest"
)

func TestPlan_AddSkipsNil(t *testing.T) {
	plan := commitplan.NewPlan()
	plan.Add(nil, spanner.Delete("products", spanner.Key{"p1"}), nil)
	assert.Equal(t, 1, plan.Len())
	assert.False(t, plan.IsEmpty())
}

func TestPlan_HooksRunOnceAfterCommit(t *testing.T) {
	var ran []string
	plan := commitplan.NewPlan()
	plan.Add(spanner.Delete("products", spanner.Key{"p1"}))
	plan.AfterCommit(func(context.Context) { ran = append(ran, "first") })
	plan.AfterCommit(func(context.Context) { ran = append(ran, "second") })

	cm := &committertest.Recorder{}
	require.NoError(t, cm.Apply(context.Background(), plan))
	assert.Equal(t, []string{"first", "second"}, ran)

	plan.Committed(context.Background())
	assert.Len(t, ran, 2)
}

func TestPlan_HooksSkippedOnFailedCommit(t *testing.T) {
	ran := false
	plan := commitplan.NewPlan()
	plan.Add(spanner.Delete("products", spanner.Key{"p1"}))
	plan.AfterCommit(func(context.Context) { ran = true })

	cm := &committertest.Recorder{Err: errors.New("aborted")}
	assert.Error(t, cm.Apply(context.Background(), plan))
	assert.False(t, ran)
	assert.Zero(t, cm.Commits())
}

func TestAdapter_EmptyPlanNeedsNoClient(t *testing.T) {
	ran := false
	plan := commitplan.NewPlan()
	plan.AfterCommit(func(context.Context) { ran = true })

	require.NoError(t, commitplan.NewAdapter(nil).Apply(context.Background(), plan))
	assert.True(t, ran)
	assert.NoError(t, commitplan.NewAdapter(nil).Apply(context.Background(), nil))
}

func TestAdapter_NilClient(t *testing.T) {
	plan := commitplan.NewPlan()
	plan.Add(spanner.Delete("products", spanner.Key{"p1"}))
	assert.Error(t, commitplan.NewAdapter(nil).Apply(context.Background(), plan))
}
