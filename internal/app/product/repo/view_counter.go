package repo

import (
	"context"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"

	"github.com/murkotick/showcase-catalog-service/internal/models/m_product"
)

// SpannerViewCounter increments products.view_count in a read-write transaction so that
// concurrent views of the same product are serialized by Spanner.
type SpannerViewCounter struct {
	Client *spanner.Client
}

func NewSpannerViewCounter(client *spanner.Client) *SpannerViewCounter {
	return &SpannerViewCounter{Client: client}
}

// IncrementViews returns spanner.ErrRowNotFound when no published product has the slug.
func (c *SpannerViewCounter) IncrementViews(ctx context.Context, slug string) (int64, error) {
	var views int64
	_, err := c.Client.ReadWriteTransaction(ctx, func(ctx context.Context, tx *spanner.ReadWriteTransaction) error {
		stmt := spanner.Statement{
			SQL: `SELECT product_id, view_count FROM products
			      WHERE slug = @slug AND is_published = TRUE`,
			Params: map[string]interface{}{"slug": slug},
		}
		iter := tx.Query(ctx, stmt)
		defer iter.Stop()

		row, err := iter.Next()
		if err == iterator.Done {
			return spanner.ErrRowNotFound
		}
		if err != nil {
			return err
		}
		var id string
		var current int64
		if err := row.Columns(&id, &current); err != nil {
			return err
		}
		views = current + 1
		return tx.BufferWrite([]*spanner.Mutation{
			m_product.UpdateMutation(id, map[string]interface{}{m_product.ColViewCount: views}),
		})
	})
	if err != nil {
		return 0, err
	}
	return views, nil
}
