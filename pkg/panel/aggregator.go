package panel

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"
)

// Metrics receives aggregator events. A nil Metrics is valid and records
// nothing.
type Metrics interface {
	RecordPageFetched()
	RecordUserLookupFailure()
}

// nopMetrics discards all events.
type nopMetrics struct{}

func (nopMetrics) RecordPageFetched()       {}
func (nopMetrics) RecordUserLookupFailure() {}

// Aggregator walks the panel's paged server listing and joins every server
// with its owner's user record.
//
// Failure handling is deliberately asymmetric: a page fetch failure aborts
// the whole run with a PageError, while a per-server owner lookup failure
// only substitutes placeholder values for that one record.
type Aggregator struct {
	client     *Client
	maxLookups int
	logger     *slog.Logger
	metrics    Metrics
}

// NewAggregator creates an aggregator over the given panel client.
// maxLookups bounds concurrent owner lookups within one page; values below
// one fall back to sequential lookups.
func NewAggregator(client *Client, maxLookups int, logger *slog.Logger, metrics Metrics) *Aggregator {
	if logger == nil {
		logger = slog.Default()
	}
	if metrics == nil {
		metrics = nopMetrics{}
	}
	if maxLookups < 1 {
		maxLookups = 1
	}

	return &Aggregator{
		client:     client,
		maxLookups: maxLookups,
		logger:     logger.With("component", "panel.aggregator"),
		metrics:    metrics,
	}
}

// ListServers returns the joined records for every server in the panel, in
// listing order across all pages. The result is built fresh on every call.
func (a *Aggregator) ListServers(ctx context.Context) ([]ServerRecord, error) {
	var records []ServerRecord

	page := 1
	for {
		pg, err := a.client.listServers(ctx, page)
		if err != nil {
			return nil, &PageError{Page: page, Cause: err}
		}
		a.metrics.RecordPageFetched()

		joined, err := a.joinPage(ctx, pg.Data)
		if err != nil {
			// Only context cancellation reaches here; lookup failures are
			// absorbed into placeholders.
			return nil, &PageError{Page: page, Cause: err}
		}
		records = append(records, joined...)

		if pg.Meta.Pagination.CurrentPage >= pg.Meta.Pagination.TotalPages {
			break
		}
		page++
	}

	a.logger.Debug("panel aggregation completed",
		"servers", len(records),
		"pages", page,
	)

	return records, nil
}

// joinPage joins one page of servers with their owners. Lookups run
// concurrently up to the configured bound; results keep listing order.
func (a *Aggregator) joinPage(ctx context.Context, items []serverItem) ([]ServerRecord, error) {
	records := make([]ServerRecord, len(items))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(a.maxLookups)

	for i, item := range items {
		i, item := i, item
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			attrs := item.Attributes
			record := ServerRecord{
				ID:          attrs.ID,
				Name:        attrs.Name,
				Description: attrs.Description,
				OwnerUserID: attrs.User,
				RAMMB:       attrs.Limits.Memory,
				DiskMB:      attrs.Limits.Disk,
			}

			user, err := a.client.getUser(ctx, attrs.User)
			if err != nil {
				// Best-effort join: one unresolvable owner must not sink
				// the whole listing.
				a.logger.Warn("owner lookup failed, substituting placeholders",
					"server_id", attrs.ID,
					"user_id", attrs.User,
					"error", err,
				)
				a.metrics.RecordUserLookupFailure()
				record.OwnerUsername = UnknownUsername
				record.OwnerEmail = UnknownEmail
			} else {
				record.OwnerUsername = user.Username
				record.OwnerEmail = user.Email
			}

			records[i] = record
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return records, nil
}
