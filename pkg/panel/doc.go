// Package panel implements the /listpanel aggregation against the hosting
// control panel's application API.
//
// The Aggregator pages through GET /api/application/servers starting at
// page 1, advancing while the reported current_page is below total_pages,
// and joins every server with its owner fetched from
// GET /api/application/users/<id>. Owner lookups within a page run
// concurrently with a bounded errgroup; results keep listing order.
//
// Failure handling is asymmetric on purpose: a page fetch failure aborts
// the run with a PageError (all-or-nothing at page level), while a failed
// owner lookup only yields "Unknown" username and email for that record
// (best-effort at item level).
package panel
