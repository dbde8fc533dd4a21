// Package pagination assembles complete result sets from a paginated API.
//
// The API reports an optional totalCount alongside each page. The paginator
// fetches pages strictly one after another, appends them in order and stops
// according to a Policy:
//
//   - TotalPagesOnly stops once the last page implied by the most recent
//     total count has been fetched. When no count is ever reported that is
//     page 1.
//   - TotalPagesOrShortPage additionally stops after any page whose length is
//     not a multiple of the page size.
//
// Example usage:
//
//	fetcher := pagination.PageFetcherFunc[models.Set](fetchSetsPage)
//	sets, err := pagination.New[models.Set](fetcher, pagination.TotalPagesOrShortPage, pagination.Config{}).FetchAll(ctx)
//
// The first error returned by the fetcher aborts the loop and is returned as
// is. Pages accumulated so far are discarded.
package pagination
