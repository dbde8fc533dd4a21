// Package store persists catalog snapshots in Redis.
//
// A snapshot is the full result of a get-all call written as one Redis hash
// per resource, keyed by entity ID, together with a small metadata record:
//
//	ptcg:cards              hash  id -> card JSON
//	ptcg:sets               hash  id -> set JSON
//	ptcg:snapshot:cards     string snapshot metadata JSON
//	ptcg:snapshot:sets      string snapshot metadata JSON
//
// Saving a resource replaces the previous hash atomically (MULTI/EXEC), so a
// reader never sees a mix of two runs.
//
// # Basic Usage
//
//	s, err := store.Connect(ctx, store.Options{Addr: "localhost:6379"})
//	if err != nil {
//		return err
//	}
//	defer s.Close()
//
//	cards, err := c.GetAllCards(ctx)
//	if err != nil {
//		return err
//	}
//	snap, err := s.SaveCards(ctx, cards)
//
//	card, err := s.GetCard(ctx, "base1-4")
//	if errors.Is(err, store.ErrNotFound) {
//		// not part of the last snapshot
//	}
//
// The store is not consulted by the API client; it only holds what the
// caller explicitly saves.
package store
