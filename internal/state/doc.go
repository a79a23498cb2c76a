// Package state holds the client's per-domain reactive caches: one container
// per entity family (session, notifications, shelves, tags, upvotes, user
// directory). Each container owns its cache, exposes read views that return
// copies, and exposes mutating operations that call the gateway and then
// reconcile the cache with the confirmed result. Nothing here updates
// optimistically: local deltas apply only after the backend acknowledges.
//
// Locking discipline: every container carries two locks. The op mutex
// serializes mutating operations so at most one call+reconcile per entity
// family is in flight, which is what keeps the dual-index and merge
// invariants intact under concurrency. The mu lock guards the cache itself
// and is held only for the short reconcile/read window, so read views never
// wait on the network.
//
// Containers are instances, not globals; they are built by the DI scope and
// torn down via Reset at logout.
package state
