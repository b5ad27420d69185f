package binding

// OwnerTagKey is the bookkeeping tag attached to a cluster to record which
// binding owns its step concurrency level. Delete uses it to verify it is
// tearing down its own binding, and create uses it to detect a competing
// binding on the same cluster.
const OwnerTagKey = "StepConcurrencyUID"

// OwnerTag packs a binding uid into the tag map applied to the cluster.
func OwnerTag(uid string) map[string]string {
	return map[string]string{OwnerTagKey: uid}
}

// OwnerUID extracts the owning binding uid from a cluster's tags. Returns
// "" when no binding owns the cluster.
func OwnerUID(tags map[string]string) string {
	return tags[OwnerTagKey]
}
