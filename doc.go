/*
Package fbrcache implements a fixed-capacity, in-memory key/value cache
using Frequency-Based Replacement (FBR): an eviction policy that blends
recency (LRU) with a per-entry reference count, and periodically ages
counts so historically popular but currently cold items can still be
evicted.

The cache is a reusable library component, not a ready-made service:
callers probe with Get, and on a miss compute a value and install it with
Put (or PutPrio for a head start). The cache decides what to evict.

See Cache's doc comment for the internal architecture, and the safe
subpackage for a concurrency wrapper, which this package's core
deliberately does not include.
*/
package fbrcache
