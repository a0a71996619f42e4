// Package bushel reconciles a farm operation's crop sales position: how
// much of each crop year's expected production has been sold, is committed
// under contract but not yet settled, or remains unpriced.
//
// The core functionalities include:
//   - Commodity Normalization: mapping the inconsistent commodity labels
//     buyers print on contracts and settlement sheets to standard names,
//     through an immutable alias table loaded once per session.
//   - Crop Year Calendar: bucketing dated records into the October 1
//     through September 30 crop year and computing its bounds.
//   - Starting Bushels: resolving total expected production per crop year
//     and commodity from recorded crop totals or field-level harvest data.
//   - Sales Reconciliation: partitioning starting bushels and their revenue
//     into Sold, Contracted and Open buckets, with non-fatal data-quality
//     notices instead of hard failures on bad rows.
//   - Data Persistence: decoding and encoding the record snapshot in a
//     human-readable, version-controllable JSONL format.
//
// This package serves as the foundational logic for the `bmr` command-line
// tool. All computation is synchronous and side-effect free over read-only
// snapshots, so concurrent report requests need no locking.
package bushel
