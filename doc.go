// Package t212 converts Trading 212 CSV exports into the multi-split CSV
// format understood by the GnuCash importer.
//
// The core functionalities include:
//   - Record Model: A typed, validated representation of one Trading 212
//     transaction row (buys, sells, deposits, interest payments).
//   - Conversion Rules: A pure mapping from one transaction to the ledger
//     splits it produces (principal movement, currency conversion fee and
//     transaction tax), including a multi-strategy GBP price fallback.
//   - File Pipeline: Streaming conversion of a whole export file, skipping
//     and logging malformed rows without aborting the run.
//   - Configuration: Ticker-to-commodity remapping and destination account
//     names, loaded from a YAML file or built-in defaults.
//
// This package serves as the foundational logic for the `t2g` command-line
// tool; it performs no I/O beyond reading and writing the files it is given.
package t212
