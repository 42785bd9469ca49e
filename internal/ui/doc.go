// Package ui implements the columnar cluster browser: namespaces, kinds and
// objects as drill-down columns, with a detail pane showing the highlighted
// object as YAML, pod logs, or ready-to-copy exec commands.
//
// Every column fetch carries the generation it was issued under, and a result
// that comes back after a newer fetch was issued is dropped on arrival. That
// single rule keeps rapid cursor movement from ever painting stale data; no
// fetch is cancelled in flight.
package ui
