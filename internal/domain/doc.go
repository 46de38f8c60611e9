// Package domain models a stormwater infrastructure assessment session.
//
// # Field Values
//
// Every value enters as the raw string typed into a form field. Nothing is
// converted up front; formulas parse on demand with [ParseNumber], which follows
// the browser's parseFloat: leading whitespace is skipped and the longest
// numeric prefix wins ("12.5 m" -> 12.5, "" -> NaN).
//
// Display strings are produced with [FormatFixed] (Number.prototype.toFixed)
// and [FormatNumber] (plain number interpolation), so a value rendered by the
// service is byte-for-byte what the page used to print, including "Infinity%"
// and "NaN".
//
// # Catalogue
//
// Feature field sets, condition keys, intake sections, rehabilitation
// strategies and asset classification bands are data, not code. They live in
// catalogue.yaml (embedded) and are loaded by [LoadCatalogue]. A single generic
// builder ([Catalogue.FieldSet]) replaces the per-feature switch the page used.
//
// Feature keys and their fields:
//
//	flow_attenuation   x_in, x_out                         step 0.01, min 0
//	volume_reduction   volume_in, volume_out               step 0.1,  min 0
//	dwf                population (integer), domestic_consumption,
//	                   industrial_flows, infiltration      step 0.1,  min 0
//	overflow_freq      total_flow_volume, cso_volume       step 0.1,  min 0
//	                   overflow_return_period (integer)    min 1
//	drainage_duration  time_to_peak, peak_discharge_volume step 0.1,  min 0
//	pumping_overflow   dwf_volume, pumping_station_capacity,
//	                   overflow_volume                     step 0.1,  min 0
//
// # Derived Values
//
// Reactive indicators (probability of failure, safety factor, reserve factor,
// robustness, resilience) fall back to [NotCalculated] when a source does not
// parse. A parsed zero denominator is not guarded: 5/0 shows "Infinity".
//
// # State
//
// [Store] holds saved feature entries in save order and [ConditionList] holds
// rated conditions, unique per key. Neither is safe for concurrent use; the
// session package serialises access.
package domain
