// Package tariff models the courier price list: the service types on offer,
// the closed sets of zone keys each service is priced by, and the rate tables
// that map every zone to a tiered rate.
//
// Key business rules:
//   - Overnight air is priced per OvernightZone as a flat fee for the first
//     tier (2 kg) plus a per-kg rate beyond it
//   - Road freight is priced per RoadZone as a minimum charge for the first
//     tier (10 kg) plus a per-kg rate beyond it, then multiplied by a surcharge
//   - A documentation fee is added to every non-zero quote
//   - A Tariff always holds a rate for every zone; NewTariff rejects gaps
package tariff
