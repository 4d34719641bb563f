// Package services provides the pure domain services of the quote engine.
//
// The package includes:
//   - TownClassifier: decides whether a town counts as major
//   - AreaResolver: turns an origin/destination pair into an area.State
//   - VolumetricCalculator: derives whole-kilogram volumetric weight
//   - PriceEngine: prices a chargeable weight against the tariff
//
// Data flows one way: towns are classified, the area is resolved, the
// chargeable weight is chosen, and the price is computed. None of the
// services hold mutable state, so each is safe for concurrent use.
package services
