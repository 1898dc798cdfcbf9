// Package quantity implements the unit-aware value model: a scalar
// magnitude tagged with a physical dimension. Arithmetic enforces
// dimensional rules (addition requires commensurate units, multiplication
// combines them algebraically) and conversion between commensurate units
// is explicit. The built-in unit table covers SI base and derived units
// plus the engineering units the sheet format commonly declares.
package quantity
