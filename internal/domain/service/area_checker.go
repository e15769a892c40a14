package service

// AreaChecker answers whether a project site falls inside the business's
// configured service region.
type AreaChecker interface {
	Contains(lat, lng float64) bool
}
