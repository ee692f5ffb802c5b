package service

const (
	DocumentCategoryInheritance = "Inheritance"
	DocumentTypeInheritance     = "Inheritance"

	// lastCalcKeyPrefix namespaces the per-user last-calculation cache keys.
	lastCalcKeyPrefix = "inheritance:last_calc:"
)
