package models

// SpaceType classifies both parking spaces and the vehicles that use them.
type SpaceType string

const (
	SpaceTypeMotorcycle SpaceType = "motorcycle"
	SpaceTypeCar        SpaceType = "car"
	SpaceTypeVan        SpaceType = "van"
	SpaceTypeOther      SpaceType = "other"
)

func (t SpaceType) Valid() bool {
	switch t {
	case SpaceTypeMotorcycle, SpaceTypeCar, SpaceTypeVan, SpaceTypeOther:
		return true
	}
	return false
}

// NormalizeSpaceType maps unrecognized values onto the catch-all tier so
// rate lookups and reports never miss.
func NormalizeSpaceType(t SpaceType) SpaceType {
	if t.Valid() {
		return t
	}
	return SpaceTypeOther
}
