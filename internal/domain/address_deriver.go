package domain

// AddressDeriver computes the holding sub-account address for an owner and
// an asset. The derivation is pure and deterministic: the same pair always
// yields the same address and distinct pairs never collide.
type AddressDeriver interface {
	Derive(ownerID, assetID string) string
}
