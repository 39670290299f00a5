package subaccount

import "github.com/google/uuid"

// namespace fixes the derivation domain so addresses never collide with
// UUIDs generated elsewhere in the system.
var namespace = uuid.MustParse("8f3c1d4a-52be-4c11-9d6e-7a20c15b9f42")

// Deriver computes deterministic holding sub-account addresses as v5 UUIDs
// over the (owner, asset) pair. Anyone can recompute the address from the
// same inputs; distinct pairs map to distinct addresses.
type Deriver struct{}

func NewDeriver() *Deriver {
	return &Deriver{}
}

func (d *Deriver) Derive(ownerID, assetID string) string {
	// Length-prefix the owner so ("ab","c") and ("a","bc") cannot collide.
	seed := make([]byte, 0, len(ownerID)+len(assetID)+5)
	seed = append(seed, byte(len(ownerID)>>24), byte(len(ownerID)>>16), byte(len(ownerID)>>8), byte(len(ownerID)))
	seed = append(seed, ownerID...)
	seed = append(seed, assetID...)
	return uuid.NewSHA1(namespace, seed).String()
}
