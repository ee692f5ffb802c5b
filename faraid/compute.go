package faraid

import (
	"math/big"

	"faraid-agent/domain"
)

var one = big.NewRat(1, 1)

// Compute applies the simplified faraid distribution rules to one case: fixed
// Qur'anic shares, then residue (asaba), then proportional reduction (awl)
// when fixed shares overflow the estate, then residue return (radd). It is
// total: every well-formed input produces a computation, with any fraction the
// rules could not place reported as LeftoverUnassigned instead of an error.
func Compute(in domain.InheritanceInput) domain.InheritanceComputation {
	hasChildren := in.Sons+in.Daughters > 0
	siblingsCount := in.Brothers + in.Sisters

	spouseShare := new(big.Rat)
	switch in.Spouse {
	case domain.SpouseHusband:
		if hasChildren {
			spouseShare.SetFrac64(1, 4)
		} else {
			spouseShare.SetFrac64(1, 2)
		}
	case domain.SpouseWife:
		if hasChildren {
			spouseShare.SetFrac64(1, 8)
		} else {
			spouseShare.SetFrac64(1, 4)
		}
	}

	fixed := make(map[domain.HeirClass]*big.Rat)
	if spouseShare.Sign() > 0 {
		fixed[domain.HeirSpouse] = new(big.Rat).Set(spouseShare)
	}

	if in.MotherAlive {
		mother := new(big.Rat)
		switch {
		case hasChildren || siblingsCount >= 2:
			mother.SetFrac64(1, 6)
		case in.FatherAlive && spouseShare.Sign() > 0:
			// Two parents plus a spouse, no children: mother takes 1/3 of
			// what remains after the spouse.
			mother.Sub(one, spouseShare)
			mother.Mul(mother, big.NewRat(1, 3))
		default:
			mother.SetFrac64(1, 3)
		}
		fixed[domain.HeirMother] = mother
	}

	if in.FatherAlive {
		if hasChildren {
			fixed[domain.HeirFather] = big.NewRat(1, 6)
		} else {
			// Zero placeholder; the father becomes the residual heir below.
			fixed[domain.HeirFather] = new(big.Rat)
		}
	}

	if in.Sons == 0 && in.Daughters > 0 {
		if in.Daughters == 1 {
			fixed[domain.HeirDaughters] = big.NewRat(1, 2)
		} else {
			fixed[domain.HeirDaughters] = big.NewRat(2, 3)
		}
	}

	if !hasChildren && !in.FatherAlive && in.Brothers == 0 && in.Sisters > 0 {
		if in.Sisters == 1 {
			fixed[domain.HeirSisters] = big.NewRat(1, 2)
		} else {
			fixed[domain.HeirSisters] = big.NewRat(2, 3)
		}
	}

	totalFixed := new(big.Rat)
	for _, share := range fixed {
		totalFixed.Add(totalFixed, share)
	}

	awlApplied := false
	raddApplied := false
	if totalFixed.Cmp(one) > 0 {
		awlApplied = true
		scale := new(big.Rat).Inv(totalFixed)
		totalFixed.SetInt64(0)
		for class, share := range fixed {
			fixed[class] = new(big.Rat).Mul(share, scale)
			totalFixed.Add(totalFixed, fixed[class])
		}
	}

	remainder := new(big.Rat).Sub(one, totalFixed)

	childrenAsaba := new(big.Rat)
	siblingsAsaba := new(big.Rat)
	childrenParts := 0
	siblingsParts := 0

	if remainder.Sign() > 0 {
		switch {
		case in.Sons > 0:
			childrenAsaba.Set(remainder)
			childrenParts = 2*in.Sons + in.Daughters
			remainder.SetInt64(0)
		case in.FatherAlive:
			father := fixed[domain.HeirFather]
			if father == nil {
				father = new(big.Rat)
			}
			fixed[domain.HeirFather] = new(big.Rat).Add(father, remainder)
			remainder.SetInt64(0)
		case !hasChildren && in.Brothers > 0:
			siblingsAsaba.Set(remainder)
			if in.Sisters > 0 {
				siblingsParts = 2*in.Brothers + in.Sisters
			} else {
				siblingsParts = in.Brothers
			}
			remainder.SetInt64(0)
		}
	}

	// Radd: whatever is still unclaimed goes back pro-rata to the nonzero
	// fixed shares, spouse excluded.
	if remainder.Sign() > 0 {
		baseSum := new(big.Rat)
		for class, share := range fixed {
			if class != domain.HeirSpouse && share.Sign() > 0 {
				baseSum.Add(baseSum, share)
			}
		}
		if baseSum.Sign() > 0 {
			raddApplied = true
			for class, share := range fixed {
				if class == domain.HeirSpouse || share.Sign() <= 0 {
					continue
				}
				bonus := new(big.Rat).Quo(share, baseSum)
				bonus.Mul(bonus, remainder)
				fixed[class] = new(big.Rat).Add(share, bonus)
			}
			remainder.SetInt64(0)
		}
	}

	return domain.InheritanceComputation{
		FixedShares:        fixed,
		ChildrenAsabaShare: childrenAsaba,
		SiblingsAsabaShare: siblingsAsaba,
		ChildrenParts:      childrenParts,
		SiblingsParts:      siblingsParts,
		AwlApplied:         awlApplied,
		RaddApplied:        raddApplied,
		LeftoverUnassigned: remainder,
	}
}
