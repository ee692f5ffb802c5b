package domain

import "math/big"

// MaxRelatives caps every relative count collected from a user. Anything above
// this is almost certainly a typo and the dialog should re-prompt.
const MaxRelatives = 20

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// Spouse models the at-most-one surviving spouse.
type Spouse string

const (
	SpouseNone    Spouse = "none"
	SpouseWife    Spouse = "wife"
	SpouseHusband Spouse = "husband"
)

// InheritanceInput is the full legally relevant description of one inheritance
// case: spouse, sons/daughters, parents and full siblings. Grandparents,
// grandchildren and half-siblings are deliberately not modeled.
type InheritanceInput struct {
	DeceasedGender Gender
	Spouse         Spouse
	Sons           int
	Daughters      int
	FatherAlive    bool
	MotherAlive    bool
	Brothers       int
	Sisters        int
}

// HeirClass labels an aggregate fixed-share heir class.
type HeirClass string

const (
	HeirSpouse    HeirClass = "spouse"
	HeirMother    HeirClass = "mother"
	HeirFather    HeirClass = "father"
	HeirDaughters HeirClass = "daughters"
	HeirSisters   HeirClass = "sisters"
)

// InheritanceComputation is the computed distribution. All fractions are exact
// rationals; fixed shares plus both residue shares plus the unassigned
// leftover always sum to exactly 1. The struct is never mutated after
// faraid.Compute returns it.
type InheritanceComputation struct {
	FixedShares map[HeirClass]*big.Rat

	// Residue (asaba) allocated to the children or siblings class, zero when
	// that class does not inherit as residue. Parts divide the group share
	// under the 2:1 male:female rule.
	ChildrenAsabaShare *big.Rat
	SiblingsAsabaShare *big.Rat
	ChildrenParts      int
	SiblingsParts      int

	AwlApplied  bool
	RaddApplied bool

	// LeftoverUnassigned is the fraction no rule could place; nonzero means
	// the case needs manual scholarly review.
	LeftoverUnassigned *big.Rat
}
