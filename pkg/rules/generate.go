package rules

import (
	"crazyrules/internal/rng"
	"crazyrules/pkg/deck"
)

type changeKind int

const (
	changeKindWild changeKind = iota
	changeKindEdge
	changeKindEffect

	numChangeKinds
)

// Propose generates n rule changes. gen is advanced for every decision.
func Propose(gen rng.Generator, n int) []Change {
	changes := make([]Change, n)
	for i := range changes {
		changes[i] = propose(gen)
	}

	return changes
}

func propose(gen rng.Generator) Change {
	rank := deck.Rank(gen.Intn(deck.NumRanks))
	suit := deck.Suit(gen.Intn(deck.NumSuits))

	switch changeKind(gen.Intn(int(numChangeKinds))) {
	case changeKindWild:
		return WildChange{Cards: deck.RankMask(rank)}
	case changeKindEdge:
		return EdgeChange{Cards: deck.RankMask(rank), OnTop: deck.SuitMask(suit)}
	default:
		cond := deck.RankMask(rank)
		if gen.Intn(2) == 1 {
			cond = deck.SuitMask(suit)
		}

		return EffectChange{Cards: cond, Effects: proposeEffects(gen)}
	}
}

func proposeEffects(gen rng.Generator) []Effect {
	switch gen.Intn(5) {
	case 0:
		return []Effect{AdvanceTurn{Player: Across}}
	case 1:
		return []Effect{AdvanceTurn{Player: Same}}
	case 2:
		return []Effect{AdvanceTurn{Player: Previous}}
	case 3:
		return Draw(PlayersOf(Next), 1+gen.Intn(2))
	default:
		return []Effect{MoveCards{
			Affected:  PlayersOf(Same),
			Source:    PlayerHand(Same),
			Target:    PlayerHand(Next),
			Selection: NthModuloCount(1),
		}}
	}
}
