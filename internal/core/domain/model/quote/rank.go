package quote

import (
	"fmt"
	"sort"

	"freightquote/internal/pkg/errs"
)

// RankBy selects the quote ranking criterion.
type RankBy int

const (
	// RankByPrice orders quotes by total cost, cheapest first.
	RankByPrice RankBy = iota + 1

	// RankBySpeed orders quotes by the lower bound of the transit window,
	// fastest first.
	RankBySpeed
)

func getRankByStrings() map[RankBy]string {
	return map[RankBy]string{
		RankByPrice: "price",
		RankBySpeed: "speed",
	}
}

// RankByFromString parses the wire representation of a ranking criterion.
// An empty string maps to RankByPrice, the default ordering.
func RankByFromString(s string) (RankBy, error) {
	if s == "" {
		return RankByPrice, nil
	}
	for rank, str := range getRankByStrings() {
		if str == s {
			return rank, nil
		}
	}
	return 0, errs.NewValueIsInvalidErrorWithCause(
		"rank criterion",
		fmt.Errorf("%q is not a valid rank criterion", s),
	)
}

// String returns the wire name of the criterion.
func (r RankBy) String() string {
	if str, ok := getRankByStrings()[r]; ok {
		return str
	}
	return "unknown"
}

// Validate checks if the RankBy value is valid.
func (r RankBy) Validate() error {
	if _, ok := getRankByStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"rank criterion",
			fmt.Errorf("%d is not a valid rank criterion", r),
		)
	}
	return nil
}

// Rank returns the quotes ordered by the given criterion. The sort is stable:
// quotes with equal keys keep the relative order the rating service returned
// them in, so re-ranking never shuffles ties. The input slice is not
// modified.
func Rank(quotes []*Quote, by RankBy) ([]*Quote, error) {
	if err := by.Validate(); err != nil {
		return nil, err
	}

	ranked := make([]*Quote, len(quotes))
	copy(ranked, quotes)

	switch by {
	case RankByPrice:
		sort.SliceStable(ranked, func(i, j int) bool {
			return ranked[i].Total().LessThan(ranked[j].Total())
		})
	case RankBySpeed:
		// Sorts on the reported window, not the derived door-to-door
		// estimate: drop-off doubling is a display heuristic and must not
		// reorder quotes.
		sort.SliceStable(ranked, func(i, j int) bool {
			return ranked[i].Transit().MinDays < ranked[j].Transit().MinDays
		})
	}

	return ranked, nil
}
