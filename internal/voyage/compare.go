package voyage

import (
	"sort"

	"laytime-calculator/internal/model"
)

// Ranked is one vessel's estimate in a comparison, or the reason it has none.
type Ranked struct {
	ProfileID string
	Result    *Result
	Err       error
}

// Compare estimates the same route and cargo for each profile and sorts the
// valid estimates ascending by cost per ton. Profiles that fail validation are
// kept at the end, in input order, with their error.
func (e *Estimator) Compare(profiles []model.VesselProfile, route model.RouteParams, cargoTons float64) []Ranked {
	ok := make([]Ranked, 0, len(profiles))
	var failed []Ranked
	for _, p := range profiles {
		res, err := e.Estimate(p.Params, route, cargoTons)
		if err != nil {
			failed = append(failed, Ranked{ProfileID: p.ID, Err: err})
			continue
		}
		ok = append(ok, Ranked{ProfileID: p.ID, Result: res})
	}
	sort.SliceStable(ok, func(i, j int) bool {
		return ok[i].Result.CostPerTon < ok[j].Result.CostPerTon
	})
	return append(ok, failed...)
}
