// Package types provides small shared helpers: pointer helpers,
// date parsing and the sort criteria produced by the sorting package.
//
// # Sorting
//
// Criterion and MultiCriteria describe an ordering recipe applied left to
// right. Sort applies a recipe to an in-memory slice:
//
//	types.Sort(habits, types.MultiCriteria{Criteria: []types.Criterion{
//	    {Field: "Status", Order: types.Ascending},
//	    {Field: "Name", Order: types.Descending},
//	}}, habitGetter)
//
// # Dates
//
//	from, err := types.ParseDate("2025-01-01")
//	to := types.EndOfDay(from)
package types
