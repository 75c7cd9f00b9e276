package dataio

// UserRows holds every row of one user, in input order.
type UserRows struct {
	UserID int
	Rows   []Rating
}

// GroupByUser partitions rows by user. Users appear in the order of their
// first row; rows of a user need not be contiguous.
func GroupByUser(rows []Rating) []UserRows {
	index := make(map[int]int)
	var groups []UserRows
	for _, r := range rows {
		i, ok := index[r.UserID]
		if !ok {
			i = len(groups)
			index[r.UserID] = i
			groups = append(groups, UserRows{UserID: r.UserID})
		}
		groups[i].Rows = append(groups[i].Rows, r)
	}
	return groups
}

// MovieIDs returns the movie of every row.
func MovieIDs(rows []Rating) []int {
	out := make([]int, len(rows))
	for i, r := range rows {
		out[i] = r.MovieID
	}
	return out
}

// Rates returns the rate of every row.
func Rates(rows []Rating) []int {
	out := make([]int, len(rows))
	for i, r := range rows {
		out[i] = r.Rate
	}
	return out
}
