package types

// ConsistencyReport is the advisory completeness check computed over the
// final artifact set. It never affects the terminal status of a run.
type ConsistencyReport struct {
	Issues []string `json:"issues"`
	OK     bool     `json:"ok"`
}
