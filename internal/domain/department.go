package domain

// DepartmentRow is one row of the department sheet: a category, the team
// that owns it, the Slack identity to notify, and the free-text description
// used for classification. JSON keys follow the sheet's column headers.
//
// DetailVector is computed at load time for every row except the catch-all
// category, whose generic description would otherwise pollute similarity
// scores. Rows are read-only for the lifetime of the process.
type DepartmentRow struct {
	Category    string `json:"종류"`
	Department  string `json:"담당부서"`
	Manager     string `json:"주요 담당자"`
	Detail      string `json:"상세내용"`
	SlackUserID string `json:"SlackUserID"`
	SlackName   string `json:"SlackName"`

	DetailVector []float32 `json:"-"`
}

// HasVector reports whether the row participates in similarity comparison.
func (r DepartmentRow) HasVector() bool {
	return len(r.DetailVector) > 0
}
