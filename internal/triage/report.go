package triage

// Result records the outcome for a single document.
type Result struct {
	ID       string     `json:"id" yaml:"id"`
	Title    string     `json:"title" yaml:"title"`
	Action   ActionKind `json:"action" yaml:"action"`
	NewTitle string     `json:"new_title,omitempty" yaml:"new_title,omitempty"`
	Category string     `json:"category,omitempty" yaml:"category,omitempty"`
	FolderID string     `json:"folder_id,omitempty" yaml:"folder_id,omitempty"`
	Reason   string     `json:"reason,omitempty" yaml:"reason,omitempty"`
	Error    string     `json:"error,omitempty" yaml:"error,omitempty"`
}

// Report summarizes a run for CLI output.
type Report struct {
	Total   int      `json:"total" yaml:"total"`
	Renamed int      `json:"renamed" yaml:"renamed"`
	Trashed int      `json:"trashed" yaml:"trashed"`
	Moved   int      `json:"moved" yaml:"moved"`
	Skipped int      `json:"skipped" yaml:"skipped"`
	Failed  int      `json:"failed" yaml:"failed"`
	Results []Result `json:"results" yaml:"results"`
}

// add records a result. A mutation error counts as failed regardless of the
// intended action.
func (r *Report) add(result Result, err error) {
	r.Total++
	r.Results = append(r.Results, result)

	if err != nil {
		r.Failed++
		return
	}
	switch result.Action {
	case ActionRename:
		r.Renamed++
	case ActionTrash:
		r.Trashed++
	case ActionMove:
		r.Moved++
	case ActionSkip:
		r.Skipped++
	}
}
