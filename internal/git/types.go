package git

// Branch is a local branch name and the commit it points to
type Branch struct {
	Name   string
	Commit string
}

// MergeAnalysis describes how a source commit relates to a target branch tip
type MergeAnalysis int

const (
	// AnalysisNone indicates neither a fast-forward nor a normal merge is possible
	AnalysisNone MergeAnalysis = iota
	// AnalysisUpToDate indicates the source is already reachable from the target
	AnalysisUpToDate
	// AnalysisFastForward indicates the target tip is an ancestor of the source
	AnalysisFastForward
	// AnalysisNormal indicates the histories diverged and need a three-way merge
	AnalysisNormal
	// AnalysisUnborn indicates the target branch does not exist yet
	AnalysisUnborn
)

func (a MergeAnalysis) String() string {
	switch a {
	case AnalysisUpToDate:
		return "up-to-date"
	case AnalysisFastForward:
		return "fast-forward"
	case AnalysisNormal:
		return "normal"
	case AnalysisUnborn:
		return "unborn"
	default:
		return "none"
	}
}

// MergeTreeResult is the result of merging three trees without touching the worktree
type MergeTreeResult struct {
	Tree       string
	Conflicted bool
	Paths      []string
}

// Progress is a single transfer progress notification from a fetch or push
type Progress struct {
	Stage   string
	Current int
	Total   int
	Bytes   int64
}

// ProgressFunc receives progress notifications in order
type ProgressFunc func(Progress)

// RebaseOperation is one commit replayed by a rebase
type RebaseOperation struct {
	Kind    string
	Commit  string
	Subject string
}

// RebaseOptions controls how a branch is rebased
type RebaseOptions struct {
	Interactive    bool
	PreserveMerges bool
}
