package config

// Persisted keys in the repository's git config
const (
	KeyMaster     = "gitflow.branch.master"
	KeyDevelop    = "gitflow.branch.develop"
	KeyFeature    = "gitflow.prefix.feature"
	KeyBugfix     = "gitflow.prefix.bugfix"
	KeyRelease    = "gitflow.prefix.release"
	KeyHotfix     = "gitflow.prefix.hotfix"
	KeySupport    = "gitflow.prefix.support"
	KeyVersionTag = "gitflow.prefix.versiontag"
	KeyHooks      = "gitflow.path.hooks"
)

// Setting describes one key asked for during initialization
type Setting struct {
	Key      string
	Question string
	Default  string
}

// Settings returns the keys asked for by Initialize, in order.
// hooksDefault is the repository's default hooks directory.
func Settings(hooksDefault string) []Setting {
	return []Setting{
		{Key: KeyMaster, Question: "Branch name for production releases", Default: "master"},
		{Key: KeyDevelop, Question: `Branch name for "next release" development`, Default: "develop"},
		{Key: KeyFeature, Question: "Feature branches?", Default: Feature.DefaultPrefix()},
		{Key: KeyBugfix, Question: "Bugfix branches?", Default: Bugfix.DefaultPrefix()},
		{Key: KeyRelease, Question: "Release branches?", Default: Release.DefaultPrefix()},
		{Key: KeyHotfix, Question: "Hotfix branches?", Default: Hotfix.DefaultPrefix()},
		{Key: KeySupport, Question: "Support branches?", Default: Support.DefaultPrefix()},
		{Key: KeyVersionTag, Question: "Version tag prefix?", Default: ""},
		{Key: KeyHooks, Question: "Hooks and filters directory?", Default: hooksDefault},
	}
}
