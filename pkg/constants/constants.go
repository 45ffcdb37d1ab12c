package constants

// Verdict is the outcome of running one sample case.
type Verdict string

const (
	AC  Verdict = "AC"  // 答案正确
	WA  Verdict = "WA"  // 答案错误
	RTE Verdict = "RTE" // 运行错误
	TLE Verdict = "TLE" // 时间超限
)

// Supported judge sites.
const (
	SiteCodeforces = "codeforces"
	SiteCodechef   = "codechef"
	SiteSpoj       = "spoj"
	SiteHackerrank = "hackerrank"
)

func SupportedSites() []string {
	return []string{SiteCodeforces, SiteCodechef, SiteSpoj, SiteHackerrank}
}

func IsSupportedSite(site string) bool {
	for _, s := range SupportedSites() {
		if s == site {
			return true
		}
	}
	return false
}
