package models

// Request 是 CLI 层解析完成后传给核心组件的请求对象。
// 核心代码不解析命令行参数，只消费这个结构。
type Request struct {
	// Site is one of the supported judges, e.g. "codeforces".
	Site string
	// Contest is the contest code. Empty for judges without contests (spoj).
	Contest string
	// Problem is the problem code as supplied by the user. Adapters may
	// normalize it (spoj uppercases, hackerrank slugifies).
	Problem string
	// Force re-downloads test cases even when they are cached.
	Force bool
	// Source is the solution file to run, when judging locally.
	Source string
}
