package cmd

import (
	"log/slog"
	"os"
	"sync"
)

// 全局 logger，只会初始化一次
var logOnce sync.Once

// initLogger 初始化全局 slog Logger
// 文本格式输出到 stderr，如果在 systemd 下自动去掉时间戳
func initLogger() {
	logOnce.Do(func() {
		opts := &slog.HandlerOptions{}
		if isRunningUnderSystemd() {
			opts.ReplaceAttr = removeTimeAttr
		}
		if os.Getenv("ACEDIT_DEBUG") != "" {
			opts.Level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, opts)))
	})
}

// 判断是否在 systemd 下运行
func isRunningUnderSystemd() bool {
	_, ok := os.LookupEnv("INVOCATION_ID")
	return ok
}

// removeTimeAttr 用于删除时间字段
func removeTimeAttr(groups []string, a slog.Attr) slog.Attr {
	if a.Key == slog.TimeKey {
		return slog.Attr{}
	}
	return a
}

func init() {
	initLogger()
}
