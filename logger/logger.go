/*
 * @module logger
 * @description 全局日志初始化，JSON格式结构化日志输出到stdout
 * @architecture 基础设施 - 进程级单例
 * @documentReference dev_docs/backend_requirements.md
 * @stateFlow 应用启动时初始化一次
 * @rules 日志级别经LOG_LEVEL环境变量控制，默认Info
 * @dependencies log/slog
 */

package logger

import (
	"log/slog"
	"os"
	"strings"
)

// InitLogger 初始化全局日志记录器
// 创建 JSON 格式的日志处理器,输出到 stdout
func InitLogger() {
	level := slog.LevelInfo
	switch strings.ToLower(os.Getenv("LOG_LEVEL")) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	})
	slog.SetDefault(slog.New(handler))
}
