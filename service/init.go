/*
 * @module service/init
 * @description 服务初始化模块，构建报告服务、Excel解析器与PDF生成器的全局实例
 * @architecture 分层架构 - 服务层
 * @documentReference dev_docs/backend_requirements.md
 * @stateFlow 应用启动时执行初始化流程
 * @rules 核心服务均为无状态纯函数集合，单例仅为装配便利，不持有跨请求可变状态
 * @dependencies log/slog
 * @refs service/report, service/excel, service/render
 */

package service

import (
	"log/slog"
	"os"
	"strconv"

	"recovery-report-service/service/excel"
	"recovery-report-service/service/render"
	"recovery-report-service/service/report"
)

var (
	GlobalReportService *report.Service
	GlobalExcelParser   *excel.Parser
	GlobalPDFGenerator  *render.PDFGenerator
)

func init() {
	initServices()
}

// initServices 初始化各服务实例
func initServices() {
	headerRow := excel.DefaultHeaderRow
	if val := os.Getenv("EXCEL_HEADER_ROW"); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil && parsed >= 1 {
			headerRow = parsed
		} else {
			slog.Warn("EXCEL_HEADER_ROW取值非法，使用默认表头行", "value", val, "default", excel.DefaultHeaderRow)
		}
	}

	GlobalReportService = report.NewService(nil)
	GlobalExcelParser = excel.NewParser(headerRow)
	GlobalPDFGenerator = render.NewPDFGenerator()

	slog.Info("报告服务初始化完成", "excel_header_row", headerRow)
}
