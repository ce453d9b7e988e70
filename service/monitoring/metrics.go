/*
 * @module service/monitoring/metrics
 * @description 服务运行指标，统计上传、行解析、行错误与报告生成次数，经 /metrics 暴露
 * @architecture 指标采集 - promauto全局注册，随处理流程打点
 * @documentReference dev_docs/backend_requirements.md
 * @stateFlow 请求处理过程中同步计数 -> Prometheus抓取
 * @rules 指标只增不减，行错误按原因代码分维度
 * @dependencies github.com/prometheus/client_golang
 * @refs api/controllers/report_controller.go, service/report/service.go
 */

package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// UploadsTotal 工作簿上传次数
	UploadsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "recovery_report_uploads_total",
		Help: "Excel工作簿上传总次数",
	})

	// RowsParsedTotal 成功规范化的数据行数
	RowsParsedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "recovery_report_rows_parsed_total",
		Help: "成功规范化的投诉记录总行数",
	})

	// RowErrorsTotal 行级解析错误数，按原因代码分维度
	RowErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "recovery_report_row_errors_total",
		Help: "行级解析错误总数",
	}, []string{"reason"})

	// ReportsGeneratedTotal 报告生成次数，按输出格式分维度
	ReportsGeneratedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "recovery_report_reports_generated_total",
		Help: "报告生成总次数",
	}, []string{"format"})

	// ReportDuration 报告装配耗时
	ReportDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "recovery_report_build_duration_seconds",
		Help:    "报告装配耗时分布",
		Buckets: prometheus.DefBuckets,
	})
)
