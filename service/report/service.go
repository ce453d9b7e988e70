/*
 * @module service/report/service
 * @description 报告服务，串联规范化、日期过滤、分类与汇总，产出单一可序列化的报告装配结果
 * @architecture 分层架构 - 服务层，核心逻辑全部为纯函数，请求级生命周期
 * @documentReference dev_docs/backend_requirements.md
 * @stateFlow 原始行 -> 规范化 -> 日期过滤 -> 分类/汇总 -> ReportResult
 * @rules 行级错误不中止装配；配置错误与区间错误立即中止；参考日期由调用方注入
 * @dependencies log/slog, github.com/prometheus/client_golang
 * @refs service/report/normalizer.go, service/report/aggregator.go, service/models/report.go
 */

package report

import (
	"log/slog"
	"time"

	"recovery-report-service/service/models"
	"recovery-report-service/service/monitoring"
)

// DateRange 闭区间日期范围，由调用方（月份快捷选择等UI关注点）解析为合法的起止对
type DateRange struct {
	Start time.Time `json:"startDate"`
	End   time.Time `json:"endDate"`
}

// Service 报告服务
type Service struct {
	normalizer *Normalizer
}

// NewService 创建报告服务，aliases 为 nil 时使用默认列标题别名
func NewService(aliases FieldAliases) *Service {
	return &Service{normalizer: NewNormalizer(aliases)}
}

// NormalizeRows 把原始行规范化为投诉记录，行级错误累积返回
func (s *Service) NormalizeRows(rows []models.RawRow) ([]models.Complaint, []models.RowError, error) {
	complaints, rowErrors, err := s.normalizer.Normalize(rows)
	if err != nil {
		slog.Error("投诉记录规范化中止", "error", err)
		return nil, nil, err
	}

	monitoring.RowsParsedTotal.Add(float64(len(complaints)))
	for _, rowErr := range rowErrors {
		monitoring.RowErrorsTotal.WithLabelValues(string(rowErr.Reason)).Inc()
	}

	if len(rowErrors) > 0 {
		slog.Warn("部分数据行解析失败",
			"total", len(rows),
			"parsed", len(complaints),
			"failed", len(rowErrors))
	}

	return complaints, rowErrors, nil
}

// BuildFromRows 从原始行装配完整报告
func (s *Service) BuildFromRows(rows []models.RawRow, today time.Time, dateRange *DateRange) (*models.ReportResult, error) {
	complaints, rowErrors, err := s.NormalizeRows(rows)
	if err != nil {
		return nil, err
	}
	return s.Assemble(complaints, rowErrors, today, dateRange)
}

// Assemble 从已规范化的投诉记录装配报告
// dateRange 为 nil 时跳过过滤；所有汇总都以过滤后集合为基准
func (s *Service) Assemble(complaints []models.Complaint, rowErrors []models.RowError, today time.Time, dateRange *DateRange) (*models.ReportResult, error) {
	started := time.Now()

	filtered := complaints
	if dateRange != nil {
		var err error
		filtered, err = FilterByDateRange(complaints, dateRange.Start, dateRange.End)
		if err != nil {
			slog.Error("日期区间过滤中止", "error", err)
			return nil, err
		}
	}

	if rowErrors == nil {
		rowErrors = []models.RowError{}
	}

	result := &models.ReportResult{
		Complaints:       filtered,
		Summary:          BuildSummary(filtered, today),
		StaffPerformance: BuildStaffPerformance(filtered),
		ProblemAreas:     BuildProblemAreas(filtered),
		TierBreakdown:    BuildTierBreakdown(filtered),
		ActiveOverdue:    BuildActiveOverdue(filtered, today),
		Errors:           rowErrors,
	}

	monitoring.ReportDuration.Observe(time.Since(started).Seconds())
	slog.Info("报告装配完成",
		"complaints", result.Summary.Total,
		"completed", result.Summary.Completed,
		"active", result.Summary.Active,
		"overdue", result.Summary.Overdue,
		"row_errors", len(rowErrors))

	return result, nil
}
