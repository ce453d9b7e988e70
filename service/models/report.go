/*
 * @module service/models/report
 * @description 服务补救报告的汇总视图模型，包括执行摘要、员工绩效、问题领域、会员分档和跟进清单
 * @architecture DDD领域驱动设计 - 视图模型
 * @documentReference dev_docs/model.md
 * @stateFlow 由过滤后的投诉集合一次性计算生成，随响应返回后丢弃
 * @rules 所有百分比以过滤后集合的总数为分母；空集合输出0而不是除零错误
 * @refs service/report/aggregator.go
 */

package models

// ReportSummary 执行摘要，total 恒等于三种状态计数之和
type ReportSummary struct {
	Total               int `json:"total" example:"42"`
	Completed           int `json:"completed" example:"30"`
	Active              int `json:"active" example:"8"`
	Overdue             int `json:"overdue" example:"4"`
	CompletedPercentage int `json:"completedPercentage" example:"71"`
}

// StaffPerformance 前台员工处理量，仅统计已指派员工的投诉
type StaffPerformance struct {
	Name  string `json:"name" example:"Maria"`
	Count int    `json:"count" example:"12"`
}

// ProblemAreaBreakdown 问题领域分布，按计数降序排列
type ProblemAreaBreakdown struct {
	Area       string   `json:"area" example:"Housekeeping"`
	Count      int      `json:"count" example:"9"`
	Percentage float64  `json:"percentage" example:"21.4"`
	Rooms      []string `json:"rooms"`
}

// TierBreakdown 会员等级分档，六级全量输出，缺失等级计数为0
type TierBreakdown struct {
	Tier           MembershipTier `json:"tier" example:"Gold"`
	Count          int            `json:"count" example:"11"`
	NeedsAttention bool           `json:"needsAttention" example:"true"`
}

// ActiveOverdueCase 待跟进清单条目，Overdue在前Active在后，组内保持原始顺序
type ActiveOverdueCase struct {
	Complaint   Complaint  `json:"complaint"`
	Status      CaseStatus `json:"status" example:"Overdue"`
	DaysOverdue int        `json:"daysOverdue,omitempty" example:"14"`
	Note        string     `json:"note,omitempty" example:"No follow-up date assigned"`
}

// ReportResult 报告装配结果，complaints 与 errors 总是同时返回
// 调用方据此决定是否在部分数据失败时继续生成报告
type ReportResult struct {
	Complaints       []Complaint            `json:"complaints"`
	Summary          ReportSummary          `json:"summary"`
	StaffPerformance []StaffPerformance     `json:"staffPerformance"`
	ProblemAreas     []ProblemAreaBreakdown `json:"problemAreas"`
	TierBreakdown    []TierBreakdown        `json:"tierBreakdown"`
	ActiveOverdue    []ActiveOverdueCase    `json:"activeOverdue"`
	Errors           []RowError             `json:"errors"`
}
