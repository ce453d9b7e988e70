/*
 * @module service/report/aggregator
 * @description 汇总器，从过滤后的投诉集合计算执行摘要、员工绩效、问题领域分布、会员分档和待跟进清单
 * @architecture 纯函数 - 所有百分比以过滤后集合总数为分母，参考日期显式注入
 * @documentReference dev_docs/backend_requirements.md
 * @stateFlow 逐条分类 -> 分组计数 -> 排序与百分比计算 -> 视图输出
 * @rules 问题领域与员工按原始字符串精确分组；空集合所有百分比输出0
 * @refs service/report/classifier.go, service/models/report.go
 */

package report

import (
	"math"
	"sort"
	"time"

	"recovery-report-service/service/models"
)

// 待跟进清单的提示语
const noteNoFollowUpDate = "No follow-up date assigned"

// BuildSummary 计算执行摘要，total 恒等于三种状态计数之和
func BuildSummary(complaints []models.Complaint, today time.Time) models.ReportSummary {
	summary := models.ReportSummary{Total: len(complaints)}

	for _, c := range complaints {
		switch Classify(c, today) {
		case models.StatusCompleted:
			summary.Completed++
		case models.StatusActive:
			summary.Active++
		case models.StatusOverdue:
			summary.Overdue++
		}
	}

	if summary.Total > 0 {
		summary.CompletedPercentage = int(math.Round(float64(summary.Completed) / float64(summary.Total) * 100))
	}

	return summary
}

// BuildStaffPerformance 统计前台员工处理量，仅计已指派员工的投诉
// 按计数降序排列，计数相同时按员工名升序
func BuildStaffPerformance(complaints []models.Complaint) []models.StaffPerformance {
	counts := make(map[string]int)
	for _, c := range complaints {
		if c.FDStaff == "" {
			continue
		}
		counts[c.FDStaff]++
	}

	performance := make([]models.StaffPerformance, 0, len(counts))
	for name, count := range counts {
		performance = append(performance, models.StaffPerformance{Name: name, Count: count})
	}

	sort.Slice(performance, func(i, j int) bool {
		if performance[i].Count != performance[j].Count {
			return performance[i].Count > performance[j].Count
		}
		return performance[i].Name < performance[j].Name
	})

	return performance
}

// BuildProblemAreas 计算问题领域分布，按计数降序排列，计数相同时保持首次出现顺序
// 百分比以过滤后集合总数为分母，保留一位小数
func BuildProblemAreas(complaints []models.Complaint) []models.ProblemAreaBreakdown {
	type areaStats struct {
		count int
		rooms map[string]struct{}
	}

	stats := make(map[string]*areaStats)
	order := make([]string, 0)

	for _, c := range complaints {
		entry, exists := stats[c.ProblemArea]
		if !exists {
			entry = &areaStats{rooms: make(map[string]struct{})}
			stats[c.ProblemArea] = entry
			order = append(order, c.ProblemArea)
		}
		entry.count++
		entry.rooms[c.Room] = struct{}{}
	}

	total := len(complaints)
	breakdown := make([]models.ProblemAreaBreakdown, 0, len(order))
	for _, area := range order {
		entry := stats[area]

		rooms := make([]string, 0, len(entry.rooms))
		for room := range entry.rooms {
			rooms = append(rooms, room)
		}
		sort.Strings(rooms)

		var percentage float64
		if total > 0 {
			percentage = math.Round(float64(entry.count)/float64(total)*1000) / 10
		}

		breakdown = append(breakdown, models.ProblemAreaBreakdown{
			Area:       area,
			Count:      entry.count,
			Percentage: percentage,
			Rooms:      rooms,
		})
	}

	sort.SliceStable(breakdown, func(i, j int) bool {
		return breakdown[i].Count > breakdown[j].Count
	})

	return breakdown
}

// BuildTierBreakdown 计算会员等级分档，六级全量输出，计数超过10的等级标记需关注
func BuildTierBreakdown(complaints []models.Complaint) []models.TierBreakdown {
	counts := make(map[models.MembershipTier]int, len(models.AllMembershipTiers))
	for _, c := range complaints {
		tier := c.MembershipTier
		if !tier.IsValid() {
			tier = models.TierNonMember
		}
		counts[tier]++
	}

	breakdown := make([]models.TierBreakdown, 0, len(models.AllMembershipTiers))
	for _, tier := range models.AllMembershipTiers {
		count := counts[tier]
		breakdown = append(breakdown, models.TierBreakdown{
			Tier:           tier,
			Count:          count,
			NeedsAttention: count > 10,
		})
	}

	return breakdown
}

// BuildActiveOverdue 构建待跟进清单：Overdue在前Active在后，组内保持原始顺序
func BuildActiveOverdue(complaints []models.Complaint, today time.Time) []models.ActiveOverdueCase {
	cases := make([]models.ActiveOverdueCase, 0)

	for _, c := range complaints {
		status := Classify(c, today)
		if status == models.StatusCompleted {
			continue
		}

		entry := models.ActiveOverdueCase{Complaint: c, Status: status}
		switch status {
		case models.StatusOverdue:
			entry.DaysOverdue = DaysOverdue(c, today)
		case models.StatusActive:
			if c.FollowUpDate == nil {
				entry.Note = noteNoFollowUpDate
			}
		}
		cases = append(cases, entry)
	}

	sort.SliceStable(cases, func(i, j int) bool {
		return statusPriority(cases[i].Status) < statusPriority(cases[j].Status)
	})

	return cases
}

// statusPriority 待跟进清单的排序键，数值越小越靠前
func statusPriority(status models.CaseStatus) int {
	if status == models.StatusOverdue {
		return 0
	}
	return 1
}
