/*
 * @module service/report/classifier
 * @description 状态分类器，按业务决策表把投诉的跟进字段和参考日期映射为处理状态
 * @architecture 纯函数 - 参考日期显式注入，内部不读系统时钟
 * @documentReference dev_docs/backend_requirements.md
 * @stateFlow 决策表自上而下求值，首个命中的规则生效
 * @rules 跟进日期等于参考日期视为未过期，到期当天永不判为Overdue
 * @refs service/report/aggregator.go
 */

package report

import (
	"strings"
	"time"

	"recovery-report-service/service/models"
)

// Classify 推导投诉的处理状态，today 为调用方注入的参考日期
//
// 决策表（自上而下，首个命中生效）：
//  1. 不需要跟进 -> Completed
//  2. 需要跟进，跟进日期已过且已指派跟进员工 -> Completed
//  3. 需要跟进，跟进日期已过且未指派跟进员工 -> Overdue
//  4. 需要跟进，跟进日期未设置或尚未到期 -> Active
func Classify(c models.Complaint, today time.Time) models.CaseStatus {
	if !c.FollowUpRequired {
		return models.StatusCompleted
	}

	if c.FollowUpDate != nil && toDateOnly(*c.FollowUpDate).Before(toDateOnly(today)) {
		if strings.TrimSpace(c.FollowUpStaff) != "" {
			return models.StatusCompleted
		}
		return models.StatusOverdue
	}

	return models.StatusActive
}

// DaysOverdue 计算逾期天数，仅对分类为Overdue的投诉有意义，其余返回0
func DaysOverdue(c models.Complaint, today time.Time) int {
	if c.FollowUpDate == nil {
		return 0
	}
	days := int(toDateOnly(today).Sub(toDateOnly(*c.FollowUpDate)).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}
