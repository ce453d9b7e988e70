/*
 * @module service/report/classifier_test
 * @description 状态分类器单元测试，覆盖业务决策表全部分支及到期日边界
 * @architecture 单元测试 - 表驱动
 * @documentReference dev_docs/test_plan.md
 * @stateFlow 测试数据准备 -> 分类 -> 结果验证
 * @rules 决策表是业务规则，逐条验证，不允许近似
 * @dependencies testing, github.com/stretchr/testify/assert
 * @refs classifier.go
 */

package report

import (
	"testing"
	"time"

	"recovery-report-service/service/models"
	"recovery-report-service/testutil"

	"github.com/stretchr/testify/assert"
)

func TestClassify_DecisionTable(t *testing.T) {
	today := testutil.MustDate("2026-01-15")

	tests := []struct {
		name      string
		complaint models.Complaint
		expected  models.CaseStatus
	}{
		{
			name:      "不需要跟进即为已完成",
			complaint: testutil.NewComplaint(),
			expected:  models.StatusCompleted,
		},
		{
			name: "不需要跟进时跟进日期不影响结果",
			complaint: func() models.Complaint {
				c := testutil.NewComplaint()
				c.FollowUpDate = testutil.MustDatePtr("2026-01-01")
				return c
			}(),
			expected: models.StatusCompleted,
		},
		{
			name:      "跟进日期已过且已指派员工视为已完成",
			complaint: testutil.NewComplaint(testutil.WithFollowUp("2026-01-01", "Jane")),
			expected:  models.StatusCompleted,
		},
		{
			name:      "跟进日期已过且未指派员工为逾期",
			complaint: testutil.NewComplaint(testutil.WithFollowUp("2026-01-01", "")),
			expected:  models.StatusOverdue,
		},
		{
			name:      "员工名仅空白等同未指派",
			complaint: testutil.NewComplaint(testutil.WithFollowUp("2026-01-01", "   ")),
			expected:  models.StatusOverdue,
		},
		{
			name:      "跟进日期在未来为进行中",
			complaint: testutil.NewComplaint(testutil.WithFollowUp("2026-01-20", "")),
			expected:  models.StatusActive,
		},
		{
			name:      "跟进日期为当天视为未过期",
			complaint: testutil.NewComplaint(testutil.WithFollowUp("2026-01-15", "")),
			expected:  models.StatusActive,
		},
		{
			name:      "需要跟进但未设置日期为进行中",
			complaint: testutil.NewComplaint(testutil.WithFollowUp("", "")),
			expected:  models.StatusActive,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Classify(tt.complaint, today))
		})
	}
}

// TestClassify_NeverOverdueBeforeDueDate 参考日期早于跟进日期时永不判为逾期
func TestClassify_NeverOverdueBeforeDueDate(t *testing.T) {
	complaint := testutil.NewComplaint(testutil.WithFollowUp("2026-02-01", ""))

	for day := 1; day <= 31; day++ {
		today := time.Date(2026, time.January, day, 0, 0, 0, 0, time.UTC)
		status := Classify(complaint, today)
		assert.NotEqual(t, models.StatusOverdue, status, "today=%s 不应判为逾期", today.Format("2006-01-02"))
	}

	// 到期当天同样不判为逾期
	assert.NotEqual(t, models.StatusOverdue, Classify(complaint, testutil.MustDate("2026-02-01")))
	// 到期次日开始逾期
	assert.Equal(t, models.StatusOverdue, Classify(complaint, testutil.MustDate("2026-02-02")))
}

// TestClassify_TimeOfDayIgnored 分类按日历日期比较，时分秒不参与
func TestClassify_TimeOfDayIgnored(t *testing.T) {
	complaint := testutil.NewComplaint(testutil.WithFollowUp("2026-01-15", ""))
	todayEvening := time.Date(2026, time.January, 15, 23, 30, 0, 0, time.UTC)

	assert.Equal(t, models.StatusActive, Classify(complaint, todayEvening))
}

func TestDaysOverdue(t *testing.T) {
	complaint := testutil.NewComplaint(testutil.WithFollowUp("2026-01-01", ""))

	assert.Equal(t, 14, DaysOverdue(complaint, testutil.MustDate("2026-01-15")))
	assert.Equal(t, 0, DaysOverdue(complaint, testutil.MustDate("2026-01-01")))
	assert.Equal(t, 0, DaysOverdue(testutil.NewComplaint(testutil.WithFollowUp("", "")), testutil.MustDate("2026-01-15")))
}
