/*
 * @module service/report/filter_test
 * @description 日期区间过滤器单元测试，覆盖闭区间边界、幂等性和非法区间
 * @architecture 单元测试
 * @documentReference dev_docs/test_plan.md
 * @stateFlow 测试数据准备 -> 过滤 -> 结果验证
 * @rules 闭区间双边包含；起始晚于结束必须报错
 * @dependencies testing, github.com/stretchr/testify
 * @refs filter.go
 */

package report

import (
	"errors"
	"testing"

	"recovery-report-service/service/models"
	"recovery-report-service/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterByDateRange_InclusiveBounds(t *testing.T) {
	complaints := []models.Complaint{
		testutil.NewComplaint(testutil.WithDate("2025-12-31")),
		testutil.NewComplaint(testutil.WithDate("2026-01-01")),
		testutil.NewComplaint(testutil.WithDate("2026-01-15")),
		testutil.NewComplaint(testutil.WithDate("2026-01-31")),
		testutil.NewComplaint(testutil.WithDate("2026-02-01")),
	}

	filtered, err := FilterByDateRange(complaints, testutil.MustDate("2026-01-01"), testutil.MustDate("2026-01-31"))
	require.NoError(t, err)

	require.Len(t, filtered, 3)
	assert.Equal(t, testutil.MustDate("2026-01-01"), filtered[0].Date)
	assert.Equal(t, testutil.MustDate("2026-01-15"), filtered[1].Date)
	assert.Equal(t, testutil.MustDate("2026-01-31"), filtered[2].Date)
}

// TestFilterByDateRange_Idempotent 对已过滤集合以同一区间再过滤，结果不变
func TestFilterByDateRange_Idempotent(t *testing.T) {
	complaints := []models.Complaint{
		testutil.NewComplaint(testutil.WithDate("2026-01-05")),
		testutil.NewComplaint(testutil.WithDate("2026-01-20")),
		testutil.NewComplaint(testutil.WithDate("2026-03-01")),
	}
	start := testutil.MustDate("2026-01-01")
	end := testutil.MustDate("2026-01-31")

	once, err := FilterByDateRange(complaints, start, end)
	require.NoError(t, err)

	twice, err := FilterByDateRange(once, start, end)
	require.NoError(t, err)

	assert.Equal(t, once, twice)
}

func TestFilterByDateRange_StartAfterEnd(t *testing.T) {
	complaints := []models.Complaint{testutil.NewComplaint()}

	_, err := FilterByDateRange(complaints, testutil.MustDate("2026-02-01"), testutil.MustDate("2026-01-01"))
	require.Error(t, err)

	var rangeErr *models.RangeError
	assert.True(t, errors.As(err, &rangeErr), "应返回RangeError而不是静默交换区间")
}

func TestFilterByDateRange_SingleDayRange(t *testing.T) {
	complaints := []models.Complaint{
		testutil.NewComplaint(testutil.WithDate("2026-01-15")),
		testutil.NewComplaint(testutil.WithDate("2026-01-16")),
	}

	filtered, err := FilterByDateRange(complaints, testutil.MustDate("2026-01-15"), testutil.MustDate("2026-01-15"))
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, testutil.MustDate("2026-01-15"), filtered[0].Date)
}

func TestFilterByDateRange_EmptyInput(t *testing.T) {
	filtered, err := FilterByDateRange(nil, testutil.MustDate("2026-01-01"), testutil.MustDate("2026-01-31"))
	require.NoError(t, err)
	assert.Empty(t, filtered)
}
