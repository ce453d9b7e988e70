/*
 * @module service/report/normalizer_test
 * @description 记录规范化器单元测试，覆盖列标题别名解析、日期与布尔转换、行级错误累积
 * @architecture 单元测试 - 表驱动
 * @documentReference dev_docs/test_plan.md
 * @stateFlow 测试数据准备 -> 规范化 -> 记录与错误验证
 * @rules 输入行数 = 有效记录数 + 错误记录数；输出保持输入行序
 * @dependencies testing, github.com/stretchr/testify
 * @refs normalizer.go
 */

package report

import (
	"errors"
	"testing"
	"time"

	"recovery-report-service/service/models"
	"recovery-report-service/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize_ValidRow(t *testing.T) {
	normalizer := NewNormalizer(nil)

	complaints, rowErrors, err := normalizer.Normalize([]models.RawRow{testutil.NewRawRow(nil)})
	require.NoError(t, err)
	require.Empty(t, rowErrors)
	require.Len(t, complaints, 1)

	c := complaints[0]
	assert.Equal(t, testutil.MustDate("2026-01-15"), c.Date)
	assert.Equal(t, "14:30", c.Time)
	assert.Equal(t, "John Smith", c.GuestName)
	assert.Equal(t, "1204", c.Room)
	assert.Equal(t, "84921733", c.ConfirmationNo)
	assert.Equal(t, models.TierGold, c.MembershipTier)
	assert.Equal(t, "Housekeeping", c.ProblemArea)
	assert.Equal(t, "Maria", c.FDStaff)
	assert.False(t, c.FollowUpRequired)
	assert.Nil(t, c.FollowUpDate)
}

// TestNormalize_HeaderAliases 列标题匹配大小写不敏感且容忍换行
func TestNormalize_HeaderAliases(t *testing.T) {
	normalizer := NewNormalizer(nil)

	row := models.RawRow{
		"date":                                 "2026-01-15",
		"TIME":                                 "09:00",
		"Guest Name\n(First Name Last Name)":   "Li Wei",
		"room":                                 "0815",
		"problem area":                         "Billing",
		"followUpRequired":                     "Yes",
		"Follow Up Date":                       "2026-02-01",
	}

	complaints, rowErrors, err := normalizer.Normalize([]models.RawRow{row})
	require.NoError(t, err)
	require.Empty(t, rowErrors)
	require.Len(t, complaints, 1)

	c := complaints[0]
	assert.Equal(t, "Li Wei", c.GuestName)
	assert.Equal(t, "0815", c.Room)
	assert.True(t, c.FollowUpRequired)
	require.NotNil(t, c.FollowUpDate)
	assert.Equal(t, testutil.MustDate("2026-02-01"), *c.FollowUpDate)
}

// TestNormalize_MissingRequiredHeader 必需列标题完全缺失时整批中止
func TestNormalize_MissingRequiredHeader(t *testing.T) {
	normalizer := NewNormalizer(nil)

	row := testutil.NewRawRow(nil)
	delete(row, "Date")

	_, _, err := normalizer.Normalize([]models.RawRow{row, row})
	require.Error(t, err)

	var configErr *models.ConfigurationError
	require.True(t, errors.As(err, &configErr), "应返回配置级错误而不是逐行错误")
	assert.Equal(t, FieldDate, configErr.Field)
}

func TestNormalize_DateFormats(t *testing.T) {
	normalizer := NewNormalizer(nil)

	tests := []struct {
		name     string
		value    interface{}
		expected time.Time
	}{
		{"ISO日期字符串", "2026-01-15", testutil.MustDate("2026-01-15")},
		{"美式日期字符串", "01/15/2026", testutil.MustDate("2026-01-15")},
		{"原生时间值", time.Date(2026, 1, 15, 14, 30, 0, 0, time.UTC), testutil.MustDate("2026-01-15")},
		{"Excel序列数字", float64(46037), excelEpoch.AddDate(0, 0, 46036)},
		{"带时间的ISO字符串", "2026-01-15 08:45:00", testutil.MustDate("2026-01-15")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row := testutil.NewRawRow(map[string]interface{}{"Date": tt.value})

			complaints, rowErrors, err := normalizer.Normalize([]models.RawRow{row})
			require.NoError(t, err)
			require.Empty(t, rowErrors)
			require.Len(t, complaints, 1)
			assert.Equal(t, tt.expected, complaints[0].Date)
		})
	}
}

func TestNormalize_InvalidDate(t *testing.T) {
	normalizer := NewNormalizer(nil)

	row := testutil.NewRawRow(map[string]interface{}{"Date": "not-a-date"})

	complaints, rowErrors, err := normalizer.Normalize([]models.RawRow{row})
	require.NoError(t, err, "行级错误不中止批处理")
	assert.Empty(t, complaints)
	require.Len(t, rowErrors, 1)
	assert.Equal(t, models.ReasonInvalidDate, rowErrors[0].Reason)
	assert.Equal(t, 1, rowErrors[0].RowIndex)
}

func TestNormalize_BooleanFlag(t *testing.T) {
	normalizer := NewNormalizer(nil)

	tests := []struct {
		name     string
		value    interface{}
		expected bool
		invalid  bool
	}{
		{"Yes为真", "Yes", true, false},
		{"y为真", "y", true, false},
		{"TRUE为真", "TRUE", true, false},
		{"数字1为真", "1", true, false},
		{"No为假", "No", false, false},
		{"n为假", "n", false, false},
		{"false为假", "false", false, false},
		{"数字0为假", "0", false, false},
		{"空字符串默认为假", "", false, false},
		{"缺失默认为假", nil, false, false},
		{"其他取值为非法布尔", "maybe", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row := testutil.NewRawRow(map[string]interface{}{"Follow-Up-Required": tt.value})

			complaints, rowErrors, err := normalizer.Normalize([]models.RawRow{row})
			require.NoError(t, err)

			if tt.invalid {
				assert.Empty(t, complaints)
				require.Len(t, rowErrors, 1)
				assert.Equal(t, models.ReasonInvalidBoolean, rowErrors[0].Reason)
				return
			}

			require.Empty(t, rowErrors)
			require.Len(t, complaints, 1)
			assert.Equal(t, tt.expected, complaints[0].FollowUpRequired)
		})
	}
}

func TestNormalize_MembershipTier(t *testing.T) {
	normalizer := NewNormalizer(nil)

	tests := []struct {
		name     string
		value    interface{}
		expected models.MembershipTier
	}{
		{"标准等级", "Diamond", models.TierDiamond},
		{"小写输入", "gold", models.TierGold},
		{"大写输入", "PLATINUM", models.TierPlatinum},
		{"空白归入非会员", "", models.TierNonMember},
		{"缺失归入非会员", nil, models.TierNonMember},
		{"未知取值归入非会员", "VIP", models.TierNonMember},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row := testutil.NewRawRow(map[string]interface{}{"Membership Tier": tt.value})

			complaints, rowErrors, err := normalizer.Normalize([]models.RawRow{row})
			require.NoError(t, err)
			require.Empty(t, rowErrors)
			require.Len(t, complaints, 1)
			assert.Equal(t, tt.expected, complaints[0].MembershipTier)
		})
	}
}

func TestNormalize_MissingRequiredField(t *testing.T) {
	normalizer := NewNormalizer(nil)

	row := testutil.NewRawRow(map[string]interface{}{"Guest Name": "  "})

	complaints, rowErrors, err := normalizer.Normalize([]models.RawRow{row})
	require.NoError(t, err)
	assert.Empty(t, complaints)
	require.Len(t, rowErrors, 1)
	assert.Equal(t, models.ReasonMissingRequiredField, rowErrors[0].Reason)
	assert.Equal(t, FieldGuestName, rowErrors[0].Field)
}

// TestNormalize_PreservesOrderAndCount 输出保持输入行序，且行数守恒
func TestNormalize_PreservesOrderAndCount(t *testing.T) {
	normalizer := NewNormalizer(nil)

	rows := []models.RawRow{
		testutil.NewRawRow(map[string]interface{}{"Room": "0101"}),
		testutil.NewRawRow(map[string]interface{}{"Date": "bad"}),
		testutil.NewRawRow(map[string]interface{}{"Room": "0202"}),
		testutil.NewRawRow(map[string]interface{}{"Room": "0303"}),
	}

	complaints, rowErrors, err := normalizer.Normalize(rows)
	require.NoError(t, err)

	assert.Equal(t, len(rows), len(complaints)+len(rowErrors), "输入行数 = 有效记录数 + 错误记录数")
	require.Len(t, complaints, 3)
	assert.Equal(t, "0101", complaints[0].Room)
	assert.Equal(t, "0202", complaints[1].Room)
	assert.Equal(t, "0303", complaints[2].Room)
	require.Len(t, rowErrors, 1)
	assert.Equal(t, 2, rowErrors[0].RowIndex)
}

func TestNormalize_EmptyInput(t *testing.T) {
	normalizer := NewNormalizer(nil)

	complaints, rowErrors, err := normalizer.Normalize(nil)
	require.NoError(t, err)
	assert.Empty(t, complaints)
	assert.Empty(t, rowErrors)
}

func TestNormalize_InvalidFollowUpDate(t *testing.T) {
	normalizer := NewNormalizer(nil)

	row := testutil.NewRawRow(map[string]interface{}{
		"Follow-Up-Required": "Yes",
		"Follow-Up Date":     "soon",
	})

	complaints, rowErrors, err := normalizer.Normalize([]models.RawRow{row})
	require.NoError(t, err)
	assert.Empty(t, complaints)
	require.Len(t, rowErrors, 1)
	assert.Equal(t, models.ReasonInvalidDate, rowErrors[0].Reason)
	assert.Equal(t, FieldFollowUpDate, rowErrors[0].Field)
}
