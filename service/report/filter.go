/*
 * @module service/report/filter
 * @description 日期区间过滤器，选取投诉日期落在闭区间内的子集
 * @architecture 纯函数 - 仅比较日历日期，忽略时分秒
 * @documentReference dev_docs/backend_requirements.md
 * @stateFlow 区间合法性校验 -> 逐条闭区间比较 -> 子集输出
 * @rules 起始日期晚于结束日期是调用方错误，返回RangeError而不是静默交换
 * @refs service/report/service.go
 */

package report

import (
	"time"

	"recovery-report-service/service/models"
)

// FilterByDateRange 过滤日期落在 [start, end] 闭区间内的投诉，保持输入顺序
func FilterByDateRange(complaints []models.Complaint, start, end time.Time) ([]models.Complaint, error) {
	startDay := toDateOnly(start)
	endDay := toDateOnly(end)

	if startDay.After(endDay) {
		return nil, &models.RangeError{Start: startDay, End: endDay}
	}

	filtered := make([]models.Complaint, 0, len(complaints))
	for _, c := range complaints {
		day := toDateOnly(c.Date)
		if !day.Before(startDay) && !day.After(endDay) {
			filtered = append(filtered, c)
		}
	}

	return filtered, nil
}
