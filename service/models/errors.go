/*
 * @module service/models/errors
 * @description 解析与过滤的错误分类：配置错误整批中止，行级错误累积返回，区间错误中止过滤
 * @architecture DDD领域驱动设计 - 错误模型
 * @documentReference dev_docs/model.md
 * @stateFlow 行级错误随成功记录一并返回，配置/区间错误立即向调用方传播
 * @rules 行级错误不中止批处理；输入行数 = 有效记录数 + 错误记录数
 * @dependencies fmt, time
 * @refs service/report/normalizer.go, service/report/filter.go
 */

package models

import (
	"fmt"
	"time"
)

// RowErrorReason 行级错误原因代码
type RowErrorReason string

const (
	ReasonInvalidDate          RowErrorReason = "invalid_date"
	ReasonInvalidBoolean       RowErrorReason = "invalid_boolean"
	ReasonMissingRequiredField RowErrorReason = "missing_required_field"
)

// RowError 行级解析错误，该行被排除但不影响其余行
type RowError struct {
	RowIndex int            `json:"rowIndex" example:"7"`
	Reason   RowErrorReason `json:"reason" example:"invalid_date"`
	Field    string         `json:"field,omitempty" example:"Date"`
}

func (e *RowError) Error() string {
	return fmt.Sprintf("第%d行解析失败: %s (字段: %s)", e.RowIndex, e.Reason, e.Field)
}

// ConfigurationError 配置级错误，必需列标题在输入中完全缺失，整批解析中止
type ConfigurationError struct {
	Field   string   `json:"field" example:"Date"`
	Aliases []string `json:"aliases"`
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("必需列标题缺失: %s (可接受的别名: %v)", e.Field, e.Aliases)
}

// RangeError 日期区间错误，起始日期晚于结束日期，过滤中止
type RangeError struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("日期区间非法: 起始日期 %s 晚于结束日期 %s",
		e.Start.Format("2006-01-02"), e.End.Format("2006-01-02"))
}
