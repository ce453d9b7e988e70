/*
 * @module api/controllers/meta_controller
 * @description 元数据控制器，提供月份快捷选择、会员等级与处理状态的枚举数据
 * @architecture MVC架构 - 控制器层
 * @documentReference dev_docs/backend_requirements.md
 * @stateFlow 无状态HTTP请求处理
 * @rules 月份快捷选择在此解析为合法的起止日期对（start <= end），核心过滤器只接受成对区间
 * @dependencies github.com/go-chi/render
 * @refs service/report/filter.go
 */

package controllers

import (
	"fmt"
	"net/http"
	"time"

	"recovery-report-service/service/models"

	"github.com/go-chi/render"
)

// MetaController 元数据控制器
type MetaController struct{}

// NewMetaController 创建元数据控制器实例
func NewMetaController() *MetaController {
	return &MetaController{}
}

// MonthOption 月份快捷选项，已解析为闭区间起止日期对
type MonthOption struct {
	Value     int    `json:"value" example:"1"`
	Label     string `json:"label" example:"January 2026"`
	StartDate string `json:"startDate" example:"2026-01-01"`
	EndDate   string `json:"endDate" example:"2026-01-31"`
}

// GetMonths 获取可选月份
// @Summary 获取可选月份
// @Description 返回本年度截至当前月份的快捷选项，每项携带对应的起止日期
// @Tags 元数据
// @Produce json
// @Success 200 {object} APIResponse{data=[]MonthOption}
// @Router /meta/months [get]
func (c *MetaController) GetMonths(w http.ResponseWriter, r *http.Request) {
	now := time.Now()
	months := make([]MonthOption, 0, int(now.Month()))

	for month := time.January; month <= now.Month(); month++ {
		start := time.Date(now.Year(), month, 1, 0, 0, 0, 0, time.UTC)
		end := start.AddDate(0, 1, -1)
		months = append(months, MonthOption{
			Value:     int(month),
			Label:     fmt.Sprintf("%s %d", month.String(), now.Year()),
			StartDate: start.Format("2006-01-02"),
			EndDate:   end.Format("2006-01-02"),
		})
	}

	render.JSON(w, r, SuccessResponse("查询成功", months))
}

// GetMembershipTiers 获取会员等级枚举
// @Summary 获取会员等级枚举
// @Description 返回固定六级会员等级，顺序即报表输出顺序
// @Tags 元数据
// @Produce json
// @Success 200 {object} APIResponse{data=[]models.MembershipTier}
// @Router /meta/membership-tiers [get]
func (c *MetaController) GetMembershipTiers(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, SuccessResponse("查询成功", models.AllMembershipTiers))
}

// GetStatuses 获取处理状态枚举
// @Summary 获取处理状态枚举
// @Description 返回投诉处理状态的全部取值
// @Tags 元数据
// @Produce json
// @Success 200 {object} APIResponse{data=[]models.CaseStatus}
// @Router /meta/statuses [get]
func (c *MetaController) GetStatuses(w http.ResponseWriter, r *http.Request) {
	statuses := []models.CaseStatus{models.StatusCompleted, models.StatusActive, models.StatusOverdue}
	render.JSON(w, r, SuccessResponse("查询成功", statuses))
}
