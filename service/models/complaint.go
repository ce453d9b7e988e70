/*
 * @module service/models/complaint
 * @description 宾客投诉记录模型定义，包括投诉记录、会员等级和处理状态枚举
 * @architecture DDD领域驱动设计 - 实体模型
 * @documentReference dev_docs/model.md
 * @stateFlow 投诉记录在单次请求内构建、过滤、汇总后丢弃，不做持久化
 * @rules 记录一经规范化即视为不可变；处理状态为派生值，永不落在记录上
 * @dependencies time
 * @refs service/report
 */

package models

import "time"

// MembershipTier 会员等级，固定六级封闭枚举
type MembershipTier string

const (
	TierDiamond   MembershipTier = "Diamond"
	TierPlatinum  MembershipTier = "Platinum"
	TierGold      MembershipTier = "Gold"
	TierSilver    MembershipTier = "Silver"
	TierClub      MembershipTier = "Club"
	TierNonMember MembershipTier = "Non-Member"
)

// AllMembershipTiers 会员等级的固定输出顺序，分档报表按此顺序渲染
var AllMembershipTiers = []MembershipTier{
	TierDiamond,
	TierPlatinum,
	TierGold,
	TierSilver,
	TierClub,
	TierNonMember,
}

// IsValid 判断是否为合法的会员等级
func (t MembershipTier) IsValid() bool {
	for _, tier := range AllMembershipTiers {
		if t == tier {
			return true
		}
	}
	return false
}

// CaseStatus 投诉处理状态，由跟进字段和参考日期按需推导
type CaseStatus string

const (
	StatusCompleted CaseStatus = "Completed"
	StatusActive    CaseStatus = "Active"
	StatusOverdue   CaseStatus = "Overdue"
)

// RawRow 原始行数据，列标题到单元格值的松散映射
// 单元格值可能是字符串、数字或时间对象，取决于数据来源
type RawRow map[string]interface{}

// Complaint 规范化后的宾客投诉记录
// 处理状态（Completed/Active/Overdue）不存储在记录上：
// 参考日期会变化，同一记录在不同时刻的分类结果可以不同
type Complaint struct {
	Date             time.Time      `json:"date" example:"2026-01-15T00:00:00Z"`
	Time             string         `json:"time" example:"14:30"`
	GuestName        string         `json:"guestName" example:"John Smith"`
	Room             string         `json:"room" example:"1204"`
	ConfirmationNo   string         `json:"confirmationNo,omitempty" example:"84921733"`
	MembershipTier   MembershipTier `json:"membershipTier" example:"Gold"`
	ProblemArea      string         `json:"problemArea" example:"Housekeeping"`
	ComplaintDetails string         `json:"complaintDetails,omitempty"`
	ActionTaken      string         `json:"actionTaken,omitempty"`
	FDStaff          string         `json:"fdStaff,omitempty" example:"Maria"`
	FollowUpRequired bool           `json:"followUpRequired"`
	FollowUpDate     *time.Time     `json:"followUpDate,omitempty"`
	FollowUpStaff    string         `json:"followUpStaff,omitempty"`
	FollowUpComments string         `json:"followUpComments,omitempty"`
}
