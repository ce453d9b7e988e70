/*
 * @module testutil/test_helper
 * @description 测试工具和辅助函数，提供投诉记录数据工厂与HTTP测试辅助
 * @architecture 测试基础设施 - 提供测试通用工具和数据工厂
 * @documentReference dev_docs/test_plan.md
 * @stateFlow 测试数据创建 -> 测试执行 -> 断言
 * @rules 提供可重用的测试工具，确保测试数据的一致性
 * @dependencies testify, net/http/httptest
 * @refs service/models
 */

package testutil

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"recovery-report-service/service/models"

	"github.com/stretchr/testify/assert"
)

// MustDate 解析 2006-01-02 格式的日期，测试数据专用，解析失败直接panic
func MustDate(value string) time.Time {
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(fmt.Sprintf("invalid test date %q: %v", value, err))
	}
	return parsed
}

// MustDatePtr 同 MustDate，返回指针
func MustDatePtr(value string) *time.Time {
	parsed := MustDate(value)
	return &parsed
}

// ComplaintOption 投诉记录选项函数类型
type ComplaintOption func(*models.Complaint)

// NewComplaint 创建测试投诉记录，默认是一条不需要跟进的已完成投诉
func NewComplaint(opts ...ComplaintOption) models.Complaint {
	complaint := models.Complaint{
		Date:           MustDate("2026-01-15"),
		Time:           "14:30",
		GuestName:      "John Smith",
		Room:           "1204",
		ConfirmationNo: "84921733",
		MembershipTier: models.TierGold,
		ProblemArea:    "Housekeeping",
		FDStaff:        "Maria",
	}

	for _, opt := range opts {
		opt(&complaint)
	}

	return complaint
}

// WithDate 设置投诉日期
func WithDate(value string) ComplaintOption {
	return func(c *models.Complaint) {
		c.Date = MustDate(value)
	}
}

// WithRoom 设置房间号
func WithRoom(room string) ComplaintOption {
	return func(c *models.Complaint) {
		c.Room = room
	}
}

// WithProblemArea 设置问题领域
func WithProblemArea(area string) ComplaintOption {
	return func(c *models.Complaint) {
		c.ProblemArea = area
	}
}

// WithTier 设置会员等级
func WithTier(tier models.MembershipTier) ComplaintOption {
	return func(c *models.Complaint) {
		c.MembershipTier = tier
	}
}

// WithFDStaff 设置前台员工
func WithFDStaff(staff string) ComplaintOption {
	return func(c *models.Complaint) {
		c.FDStaff = staff
	}
}

// WithFollowUp 设置跟进字段，date为空字符串表示未设置跟进日期
func WithFollowUp(date, staff string) ComplaintOption {
	return func(c *models.Complaint) {
		c.FollowUpRequired = true
		c.FollowUpStaff = staff
		if date == "" {
			c.FollowUpDate = nil
		} else {
			c.FollowUpDate = MustDatePtr(date)
		}
	}
}

// NewRawRow 创建一条合法的原始行数据，HIEX导出格式列标题
func NewRawRow(overrides map[string]interface{}) models.RawRow {
	row := models.RawRow{
		"Date":               "2026-01-15",
		"Time":               "14:30",
		"Guest Name":         "John Smith",
		"Room":               "1204",
		"Confirmation no":    "84921733",
		"Membership Tier":    "Gold",
		"Problem Area":       "Housekeeping",
		"Complaint Details":  "Room not cleaned",
		"Action Taken":       "Sent housekeeping",
		"FD Staff":           "Maria",
		"Follow-Up-Required": "No",
	}

	for key, value := range overrides {
		row[key] = value
	}

	return row
}

// HTTPTestHelper HTTP测试辅助工具
type HTTPTestHelper struct{}

// NewHTTPTestHelper 创建HTTP测试辅助工具
func NewHTTPTestHelper() *HTTPTestHelper {
	return &HTTPTestHelper{}
}

// CreateJSONRequest 创建JSON请求
func (h *HTTPTestHelper) CreateJSONRequest(method, url string, body interface{}) (*http.Request, error) {
	var reqBody io.Reader

	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, url, reqBody)
	if err != nil {
		return nil, err
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return req, nil
}

// ExecuteRequest 执行请求并返回响应记录器
func (h *HTTPTestHelper) ExecuteRequest(handler http.Handler, req *http.Request) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, req)
	return recorder
}

// DecodeEnvelope 解码统一响应信封，返回status与data的原始JSON
func (h *HTTPTestHelper) DecodeEnvelope(t *testing.T, recorder *httptest.ResponseRecorder) (int, json.RawMessage) {
	var envelope struct {
		Status int             `json:"status"`
		Msg    string          `json:"msg"`
		Data   json.RawMessage `json:"data"`
	}
	err := json.Unmarshal(recorder.Body.Bytes(), &envelope)
	assert.NoError(t, err)
	return envelope.Status, envelope.Data
}
