/*
 * @module api/controllers/report_controller
 * @description 服务补救报告控制器，处理工作簿上传、报告预览与PDF生成
 * @architecture MVC架构 - 控制器层，核心逻辑委托报告服务
 * @documentReference dev_docs/backend_requirements.md
 * @stateFlow 上传解析 -> 客户端持有记录 -> 预览/生成时回传记录与日期区间
 * @rules 参考日期在请求入口取当前时间后注入核心，核心内部不读系统时钟
 * @dependencies github.com/go-chi/render, github.com/google/uuid
 * @refs service/report, service/excel, service/render
 */

package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"recovery-report-service/service"
	"recovery-report-service/service/models"
	"recovery-report-service/service/monitoring"
	"recovery-report-service/service/render"
	"recovery-report-service/service/report"

	chirender "github.com/go-chi/render"
	"github.com/google/uuid"
)

// maxUploadBytes 上传文件大小上限
const maxUploadBytes = 50 << 20

// allowedUploadExts 允许上传的文件扩展名
var allowedUploadExts = map[string]bool{
	".xlsx": true,
	".xls":  true,
}

// ReportController 服务补救报告控制器
type ReportController struct{}

// NewReportController 创建报告控制器实例
func NewReportController() *ReportController {
	return &ReportController{}
}

// UploadResponse 工作簿上传响应
type UploadResponse struct {
	UploadID   string             `json:"uploadId" example:"550e8400-e29b-41d4-a716-446655440000"`
	Count      int                `json:"count" example:"42"`
	Complaints []models.Complaint `json:"complaints"`
	Errors     []models.RowError  `json:"errors"`
}

// GenerateReportRequest 报告预览/生成请求
// 投诉记录由上传接口返回后在客户端持有，生成时原样回传
type GenerateReportRequest struct {
	Complaints []models.Complaint `json:"complaints"`
	StartDate  string             `json:"startDate" example:"2026-01-01"`
	EndDate    string             `json:"endDate" example:"2026-01-31"`
}

// Upload 上传Excel工作簿并解析投诉记录
// @Summary 上传投诉工作簿
// @Description 上传Excel工作簿，解析并规范化宾客投诉记录，行级错误随结果一并返回
// @Tags 报告
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Excel工作簿(.xlsx)"
// @Success 200 {object} APIResponse{data=UploadResponse}
// @Failure 400 {object} APIResponse
// @Router /reports/upload [post]
func (c *ReportController) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		chirender.Status(r, http.StatusBadRequest)
		chirender.JSON(w, r, BadRequestResponse(fmt.Sprintf("解析上传表单失败:%s", err.Error()), nil))
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		chirender.Status(r, http.StatusBadRequest)
		chirender.JSON(w, r, BadRequestResponse("缺少上传文件", nil))
		return
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !allowedUploadExts[ext] {
		chirender.Status(r, http.StatusBadRequest)
		chirender.JSON(w, r, BadRequestResponse("文件类型不支持，请上传Excel工作簿", nil))
		return
	}

	monitoring.UploadsTotal.Inc()

	rows, err := service.GlobalExcelParser.ParseReader(file)
	if err != nil {
		chirender.Status(r, http.StatusBadRequest)
		chirender.JSON(w, r, BadRequestResponse(err.Error(), nil))
		return
	}

	complaints, rowErrors, err := service.GlobalReportService.NormalizeRows(rows)
	if err != nil {
		// 必需列标题缺失属于配置级错误，整批中止
		chirender.Status(r, http.StatusBadRequest)
		chirender.JSON(w, r, BadRequestResponse(err.Error(), nil))
		return
	}

	chirender.JSON(w, r, SuccessResponse("上传解析成功", UploadResponse{
		UploadID:   uuid.New().String(),
		Count:      len(complaints),
		Complaints: complaints,
		Errors:     rowErrors,
	}))
}

// Preview 预览报告装配结果
// @Summary 预览报告
// @Description 按日期区间过滤投诉记录并返回完整的报告装配结果（JSON）
// @Tags 报告
// @Accept json
// @Produce json
// @Param request body GenerateReportRequest true "投诉记录与日期区间"
// @Success 200 {object} APIResponse{data=models.ReportResult}
// @Failure 400 {object} APIResponse
// @Router /reports/preview [post]
func (c *ReportController) Preview(w http.ResponseWriter, r *http.Request) {
	result, _, ok := c.assembleFromRequest(w, r)
	if !ok {
		return
	}

	monitoring.ReportsGeneratedTotal.WithLabelValues("json").Inc()
	chirender.JSON(w, r, SuccessResponse("报告装配成功", result))
}

// Generate 生成PDF报告
// @Summary 生成PDF报告
// @Description 按日期区间过滤投诉记录，渲染带样式的报告文档并以PDF附件返回
// @Tags 报告
// @Accept json
// @Produce application/pdf
// @Param request body GenerateReportRequest true "投诉记录与日期区间"
// @Success 200 {file} binary
// @Failure 400 {object} APIResponse
// @Failure 500 {object} APIResponse
// @Router /reports/generate [post]
func (c *ReportController) Generate(w http.ResponseWriter, r *http.Request) {
	result, dateRange, ok := c.assembleFromRequest(w, r)
	if !ok {
		return
	}
	if dateRange == nil {
		chirender.Status(r, http.StatusBadRequest)
		chirender.JSON(w, r, BadRequestResponse("生成PDF报告必须提供日期区间", nil))
		return
	}

	html, err := render.RenderHTML(result, dateRange.Start, dateRange.End)
	if err != nil {
		chirender.Status(r, http.StatusInternalServerError)
		chirender.JSON(w, r, InternalErrorResponse(err.Error(), nil))
		return
	}

	pdf, err := service.GlobalPDFGenerator.Generate(r.Context(), html)
	if err != nil {
		chirender.Status(r, http.StatusInternalServerError)
		chirender.JSON(w, r, InternalErrorResponse(err.Error(), nil))
		return
	}

	monitoring.ReportsGeneratedTotal.WithLabelValues("pdf").Inc()

	filename := fmt.Sprintf("Guest Service Recovery Report %s to %s.pdf",
		dateRange.Start.Format("01-02-2006"), dateRange.End.Format("01-02-2006"))
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	w.WriteHeader(http.StatusOK)
	w.Write(pdf)
}

// assembleFromRequest 解码请求并装配报告，失败时已写出错误响应
func (c *ReportController) assembleFromRequest(w http.ResponseWriter, r *http.Request) (*models.ReportResult, *report.DateRange, bool) {
	var req GenerateReportRequest
	if err := chirender.DecodeJSON(r.Body, &req); err != nil {
		chirender.Status(r, http.StatusBadRequest)
		chirender.JSON(w, r, BadRequestResponse(fmt.Sprintf("请求参数格式错误:%s", err.Error()), nil))
		return nil, nil, false
	}

	if len(req.Complaints) == 0 {
		chirender.Status(r, http.StatusBadRequest)
		chirender.JSON(w, r, BadRequestResponse("投诉记录不能为空", nil))
		return nil, nil, false
	}

	dateRange, err := parseDateRange(req.StartDate, req.EndDate)
	if err != nil {
		chirender.Status(r, http.StatusBadRequest)
		chirender.JSON(w, r, BadRequestResponse(err.Error(), nil))
		return nil, nil, false
	}

	result, err := service.GlobalReportService.Assemble(req.Complaints, nil, time.Now(), dateRange)
	if err != nil {
		var rangeErr *models.RangeError
		if errors.As(err, &rangeErr) {
			chirender.Status(r, http.StatusBadRequest)
			chirender.JSON(w, r, BadRequestResponse(err.Error(), nil))
			return nil, nil, false
		}
		chirender.Status(r, http.StatusInternalServerError)
		chirender.JSON(w, r, InternalErrorResponse(err.Error(), nil))
		return nil, nil, false
	}

	return result, dateRange, true
}

// parseDateRange 解析可选的起止日期对，必须成对提供
func parseDateRange(startDate, endDate string) (*report.DateRange, error) {
	if startDate == "" && endDate == "" {
		return nil, nil
	}
	if startDate == "" || endDate == "" {
		return nil, fmt.Errorf("起止日期必须成对提供")
	}

	start, err := parseDateParam(startDate)
	if err != nil {
		return nil, fmt.Errorf("起始日期格式错误: %s", startDate)
	}
	end, err := parseDateParam(endDate)
	if err != nil {
		return nil, fmt.Errorf("结束日期格式错误: %s", endDate)
	}

	return &report.DateRange{Start: start, End: end}, nil
}

// parseDateParam 解析日期参数，接受 2006-01-02 或 RFC3339
func parseDateParam(value string) (time.Time, error) {
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, fmt.Errorf("无法解析日期: %s", value)
}
