/*
 * @module service/render/template
 * @description 报告HTML模板渲染，把装配结果渲染为带样式的报告文档
 * @architecture 模板渲染 - html/template，渲染数据与样式内联，无外部静态资源
 * @documentReference dev_docs/backend_requirements.md
 * @stateFlow 装配结果 -> 模板数据构造 -> HTML输出
 * @rules 员工颜色按员工名哈希到固定浅色盘，同名恒定同色
 * @dependencies html/template
 * @refs service/render/pdf.go, service/models/report.go
 */

package render

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
	"time"

	"recovery-report-service/service/models"
)

// staffPalette 员工标色的浅色色盘，避免喧宾夺主
var staffPalette = []string{
	"#cce5ff", "#e6ccff", "#ffe6cc", "#ccffcc", "#ffcccc",
	"#ffffcc", "#ccffff", "#ffccff", "#e6f2ff", "#f0e6ff",
}

// reportData 模板渲染数据
type reportData struct {
	Result      *models.ReportResult
	PeriodLabel string
	GeneratedAt string
}

// PeriodLabel 生成报告期间标签，如 01/01/2026 to 01/31/2026
func PeriodLabel(start, end time.Time) string {
	return fmt.Sprintf("%s to %s", start.Format("01/02/2006"), end.Format("01/02/2006"))
}

// StaffColor 返回员工的标色，未指派时使用浅灰
func StaffColor(name string) string {
	if name == "" {
		return "#e8e8e8"
	}
	sum := 0
	for _, r := range strings.ToLower(name) {
		sum += int(r)
	}
	return staffPalette[sum%len(staffPalette)]
}

var reportTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"fmtDate": func(t time.Time) string {
		return t.Format("01/02/2006")
	},
	"fmtOptDate": func(t *time.Time) string {
		if t == nil {
			return "-"
		}
		return t.Format("01/02/2006")
	},
	"joinRooms": func(rooms []string) string {
		return strings.Join(rooms, ", ")
	},
	"staffColor": StaffColor,
	"lower": func(s models.CaseStatus) string {
		return strings.ToLower(string(s))
	},
}).Parse(reportHTML))

// RenderHTML 把报告装配结果渲染为完整HTML文档
func RenderHTML(result *models.ReportResult, start, end time.Time) (string, error) {
	data := reportData{
		Result:      result,
		PeriodLabel: PeriodLabel(start, end),
		GeneratedAt: time.Now().Format("01/02/2006 15:04"),
	}

	var buf bytes.Buffer
	if err := reportTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("渲染报告HTML失败: %w", err)
	}
	return buf.String(), nil
}

const reportHTML = `<!DOCTYPE html>
<html>
<head>
<meta charset="UTF-8">
<style>
* { margin: 0; padding: 0; box-sizing: border-box; }
body { font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif; color: #333; background-color: white; line-height: 1.3; font-size: 11px; }
.container { width: 100%; padding: 20px; background-color: white; }
.header { text-align: center; margin-bottom: 20px; border-bottom: 3px solid #0078d4; padding-bottom: 10px; }
.header h1 { font-size: 26px; color: #0078d4; margin-bottom: 2px; font-weight: bold; }
.header p { font-size: 13px; color: #666; }
.report-period { text-align: center; font-size: 11px; color: #666; margin-bottom: 20px; }
.metrics { display: grid; grid-template-columns: repeat(4, 1fr); gap: 12px; margin-bottom: 25px; }
.metric-card { background-color: #f5f5f5; border-left: 4px solid #0078d4; padding: 12px; }
.metric-card .value { font-size: 22px; font-weight: bold; color: #0078d4; }
.metric-card .label { font-size: 10px; color: #666; text-transform: uppercase; }
.metric-card.overdue { border-left-color: #d43f00; }
.metric-card.overdue .value { color: #d43f00; }
.section { margin-bottom: 25px; }
.section h2 { font-size: 15px; color: #0078d4; border-bottom: 1px solid #ddd; padding-bottom: 4px; margin-bottom: 8px; }
table { width: 100%; border-collapse: collapse; font-size: 10px; }
th { background-color: #0078d4; color: white; text-align: left; padding: 5px 8px; }
td { padding: 4px 8px; border-bottom: 1px solid #eee; vertical-align: top; }
tr:nth-child(even) td { background-color: #fafafa; }
.status-badge { display: inline-block; padding: 1px 8px; border-radius: 8px; font-size: 9px; font-weight: bold; }
.status-completed { background-color: #d4f5d4; color: #1a7a1a; }
.status-active { background-color: #fff3cd; color: #8a6d00; }
.status-overdue { background-color: #ffd6cc; color: #a32c00; }
.attention { color: #a32c00; font-weight: bold; }
.staff-chip { display: inline-block; padding: 1px 8px; border-radius: 8px; }
.footer { margin-top: 25px; text-align: center; font-size: 9px; color: #999; border-top: 1px solid #ddd; padding-top: 8px; }
</style>
</head>
<body>
<div class="container">
	<div class="header">
		<h1>Guest Service Recovery Report</h1>
		<p>Complaint Resolution &amp; Follow-Up Summary</p>
	</div>
	<div class="report-period">Report Period: {{.PeriodLabel}}</div>

	<div class="metrics">
		<div class="metric-card"><div class="value">{{.Result.Summary.Total}}</div><div class="label">Total Complaints</div></div>
		<div class="metric-card"><div class="value">{{.Result.Summary.Completed}}</div><div class="label">Completed ({{.Result.Summary.CompletedPercentage}}%)</div></div>
		<div class="metric-card"><div class="value">{{.Result.Summary.Active}}</div><div class="label">Active</div></div>
		<div class="metric-card overdue"><div class="value">{{.Result.Summary.Overdue}}</div><div class="label">Overdue</div></div>
	</div>

	<div class="section">
		<h2>Staff Performance</h2>
		<table>
			<tr><th>Staff</th><th>Cases Handled</th></tr>
			{{range .Result.StaffPerformance}}
			<tr><td><span class="staff-chip" style="background-color: {{staffColor .Name}}">{{.Name}}</span></td><td>{{.Count}}</td></tr>
			{{end}}
		</table>
	</div>

	<div class="section">
		<h2>Problem Area Breakdown</h2>
		<table>
			<tr><th>Problem Area</th><th>Count</th><th>Share</th><th>Rooms</th></tr>
			{{range .Result.ProblemAreas}}
			<tr><td>{{.Area}}</td><td>{{.Count}}</td><td>{{.Percentage}}%</td><td>{{joinRooms .Rooms}}</td></tr>
			{{end}}
		</table>
	</div>

	<div class="section">
		<h2>Membership Tier Breakdown</h2>
		<table>
			<tr><th>Tier</th><th>Complaints</th><th>Attention</th></tr>
			{{range .Result.TierBreakdown}}
			<tr><td>{{.Tier}}</td><td>{{.Count}}</td><td>{{if .NeedsAttention}}<span class="attention">Needs attention</span>{{else}}-{{end}}</td></tr>
			{{end}}
		</table>
	</div>

	<div class="section">
		<h2>Active &amp; Overdue Cases</h2>
		<table>
			<tr><th>Status</th><th>Date</th><th>Guest</th><th>Room</th><th>Problem Area</th><th>Follow-Up Date</th><th>Follow-Up Staff</th><th>Notes</th></tr>
			{{range .Result.ActiveOverdue}}
			<tr>
				<td><span class="status-badge status-{{lower .Status}}">{{.Status}}{{if .DaysOverdue}} ({{.DaysOverdue}}d){{end}}</span></td>
				<td>{{fmtDate .Complaint.Date}}</td>
				<td>{{.Complaint.GuestName}}</td>
				<td>{{.Complaint.Room}}</td>
				<td>{{.Complaint.ProblemArea}}</td>
				<td>{{fmtOptDate .Complaint.FollowUpDate}}</td>
				<td>{{if .Complaint.FollowUpStaff}}<span class="staff-chip" style="background-color: {{staffColor .Complaint.FollowUpStaff}}">{{.Complaint.FollowUpStaff}}</span>{{else}}-{{end}}</td>
				<td>{{.Note}}</td>
			</tr>
			{{end}}
		</table>
	</div>

	<div class="section">
		<h2>Complaint Log</h2>
		<table>
			<tr><th>Date</th><th>Time</th><th>Guest</th><th>Room</th><th>Tier</th><th>Problem Area</th><th>Details</th><th>Action Taken</th><th>FD Staff</th></tr>
			{{range .Result.Complaints}}
			<tr>
				<td>{{fmtDate .Date}}</td>
				<td>{{.Time}}</td>
				<td>{{.GuestName}}</td>
				<td>{{.Room}}</td>
				<td>{{.MembershipTier}}</td>
				<td>{{.ProblemArea}}</td>
				<td>{{.ComplaintDetails}}</td>
				<td>{{.ActionTaken}}</td>
				<td>{{if .FDStaff}}<span class="staff-chip" style="background-color: {{staffColor .FDStaff}}">{{.FDStaff}}</span>{{else}}-{{end}}</td>
			</tr>
			{{end}}
		</table>
	</div>

	<div class="footer">Generated {{.GeneratedAt}} &middot; Guest Service Recovery Report</div>
</div>
</body>
</html>`
