/*
 * @module service/report/normalizer
 * @description 记录规范化器，把异构单元格值的原始行映射为强类型投诉记录，行级错误累积返回
 * @architecture 转换器模式 - 解析边界一次性完成类型收敛，下游逻辑全部强类型
 * @documentReference dev_docs/backend_requirements.md
 * @stateFlow 列标题解析 -> 必需列校验 -> 逐行字段提取与类型转换 -> 记录/错误输出
 * @rules 必需列缺失整批中止；行级错误不中止批处理；输出保持输入行序
 * @dependencies github.com/spf13/cast, golang.org/x/text/cases
 * @refs service/models/complaint.go, service/excel/parser.go
 */

package report

import (
	"strings"
	"time"

	"recovery-report-service/service/models"

	"github.com/spf13/cast"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// 规范字段名，别名配置和错误报告都以此为键
const (
	FieldDate             = "Date"
	FieldTime             = "Time"
	FieldGuestName        = "Guest Name"
	FieldRoom             = "Room"
	FieldConfirmationNo   = "Confirmation No"
	FieldMembershipTier   = "Membership Tier"
	FieldProblemArea      = "Problem Area"
	FieldComplaintDetails = "Complaint Details"
	FieldActionTaken      = "Action Taken"
	FieldFDStaff          = "FD Staff"
	FieldFollowUpRequired = "Follow-Up Required"
	FieldFollowUpDate     = "Follow-Up Date"
	FieldFollowUpStaff    = "Follow-Up Staff"
	FieldFollowUpComments = "Follow-Up Comments"
)

// requiredFields 必需字段，对应列标题完全缺失时整批解析中止
var requiredFields = []string{
	FieldDate,
	FieldTime,
	FieldGuestName,
	FieldRoom,
	FieldProblemArea,
}

// FieldAliases 规范字段名到可接受列标题别名的映射
type FieldAliases map[string][]string

// DefaultFieldAliases 返回HIEX导出模板及通用驼峰命名的默认别名配置
func DefaultFieldAliases() FieldAliases {
	return FieldAliases{
		FieldDate:             {"Date", "date", "DateTime", "dateTime"},
		FieldTime:             {"Time", "time"},
		FieldGuestName:        {"Guest Name", "guestName", "Guest Name (First Name Last Name)", "Guest Name\n(First Name Last Name)"},
		FieldRoom:             {"Room", "room"},
		FieldConfirmationNo:   {"Confirmation no", "Confirmation No", "confirmationNo"},
		FieldMembershipTier:   {"Membership Tier", "membershipTier"},
		FieldProblemArea:      {"Problem Area", "problemArea", "Problem area"},
		FieldComplaintDetails: {"Complaint Details", "complaintDetails"},
		FieldActionTaken:      {"Action Taken", "actionTaken"},
		FieldFDStaff:          {"FD Staff", "fdStaff", "FD Staff "},
		FieldFollowUpRequired: {"Follow-Up-Required", "followUpRequired", "Follow-Up Required"},
		FieldFollowUpDate:     {"Follow-Up Date", "followUpDate", "Follow Up Date"},
		FieldFollowUpStaff:    {"Follow up Staff", "followUpStaff", "Follow-up Staff"},
		FieldFollowUpComments: {"Follow Up Comments", "followUpComments"},
	}
}

// dateLayouts 字符串日期的候选格式，按顺序尝试，首个解析成功者生效
var dateLayouts = []string{
	"2006-01-02",
	"01/02/2006",
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
}

// excelEpoch Excel序列日期纪元，序列值1对应1900-01-01
var excelEpoch = time.Date(1900, 1, 1, 0, 0, 0, 0, time.UTC)

// Normalizer 记录规范化器
type Normalizer struct {
	aliases    FieldAliases
	titleCaser cases.Caser
}

// NewNormalizer 创建记录规范化器，aliases 为 nil 时使用默认别名配置
func NewNormalizer(aliases FieldAliases) *Normalizer {
	if aliases == nil {
		aliases = DefaultFieldAliases()
	}
	return &Normalizer{
		aliases:    aliases,
		titleCaser: cases.Title(language.English),
	}
}

// Normalize 把原始行批量规范化为投诉记录
// 返回值保持输入行序；行级错误累积在第二个返回值中，行号从1起计
// 必需列标题在整个输入中缺失时返回 ConfigurationError 并中止
func (n *Normalizer) Normalize(rows []models.RawRow) ([]models.Complaint, []models.RowError, error) {
	if len(rows) == 0 {
		return []models.Complaint{}, []models.RowError{}, nil
	}

	resolved, err := n.resolveHeaders(rows)
	if err != nil {
		return nil, nil, err
	}

	complaints := make([]models.Complaint, 0, len(rows))
	rowErrors := make([]models.RowError, 0)

	for i, row := range rows {
		rowIndex := i + 1
		complaint, rowErr := n.normalizeRow(row, resolved, rowIndex)
		if rowErr != nil {
			rowErrors = append(rowErrors, *rowErr)
			continue
		}
		complaints = append(complaints, *complaint)
	}

	return complaints, rowErrors, nil
}

// resolveHeaders 在全部输入行的列标题并集上解析别名，返回字段到实际列名列表的映射
func (n *Normalizer) resolveHeaders(rows []models.RawRow) (map[string][]string, error) {
	// 标题匹配大小写不敏感，且容忍换行和多余空白
	headerKeys := make(map[string]string)
	for _, row := range rows {
		for key := range row {
			normalized := normalizeHeader(key)
			if _, exists := headerKeys[normalized]; !exists {
				headerKeys[normalized] = key
			}
		}
	}

	resolved := make(map[string][]string, len(n.aliases))
	for field, aliases := range n.aliases {
		for _, alias := range aliases {
			if actual, ok := headerKeys[normalizeHeader(alias)]; ok {
				resolved[field] = append(resolved[field], actual)
			}
		}
	}

	for _, field := range requiredFields {
		if len(resolved[field]) == 0 {
			return nil, &models.ConfigurationError{Field: field, Aliases: n.aliases[field]}
		}
	}

	return resolved, nil
}

// normalizeRow 规范化单行，失败时返回带原因代码的行级错误
func (n *Normalizer) normalizeRow(row models.RawRow, resolved map[string][]string, rowIndex int) (*models.Complaint, *models.RowError) {
	date, ok := parseDate(lookupValue(row, resolved[FieldDate]))
	if !ok {
		return nil, &models.RowError{RowIndex: rowIndex, Reason: models.ReasonInvalidDate, Field: FieldDate}
	}

	timeOfDay := stringValue(row, resolved[FieldTime])
	guestName := stringValue(row, resolved[FieldGuestName])
	room := stringValue(row, resolved[FieldRoom])
	problemArea := stringValue(row, resolved[FieldProblemArea])

	for _, check := range []struct {
		field string
		value string
	}{
		{FieldTime, timeOfDay},
		{FieldGuestName, guestName},
		{FieldRoom, room},
		{FieldProblemArea, problemArea},
	} {
		if check.value == "" {
			return nil, &models.RowError{RowIndex: rowIndex, Reason: models.ReasonMissingRequiredField, Field: check.field}
		}
	}

	followUpRequired, ok := parseBool(lookupValue(row, resolved[FieldFollowUpRequired]))
	if !ok {
		return nil, &models.RowError{RowIndex: rowIndex, Reason: models.ReasonInvalidBoolean, Field: FieldFollowUpRequired}
	}

	var followUpDate *time.Time
	if raw := lookupValue(row, resolved[FieldFollowUpDate]); raw != nil && strings.TrimSpace(cast.ToString(raw)) != "" {
		parsed, ok := parseDate(raw)
		if !ok {
			return nil, &models.RowError{RowIndex: rowIndex, Reason: models.ReasonInvalidDate, Field: FieldFollowUpDate}
		}
		followUpDate = &parsed
	}

	return &models.Complaint{
		Date:             date,
		Time:             timeOfDay,
		GuestName:        guestName,
		Room:             room,
		ConfirmationNo:   stringValue(row, resolved[FieldConfirmationNo]),
		MembershipTier:   n.parseTier(stringValue(row, resolved[FieldMembershipTier])),
		ProblemArea:      problemArea,
		ComplaintDetails: stringValue(row, resolved[FieldComplaintDetails]),
		ActionTaken:      stringValue(row, resolved[FieldActionTaken]),
		FDStaff:          stringValue(row, resolved[FieldFDStaff]),
		FollowUpRequired: followUpRequired,
		FollowUpDate:     followUpDate,
		FollowUpStaff:    stringValue(row, resolved[FieldFollowUpStaff]),
		FollowUpComments: stringValue(row, resolved[FieldFollowUpComments]),
	}, nil
}

// parseTier 解析会员等级，空白或未知输入一律归入 Non-Member
func (n *Normalizer) parseTier(value string) models.MembershipTier {
	value = strings.TrimSpace(value)
	if value == "" {
		return models.TierNonMember
	}

	tier := models.MembershipTier(n.titleCaser.String(strings.ToLower(value)))
	if tier.IsValid() {
		return tier
	}
	return models.TierNonMember
}

// normalizeHeader 列标题归一化：换行符转空格、空白折叠、转小写
func normalizeHeader(header string) string {
	replacer := strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")
	return strings.ToLower(strings.Join(strings.Fields(replacer.Replace(header)), " "))
}

// lookupValue 按别名优先级取首个非nil单元格值
func lookupValue(row models.RawRow, keys []string) interface{} {
	for _, key := range keys {
		if value, ok := row[key]; ok && value != nil {
			return value
		}
	}
	return nil
}

// stringValue 取值并收敛为去除首尾空白的字符串
func stringValue(row models.RawRow, keys []string) string {
	value := lookupValue(row, keys)
	if value == nil {
		return ""
	}
	return strings.TrimSpace(cast.ToString(value))
}

// parseDate 解析日期单元格：原生时间值、Excel序列数字、ISO或美式日期字符串
// 统一截断到日粒度（UTC零点），首个解析成功的表示生效
func parseDate(value interface{}) (time.Time, bool) {
	switch v := value.(type) {
	case nil:
		return time.Time{}, false
	case time.Time:
		return toDateOnly(v), true
	case float64, float32, int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		serial := cast.ToInt(v)
		if serial <= 0 {
			return time.Time{}, false
		}
		return excelEpoch.AddDate(0, 0, serial-1), true
	default:
		s := strings.TrimSpace(cast.ToString(value))
		if s == "" {
			return time.Time{}, false
		}
		for _, layout := range dateLayouts {
			if parsed, err := time.Parse(layout, s); err == nil {
				return toDateOnly(parsed), true
			}
		}
		return time.Time{}, false
	}
}

// parseBool 解析是/否型文本标志，缺失默认不需要跟进
func parseBool(value interface{}) (bool, bool) {
	if value == nil {
		return false, true
	}
	switch strings.ToLower(strings.TrimSpace(cast.ToString(value))) {
	case "yes", "y", "true", "1":
		return true, true
	case "no", "n", "false", "0", "":
		return false, true
	default:
		return false, false
	}
}

// toDateOnly 截断到日粒度，分类和过滤均忽略时分秒
func toDateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
