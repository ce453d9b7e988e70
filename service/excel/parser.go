/*
 * @module service/excel/parser
 * @description Excel工作簿解析器，从上传的xlsx字节流提取原始行数据，表头行位置可配置
 * @architecture 采集适配器 - 读取边界，输出列标题到单元格值的原始行映射
 * @documentReference dev_docs/backend_requirements.md
 * @stateFlow 打开工作簿 -> 定位表头行 -> 逐行构造RawRow -> 关闭句柄
 * @rules HIEX导出格式表头在第3行，数据从第4行开始；全空行跳过；句柄无论成败都释放
 * @dependencies github.com/xuri/excelize/v2
 * @refs service/report/normalizer.go
 */

package excel

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"recovery-report-service/service/models"

	"github.com/xuri/excelize/v2"
)

// DefaultHeaderRow HIEX导出格式的表头行号（1起计）
const DefaultHeaderRow = 3

// Parser Excel工作簿解析器
type Parser struct {
	headerRow int
}

// NewParser 创建解析器，headerRow 小于1时使用HIEX默认表头行
func NewParser(headerRow int) *Parser {
	if headerRow < 1 {
		headerRow = DefaultHeaderRow
	}
	return &Parser{headerRow: headerRow}
}

// ParseReader 从字节流解析工作簿的活动工作表，返回保持行序的原始行数据
func (p *Parser) ParseReader(r io.Reader) ([]models.RawRow, error) {
	workbook, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("打开Excel工作簿失败: %w", err)
	}
	defer func() {
		if closeErr := workbook.Close(); closeErr != nil {
			slog.Warn("关闭Excel工作簿失败", "error", closeErr)
		}
	}()

	sheet := workbook.GetSheetName(workbook.GetActiveSheetIndex())
	if sheet == "" {
		return nil, fmt.Errorf("工作簿中没有可用的工作表")
	}

	rows, err := workbook.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("读取工作表 %s 失败: %w", sheet, err)
	}

	if len(rows) < p.headerRow {
		return nil, fmt.Errorf("工作表 %s 行数不足，表头应位于第%d行", sheet, p.headerRow)
	}

	headers := rows[p.headerRow-1]
	rawRows := make([]models.RawRow, 0, len(rows)-p.headerRow)

	for _, cells := range rows[p.headerRow:] {
		row := make(models.RawRow, len(headers))
		empty := true
		for i, header := range headers {
			if strings.TrimSpace(header) == "" {
				continue
			}
			var value string
			if i < len(cells) {
				value = cells[i]
			}
			if strings.TrimSpace(value) != "" {
				empty = false
			}
			row[header] = value
		}
		if empty {
			continue
		}
		rawRows = append(rawRows, row)
	}

	slog.Info("Excel工作簿解析完成", "sheet", sheet, "rows", len(rawRows))
	return rawRows, nil
}
