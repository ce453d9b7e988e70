/*
 * @module service/render/pdf
 * @description PDF生成器，通过无头浏览器把报告HTML打印为PDF字节流
 * @architecture 适配器 - chromedp驱动无头Chrome，临时HTML文件随生成周期释放
 * @documentReference dev_docs/backend_requirements.md
 * @stateFlow 写入临时HTML -> 导航渲染 -> PrintToPDF -> 清理临时文件
 * @rules 临时文件无论成败都删除；单次生成受超时约束
 * @dependencies github.com/chromedp/chromedp, github.com/chromedp/cdproto/page
 * @refs service/render/template.go
 */

package render

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// defaultPDFTimeout 单次PDF生成的超时上限
const defaultPDFTimeout = 60 * time.Second

// A4纸张尺寸（英寸）
const (
	paperWidthInches  = 8.27
	paperHeightInches = 11.69
)

// PDFGenerator 基于无头浏览器的PDF生成器
type PDFGenerator struct {
	timeout time.Duration
}

// NewPDFGenerator 创建PDF生成器
func NewPDFGenerator() *PDFGenerator {
	return &PDFGenerator{timeout: defaultPDFTimeout}
}

// Generate 把HTML文档打印为PDF字节流
func (g *PDFGenerator) Generate(ctx context.Context, html string) ([]byte, error) {
	tmp, err := os.CreateTemp("", "recovery-report-*.html")
	if err != nil {
		return nil, fmt.Errorf("创建临时HTML文件失败: %w", err)
	}
	tmpPath := tmp.Name()
	defer func() {
		if removeErr := os.Remove(tmpPath); removeErr != nil {
			slog.Warn("删除临时HTML文件失败", "path", tmpPath, "error", removeErr)
		}
	}()

	if _, err := tmp.WriteString(html); err != nil {
		tmp.Close()
		return nil, fmt.Errorf("写入临时HTML文件失败: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return nil, fmt.Errorf("关闭临时HTML文件失败: %w", err)
	}

	timeoutCtx, cancelTimeout := context.WithTimeout(ctx, g.timeout)
	defer cancelTimeout()

	browserCtx, cancelBrowser := chromedp.NewContext(timeoutCtx)
	defer cancelBrowser()

	var pdf []byte
	err = chromedp.Run(browserCtx,
		chromedp.Navigate("file://"+tmpPath),
		chromedp.WaitVisible("body", chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			buf, _, err := page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(paperWidthInches).
				WithPaperHeight(paperHeightInches).
				Do(ctx)
			if err != nil {
				return err
			}
			pdf = buf
			return nil
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("无头浏览器打印PDF失败: %w", err)
	}

	slog.Info("PDF生成完成", "bytes", len(pdf))
	return pdf, nil
}
