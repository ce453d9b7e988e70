/*
 * @module api/routes
 * @description API路由配置模块，负责初始化和配置所有HTTP路由
 * @architecture RESTful API架构
 * @documentReference dev_docs/backend_requirements.md
 * @stateFlow 无状态HTTP请求处理
 * @rules 遵循RESTful API设计规范，统一错误处理和响应格式
 * @dependencies github.com/go-chi/chi/v5, github.com/go-chi/cors, github.com/go-chi/render
 * @refs api/controllers
 */

package api

import (
	"recovery-report-service/api/controllers"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/render"
)

// InitRoute 初始化所有API路由
func InitRoute(r *chi.Mux) {
	// 基础中间件
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(render.SetContentType(render.ContentTypeJSON))

	// CORS配置
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// 健康检查
	healthController := controllers.NewHealthController()
	r.Get("/health", healthController.Health)
	r.Get("/ready", healthController.Ready)

	// 服务补救报告
	r.Route("/reports", func(r chi.Router) {
		reportController := controllers.NewReportController()

		// 上传Excel工作簿并解析投诉记录
		r.Post("/upload", reportController.Upload)

		// 预览报告装配结果
		r.Post("/preview", reportController.Preview)

		// 生成PDF报告
		r.Post("/generate", reportController.Generate)
	})

	// 元数据
	r.Route("/meta", func(r chi.Router) {
		metaController := controllers.NewMetaController()
		r.Get("/months", metaController.GetMonths)
		r.Get("/membership-tiers", metaController.GetMembershipTiers)
		r.Get("/statuses", metaController.GetStatuses)
	})
}
