/*
 * @module api/controllers/response
 * @description 统一API响应结构及构造函数
 * @architecture MVC架构 - 控制器层
 * @documentReference dev_docs/backend_requirements.md
 * @stateFlow 无状态HTTP请求处理
 * @rules 所有JSON接口使用统一响应信封，状态码0表示成功
 * @dependencies net/http
 */

package controllers

import "net/http"

// APIResponse 统一API响应结构
type APIResponse struct {
	Status int         `json:"status" example:"0"`
	Msg    string      `json:"msg" example:"操作成功"`
	Data   interface{} `json:"data,omitempty"`
}

// SuccessResponse 成功响应
func SuccessResponse(msg string, data interface{}) *APIResponse {
	return &APIResponse{Status: 0, Msg: msg, Data: data}
}

// BadRequestResponse 请求参数错误响应
func BadRequestResponse(msg string, data interface{}) *APIResponse {
	return &APIResponse{Status: http.StatusBadRequest, Msg: msg, Data: data}
}

// NotFoundResponse 资源不存在响应
func NotFoundResponse(msg string, data interface{}) *APIResponse {
	return &APIResponse{Status: http.StatusNotFound, Msg: msg, Data: data}
}

// InternalErrorResponse 服务内部错误响应
func InternalErrorResponse(msg string, data interface{}) *APIResponse {
	return &APIResponse{Status: http.StatusInternalServerError, Msg: msg, Data: data}
}
