package services

import "errors"

// 业务错误，控制器层据此映射HTTP状态码
var (
	ErrUserNotFound    = errors.New("用户不存在")    // 404
	ErrVideoNotFound   = errors.New("视频不存在")    // 404
	ErrCommentNotFound = errors.New("评论不存在")    // 404
	ErrForbidden       = errors.New("没有权限执行此操作") // 403
	ErrUsernameTaken   = errors.New("用户名已存在")   // 422
	ErrEmailTaken      = errors.New("邮箱已存在")    // 422
	ErrSelfSubscribe   = errors.New("用户不能订阅自己")  // 422
	ErrLoginNotFound   = errors.New("用户不存在")    // 422，登录时邮箱未注册
	ErrWrongPassword   = errors.New("密码不正确")    // 422
)

// 分页默认值
const (
	defaultPageNum  = 1
	defaultPageSize = 10
)

// normalizePage 将分页参数收敛为正整数，非法值回落到默认值
func normalizePage(pageNum, pageSize int) (int, int) {
	if pageNum < 1 {
		pageNum = defaultPageNum
	}
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	return pageNum, pageSize
}
