package services

import (
	"errors"
	"strings"
	"time"

	"vtube/models"
	"vtube/utils"

	"gorm.io/gorm"
)

// CommentService 视频评论服务层
type CommentService struct{}

// CommentRequest 视频评论请求参数（用于添加评论）
type CommentRequest struct {
	Content string `json:"content" binding:"required"` // 评论内容
}

// CommentAuthorView 评论作者信息
type CommentAuthorView struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Avatar   string `json:"avatar"`
}

// CommentView 评论响应结构
type CommentView struct {
	ID        uint              `json:"id"`
	Content   string            `json:"content"`
	VideoID   uint              `json:"videoId"`
	CreatedAt time.Time         `json:"createdAt"`
	User      CommentAuthorView `json:"user"`
}

// CommentListResponse 评论列表响应
type CommentListResponse struct {
	Comments      []CommentView `json:"comments"`
	CommentsCount int64         `json:"commentsCount"`
}

// newCommentView 组装评论视图
func newCommentView(comment *models.Comment, author *models.User) CommentView {
	view := CommentView{
		ID:        comment.ID,
		Content:   comment.Content,
		VideoID:   comment.VideoID,
		CreatedAt: comment.CreatedAt,
	}
	if author != nil {
		view.User = CommentAuthorView{
			ID:       author.ID,
			Username: author.Username,
			Avatar:   author.Avatar,
		}
	}
	return view
}

// AddComment 添加视频评论
// 评论入库后视频的评论计数从评论表重算
func (s *CommentService) AddComment(authorID, videoID uint, req CommentRequest) (*CommentView, error) {
	// 1. 检查视频是否存在
	if _, err := utils.GetVideoByID(videoID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVideoNotFound
		}
		return nil, err
	}

	// 2. 验证评论内容
	content := strings.TrimSpace(req.Content)
	if content == "" {
		return nil, errors.New("评论内容不能为空")
	}

	// 3. 创建评论对象
	comment := &models.Comment{
		Content: content,
		UserID:  authorID,
		VideoID: videoID,
	}
	if err := utils.CreateComment(comment); err != nil {
		return nil, err
	}

	// 4. 重算视频的评论计数
	if err := utils.RefreshCommentsCount(videoID); err != nil {
		return nil, err
	}

	// 5. 返回带作者信息的评论
	author, err := utils.GetUserByID(authorID)
	if err != nil {
		return nil, err
	}
	view := newCommentView(comment, author)
	return &view, nil
}

// GetComments 获取视频评论列表（分页）
func (s *CommentService) GetComments(videoID uint, pageNum, pageSize int) (*CommentListResponse, error) {
	// 检查视频是否存在
	if _, err := utils.GetVideoByID(videoID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVideoNotFound
		}
		return nil, err
	}

	pageNum, pageSize = normalizePage(pageNum, pageSize)

	comments, total, err := utils.GetCommentList(videoID, pageNum, pageSize)
	if err != nil {
		return nil, err
	}

	views := make([]CommentView, 0, len(comments))
	for i := range comments {
		views = append(views, newCommentView(&comments[i], &comments[i].User))
	}

	return &CommentListResponse{Comments: views, CommentsCount: total}, nil
}

// DeleteComment 删除评论
// 只有评论作者本人可以删除，删除后重算视频的评论计数
func (s *CommentService) DeleteComment(callerID, videoID, commentID uint) error {
	// 1. 检查视频是否存在
	if _, err := utils.GetVideoByID(videoID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrVideoNotFound
		}
		return err
	}

	// 2. 检查评论是否存在
	comment, err := utils.GetCommentByID(commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCommentNotFound
		}
		return err
	}

	// 3. 验证权限：只能删除自己的评论
	if comment.UserID != callerID {
		return ErrForbidden
	}

	// 4. 删除评论并重算计数
	if err := utils.DeleteComment(commentID); err != nil {
		return err
	}
	return utils.RefreshCommentsCount(videoID)
}
