package services

import (
	"errors"
	"time"

	"vtube/models"
	"vtube/utils"

	"gorm.io/gorm"
)

// VideoService 视频服务层
type VideoService struct{}

// CreateVideoRequest 发布视频请求结构
// 视频文件本身已经上传到点播服务，这里只登记元数据
type CreateVideoRequest struct {
	Title       string `json:"title" binding:"required"`       // 视频标题
	Description string `json:"description" binding:"required"` // 视频描述
	VodVideoID  string `json:"vodVideoId" binding:"required"`  // 点播服务中的视频ID
	Cover       string `json:"cover"`                          // 封面URL（可选）
}

// UpdateVideoRequest 更新视频请求结构，所有字段均可选
type UpdateVideoRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	VodVideoID  string `json:"vodVideoId"`
	Cover       string `json:"cover"`
}

// VideoOwnerView 视频作者信息
type VideoOwnerView struct {
	ID               uint   `json:"id"`
	Username         string `json:"username"`
	Avatar           string `json:"avatar"`
	SubscribersCount int64  `json:"subscribersCount"`
	IsSubscribed     bool   `json:"isSubscribed"`
}

// VideoView 视频响应结构
type VideoView struct {
	ID            uint           `json:"id"`
	Title         string         `json:"title"`
	Description   string         `json:"description"`
	VodVideoID    string         `json:"vodVideoId"`
	Cover         string         `json:"cover"`
	CommentsCount int64          `json:"commentsCount"`
	LikesCount    int64          `json:"likesCount"`
	DislikesCount int64          `json:"dislikesCount"`
	CreatedAt     time.Time      `json:"createdAt"`
	User          VideoOwnerView `json:"user"`
}

// VideoDetailView 视频详情响应结构（带当前观众的点赞状态）
type VideoDetailView struct {
	VideoView
	IsLiked    bool `json:"isLiked"`
	IsDisliked bool `json:"isDisliked"`
}

// VideoListResponse 视频列表响应
type VideoListResponse struct {
	Videos      []VideoView `json:"videos"`
	VideosCount int64       `json:"videosCount"`
}

// newVideoView 组装视频视图，作者信息单独查询
func newVideoView(video *models.Video) VideoView {
	view := VideoView{
		ID:            video.ID,
		Title:         video.Title,
		Description:   video.Description,
		VodVideoID:    video.VodVideoID,
		Cover:         video.Cover,
		CommentsCount: video.CommentsCount,
		LikesCount:    video.LikesCount,
		DislikesCount: video.DislikesCount,
		CreatedAt:     video.CreatedAt,
	}

	if owner, err := utils.GetUserByID(video.UserID); err == nil {
		view.User = VideoOwnerView{
			ID:               owner.ID,
			Username:         owner.Username,
			Avatar:           owner.Avatar,
			SubscribersCount: owner.SubscribersCount,
		}
	}

	return view
}

// newVideoViews 批量组装视频视图
func newVideoViews(videos []models.Video) []VideoView {
	views := make([]VideoView, 0, len(videos))
	for i := range videos {
		views = append(views, newVideoView(&videos[i]))
	}
	return views
}

// Create 发布视频
// 计数字段初始化为零
func (s *VideoService) Create(ownerID uint, req CreateVideoRequest) (*VideoView, error) {
	video := &models.Video{
		Title:       req.Title,
		Description: req.Description,
		VodVideoID:  req.VodVideoID,
		Cover:       req.Cover,
		UserID:      ownerID,
	}

	if err := utils.CreateVideo(video); err != nil {
		return nil, err
	}

	view := newVideoView(video)
	return &view, nil
}

// Get 获取视频详情
// viewerID 为0表示匿名访问，点赞/订阅标记恒为 false
func (s *VideoService) Get(videoID, viewerID uint) (*VideoDetailView, error) {
	video, err := utils.GetVideoByID(videoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVideoNotFound
		}
		return nil, err
	}

	detail := &VideoDetailView{VideoView: newVideoView(video)}

	// 按当前观众标注点赞和订阅状态
	if viewerID != 0 {
		if like, err := utils.GetVideoLike(viewerID, videoID); err == nil {
			detail.IsLiked = like.Like == models.PolarityLike
			detail.IsDisliked = like.Like == models.PolarityDislike
		}
		detail.User.IsSubscribed = utils.IsSubscribed(viewerID, video.UserID)
	}

	return detail, nil
}

// GetVideoList 获取视频列表（分页，最新发布在前）
func (s *VideoService) GetVideoList(pageNum, pageSize int) (*VideoListResponse, error) {
	pageNum, pageSize = normalizePage(pageNum, pageSize)

	videos, total, err := utils.GetVideoList(pageNum, pageSize)
	if err != nil {
		return nil, err
	}

	return &VideoListResponse{Videos: newVideoViews(videos), VideosCount: total}, nil
}

// GetUserVideoList 获取某个用户发布的视频列表
func (s *VideoService) GetUserVideoList(userID uint, pageNum, pageSize int) (*VideoListResponse, error) {
	pageNum, pageSize = normalizePage(pageNum, pageSize)

	videos, total, err := utils.GetUserVideoList(userID, pageNum, pageSize)
	if err != nil {
		return nil, err
	}

	return &VideoListResponse{Videos: newVideoViews(videos), VideosCount: total}, nil
}

// GetFeedVideoList 获取订阅流：当前用户订阅的所有频道发布的视频
func (s *VideoService) GetFeedVideoList(viewerID uint, pageNum, pageSize int) (*VideoListResponse, error) {
	pageNum, pageSize = normalizePage(pageNum, pageSize)

	channelIDs, err := utils.GetSubscribedChannelIDs(viewerID)
	if err != nil {
		return nil, err
	}

	videos, total, err := utils.GetFeedVideoList(channelIDs, pageNum, pageSize)
	if err != nil {
		return nil, err
	}

	return &VideoListResponse{Videos: newVideoViews(videos), VideosCount: total}, nil
}

// GetLikedVideoList 获取当前用户点赞过的视频列表（按点赞时间倒序）
func (s *VideoService) GetLikedVideoList(viewerID uint, pageNum, pageSize int) (*VideoListResponse, error) {
	pageNum, pageSize = normalizePage(pageNum, pageSize)

	ids, total, err := utils.GetUserLikedVideoIDs(viewerID, pageNum, pageSize)
	if err != nil {
		return nil, err
	}

	videos, err := utils.GetVideosByIDs(ids)
	if err != nil {
		return nil, err
	}

	// 批量查询不保证顺序，按点赞时间顺序重排
	byID := make(map[uint]*models.Video, len(videos))
	for i := range videos {
		byID[videos[i].ID] = &videos[i]
	}
	ordered := make([]models.Video, 0, len(ids))
	for _, id := range ids {
		if v, ok := byID[id]; ok {
			ordered = append(ordered, *v)
		}
	}

	return &VideoListResponse{Videos: newVideoViews(ordered), VideosCount: total}, nil
}

// Update 更新视频元数据
// 只有视频作者本人可以更新
func (s *VideoService) Update(videoID, callerID uint, req UpdateVideoRequest) (*VideoView, error) {
	video, err := utils.GetVideoByID(videoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVideoNotFound
		}
		return nil, err
	}

	if video.UserID != callerID {
		return nil, ErrForbidden
	}

	updates := map[string]interface{}{}
	if req.Title != "" {
		updates["title"] = req.Title
	}
	if req.Description != "" {
		updates["description"] = req.Description
	}
	if req.VodVideoID != "" {
		updates["vod_video_id"] = req.VodVideoID
	}
	if req.Cover != "" {
		updates["cover"] = req.Cover
	}

	if len(updates) > 0 {
		if err := utils.UpdateVideo(videoID, updates); err != nil {
			return nil, err
		}
	}

	video, err = utils.GetVideoByID(videoID)
	if err != nil {
		return nil, err
	}

	view := newVideoView(video)
	return &view, nil
}

// Delete 删除视频
// 只有视频作者本人可以删除；关联的评论和点赞记录不做级联删除
func (s *VideoService) Delete(videoID, callerID uint) error {
	video, err := utils.GetVideoByID(videoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrVideoNotFound
		}
		return err
	}

	if video.UserID != callerID {
		return ErrForbidden
	}

	return utils.DeleteVideo(videoID)
}
