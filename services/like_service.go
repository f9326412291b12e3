package services

import (
	"errors"

	"vtube/models"
	"vtube/utils"

	"gorm.io/gorm"
)

// LikeService 点赞服务层
// 每对 (用户, 视频) 的状态只会是 无 / 喜欢 / 不喜欢 三者之一
type LikeService struct{}

// ReactionResponse 点赞/点踩响应：刷新后的视频加本次操作的结果标记
type ReactionResponse struct {
	Video      VideoView `json:"video"`
	IsLiked    bool      `json:"isLiked"`
	IsDisliked bool      `json:"isDisliked"`
}

// Like 点赞视频
// 状态转移：无 → 喜欢；喜欢 → 无（再点一次取消）；不喜欢 → 喜欢（原地翻转）
func (s *LikeService) Like(userID, videoID uint) (*ReactionResponse, error) {
	isLiked, err := s.react(userID, videoID, models.PolarityLike)
	if err != nil {
		return nil, err
	}

	video, err := utils.GetVideoByID(videoID)
	if err != nil {
		return nil, err
	}

	return &ReactionResponse{Video: newVideoView(video), IsLiked: isLiked}, nil
}

// Dislike 点踩视频
// 状态转移与 Like 对称
func (s *LikeService) Dislike(userID, videoID uint) (*ReactionResponse, error) {
	isDisliked, err := s.react(userID, videoID, models.PolarityDislike)
	if err != nil {
		return nil, err
	}

	video, err := utils.GetVideoByID(videoID)
	if err != nil {
		return nil, err
	}

	return &ReactionResponse{Video: newVideoView(video), IsDisliked: isDisliked}, nil
}

// react 执行一次点赞/点踩状态转移，返回操作后该极性是否生效
// 转移完成后点赞/点踩计数都从边表重算，而不是增量加减
func (s *LikeService) react(userID, videoID uint, polarity int8) (bool, error) {
	// 1. 检查视频是否存在
	if _, err := utils.GetVideoByID(videoID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, ErrVideoNotFound
		}
		return false, err
	}

	// 2. 查询当前状态并转移
	active := true
	record, err := utils.GetVideoLike(userID, videoID)
	switch {
	case err != nil && errors.Is(err, gorm.ErrRecordNotFound):
		// 无 → 当前极性
		like := &models.VideoLike{
			UserID:  userID,
			VideoID: videoID,
			Like:    polarity,
		}
		if err := utils.CreateVideoLike(like); err != nil {
			return false, err
		}
	case err != nil:
		return false, err
	case record.Like == polarity:
		// 同一极性再点一次 → 取消
		if err := utils.DeleteVideoLike(userID, videoID); err != nil {
			return false, err
		}
		active = false
	default:
		// 相反极性 → 原地翻转
		if err := utils.UpdateVideoLikePolarity(userID, videoID, polarity); err != nil {
			return false, err
		}
	}

	// 3. 从边表重算视频的点赞/点踩计数
	if err := utils.RefreshReactionCounts(videoID); err != nil {
		return false, err
	}

	return active, nil
}
