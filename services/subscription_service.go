package services

import (
	"errors"

	"vtube/models"
	"vtube/utils"

	"gorm.io/gorm"
)

// SubscriptionService 订阅服务层
// 维护订阅边表和频道用户上的订阅者计数
type SubscriptionService struct{}

// ChannelView 频道响应结构（带当前观众的订阅状态）
type ChannelView struct {
	ID                 uint   `json:"id"`
	Username           string `json:"username"`
	Email              string `json:"email"`
	Avatar             string `json:"avatar"`
	Cover              string `json:"cover"`
	ChannelDescription string `json:"channelDescription"`
	SubscribersCount   int64  `json:"subscribersCount"`
	IsSubscribed       bool   `json:"isSubscribed"`
}

// SubscriptionItem 订阅列表项
type SubscriptionItem struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Avatar   string `json:"avatar"`
}

// newChannelView 组装频道视图
func newChannelView(user *models.User, isSubscribed bool) *ChannelView {
	return &ChannelView{
		ID:                 user.ID,
		Username:           user.Username,
		Email:              user.Email,
		Avatar:             user.Avatar,
		Cover:              user.Cover,
		ChannelDescription: user.ChannelDescription,
		SubscribersCount:   user.SubscribersCount,
		IsSubscribed:       isSubscribed,
	}
}

// Subscribe 订阅频道
// 1. 用户不能订阅自己
// 2. 已订阅时幂等返回当前频道信息
// 3. 新订阅创建边记录后按边的真实数量重算订阅者计数
func (s *SubscriptionService) Subscribe(userID, channelID uint) (*ChannelView, error) {
	if userID == channelID {
		return nil, ErrSelfSubscribe
	}

	// 检查频道是否存在
	if _, err := utils.GetUserByID(channelID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if !utils.IsSubscribed(userID, channelID) {
		sub := &models.Subscription{
			UserID:    userID,
			ChannelID: channelID,
		}
		// 并发下重复订阅由边表的复合主键挡住，冲突时按已订阅处理
		if err := utils.CreateSubscription(sub); err != nil && !errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, err
		}

		// 订阅者计数始终从边表重算，不做增量加减
		if err := utils.RefreshSubscribersCount(channelID); err != nil {
			return nil, err
		}
	}

	// 返回刷新后的频道信息
	channel, err := utils.GetUserByID(channelID)
	if err != nil {
		return nil, err
	}
	return newChannelView(channel, true), nil
}

// Unsubscribe 取消订阅
// 边记录存在时删除并重算计数，不存在时幂等返回当前频道信息
func (s *SubscriptionService) Unsubscribe(userID, channelID uint) (*ChannelView, error) {
	if userID == channelID {
		return nil, ErrSelfSubscribe
	}

	// 检查频道是否存在
	if _, err := utils.GetUserByID(channelID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if utils.IsSubscribed(userID, channelID) {
		if err := utils.DeleteSubscription(userID, channelID); err != nil {
			return nil, err
		}
		if err := utils.RefreshSubscribersCount(channelID); err != nil {
			return nil, err
		}
	}

	channel, err := utils.GetUserByID(channelID)
	if err != nil {
		return nil, err
	}
	return newChannelView(channel, false), nil
}

// GetChannel 获取频道资料
// viewerID 为0表示匿名访问，此时订阅状态恒为 false
func (s *SubscriptionService) GetChannel(viewerID, channelID uint) (*ChannelView, error) {
	channel, err := utils.GetUserByID(channelID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	isSubscribed := false
	if viewerID != 0 {
		isSubscribed = utils.IsSubscribed(viewerID, channelID)
	}

	return newChannelView(channel, isSubscribed), nil
}

// GetSubscriptions 获取某个用户订阅的频道列表
func (s *SubscriptionService) GetSubscriptions(userID uint) ([]SubscriptionItem, error) {
	channels, err := utils.GetSubscribedChannels(userID)
	if err != nil {
		return nil, err
	}

	items := make([]SubscriptionItem, 0, len(channels))
	for _, ch := range channels {
		items = append(items, SubscriptionItem{
			ID:       ch.ID,
			Username: ch.Username,
			Avatar:   ch.Avatar,
		})
	}
	return items, nil
}
