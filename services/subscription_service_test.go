package services

import (
	"errors"
	"testing"

	"vtube/utils"
)

// TestSubscribeSelf 测试用户不能订阅自己
func TestSubscribeSelf(t *testing.T) {
	setupTestDB(t)
	service := SubscriptionService{}

	alice := createTestUser(t, "alice", "a@x.com")

	if _, err := service.Subscribe(alice.ID, alice.ID); !errors.Is(err, ErrSelfSubscribe) {
		t.Errorf("期望错误 %v, 实际 %v", ErrSelfSubscribe, err)
	}
	if _, err := service.Unsubscribe(alice.ID, alice.ID); !errors.Is(err, ErrSelfSubscribe) {
		t.Errorf("期望错误 %v, 实际 %v", ErrSelfSubscribe, err)
	}
}

// TestSubscribeCounter 测试订阅者计数始终等于订阅边的数量
func TestSubscribeCounter(t *testing.T) {
	setupTestDB(t)
	service := SubscriptionService{}

	alice := createTestUser(t, "alice", "a@x.com")
	bob := createTestUser(t, "bob", "b@x.com")
	carol := createTestUser(t, "carol", "c@x.com")

	// B 订阅 A
	channel, err := service.Subscribe(bob.ID, alice.ID)
	if err != nil {
		t.Fatalf("订阅失败: %v", err)
	}
	if channel.SubscribersCount != 1 {
		t.Errorf("订阅者计数错误: got %d, want 1", channel.SubscribersCount)
	}
	if !channel.IsSubscribed {
		t.Error("订阅后 isSubscribed 应该为 true")
	}

	// 重复订阅是幂等操作
	channel, err = service.Subscribe(bob.ID, alice.ID)
	if err != nil {
		t.Fatalf("重复订阅失败: %v", err)
	}
	if channel.SubscribersCount != 1 {
		t.Errorf("重复订阅后计数错误: got %d, want 1", channel.SubscribersCount)
	}

	// C 也订阅 A
	channel, err = service.Subscribe(carol.ID, alice.ID)
	if err != nil {
		t.Fatalf("订阅失败: %v", err)
	}
	if channel.SubscribersCount != 2 {
		t.Errorf("订阅者计数错误: got %d, want 2", channel.SubscribersCount)
	}

	// B 取消订阅
	channel, err = service.Unsubscribe(bob.ID, alice.ID)
	if err != nil {
		t.Fatalf("取消订阅失败: %v", err)
	}
	if channel.SubscribersCount != 1 {
		t.Errorf("取消订阅后计数错误: got %d, want 1", channel.SubscribersCount)
	}
	if channel.IsSubscribed {
		t.Error("取消订阅后 isSubscribed 应该为 false")
	}

	// 未订阅状态下取消订阅是空操作，计数不变
	channel, err = service.Unsubscribe(bob.ID, alice.ID)
	if err != nil {
		t.Fatalf("重复取消订阅失败: %v", err)
	}
	if channel.SubscribersCount != 1 {
		t.Errorf("重复取消订阅后计数错误: got %d, want 1", channel.SubscribersCount)
	}
}

// TestSubscribeMissingChannel 测试订阅不存在的频道
func TestSubscribeMissingChannel(t *testing.T) {
	setupTestDB(t)
	service := SubscriptionService{}

	alice := createTestUser(t, "alice", "a@x.com")

	if _, err := service.Subscribe(alice.ID, 9999); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("期望错误 %v, 实际 %v", ErrUserNotFound, err)
	}
}

// TestGetChannel 测试频道资料的订阅状态标注
func TestGetChannel(t *testing.T) {
	setupTestDB(t)
	service := SubscriptionService{}

	alice := createTestUser(t, "alice", "a@x.com")
	bob := createTestUser(t, "bob", "b@x.com")

	if _, err := service.Subscribe(bob.ID, alice.ID); err != nil {
		t.Fatalf("订阅失败: %v", err)
	}

	// 订阅者视角
	channel, err := service.GetChannel(bob.ID, alice.ID)
	if err != nil {
		t.Fatalf("获取频道失败: %v", err)
	}
	if !channel.IsSubscribed {
		t.Error("订阅者视角 isSubscribed 应该为 true")
	}

	// 匿名视角
	channel, err = service.GetChannel(0, alice.ID)
	if err != nil {
		t.Fatalf("获取频道失败: %v", err)
	}
	if channel.IsSubscribed {
		t.Error("匿名视角 isSubscribed 应该为 false")
	}

	// 不存在的频道
	if _, err := service.GetChannel(0, 9999); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("期望错误 %v, 实际 %v", ErrUserNotFound, err)
	}
}

// TestGetSubscriptions 测试订阅列表
func TestGetSubscriptions(t *testing.T) {
	setupTestDB(t)
	service := SubscriptionService{}

	alice := createTestUser(t, "alice", "a@x.com")
	bob := createTestUser(t, "bob", "b@x.com")
	carol := createTestUser(t, "carol", "c@x.com")

	if _, err := service.Subscribe(alice.ID, bob.ID); err != nil {
		t.Fatalf("订阅失败: %v", err)
	}
	if _, err := service.Subscribe(alice.ID, carol.ID); err != nil {
		t.Fatalf("订阅失败: %v", err)
	}

	items, err := service.GetSubscriptions(alice.ID)
	if err != nil {
		t.Fatalf("获取订阅列表失败: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("订阅列表长度错误: got %d, want 2", len(items))
	}

	names := map[string]bool{}
	for _, item := range items {
		names[item.Username] = true
	}
	if !names["bob"] || !names["carol"] {
		t.Errorf("订阅列表内容错误: %+v", items)
	}

	// 订阅边数量与频道计数一致
	if !utils.IsSubscribed(alice.ID, bob.ID) {
		t.Error("订阅边应该存在")
	}
}
