package mailbox

import (
	"context"
	"github.com/martiny880/ooo-dashboard/internal/domain"
	"sync"
)

var _ mailAPI = &mailAPIMock{}

type mailAPIMock struct {
	CreateMessageRuleFunc      func(ctx context.Context, accessToken string, rule domain.MessageRule) error
	DeleteMessageRuleFunc      func(ctx context.Context, accessToken string, ruleID string) error
	GetAutomaticRepliesFunc    func(ctx context.Context, accessToken string) (domain.OofSettings, error)
	ListMessageRulesFunc       func(ctx context.Context, accessToken string) ([]domain.MessageRule, error)
	SearchUsersFunc            func(ctx context.Context, accessToken string, query string) ([]domain.DirectoryUser, error)
	UpdateAutomaticRepliesFunc func(ctx context.Context, accessToken string, intent domain.OofIntent) error

	calls struct {
		CreateMessageRule []struct {
			Ctx         context.Context
			AccessToken string
			Rule        domain.MessageRule
		}
		DeleteMessageRule []struct {
			Ctx         context.Context
			AccessToken string
			RuleID      string
		}
		GetAutomaticReplies []struct {
			Ctx         context.Context
			AccessToken string
		}
		ListMessageRules []struct {
			Ctx         context.Context
			AccessToken string
		}
		SearchUsers []struct {
			Ctx         context.Context
			AccessToken string
			Query       string
		}
		UpdateAutomaticReplies []struct {
			Ctx         context.Context
			AccessToken string
			Intent      domain.OofIntent
		}
	}
	lockCreateMessageRule      sync.RWMutex
	lockDeleteMessageRule      sync.RWMutex
	lockGetAutomaticReplies    sync.RWMutex
	lockListMessageRules       sync.RWMutex
	lockSearchUsers            sync.RWMutex
	lockUpdateAutomaticReplies sync.RWMutex
}

func (mock *mailAPIMock) CreateMessageRule(ctx context.Context, accessToken string, rule domain.MessageRule) error {
	if mock.CreateMessageRuleFunc == nil {
		panic("mailAPIMock.CreateMessageRuleFunc: method is nil but mailAPI.CreateMessageRule was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		AccessToken string
		Rule        domain.MessageRule
	}{Ctx: ctx, AccessToken: accessToken, Rule: rule}
	mock.lockCreateMessageRule.Lock()
	mock.calls.CreateMessageRule = append(mock.calls.CreateMessageRule, callInfo)
	mock.lockCreateMessageRule.Unlock()
	return mock.CreateMessageRuleFunc(ctx, accessToken, rule)
}

func (mock *mailAPIMock) CreateMessageRuleCalls() []struct {
	Ctx         context.Context
	AccessToken string
	Rule        domain.MessageRule
} {
	mock.lockCreateMessageRule.RLock()
	calls := mock.calls.CreateMessageRule
	mock.lockCreateMessageRule.RUnlock()
	return calls
}

func (mock *mailAPIMock) DeleteMessageRule(ctx context.Context, accessToken string, ruleID string) error {
	if mock.DeleteMessageRuleFunc == nil {
		panic("mailAPIMock.DeleteMessageRuleFunc: method is nil but mailAPI.DeleteMessageRule was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		AccessToken string
		RuleID      string
	}{Ctx: ctx, AccessToken: accessToken, RuleID: ruleID}
	mock.lockDeleteMessageRule.Lock()
	mock.calls.DeleteMessageRule = append(mock.calls.DeleteMessageRule, callInfo)
	mock.lockDeleteMessageRule.Unlock()
	return mock.DeleteMessageRuleFunc(ctx, accessToken, ruleID)
}

func (mock *mailAPIMock) DeleteMessageRuleCalls() []struct {
	Ctx         context.Context
	AccessToken string
	RuleID      string
} {
	mock.lockDeleteMessageRule.RLock()
	calls := mock.calls.DeleteMessageRule
	mock.lockDeleteMessageRule.RUnlock()
	return calls
}

func (mock *mailAPIMock) GetAutomaticReplies(ctx context.Context, accessToken string) (domain.OofSettings, error) {
	if mock.GetAutomaticRepliesFunc == nil {
		panic("mailAPIMock.GetAutomaticRepliesFunc: method is nil but mailAPI.GetAutomaticReplies was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		AccessToken string
	}{Ctx: ctx, AccessToken: accessToken}
	mock.lockGetAutomaticReplies.Lock()
	mock.calls.GetAutomaticReplies = append(mock.calls.GetAutomaticReplies, callInfo)
	mock.lockGetAutomaticReplies.Unlock()
	return mock.GetAutomaticRepliesFunc(ctx, accessToken)
}

func (mock *mailAPIMock) GetAutomaticRepliesCalls() []struct {
	Ctx         context.Context
	AccessToken string
} {
	mock.lockGetAutomaticReplies.RLock()
	calls := mock.calls.GetAutomaticReplies
	mock.lockGetAutomaticReplies.RUnlock()
	return calls
}

func (mock *mailAPIMock) ListMessageRules(ctx context.Context, accessToken string) ([]domain.MessageRule, error) {
	if mock.ListMessageRulesFunc == nil {
		panic("mailAPIMock.ListMessageRulesFunc: method is nil but mailAPI.ListMessageRules was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		AccessToken string
	}{Ctx: ctx, AccessToken: accessToken}
	mock.lockListMessageRules.Lock()
	mock.calls.ListMessageRules = append(mock.calls.ListMessageRules, callInfo)
	mock.lockListMessageRules.Unlock()
	return mock.ListMessageRulesFunc(ctx, accessToken)
}

func (mock *mailAPIMock) ListMessageRulesCalls() []struct {
	Ctx         context.Context
	AccessToken string
} {
	mock.lockListMessageRules.RLock()
	calls := mock.calls.ListMessageRules
	mock.lockListMessageRules.RUnlock()
	return calls
}

func (mock *mailAPIMock) SearchUsers(ctx context.Context, accessToken string, query string) ([]domain.DirectoryUser, error) {
	if mock.SearchUsersFunc == nil {
		panic("mailAPIMock.SearchUsersFunc: method is nil but mailAPI.SearchUsers was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		AccessToken string
		Query       string
	}{Ctx: ctx, AccessToken: accessToken, Query: query}
	mock.lockSearchUsers.Lock()
	mock.calls.SearchUsers = append(mock.calls.SearchUsers, callInfo)
	mock.lockSearchUsers.Unlock()
	return mock.SearchUsersFunc(ctx, accessToken, query)
}

func (mock *mailAPIMock) SearchUsersCalls() []struct {
	Ctx         context.Context
	AccessToken string
	Query       string
} {
	mock.lockSearchUsers.RLock()
	calls := mock.calls.SearchUsers
	mock.lockSearchUsers.RUnlock()
	return calls
}

func (mock *mailAPIMock) UpdateAutomaticReplies(ctx context.Context, accessToken string, intent domain.OofIntent) error {
	if mock.UpdateAutomaticRepliesFunc == nil {
		panic("mailAPIMock.UpdateAutomaticRepliesFunc: method is nil but mailAPI.UpdateAutomaticReplies was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		AccessToken string
		Intent      domain.OofIntent
	}{Ctx: ctx, AccessToken: accessToken, Intent: intent}
	mock.lockUpdateAutomaticReplies.Lock()
	mock.calls.UpdateAutomaticReplies = append(mock.calls.UpdateAutomaticReplies, callInfo)
	mock.lockUpdateAutomaticReplies.Unlock()
	return mock.UpdateAutomaticRepliesFunc(ctx, accessToken, intent)
}

func (mock *mailAPIMock) UpdateAutomaticRepliesCalls() []struct {
	Ctx         context.Context
	AccessToken string
	Intent      domain.OofIntent
} {
	mock.lockUpdateAutomaticReplies.RLock()
	calls := mock.calls.UpdateAutomaticReplies
	mock.lockUpdateAutomaticReplies.RUnlock()
	return calls
}
