package service

import (
	"context"
	"errors"
	"strings"

	"connectrpc.com/connect"
	"github.com/pfdash/backend/internal/auth"
	"github.com/pfdash/backend/internal/rpc"
)

// RegisterPushToken stores the FCM web push token notifications are sent
// to.
func (s *FinanceService) RegisterPushToken(ctx context.Context, req *connect.Request[rpc.RegisterPushTokenRequest]) (*connect.Response[rpc.RegisterPushTokenResponse], error) {
	claims, err := auth.RequireUserAccess(ctx, req.Msg.UserID)
	if err != nil {
		return nil, err
	}

	token := strings.TrimSpace(req.Msg.Token)
	if token == "" {
		return nil, invalidArgument(errors.New("token is required"))
	}

	prefs, err := s.store.GetPreferences(ctx, claims.UID)
	if err != nil {
		return nil, storeError("get preferences", err)
	}
	prefs.PushToken = token

	if err := s.store.UpdatePreferences(ctx, prefs); err != nil {
		return nil, storeError("update preferences", err)
	}

	s.log.Info().Str("user_id", claims.UID).Msg("registered push token")
	return connect.NewResponse(&rpc.RegisterPushTokenResponse{}), nil
}

func (s *FinanceService) ListNotifications(ctx context.Context, req *connect.Request[rpc.ListNotificationsRequest]) (*connect.Response[rpc.ListNotificationsResponse], error) {
	claims, err := auth.RequireUserAccess(ctx, req.Msg.UserID)
	if err != nil {
		return nil, err
	}

	notifications, next, err := s.store.ListNotifications(ctx, claims.UID, req.Msg.UnreadOnly,
		auth.NormalizePageSize(req.Msg.PageSize), req.Msg.PageToken)
	if err != nil {
		return nil, storeError("list notifications", err)
	}

	return connect.NewResponse(&rpc.ListNotificationsResponse{
		Notifications: notifications,
		NextPageToken: next,
	}), nil
}

func (s *FinanceService) MarkNotificationRead(ctx context.Context, req *connect.Request[rpc.MarkNotificationReadRequest]) (*connect.Response[rpc.MarkNotificationReadResponse], error) {
	claims, err := auth.RequireUserAccess(ctx, req.Msg.UserID)
	if err != nil {
		return nil, err
	}
	if err := requireID(req.Msg.ID, "notification id"); err != nil {
		return nil, err
	}

	if err := s.store.MarkNotificationRead(ctx, claims.UID, req.Msg.ID); err != nil {
		return nil, storeError("mark notification read", err)
	}
	return connect.NewResponse(&rpc.MarkNotificationReadResponse{}), nil
}
