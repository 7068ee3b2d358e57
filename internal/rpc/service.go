package rpc

import (
	"context"
	"net/http"
	"strings"

	"connectrpc.com/connect"
)

// FinanceServiceName is the fully-qualified name of the FinanceService service.
const FinanceServiceName = "pfdash.v1.FinanceService"

// These constants are the fully-qualified names of the RPCs defined in this
// package. They're exposed at runtime as Spec.Procedure and as the final two
// segments of the HTTP route.
const (
	CreateTransactionProcedure            = "/" + FinanceServiceName + "/CreateTransaction"
	GetTransactionProcedure               = "/" + FinanceServiceName + "/GetTransaction"
	UpdateTransactionProcedure            = "/" + FinanceServiceName + "/UpdateTransaction"
	DeleteTransactionProcedure            = "/" + FinanceServiceName + "/DeleteTransaction"
	RestoreTransactionProcedure           = "/" + FinanceServiceName + "/RestoreTransaction"
	ListTransactionsProcedure             = "/" + FinanceServiceName + "/ListTransactions"
	WatchTransactionsProcedure            = "/" + FinanceServiceName + "/WatchTransactions"
	PreviewNextOccurrenceProcedure        = "/" + FinanceServiceName + "/PreviewNextOccurrence"
	ProcessRecurringTransactionsProcedure = "/" + FinanceServiceName + "/ProcessRecurringTransactions"
	GetBudgetsProcedure                   = "/" + FinanceServiceName + "/GetBudgets"
	SaveBudgetsProcedure                  = "/" + FinanceServiceName + "/SaveBudgets"
	GetBudgetAlertsProcedure              = "/" + FinanceServiceName + "/GetBudgetAlerts"
	EvaluateBudgetAlertsProcedure         = "/" + FinanceServiceName + "/EvaluateBudgetAlerts"
	CreateGoalProcedure                   = "/" + FinanceServiceName + "/CreateGoal"
	ListGoalsProcedure                    = "/" + FinanceServiceName + "/ListGoals"
	UpdateGoalProcedure                   = "/" + FinanceServiceName + "/UpdateGoal"
	DeleteGoalProcedure                   = "/" + FinanceServiceName + "/DeleteGoal"
	GetPreferencesProcedure               = "/" + FinanceServiceName + "/GetPreferences"
	UpdatePreferencesProcedure            = "/" + FinanceServiceName + "/UpdatePreferences"
	RegisterPushTokenProcedure            = "/" + FinanceServiceName + "/RegisterPushToken"
	CreateHoldingProcedure                = "/" + FinanceServiceName + "/CreateHolding"
	ListHoldingsProcedure                 = "/" + FinanceServiceName + "/ListHoldings"
	UpdateHoldingProcedure                = "/" + FinanceServiceName + "/UpdateHolding"
	DeleteHoldingProcedure                = "/" + FinanceServiceName + "/DeleteHolding"
	GetExchangeRatesProcedure             = "/" + FinanceServiceName + "/GetExchangeRates"
	GetInsightsProcedure                  = "/" + FinanceServiceName + "/GetInsights"
	SearchTransactionsProcedure           = "/" + FinanceServiceName + "/SearchTransactions"
	ExportTransactionsProcedure           = "/" + FinanceServiceName + "/ExportTransactions"
	ImportStatementProcedure              = "/" + FinanceServiceName + "/ImportStatement"
	ListNotificationsProcedure            = "/" + FinanceServiceName + "/ListNotifications"
	MarkNotificationReadProcedure         = "/" + FinanceServiceName + "/MarkNotificationRead"
)

// SchedulerProcedures may be invoked by Cloud Scheduler with the shared
// secret instead of a user token.
var SchedulerProcedures = []string{
	ProcessRecurringTransactionsProcedure,
	EvaluateBudgetAlertsProcedure,
}

// FinanceServiceHandler is implemented by the finance service.
type FinanceServiceHandler interface {
	CreateTransaction(context.Context, *connect.Request[CreateTransactionRequest]) (*connect.Response[CreateTransactionResponse], error)
	GetTransaction(context.Context, *connect.Request[GetTransactionRequest]) (*connect.Response[GetTransactionResponse], error)
	UpdateTransaction(context.Context, *connect.Request[UpdateTransactionRequest]) (*connect.Response[UpdateTransactionResponse], error)
	DeleteTransaction(context.Context, *connect.Request[DeleteTransactionRequest]) (*connect.Response[DeleteTransactionResponse], error)
	RestoreTransaction(context.Context, *connect.Request[RestoreTransactionRequest]) (*connect.Response[RestoreTransactionResponse], error)
	ListTransactions(context.Context, *connect.Request[ListTransactionsRequest]) (*connect.Response[ListTransactionsResponse], error)
	WatchTransactions(context.Context, *connect.Request[WatchTransactionsRequest], *connect.ServerStream[WatchTransactionsResponse]) error
	PreviewNextOccurrence(context.Context, *connect.Request[PreviewNextOccurrenceRequest]) (*connect.Response[PreviewNextOccurrenceResponse], error)
	ProcessRecurringTransactions(context.Context, *connect.Request[ProcessRecurringTransactionsRequest]) (*connect.Response[ProcessRecurringTransactionsResponse], error)
	GetBudgets(context.Context, *connect.Request[GetBudgetsRequest]) (*connect.Response[GetBudgetsResponse], error)
	SaveBudgets(context.Context, *connect.Request[SaveBudgetsRequest]) (*connect.Response[SaveBudgetsResponse], error)
	GetBudgetAlerts(context.Context, *connect.Request[GetBudgetAlertsRequest]) (*connect.Response[GetBudgetAlertsResponse], error)
	EvaluateBudgetAlerts(context.Context, *connect.Request[EvaluateBudgetAlertsRequest]) (*connect.Response[EvaluateBudgetAlertsResponse], error)
	CreateGoal(context.Context, *connect.Request[CreateGoalRequest]) (*connect.Response[CreateGoalResponse], error)
	ListGoals(context.Context, *connect.Request[ListGoalsRequest]) (*connect.Response[ListGoalsResponse], error)
	UpdateGoal(context.Context, *connect.Request[UpdateGoalRequest]) (*connect.Response[UpdateGoalResponse], error)
	DeleteGoal(context.Context, *connect.Request[DeleteGoalRequest]) (*connect.Response[DeleteGoalResponse], error)
	GetPreferences(context.Context, *connect.Request[GetPreferencesRequest]) (*connect.Response[GetPreferencesResponse], error)
	UpdatePreferences(context.Context, *connect.Request[UpdatePreferencesRequest]) (*connect.Response[UpdatePreferencesResponse], error)
	RegisterPushToken(context.Context, *connect.Request[RegisterPushTokenRequest]) (*connect.Response[RegisterPushTokenResponse], error)
	CreateHolding(context.Context, *connect.Request[CreateHoldingRequest]) (*connect.Response[CreateHoldingResponse], error)
	ListHoldings(context.Context, *connect.Request[ListHoldingsRequest]) (*connect.Response[ListHoldingsResponse], error)
	UpdateHolding(context.Context, *connect.Request[UpdateHoldingRequest]) (*connect.Response[UpdateHoldingResponse], error)
	DeleteHolding(context.Context, *connect.Request[DeleteHoldingRequest]) (*connect.Response[DeleteHoldingResponse], error)
	GetExchangeRates(context.Context, *connect.Request[GetExchangeRatesRequest]) (*connect.Response[GetExchangeRatesResponse], error)
	GetInsights(context.Context, *connect.Request[GetInsightsRequest]) (*connect.Response[GetInsightsResponse], error)
	SearchTransactions(context.Context, *connect.Request[SearchTransactionsRequest]) (*connect.Response[SearchTransactionsResponse], error)
	ExportTransactions(context.Context, *connect.Request[ExportTransactionsRequest]) (*connect.Response[ExportTransactionsResponse], error)
	ImportStatement(context.Context, *connect.Request[ImportStatementRequest]) (*connect.Response[ImportStatementResponse], error)
	ListNotifications(context.Context, *connect.Request[ListNotificationsRequest]) (*connect.Response[ListNotificationsResponse], error)
	MarkNotificationRead(context.Context, *connect.Request[MarkNotificationReadRequest]) (*connect.Response[MarkNotificationReadResponse], error)
}

// NewFinanceServiceHandler builds an HTTP handler from the service
// implementation. It returns the path on which to mount the handler and the
// handler itself. The JSON codec is always installed; callers add
// interceptors and other options.
func NewFinanceServiceHandler(svc FinanceServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{connect.WithCodec(JSONCodec{})}, opts...)
	mux := http.NewServeMux()
	mux.Handle(CreateTransactionProcedure, connect.NewUnaryHandler(CreateTransactionProcedure, svc.CreateTransaction, opts...))
	mux.Handle(GetTransactionProcedure, connect.NewUnaryHandler(GetTransactionProcedure, svc.GetTransaction, opts...))
	mux.Handle(UpdateTransactionProcedure, connect.NewUnaryHandler(UpdateTransactionProcedure, svc.UpdateTransaction, opts...))
	mux.Handle(DeleteTransactionProcedure, connect.NewUnaryHandler(DeleteTransactionProcedure, svc.DeleteTransaction, opts...))
	mux.Handle(RestoreTransactionProcedure, connect.NewUnaryHandler(RestoreTransactionProcedure, svc.RestoreTransaction, opts...))
	mux.Handle(ListTransactionsProcedure, connect.NewUnaryHandler(ListTransactionsProcedure, svc.ListTransactions, opts...))
	mux.Handle(WatchTransactionsProcedure, connect.NewServerStreamHandler(WatchTransactionsProcedure, svc.WatchTransactions, opts...))
	mux.Handle(PreviewNextOccurrenceProcedure, connect.NewUnaryHandler(PreviewNextOccurrenceProcedure, svc.PreviewNextOccurrence, opts...))
	mux.Handle(ProcessRecurringTransactionsProcedure, connect.NewUnaryHandler(ProcessRecurringTransactionsProcedure, svc.ProcessRecurringTransactions, opts...))
	mux.Handle(GetBudgetsProcedure, connect.NewUnaryHandler(GetBudgetsProcedure, svc.GetBudgets, opts...))
	mux.Handle(SaveBudgetsProcedure, connect.NewUnaryHandler(SaveBudgetsProcedure, svc.SaveBudgets, opts...))
	mux.Handle(GetBudgetAlertsProcedure, connect.NewUnaryHandler(GetBudgetAlertsProcedure, svc.GetBudgetAlerts, opts...))
	mux.Handle(EvaluateBudgetAlertsProcedure, connect.NewUnaryHandler(EvaluateBudgetAlertsProcedure, svc.EvaluateBudgetAlerts, opts...))
	mux.Handle(CreateGoalProcedure, connect.NewUnaryHandler(CreateGoalProcedure, svc.CreateGoal, opts...))
	mux.Handle(ListGoalsProcedure, connect.NewUnaryHandler(ListGoalsProcedure, svc.ListGoals, opts...))
	mux.Handle(UpdateGoalProcedure, connect.NewUnaryHandler(UpdateGoalProcedure, svc.UpdateGoal, opts...))
	mux.Handle(DeleteGoalProcedure, connect.NewUnaryHandler(DeleteGoalProcedure, svc.DeleteGoal, opts...))
	mux.Handle(GetPreferencesProcedure, connect.NewUnaryHandler(GetPreferencesProcedure, svc.GetPreferences, opts...))
	mux.Handle(UpdatePreferencesProcedure, connect.NewUnaryHandler(UpdatePreferencesProcedure, svc.UpdatePreferences, opts...))
	mux.Handle(RegisterPushTokenProcedure, connect.NewUnaryHandler(RegisterPushTokenProcedure, svc.RegisterPushToken, opts...))
	mux.Handle(CreateHoldingProcedure, connect.NewUnaryHandler(CreateHoldingProcedure, svc.CreateHolding, opts...))
	mux.Handle(ListHoldingsProcedure, connect.NewUnaryHandler(ListHoldingsProcedure, svc.ListHoldings, opts...))
	mux.Handle(UpdateHoldingProcedure, connect.NewUnaryHandler(UpdateHoldingProcedure, svc.UpdateHolding, opts...))
	mux.Handle(DeleteHoldingProcedure, connect.NewUnaryHandler(DeleteHoldingProcedure, svc.DeleteHolding, opts...))
	mux.Handle(GetExchangeRatesProcedure, connect.NewUnaryHandler(GetExchangeRatesProcedure, svc.GetExchangeRates, opts...))
	mux.Handle(GetInsightsProcedure, connect.NewUnaryHandler(GetInsightsProcedure, svc.GetInsights, opts...))
	mux.Handle(SearchTransactionsProcedure, connect.NewUnaryHandler(SearchTransactionsProcedure, svc.SearchTransactions, opts...))
	mux.Handle(ExportTransactionsProcedure, connect.NewUnaryHandler(ExportTransactionsProcedure, svc.ExportTransactions, opts...))
	mux.Handle(ImportStatementProcedure, connect.NewUnaryHandler(ImportStatementProcedure, svc.ImportStatement, opts...))
	mux.Handle(ListNotificationsProcedure, connect.NewUnaryHandler(ListNotificationsProcedure, svc.ListNotifications, opts...))
	mux.Handle(MarkNotificationReadProcedure, connect.NewUnaryHandler(MarkNotificationReadProcedure, svc.MarkNotificationRead, opts...))
	return "/" + FinanceServiceName + "/", mux
}

// FinanceServiceClient is a client for the FinanceService service.
type FinanceServiceClient struct {
	createTransaction            *connect.Client[CreateTransactionRequest, CreateTransactionResponse]
	getTransaction               *connect.Client[GetTransactionRequest, GetTransactionResponse]
	updateTransaction            *connect.Client[UpdateTransactionRequest, UpdateTransactionResponse]
	deleteTransaction            *connect.Client[DeleteTransactionRequest, DeleteTransactionResponse]
	restoreTransaction           *connect.Client[RestoreTransactionRequest, RestoreTransactionResponse]
	listTransactions             *connect.Client[ListTransactionsRequest, ListTransactionsResponse]
	watchTransactions            *connect.Client[WatchTransactionsRequest, WatchTransactionsResponse]
	previewNextOccurrence        *connect.Client[PreviewNextOccurrenceRequest, PreviewNextOccurrenceResponse]
	processRecurringTransactions *connect.Client[ProcessRecurringTransactionsRequest, ProcessRecurringTransactionsResponse]
	getBudgets                   *connect.Client[GetBudgetsRequest, GetBudgetsResponse]
	saveBudgets                  *connect.Client[SaveBudgetsRequest, SaveBudgetsResponse]
	getBudgetAlerts              *connect.Client[GetBudgetAlertsRequest, GetBudgetAlertsResponse]
	evaluateBudgetAlerts         *connect.Client[EvaluateBudgetAlertsRequest, EvaluateBudgetAlertsResponse]
	createGoal                   *connect.Client[CreateGoalRequest, CreateGoalResponse]
	listGoals                    *connect.Client[ListGoalsRequest, ListGoalsResponse]
	updateGoal                   *connect.Client[UpdateGoalRequest, UpdateGoalResponse]
	deleteGoal                   *connect.Client[DeleteGoalRequest, DeleteGoalResponse]
	getPreferences               *connect.Client[GetPreferencesRequest, GetPreferencesResponse]
	updatePreferences            *connect.Client[UpdatePreferencesRequest, UpdatePreferencesResponse]
	registerPushToken            *connect.Client[RegisterPushTokenRequest, RegisterPushTokenResponse]
	createHolding                *connect.Client[CreateHoldingRequest, CreateHoldingResponse]
	listHoldings                 *connect.Client[ListHoldingsRequest, ListHoldingsResponse]
	updateHolding                *connect.Client[UpdateHoldingRequest, UpdateHoldingResponse]
	deleteHolding                *connect.Client[DeleteHoldingRequest, DeleteHoldingResponse]
	getExchangeRates             *connect.Client[GetExchangeRatesRequest, GetExchangeRatesResponse]
	getInsights                  *connect.Client[GetInsightsRequest, GetInsightsResponse]
	searchTransactions           *connect.Client[SearchTransactionsRequest, SearchTransactionsResponse]
	exportTransactions           *connect.Client[ExportTransactionsRequest, ExportTransactionsResponse]
	importStatement              *connect.Client[ImportStatementRequest, ImportStatementResponse]
	listNotifications            *connect.Client[ListNotificationsRequest, ListNotificationsResponse]
	markNotificationRead         *connect.Client[MarkNotificationReadRequest, MarkNotificationReadResponse]
}

// NewFinanceServiceClient constructs a client for the FinanceService
// service. The baseURL is the server root, for example
// http://localhost:8111.
func NewFinanceServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *FinanceServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect.ClientOption{connect.WithCodec(JSONCodec{})}, opts...)
	return &FinanceServiceClient{
		createTransaction:            connect.NewClient[CreateTransactionRequest, CreateTransactionResponse](httpClient, baseURL+CreateTransactionProcedure, opts...),
		getTransaction:               connect.NewClient[GetTransactionRequest, GetTransactionResponse](httpClient, baseURL+GetTransactionProcedure, opts...),
		updateTransaction:            connect.NewClient[UpdateTransactionRequest, UpdateTransactionResponse](httpClient, baseURL+UpdateTransactionProcedure, opts...),
		deleteTransaction:            connect.NewClient[DeleteTransactionRequest, DeleteTransactionResponse](httpClient, baseURL+DeleteTransactionProcedure, opts...),
		restoreTransaction:           connect.NewClient[RestoreTransactionRequest, RestoreTransactionResponse](httpClient, baseURL+RestoreTransactionProcedure, opts...),
		listTransactions:             connect.NewClient[ListTransactionsRequest, ListTransactionsResponse](httpClient, baseURL+ListTransactionsProcedure, opts...),
		watchTransactions:            connect.NewClient[WatchTransactionsRequest, WatchTransactionsResponse](httpClient, baseURL+WatchTransactionsProcedure, opts...),
		previewNextOccurrence:        connect.NewClient[PreviewNextOccurrenceRequest, PreviewNextOccurrenceResponse](httpClient, baseURL+PreviewNextOccurrenceProcedure, opts...),
		processRecurringTransactions: connect.NewClient[ProcessRecurringTransactionsRequest, ProcessRecurringTransactionsResponse](httpClient, baseURL+ProcessRecurringTransactionsProcedure, opts...),
		getBudgets:                   connect.NewClient[GetBudgetsRequest, GetBudgetsResponse](httpClient, baseURL+GetBudgetsProcedure, opts...),
		saveBudgets:                  connect.NewClient[SaveBudgetsRequest, SaveBudgetsResponse](httpClient, baseURL+SaveBudgetsProcedure, opts...),
		getBudgetAlerts:              connect.NewClient[GetBudgetAlertsRequest, GetBudgetAlertsResponse](httpClient, baseURL+GetBudgetAlertsProcedure, opts...),
		evaluateBudgetAlerts:         connect.NewClient[EvaluateBudgetAlertsRequest, EvaluateBudgetAlertsResponse](httpClient, baseURL+EvaluateBudgetAlertsProcedure, opts...),
		createGoal:                   connect.NewClient[CreateGoalRequest, CreateGoalResponse](httpClient, baseURL+CreateGoalProcedure, opts...),
		listGoals:                    connect.NewClient[ListGoalsRequest, ListGoalsResponse](httpClient, baseURL+ListGoalsProcedure, opts...),
		updateGoal:                   connect.NewClient[UpdateGoalRequest, UpdateGoalResponse](httpClient, baseURL+UpdateGoalProcedure, opts...),
		deleteGoal:                   connect.NewClient[DeleteGoalRequest, DeleteGoalResponse](httpClient, baseURL+DeleteGoalProcedure, opts...),
		getPreferences:               connect.NewClient[GetPreferencesRequest, GetPreferencesResponse](httpClient, baseURL+GetPreferencesProcedure, opts...),
		updatePreferences:            connect.NewClient[UpdatePreferencesRequest, UpdatePreferencesResponse](httpClient, baseURL+UpdatePreferencesProcedure, opts...),
		registerPushToken:            connect.NewClient[RegisterPushTokenRequest, RegisterPushTokenResponse](httpClient, baseURL+RegisterPushTokenProcedure, opts...),
		createHolding:                connect.NewClient[CreateHoldingRequest, CreateHoldingResponse](httpClient, baseURL+CreateHoldingProcedure, opts...),
		listHoldings:                 connect.NewClient[ListHoldingsRequest, ListHoldingsResponse](httpClient, baseURL+ListHoldingsProcedure, opts...),
		updateHolding:                connect.NewClient[UpdateHoldingRequest, UpdateHoldingResponse](httpClient, baseURL+UpdateHoldingProcedure, opts...),
		deleteHolding:                connect.NewClient[DeleteHoldingRequest, DeleteHoldingResponse](httpClient, baseURL+DeleteHoldingProcedure, opts...),
		getExchangeRates:             connect.NewClient[GetExchangeRatesRequest, GetExchangeRatesResponse](httpClient, baseURL+GetExchangeRatesProcedure, opts...),
		getInsights:                  connect.NewClient[GetInsightsRequest, GetInsightsResponse](httpClient, baseURL+GetInsightsProcedure, opts...),
		searchTransactions:           connect.NewClient[SearchTransactionsRequest, SearchTransactionsResponse](httpClient, baseURL+SearchTransactionsProcedure, opts...),
		exportTransactions:           connect.NewClient[ExportTransactionsRequest, ExportTransactionsResponse](httpClient, baseURL+ExportTransactionsProcedure, opts...),
		importStatement:              connect.NewClient[ImportStatementRequest, ImportStatementResponse](httpClient, baseURL+ImportStatementProcedure, opts...),
		listNotifications:            connect.NewClient[ListNotificationsRequest, ListNotificationsResponse](httpClient, baseURL+ListNotificationsProcedure, opts...),
		markNotificationRead:         connect.NewClient[MarkNotificationReadRequest, MarkNotificationReadResponse](httpClient, baseURL+MarkNotificationReadProcedure, opts...),
	}
}

// CreateTransaction calls pfdash.v1.FinanceService.CreateTransaction.
func (c *FinanceServiceClient) CreateTransaction(ctx context.Context, req *connect.Request[CreateTransactionRequest]) (*connect.Response[CreateTransactionResponse], error) {
	return c.createTransaction.CallUnary(ctx, req)
}

// GetTransaction calls pfdash.v1.FinanceService.GetTransaction.
func (c *FinanceServiceClient) GetTransaction(ctx context.Context, req *connect.Request[GetTransactionRequest]) (*connect.Response[GetTransactionResponse], error) {
	return c.getTransaction.CallUnary(ctx, req)
}

// UpdateTransaction calls pfdash.v1.FinanceService.UpdateTransaction.
func (c *FinanceServiceClient) UpdateTransaction(ctx context.Context, req *connect.Request[UpdateTransactionRequest]) (*connect.Response[UpdateTransactionResponse], error) {
	return c.updateTransaction.CallUnary(ctx, req)
}

// DeleteTransaction calls pfdash.v1.FinanceService.DeleteTransaction.
func (c *FinanceServiceClient) DeleteTransaction(ctx context.Context, req *connect.Request[DeleteTransactionRequest]) (*connect.Response[DeleteTransactionResponse], error) {
	return c.deleteTransaction.CallUnary(ctx, req)
}

// RestoreTransaction calls pfdash.v1.FinanceService.RestoreTransaction.
func (c *FinanceServiceClient) RestoreTransaction(ctx context.Context, req *connect.Request[RestoreTransactionRequest]) (*connect.Response[RestoreTransactionResponse], error) {
	return c.restoreTransaction.CallUnary(ctx, req)
}

// ListTransactions calls pfdash.v1.FinanceService.ListTransactions.
func (c *FinanceServiceClient) ListTransactions(ctx context.Context, req *connect.Request[ListTransactionsRequest]) (*connect.Response[ListTransactionsResponse], error) {
	return c.listTransactions.CallUnary(ctx, req)
}

// WatchTransactions calls pfdash.v1.FinanceService.WatchTransactions.
func (c *FinanceServiceClient) WatchTransactions(ctx context.Context, req *connect.Request[WatchTransactionsRequest]) (*connect.ServerStreamForClient[WatchTransactionsResponse], error) {
	return c.watchTransactions.CallServerStream(ctx, req)
}

// PreviewNextOccurrence calls pfdash.v1.FinanceService.PreviewNextOccurrence.
func (c *FinanceServiceClient) PreviewNextOccurrence(ctx context.Context, req *connect.Request[PreviewNextOccurrenceRequest]) (*connect.Response[PreviewNextOccurrenceResponse], error) {
	return c.previewNextOccurrence.CallUnary(ctx, req)
}

// ProcessRecurringTransactions calls pfdash.v1.FinanceService.ProcessRecurringTransactions.
func (c *FinanceServiceClient) ProcessRecurringTransactions(ctx context.Context, req *connect.Request[ProcessRecurringTransactionsRequest]) (*connect.Response[ProcessRecurringTransactionsResponse], error) {
	return c.processRecurringTransactions.CallUnary(ctx, req)
}

// GetBudgets calls pfdash.v1.FinanceService.GetBudgets.
func (c *FinanceServiceClient) GetBudgets(ctx context.Context, req *connect.Request[GetBudgetsRequest]) (*connect.Response[GetBudgetsResponse], error) {
	return c.getBudgets.CallUnary(ctx, req)
}

// SaveBudgets calls pfdash.v1.FinanceService.SaveBudgets.
func (c *FinanceServiceClient) SaveBudgets(ctx context.Context, req *connect.Request[SaveBudgetsRequest]) (*connect.Response[SaveBudgetsResponse], error) {
	return c.saveBudgets.CallUnary(ctx, req)
}

// GetBudgetAlerts calls pfdash.v1.FinanceService.GetBudgetAlerts.
func (c *FinanceServiceClient) GetBudgetAlerts(ctx context.Context, req *connect.Request[GetBudgetAlertsRequest]) (*connect.Response[GetBudgetAlertsResponse], error) {
	return c.getBudgetAlerts.CallUnary(ctx, req)
}

// EvaluateBudgetAlerts calls pfdash.v1.FinanceService.EvaluateBudgetAlerts.
func (c *FinanceServiceClient) EvaluateBudgetAlerts(ctx context.Context, req *connect.Request[EvaluateBudgetAlertsRequest]) (*connect.Response[EvaluateBudgetAlertsResponse], error) {
	return c.evaluateBudgetAlerts.CallUnary(ctx, req)
}

// CreateGoal calls pfdash.v1.FinanceService.CreateGoal.
func (c *FinanceServiceClient) CreateGoal(ctx context.Context, req *connect.Request[CreateGoalRequest]) (*connect.Response[CreateGoalResponse], error) {
	return c.createGoal.CallUnary(ctx, req)
}

// ListGoals calls pfdash.v1.FinanceService.ListGoals.
func (c *FinanceServiceClient) ListGoals(ctx context.Context, req *connect.Request[ListGoalsRequest]) (*connect.Response[ListGoalsResponse], error) {
	return c.listGoals.CallUnary(ctx, req)
}

// UpdateGoal calls pfdash.v1.FinanceService.UpdateGoal.
func (c *FinanceServiceClient) UpdateGoal(ctx context.Context, req *connect.Request[UpdateGoalRequest]) (*connect.Response[UpdateGoalResponse], error) {
	return c.updateGoal.CallUnary(ctx, req)
}

// DeleteGoal calls pfdash.v1.FinanceService.DeleteGoal.
func (c *FinanceServiceClient) DeleteGoal(ctx context.Context, req *connect.Request[DeleteGoalRequest]) (*connect.Response[DeleteGoalResponse], error) {
	return c.deleteGoal.CallUnary(ctx, req)
}

// GetPreferences calls pfdash.v1.FinanceService.GetPreferences.
func (c *FinanceServiceClient) GetPreferences(ctx context.Context, req *connect.Request[GetPreferencesRequest]) (*connect.Response[GetPreferencesResponse], error) {
	return c.getPreferences.CallUnary(ctx, req)
}

// UpdatePreferences calls pfdash.v1.FinanceService.UpdatePreferences.
func (c *FinanceServiceClient) UpdatePreferences(ctx context.Context, req *connect.Request[UpdatePreferencesRequest]) (*connect.Response[UpdatePreferencesResponse], error) {
	return c.updatePreferences.CallUnary(ctx, req)
}

// RegisterPushToken calls pfdash.v1.FinanceService.RegisterPushToken.
func (c *FinanceServiceClient) RegisterPushToken(ctx context.Context, req *connect.Request[RegisterPushTokenRequest]) (*connect.Response[RegisterPushTokenResponse], error) {
	return c.registerPushToken.CallUnary(ctx, req)
}

// CreateHolding calls pfdash.v1.FinanceService.CreateHolding.
func (c *FinanceServiceClient) CreateHolding(ctx context.Context, req *connect.Request[CreateHoldingRequest]) (*connect.Response[CreateHoldingResponse], error) {
	return c.createHolding.CallUnary(ctx, req)
}

// ListHoldings calls pfdash.v1.FinanceService.ListHoldings.
func (c *FinanceServiceClient) ListHoldings(ctx context.Context, req *connect.Request[ListHoldingsRequest]) (*connect.Response[ListHoldingsResponse], error) {
	return c.listHoldings.CallUnary(ctx, req)
}

// UpdateHolding calls pfdash.v1.FinanceService.UpdateHolding.
func (c *FinanceServiceClient) UpdateHolding(ctx context.Context, req *connect.Request[UpdateHoldingRequest]) (*connect.Response[UpdateHoldingResponse], error) {
	return c.updateHolding.CallUnary(ctx, req)
}

// DeleteHolding calls pfdash.v1.FinanceService.DeleteHolding.
func (c *FinanceServiceClient) DeleteHolding(ctx context.Context, req *connect.Request[DeleteHoldingRequest]) (*connect.Response[DeleteHoldingResponse], error) {
	return c.deleteHolding.CallUnary(ctx, req)
}

// GetExchangeRates calls pfdash.v1.FinanceService.GetExchangeRates.
func (c *FinanceServiceClient) GetExchangeRates(ctx context.Context, req *connect.Request[GetExchangeRatesRequest]) (*connect.Response[GetExchangeRatesResponse], error) {
	return c.getExchangeRates.CallUnary(ctx, req)
}

// GetInsights calls pfdash.v1.FinanceService.GetInsights.
func (c *FinanceServiceClient) GetInsights(ctx context.Context, req *connect.Request[GetInsightsRequest]) (*connect.Response[GetInsightsResponse], error) {
	return c.getInsights.CallUnary(ctx, req)
}

// SearchTransactions calls pfdash.v1.FinanceService.SearchTransactions.
func (c *FinanceServiceClient) SearchTransactions(ctx context.Context, req *connect.Request[SearchTransactionsRequest]) (*connect.Response[SearchTransactionsResponse], error) {
	return c.searchTransactions.CallUnary(ctx, req)
}

// ExportTransactions calls pfdash.v1.FinanceService.ExportTransactions.
func (c *FinanceServiceClient) ExportTransactions(ctx context.Context, req *connect.Request[ExportTransactionsRequest]) (*connect.Response[ExportTransactionsResponse], error) {
	return c.exportTransactions.CallUnary(ctx, req)
}

// ImportStatement calls pfdash.v1.FinanceService.ImportStatement.
func (c *FinanceServiceClient) ImportStatement(ctx context.Context, req *connect.Request[ImportStatementRequest]) (*connect.Response[ImportStatementResponse], error) {
	return c.importStatement.CallUnary(ctx, req)
}

// ListNotifications calls pfdash.v1.FinanceService.ListNotifications.
func (c *FinanceServiceClient) ListNotifications(ctx context.Context, req *connect.Request[ListNotificationsRequest]) (*connect.Response[ListNotificationsResponse], error) {
	return c.listNotifications.CallUnary(ctx, req)
}

// MarkNotificationRead calls pfdash.v1.FinanceService.MarkNotificationRead.
func (c *FinanceServiceClient) MarkNotificationRead(ctx context.Context, req *connect.Request[MarkNotificationReadRequest]) (*connect.Response[MarkNotificationReadResponse], error) {
	return c.markNotificationRead.CallUnary(ctx, req)
}
