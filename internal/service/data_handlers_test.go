package service

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"connectrpc.com/connect"
	"github.com/pfdash/backend/internal/export"
	"github.com/pfdash/backend/internal/finance"
	"github.com/pfdash/backend/internal/rpc"
	"github.com/pfdash/backend/internal/search"
	"github.com/pfdash/backend/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingSearcher struct{}

func (failingSearcher) Search(context.Context, search.Params) (*search.Result, error) {
	return nil, errors.New("search backend unreachable")
}

type fakeUploader struct {
	userID string
	file   *export.File
}

func (u *fakeUploader) Upload(_ context.Context, userID string, file *export.File) (string, error) {
	u.userID = userID
	u.file = file
	return export.ObjectName(userID, file), nil
}

func withNote(tx finance.Transaction, note string) finance.Transaction {
	tx.Note = note
	return tx
}

func TestSearchTransactions_StoreScanner(t *testing.T) {
	svc, st, _ := newTestService()
	ctx := testContextWithUser("user-1")
	seed(t, st, "user-1", withNote(expense("Food", 12, date(2024, 6, 1)), "Lunch at Cafe"))
	seed(t, st, "user-1", withNote(expense("Food", 30, date(2024, 6, 5)), "Cafe dinner"))
	seed(t, st, "user-1", withNote(expense("Transport", 5, date(2024, 6, 6)), "Bus"))
	seed(t, st, "user-2", withNote(expense("Food", 8, date(2024, 6, 6)), "Cafe"))

	resp, err := svc.SearchTransactions(ctx, connect.NewRequest(&rpc.SearchTransactionsRequest{Query: "cafe"}))
	require.NoError(t, err)
	assert.Equal(t, int32(2), resp.Msg.TotalCount)
	require.Len(t, resp.Msg.Transactions, 2)
	assert.Equal(t, "Cafe dinner", resp.Msg.Transactions[0].Note, "newest first")

	resp, err = svc.SearchTransactions(ctx, connect.NewRequest(&rpc.SearchTransactionsRequest{Category: "transport"}))
	require.NoError(t, err)
	assert.Equal(t, int32(1), resp.Msg.TotalCount)

	_, err = svc.SearchTransactions(ctx, connect.NewRequest(&rpc.SearchTransactionsRequest{Type: "transfer"}))
	assert.Equal(t, connect.CodeInvalidArgument, connect.CodeOf(err))
}

func TestSearchTransactions_BackendFailure(t *testing.T) {
	svc, _, _ := newTestService(WithSearch(failingSearcher{}, nil))

	_, err := svc.SearchTransactions(testContextWithUser("user-1"), connect.NewRequest(&rpc.SearchTransactionsRequest{Query: "x"}))
	assert.Equal(t, connect.CodeUnavailable, connect.CodeOf(err))
}

func TestExportTransactions_InlineCSV(t *testing.T) {
	svc, st, _ := newTestService()
	ctx := testContextWithUser("user-1")
	seed(t, st, "user-1", withNote(expense("Food", 30, date(2024, 6, 5)), "Dinner"))
	seed(t, st, "user-1", withNote(expense("Food", 12, date(2024, 6, 1)), "Lunch"))
	gone := expense("Fun", 99, date(2024, 6, 2))
	gone.State = finance.StateDeleted
	seed(t, st, "user-1", gone)

	resp, err := svc.ExportTransactions(ctx, connect.NewRequest(&rpc.ExportTransactionsRequest{Format: "csv"}))
	require.NoError(t, err)
	assert.Equal(t, "transactions_20240615.csv", resp.Msg.Filename)
	assert.Equal(t, int32(2), resp.Msg.RowCount)
	assert.Empty(t, resp.Msg.ObjectName)
	require.True(t, bytes.HasPrefix(resp.Msg.Data, []byte{0xEF, 0xBB, 0xBF}))

	lines := strings.Split(strings.TrimSpace(string(resp.Msg.Data[3:])), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[1], "2024-06-01,expense,Food,12.00"), lines[1])
	assert.True(t, strings.HasPrefix(lines[2], "2024-06-05,expense,Food,30.00"), lines[2])
}

func TestExportTransactions_Upload(t *testing.T) {
	svc, st, _ := newTestService()
	ctx := testContextWithUser("user-1")
	seed(t, st, "user-1", expense("Food", 12, date(2024, 6, 1)))

	_, err := svc.ExportTransactions(ctx, connect.NewRequest(&rpc.ExportTransactionsRequest{Upload: true}))
	assert.Equal(t, connect.CodeFailedPrecondition, connect.CodeOf(err))

	uploader := &fakeUploader{}
	svc, st, _ = newTestService(WithUploader(uploader))
	seed(t, st, "user-1", expense("Food", 12, date(2024, 6, 1)))

	resp, err := svc.ExportTransactions(ctx, connect.NewRequest(&rpc.ExportTransactionsRequest{Format: "xlsx", Upload: true}))
	require.NoError(t, err)
	assert.Equal(t, "user-1", uploader.userID)
	assert.Equal(t, "transactions_20240615.xlsx", uploader.file.Filename)
	assert.Equal(t, export.ObjectName("user-1", uploader.file), resp.Msg.ObjectName)
	assert.Empty(t, resp.Msg.Data)

	_, err = svc.ExportTransactions(ctx, connect.NewRequest(&rpc.ExportTransactionsRequest{Format: "pdf"}))
	assert.Equal(t, connect.CodeInvalidArgument, connect.CodeOf(err))
}

const statementCSV = "Date,Description,Amount,Category,Note\n" +
	"2024-06-01,,12.50,Food,Lunch\n" +
	"2024-06-02,,-2000,Salary,June pay\n" +
	"not a date,,5,Food,Broken\n"

func TestImportStatement_DryRunThenImport(t *testing.T) {
	svc, st, notifier := newTestService()
	ctx := testContextWithUser("user-1")

	dry, err := svc.ImportStatement(ctx, connect.NewRequest(&rpc.ImportStatementRequest{
		Format: "csv",
		Data:   []byte(statementCSV),
		DryRun: true,
	}))
	require.NoError(t, err)
	require.Len(t, dry.Msg.Transactions, 2)
	assert.Equal(t, int32(0), dry.Msg.ImportedCount)
	assert.Len(t, dry.Msg.SkippedLines, 1)
	assert.Equal(t, "USD", dry.Msg.Transactions[0].Currency, "currency defaults from preferences")
	assert.Equal(t, finance.Income, dry.Msg.Transactions[1].Type)
	assert.Empty(t, notifier.imports)

	all, err := store.ListAllTransactions(context.Background(), st, "user-1", store.ListOptions{})
	require.NoError(t, err)
	assert.Empty(t, all, "dry run saves nothing")

	resp, err := svc.ImportStatement(ctx, connect.NewRequest(&rpc.ImportStatementRequest{
		Format:   "csv",
		Data:     []byte(statementCSV),
		Currency: "EUR",
	}))
	require.NoError(t, err)
	assert.Equal(t, int32(2), resp.Msg.ImportedCount)
	assert.Equal(t, [][2]int{{2, 1}}, notifier.imports)

	all, err = store.ListAllTransactions(context.Background(), st, "user-1", store.ListOptions{})
	require.NoError(t, err)
	require.Len(t, all, 2)
	for _, tx := range all {
		assert.Equal(t, finance.SourceImport, tx.Source)
		assert.Equal(t, "EUR", tx.Currency)
		assert.Equal(t, "user-1", tx.UserID)
		assert.Equal(t, testNow, tx.CreatedAt)
	}
}

func TestImportStatement_Validation(t *testing.T) {
	svc, _, notifier := newTestService()
	ctx := testContextWithUser("user-1")

	tests := []struct {
		name string
		req  *rpc.ImportStatementRequest
	}{
		{"empty data", &rpc.ImportStatementRequest{Format: "csv"}},
		{"unsupported format", &rpc.ImportStatementRequest{Format: "ofx", Data: []byte("x")}},
		{"missing amount column", &rpc.ImportStatementRequest{Format: "csv", Data: []byte("date,note\n2024-06-01,x\n")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.ImportStatement(ctx, connect.NewRequest(tt.req))
			assert.Equal(t, connect.CodeInvalidArgument, connect.CodeOf(err))
		})
	}
	assert.Empty(t, notifier.imports)
}

func TestImportStatement_NothingRecognised(t *testing.T) {
	svc, _, notifier := newTestService()

	resp, err := svc.ImportStatement(testContextWithUser("user-1"), connect.NewRequest(&rpc.ImportStatementRequest{
		Format: "csv",
		Data:   []byte("date,amount\nyesterday,abc\n"),
	}))
	require.NoError(t, err)
	assert.Equal(t, int32(0), resp.Msg.ImportedCount)
	assert.Empty(t, notifier.imports, "no notification without imported rows")
}
