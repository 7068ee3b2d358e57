package service

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"connectrpc.com/connect"
	"github.com/google/uuid"
	"github.com/pfdash/backend/internal/auth"
	"github.com/pfdash/backend/internal/export"
	"github.com/pfdash/backend/internal/finance"
	"github.com/pfdash/backend/internal/importer"
	"github.com/pfdash/backend/internal/rpc"
	"github.com/pfdash/backend/internal/search"
	"github.com/pfdash/backend/internal/store"
)

const maxStatementBytes = 10 << 20

func (s *FinanceService) SearchTransactions(ctx context.Context, req *connect.Request[rpc.SearchTransactionsRequest]) (*connect.Response[rpc.SearchTransactionsResponse], error) {
	claims, err := auth.RequireUserAccess(ctx, req.Msg.UserID)
	if err != nil {
		return nil, err
	}
	if req.Msg.Type != "" && !req.Msg.Type.Valid() {
		return nil, invalidArgument(finance.ErrInvalidType)
	}

	result, err := s.searcher.Search(ctx, search.Params{
		Query:     req.Msg.Query,
		UserID:    claims.UID,
		Category:  req.Msg.Category,
		Type:      req.Msg.Type,
		StartDate: req.Msg.StartDate,
		EndDate:   req.Msg.EndDate,
		Page:      int(req.Msg.Page),
		PageSize:  int(req.Msg.PageSize),
	})
	if err != nil {
		return nil, connect.NewError(connect.CodeUnavailable, fmt.Errorf("search transactions: %w", err))
	}

	return connect.NewResponse(&rpc.SearchTransactionsResponse{
		Transactions: result.Transactions,
		TotalCount:   int32(result.TotalCount),
	}), nil
}

// ExportTransactions renders the caller's active transactions, oldest
// first, either inline or uploaded to the export bucket.
func (s *FinanceService) ExportTransactions(ctx context.Context, req *connect.Request[rpc.ExportTransactionsRequest]) (*connect.Response[rpc.ExportTransactionsResponse], error) {
	claims, err := auth.RequireUserAccess(ctx, req.Msg.UserID)
	if err != nil {
		return nil, err
	}
	if req.Msg.Upload && s.uploader == nil {
		return nil, connect.NewError(connect.CodeFailedPrecondition, errors.New("export uploads are not configured"))
	}

	rows, err := store.ListAllTransactions(ctx, s.store, claims.UID, store.ListOptions{
		StartDate: req.Msg.StartDate,
		EndDate:   req.Msg.EndDate,
		PageSize:  1000,
	})
	if err != nil {
		return nil, storeError("list transactions", err)
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Date != rows[j].Date {
			return rows[i].Date.Before(rows[j].Date)
		}
		return rows[i].ID < rows[j].ID
	})

	file, err := export.Render(req.Msg.Format, rows, s.now())
	if err != nil {
		if errors.Is(err, export.ErrUnsupportedFormat) {
			return nil, invalidArgument(err)
		}
		return nil, connect.NewError(connect.CodeInternal, fmt.Errorf("render export: %w", err))
	}

	resp := &rpc.ExportTransactionsResponse{
		Filename:    file.Filename,
		ContentType: file.ContentType,
		RowCount:    int32(len(rows)),
	}
	if req.Msg.Upload {
		object, err := s.uploader.Upload(ctx, claims.UID, file)
		if err != nil {
			return nil, connect.NewError(connect.CodeUnavailable, err)
		}
		resp.ObjectName = object
	} else {
		resp.Data = file.Data
	}
	return connect.NewResponse(resp), nil
}

// ImportStatement parses a bank statement and saves every recognised row
// as an imported transaction. A dry run returns the parsed rows without
// saving them.
func (s *FinanceService) ImportStatement(ctx context.Context, req *connect.Request[rpc.ImportStatementRequest]) (*connect.Response[rpc.ImportStatementResponse], error) {
	claims, err := auth.RequireUserAccess(ctx, req.Msg.UserID)
	if err != nil {
		return nil, err
	}
	if len(req.Msg.Data) == 0 {
		return nil, invalidArgument(errors.New("statement data is required"))
	}
	if len(req.Msg.Data) > maxStatementBytes {
		return nil, invalidArgument(fmt.Errorf("statement exceeds %d bytes", maxStatementBytes))
	}

	prefs, err := s.store.GetPreferences(ctx, claims.UID)
	if err != nil {
		return nil, storeError("get preferences", err)
	}
	currency := req.Msg.Currency
	if currency == "" {
		currency = prefs.Currency
	}

	result, err := importer.Parse(req.Msg.Format, req.Msg.Data, currency)
	if err != nil {
		return nil, invalidArgument(fmt.Errorf("parse statement: %w", err))
	}

	now := s.now()
	for _, tx := range result.Transactions {
		tx.ID = uuid.New().String()
		tx.UserID = claims.UID
		tx.State = finance.StateActive
		tx.Source = finance.SourceImport
		tx.CreatedAt = now
		tx.UpdatedAt = now
	}

	resp := &rpc.ImportStatementResponse{
		Transactions: result.Transactions,
		SkippedLines: result.Skipped,
	}
	if req.Msg.DryRun {
		return connect.NewResponse(resp), nil
	}

	for _, tx := range result.Transactions {
		if err := s.store.CreateTransaction(ctx, tx); err != nil {
			return nil, storeError(fmt.Sprintf("import transaction (%d saved)", resp.ImportedCount), err)
		}
		s.indexTransaction(ctx, tx)
		resp.ImportedCount++
	}

	if resp.ImportedCount > 0 {
		if _, err := s.notifier.ImportComplete(ctx, prefs, int(resp.ImportedCount), len(result.Skipped)); err != nil {
			s.log.Warn().Err(err).Str("user_id", claims.UID).Msg("import notification failed")
		}
	}

	s.log.Info().
		Str("user_id", claims.UID).
		Int32("imported", resp.ImportedCount).
		Int("skipped", len(result.Skipped)).
		Msg("statement imported")
	return connect.NewResponse(resp), nil
}
