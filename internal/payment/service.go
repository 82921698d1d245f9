package payment

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	internal "github.com/tradingwalla/backend/internal"
	paymentmodel "github.com/tradingwalla/backend/internal/core/datamodel/payment"
	"github.com/tradingwalla/backend/internal/core/events"
	"github.com/tradingwalla/backend/internal/payu"
)

// RepositoryAPI is the persistence surface the payment service needs:
// insert, find-by-txnid, status update, listing.
type RepositoryAPI interface {
	Create(ctx context.Context, p *paymentmodel.Payment) error
	GetByTxnID(ctx context.Context, txnid string) (*paymentmodel.Payment, error)
	UpdateStatus(ctx context.Context, txnid, status string, details json.RawMessage) error
	ListAll(ctx context.Context) ([]*paymentmodel.Payment, error)
}

// ServiceAPI is consumed by the HTTP handlers.
type ServiceAPI interface {
	CreateSession(ctx context.Context, req *CreateSessionRequest) (*SessionPayload, error)
	ProcessSuccessCallback(ctx context.Context, cb CallbackData, raw json.RawMessage) (string, error)
	MarkFailed(ctx context.Context, txnid string, raw json.RawMessage) (*paymentmodel.Payment, error)
	GetStatus(ctx context.Context, txnid string) (*StatusResponse, error)
	ListAll(ctx context.Context) ([]*paymentmodel.Payment, error)
}

const defaultTxnIDAttempts = 3

type Service struct {
	repo          RepositoryAPI
	creds         internal.GatewayCredentials
	baseURL       string
	txnidAttempts int
	eventBus      *events.EventBus
	logger        *slog.Logger
}

func NewService(repo RepositoryAPI, creds internal.GatewayCredentials, baseURL string, txnidAttempts int, eventBus *events.EventBus, logger *slog.Logger) *Service {
	if txnidAttempts <= 0 {
		txnidAttempts = defaultTxnIDAttempts
	}
	return &Service{
		repo:          repo,
		creds:         creds,
		baseURL:       baseURL,
		txnidAttempts: txnidAttempts,
		eventBus:      eventBus,
		logger:        logger,
	}
}

// CreateSession persists a pending payment record and builds the signed
// payload the browser submits to the gateway. The transaction id is
// regenerated on a duplicate-key collision instead of failing the request.
func (s *Service) CreateSession(ctx context.Context, req *CreateSessionRequest) (*SessionPayload, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	record := &paymentmodel.Payment{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Whatsapp: req.Whatsapp,
		Amount:   req.Amount,
		FormType: req.FormType,
		Status:   paymentmodel.StatusPending,
	}

	var created bool
	for attempt := 1; attempt <= s.txnidAttempts; attempt++ {
		record.TxnID = generateTxnID()
		err := s.repo.Create(ctx, record)
		if err == nil {
			created = true
			break
		}
		if errors.Is(err, internal.ErrDuplicateTxnID) {
			s.logger.Warn("transaction id collision, regenerating",
				"txnid", record.TxnID,
				"attempt", attempt)
			continue
		}
		s.logger.Error("failed to persist payment record", "error", err, "txnid", record.TxnID)
		return nil, internal.NewInternalError("Error creating payment", err)
	}
	if !created {
		return nil, internal.NewInternalError("Error creating payment",
			fmt.Errorf("transaction id collision persisted after %d attempts", s.txnidAttempts))
	}

	amountStr := NormalizeAmount(req.Amount)
	productInfo := ProductInfo(req.FormType)

	hash := payu.RequestHash(payu.RequestFields{
		Key:         s.creds.Key,
		TxnID:       record.TxnID,
		Amount:      amountStr,
		ProductInfo: productInfo,
		FirstName:   req.Name,
		Email:       req.Email,
	}, s.creds.Salt)

	s.logger.Info("payment session created",
		"txnid", record.TxnID,
		"amount", amountStr,
		"form_type", req.FormType)

	return &SessionPayload{
		Key:         s.creds.Key,
		TxnID:       record.TxnID,
		Amount:      amountStr,
		ProductInfo: productInfo,
		FirstName:   req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		SuccessURL:  s.baseURL + "/api/payment/success",
		FailureURL:  s.baseURL + "/api/payment/failure",
		Hash:        hash,
		GatewayURL:  s.creds.Endpoint,
	}, nil
}

// ProcessSuccessCallback verifies the gateway's reverse hash and moves
// the record to a terminal status. It returns the internal status the
// record ended up in; the caller redirects no matter what.
func (s *Service) ProcessSuccessCallback(ctx context.Context, cb CallbackData, raw json.RawMessage) (string, error) {
	record, err := s.repo.GetByTxnID(ctx, cb.TxnID)
	if err != nil {
		if errors.Is(err, internal.ErrPaymentNotFound) {
			// never create a phantom record for an unknown txnid
			s.logger.Warn("callback for unknown transaction id", "txnid", cb.TxnID)
		}
		return "", err
	}

	fields := payu.CallbackFields{
		Status:      cb.Status,
		Email:       cb.Email,
		FirstName:   cb.FirstName,
		ProductInfo: cb.ProductInfo,
		Amount:      cb.Amount,
		TxnID:       cb.TxnID,
		Key:         cb.Key,
	}

	if !payu.VerifyCallback(fields, s.creds.Salt, cb.Hash) {
		s.logger.Warn("callback hash mismatch, possible tampering",
			"txnid", cb.TxnID,
			"gateway_status", cb.Status)

		if err := s.repo.UpdateStatus(ctx, cb.TxnID, paymentmodel.StatusFailed, raw); err != nil {
			return "", err
		}
		s.eventBus.Publish(ctx, events.NewPaymentFailedEvent(cb.TxnID, record.Amount, cb.Status, "hash mismatch"))
		return paymentmodel.StatusFailed, nil
	}

	status := paymentmodel.StatusFailed
	if strings.EqualFold(cb.Status, "success") {
		status = paymentmodel.StatusSucceeded
	}

	if err := s.repo.UpdateStatus(ctx, cb.TxnID, status, raw); err != nil {
		return "", err
	}

	if status == paymentmodel.StatusSucceeded {
		s.eventBus.Publish(ctx, events.NewPaymentCompletedEvent(cb.TxnID, record.Amount, record.Email, record.FormType, cb.Status))
	} else {
		s.eventBus.Publish(ctx, events.NewPaymentFailedEvent(cb.TxnID, record.Amount, cb.Status, "gateway reported non-success"))
	}

	s.logger.Info("payment callback processed",
		"txnid", cb.TxnID,
		"gateway_status", cb.Status,
		"status", status)

	return status, nil
}

// MarkFailed handles the gateway's failure callback. That callback
// carries no hash, so the only authentication is knowledge of the
// transaction id; a weaker trust boundary than the success path.
func (s *Service) MarkFailed(ctx context.Context, txnid string, raw json.RawMessage) (*paymentmodel.Payment, error) {
	record, err := s.repo.GetByTxnID(ctx, txnid)
	if err != nil {
		return nil, err
	}

	if err := s.repo.UpdateStatus(ctx, txnid, paymentmodel.StatusFailed, raw); err != nil {
		return nil, err
	}

	record.Status = paymentmodel.StatusFailed
	record.PaymentDetails = raw

	s.eventBus.Publish(ctx, events.NewPaymentFailedEvent(txnid, record.Amount, "", "failure callback"))

	s.logger.Info("payment marked failed via failure callback", "txnid", txnid)
	return record, nil
}

func (s *Service) GetStatus(ctx context.Context, txnid string) (*StatusResponse, error) {
	record, err := s.repo.GetByTxnID(ctx, txnid)
	if err != nil {
		return nil, err
	}

	return &StatusResponse{
		TxnID:     record.TxnID,
		Status:    record.Status,
		Amount:    record.Amount,
		Name:      record.Name,
		Email:     record.Email,
		FormType:  record.FormType,
		CreatedAt: record.CreatedAt,
	}, nil
}

func (s *Service) ListAll(ctx context.Context) ([]*paymentmodel.Payment, error) {
	return s.repo.ListAll(ctx)
}

// NormalizeAmount renders the amount as the fixed two-decimal string the
// gateway requires; the stored record keeps the numeric value.
func NormalizeAmount(amount float64) string {
	return strconv.FormatFloat(amount, 'f', 2, 64)
}

func ProductInfo(formType string) string {
	return fmt.Sprintf("Stock Website %s Payment", formType)
}

// generateTxnID builds a timestamp-plus-random token. Uniqueness is only
// probabilistic; CreateSession retries on a duplicate-key insert.
func generateTxnID() string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return fmt.Sprintf("TXN_%d_%s", time.Now().UnixMilli(), suffix)
}
