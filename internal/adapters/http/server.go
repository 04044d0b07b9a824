package httpadapter

import (
	"context"
	"errors"
	"io"

	"github.com/go-chi/chi/v5"

	"pivota/internal/api"
	"pivota/internal/domain"
	"pivota/internal/ports"
	onboardingsvc "pivota/internal/services/onboarding"
)

// maxDocumentBytes caps a single uploaded KYC document.
const maxDocumentBytes = 10 << 20

// Server implements the generated StrictServerInterface.
type Server struct {
	onboarding ports.Onboarding
}

func New(onboarding ports.Onboarding) *Server {
	return &Server{onboarding: onboarding}
}

// Routes returns a chi.Router mounting the generated handlers.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()
	// Generated handler wiring
	handler := api.NewStrictHandler(s, nil)
	api.HandlerFromMux(handler, r)
	return r
}

func (s *Server) GetHealthz(ctx context.Context, _ api.GetHealthzRequestObject) (api.GetHealthzResponseObject, error) {
	ok := "ok"
	return api.GetHealthz200JSONResponse{Status: &ok}, nil
}

func (s *Server) RegisterMerchant(ctx context.Context, req api.RegisterMerchantRequestObject) (api.RegisterMerchantResponseObject, error) {
	if req.Body == nil {
		return api.RegisterMerchant400JSONResponse{BadRequestJSONResponse: api.BadRequestJSONResponse{Error: "missing body"}}, nil
	}
	in := ports.RegisterInput{
		BusinessName:   req.Body.BusinessName,
		StoreURL:       req.Body.StoreUrl,
		Region:         req.Body.Region,
		ContactEmail:   req.Body.ContactEmail,
		IdempotencyKey: req.Params.IdempotencyKey,
	}
	if req.Body.ContactPhone != nil {
		in.ContactPhone = *req.Body.ContactPhone
	}
	res, err := s.onboarding.Register(ctx, in)
	if err != nil {
		var verr *onboardingsvc.ValidationError
		if errors.As(err, &verr) {
			detail := verr.Msg
			return api.RegisterMerchant400JSONResponse{BadRequestJSONResponse: api.BadRequestJSONResponse{Error: verr.Field, Detail: &detail}}, nil
		}
		return nil, err
	}
	m := res.Merchant
	resp := api.RegisterResponse{
		MerchantId:      m.ID,
		AutoApproved:    m.AutoApproved,
		ConfidenceScore: m.ConfidenceScore,
		FullKybDeadline: m.FullKYBDeadline,
	}
	if res.Deduplicated {
		dedup := true
		resp.Deduplicated = &dedup
	}
	return api.RegisterMerchant201JSONResponse(resp), nil
}

func (s *Server) GetOnboardingStatus(ctx context.Context, req api.GetOnboardingStatusRequestObject) (api.GetOnboardingStatusResponseObject, error) {
	m, err := s.onboarding.Status(ctx, req.MerchantId)
	if err != nil {
		if errors.Is(err, ports.ErrNotFound) {
			return api.GetOnboardingStatus404Response{}, nil
		}
		return nil, err
	}
	return api.GetOnboardingStatus200JSONResponse(statusFromMerchant(m)), nil
}

func (s *Server) SetupPsp(ctx context.Context, req api.SetupPspRequestObject) (api.SetupPspResponseObject, error) {
	if req.Body == nil {
		return api.SetupPsp400JSONResponse{BadRequestJSONResponse: api.BadRequestJSONResponse{Error: "missing body"}}, nil
	}
	res, err := s.onboarding.SetupPSP(ctx, ports.PSPSetupInput{
		MerchantID:     req.Body.MerchantId,
		PSPType:        string(req.Body.PspType),
		SandboxKey:     req.Body.PspSandboxKey,
		IdempotencyKey: req.Params.IdempotencyKey,
	})
	if err != nil {
		var verr *onboardingsvc.ValidationError
		if errors.As(err, &verr) {
			detail := verr.Msg
			return api.SetupPsp400JSONResponse{BadRequestJSONResponse: api.BadRequestJSONResponse{Error: verr.Field, Detail: &detail}}, nil
		}
		var cerr *onboardingsvc.ConflictError
		if errors.As(err, &cerr) {
			return api.SetupPsp409JSONResponse{ConflictJSONResponse: api.ConflictJSONResponse{Error: cerr.Msg}}, nil
		}
		if errors.Is(err, ports.ErrNotFound) {
			return api.SetupPsp404Response{}, nil
		}
		return nil, err
	}
	return api.SetupPsp200JSONResponse(api.PspSetupResponse{ApiKey: res.APIKey, Validated: res.Validated}), nil
}

func (s *Server) ApproveMerchant(ctx context.Context, req api.ApproveMerchantRequestObject) (api.ApproveMerchantResponseObject, error) {
	err := s.onboarding.Approve(ctx, req.MerchantId)
	if err != nil {
		var cerr *onboardingsvc.ConflictError
		if errors.As(err, &cerr) {
			return api.ApproveMerchant409JSONResponse{ConflictJSONResponse: api.ConflictJSONResponse{Error: cerr.Msg}}, nil
		}
		if errors.Is(err, ports.ErrNotFound) {
			return api.ApproveMerchant404Response{}, nil
		}
		return nil, err
	}
	return api.ApproveMerchant200JSONResponse(api.StatusMessage{Status: "approved"}), nil
}

func (s *Server) RejectMerchant(ctx context.Context, req api.RejectMerchantRequestObject) (api.RejectMerchantResponseObject, error) {
	reason := ""
	if req.Params.Reason != nil {
		reason = *req.Params.Reason
	}
	err := s.onboarding.Reject(ctx, req.MerchantId, reason)
	if err != nil {
		var cerr *onboardingsvc.ConflictError
		if errors.As(err, &cerr) {
			return api.RejectMerchant409JSONResponse{ConflictJSONResponse: api.ConflictJSONResponse{Error: cerr.Msg}}, nil
		}
		if errors.Is(err, ports.ErrNotFound) {
			return api.RejectMerchant404Response{}, nil
		}
		return nil, err
	}
	return api.RejectMerchant200JSONResponse(api.StatusMessage{Status: "rejected", Detail: &reason}), nil
}

func (s *Server) UploadKycDocuments(ctx context.Context, req api.UploadKycDocumentsRequestObject) (api.UploadKycDocumentsResponseObject, error) {
	var uploads []ports.UploadInput
	for {
		part, err := req.Body.NextPart()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if part.FormName() != "file" {
			continue
		}
		content, err := io.ReadAll(io.LimitReader(part, maxDocumentBytes))
		if err != nil {
			return nil, err
		}
		uploads = append(uploads, ports.UploadInput{
			MerchantID:  req.MerchantId,
			Filename:    part.FileName(),
			ContentType: part.Header.Get("Content-Type"),
			Content:     content,
		})
	}
	docs, err := s.onboarding.UploadDocuments(ctx, req.MerchantId, uploads)
	if err != nil {
		var verr *onboardingsvc.ValidationError
		if errors.As(err, &verr) {
			detail := verr.Msg
			return api.UploadKycDocuments400JSONResponse{BadRequestJSONResponse: api.BadRequestJSONResponse{Error: verr.Field, Detail: &detail}}, nil
		}
		if errors.Is(err, ports.ErrNotFound) {
			return api.UploadKycDocuments404Response{}, nil
		}
		return nil, err
	}
	out := make(api.UploadKycDocuments200JSONResponse, 0, len(docs))
	for _, d := range docs {
		out = append(out, api.DocumentMeta{
			Id:          d.ID,
			Filename:    d.Filename,
			ContentType: d.ContentType,
			SizeBytes:   d.SizeBytes,
			Sha256:      d.SHA256,
			UploadedAt:  d.UploadedAt,
		})
	}
	return out, nil
}

func (s *Server) ListMerchants(ctx context.Context, req api.ListMerchantsRequestObject) (api.ListMerchantsResponseObject, error) {
	filter := ports.MerchantListFilter{}
	if req.Params.Status != nil {
		status := domain.KYCStatus(*req.Params.Status)
		filter.KYCStatus = &status
	}
	if req.Params.Limit != nil {
		filter.Limit = *req.Params.Limit
	}
	if req.Params.Offset != nil {
		filter.Offset = *req.Params.Offset
	}
	merchants, err := s.onboarding.ListMerchants(ctx, filter)
	if err != nil {
		return nil, err
	}
	out := make(api.ListMerchants200JSONResponse, 0, len(merchants))
	for _, m := range merchants {
		out = append(out, api.MerchantSummary{
			MerchantId:      m.ID,
			BusinessName:    m.BusinessName,
			Region:          m.Region,
			KycStatus:       string(m.KYCStatus),
			PspConnected:    m.PSPConnected,
			ConfidenceScore: m.ConfidenceScore,
			CreatedAt:       m.CreatedAt,
		})
	}
	return out, nil
}

func (s *Server) ListOnboardingEvents(ctx context.Context, req api.ListOnboardingEventsRequestObject) (api.ListOnboardingEventsResponseObject, error) {
	limit := 0
	if req.Params.Limit != nil {
		limit = *req.Params.Limit
	}
	events, err := s.onboarding.Events(ctx, req.MerchantId, limit)
	if err != nil {
		if errors.Is(err, ports.ErrNotFound) {
			return api.ListOnboardingEvents404Response{}, nil
		}
		return nil, err
	}
	out := make(api.ListOnboardingEvents200JSONResponse, 0, len(events))
	for _, e := range events {
		out = append(out, api.OnboardingEvent{Code: e.Code, Detail: e.Detail, CreatedAt: e.CreatedAt})
	}
	return out, nil
}

// statusFromMerchant projects the server record into the status response,
// including the derived step so every surface reports the same phase.
func statusFromMerchant(m *domain.Merchant) api.OnboardingStatus {
	st := api.OnboardingStatus{
		MerchantId:   m.ID,
		BusinessName: m.BusinessName,
		KycStatus:    string(m.KYCStatus),
		PspConnected: m.PSPConnected,
		ApiKeyIssued: m.APIKeyIssued(),
		Step:         string(domain.DeriveStep(&domain.StatusProjection{KYCStatus: m.KYCStatus, PSPConnected: m.PSPConnected})),
		RejectReason: m.RejectReason,
		CreatedAt:    m.CreatedAt,
		VerifiedAt:   m.VerifiedAt,
	}
	if m.PSPType != nil {
		t := string(*m.PSPType)
		st.PspType = &t
	}
	return st
}
