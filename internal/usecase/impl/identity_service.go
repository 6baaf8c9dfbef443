package impl

import (
	"context"
	"log/slog"
	"os"
	"path"
	"time"

	"rentflow/config"
	"rentflow/internal/domain/constants"
	"rentflow/internal/domain/contract"
	"rentflow/internal/domain/entity"
	domainerrors "rentflow/internal/domain/errors"
	"rentflow/internal/domain/identity"
	"rentflow/internal/domain/repository"
	"rentflow/internal/domain/service"
	"rentflow/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// identityService implements the IdentityUsecase interface.
type identityService struct {
	contractMutator

	ocr         service.OCRProvider
	faceMatcher service.FaceMatcher
	store       service.ObjectStore
	preprocess  service.ImagePreprocessor
	emitter     usecase.NotificationEmitter
	policy      identity.Policy
	maxAttempts int
	now         func() time.Time
}

// IdentityServiceParams holds dependencies for IdentityService, injected by Fx.
type IdentityServiceParams struct {
	fx.In

	ContractRepo repository.ContractRepository
	Locker       service.ContractLocker `optional:"true"`
	OCR          service.OCRProvider
	FaceMatcher  service.FaceMatcher
	Store        service.ObjectStore
	Preprocessor service.ImagePreprocessor `optional:"true"`
	Emitter      usecase.NotificationEmitter
	Config       *config.Config
	Logger       *slog.Logger
}

// NewIdentityService is the constructor for identityService.
func NewIdentityService(params IdentityServiceParams) usecase.IdentityUsecase {
	threshold := config.DefaultFaceMatchThreshold
	maxAttempts := 0
	addressMatch := config.AddressMatchSubstring
	if params.Config != nil && params.Config.Identity != nil {
		threshold = params.Config.Identity.FaceMatchThreshold
		maxAttempts = params.Config.Identity.MaxAttempts
		addressMatch = params.Config.Identity.AddressMatch
	}

	return &identityService{
		contractMutator: contractMutator{
			contractRepo: params.ContractRepo,
			locker:       params.Locker,
			logger:       params.Logger,
		},
		ocr:         params.OCR,
		faceMatcher: params.FaceMatcher,
		store:       params.Store,
		preprocess:  params.Preprocessor,
		emitter:     params.Emitter,
		policy: identity.Policy{
			FaceMatchThreshold: threshold,
			AddressMatcher:     identity.MatcherByName(addressMatch),
		},
		maxAttempts: maxAttempts,
		now:         time.Now,
	}
}

// SubmitEvidence runs OCR and face matching on the staged images, compares the
// result with the declared tenant data and persists the verdict. Every staged
// file is removed before returning.
func (s *identityService) SubmitEvidence(
	ctx context.Context,
	actor entity.Actor,
	contractID uuid.UUID,
	evidence usecase.IdentityEvidence,
) (*entity.IdentityVerification, error) {
	staged := evidence.Paths()
	defer func() {
		s.removeStaged(ctx, staged)
	}()

	switch {
	case evidence.IDFrontPath == "":
		return nil, domainerrors.ErrMissingIDFront
	case evidence.IDBackPath == "":
		return nil, domainerrors.ErrMissingIDBack
	case evidence.SelfiePath == "":
		return nil, domainerrors.ErrMissingSelfie
	}

	c, err := s.load(ctx, actor, contractID, accessTenant)
	if err != nil {
		return nil, err
	}
	if err := contract.CheckIdentitySubmission(c, s.maxAttempts); err != nil {
		return nil, err
	}

	logger := s.loggerFor(ctx).With(slog.String("contract_id", contractID.String()))

	front, err := s.prepare(ctx, evidence.IDFrontPath, constants.FieldIDFront, &staged)
	if err != nil {
		return nil, err
	}
	back, err := s.prepare(ctx, evidence.IDBackPath, constants.FieldIDBack, &staged)
	if err != nil {
		return nil, err
	}
	selfie, err := s.prepare(ctx, evidence.SelfiePath, constants.FieldSelfie, &staged)
	if err != nil {
		return nil, err
	}

	ocrResult, err := s.ocr.ExtractIDCard(ctx, front, back)
	if err != nil {
		logger.Error("OCR provider call failed", slog.String("provider", s.ocr.Name()), slog.Any("error", err))

		return nil, domainerrors.ErrIdentityProviderFailed
	}
	if ocrResult.ErrorCode != 0 {
		logger.Info("OCR provider rejected ID card",
			slog.Int("error_code", ocrResult.ErrorCode),
			slog.String("error_message", ocrResult.ErrorMessage),
		)

		return nil, domainerrors.ErrOCRRejected.WithMessagef("%s", ocrResult.ErrorMessage).
			WithDetails(map[string]int{"providerErrorCode": ocrResult.ErrorCode})
	}

	faceResult, err := s.faceMatcher.Compare(ctx, front, selfie)
	if err != nil {
		logger.Error("face match provider call failed", slog.Any("error", err))

		return nil, domainerrors.ErrIdentityProviderFailed
	}

	folder := path.Join(constants.EvidenceFolder, contractID.String())
	frontURL, err := s.store.Upload(ctx, front, folder)
	if err != nil {
		return nil, errors.Wrap(err, "failed to store ID card front")
	}
	backURL, err := s.store.Upload(ctx, back, folder)
	if err != nil {
		return nil, errors.Wrap(err, "failed to store ID card back")
	}
	selfieURL, err := s.store.Upload(ctx, selfie, folder)
	if err != nil {
		return nil, errors.Wrap(err, "failed to store selfie")
	}

	ocrData := identity.ExtractIDCard(ocrResult.Data)
	score := identity.RoundScore(faceResult.Similarity)
	now := s.now()

	var verdict identity.Verdict
	updated, err := s.mutate(ctx, actor, contractID, nil, accessTenant, func(c *entity.Contract) error {
		if err := contract.CheckIdentitySubmission(c, s.maxAttempts); err != nil {
			return err
		}

		verdict = identity.Evaluate(c.PartyB, ocrData, score, s.policy)
		verification := &entity.IdentityVerification{
			CCCDFrontURL:   frontURL,
			CCCDBackURL:    backURL,
			SelfieURL:      selfieURL,
			OCRData:        ocrData,
			FaceMatchScore: score,
			Provider:       s.ocr.Name(),
			Status:         entity.VerificationStatusFailed,
			RejectedReason: verdict.RejectedReason(),
			RawProviderResponse: map[string]any{
				"ocr":       ocrResult.Raw,
				"faceMatch": faceResult.Raw,
			},
			SubmittedAt: now,
		}
		if verdict.Verified() {
			verification.Status = entity.VerificationStatusVerified
			verification.VerifiedAt = &now
		}
		contract.RecordVerification(c, verification)

		return nil
	})
	if err != nil {
		return nil, err
	}

	eventType := entity.EventIdentityFailed
	if verdict.Verified() {
		eventType = entity.EventIdentityVerified
	}
	s.emitter.Emit(ctx, newEvent(ctx, eventType, updated, map[string]any{
		"attempts": updated.IdentityVerification.Attempts,
	}, now))

	logger.Info("identity verification recorded",
		slog.String("status", string(updated.IdentityVerification.Status)),
		slog.String("rejected_reason", updated.IdentityVerification.RejectedReason),
		slog.Int("attempts", updated.IdentityVerification.Attempts),
	)

	return updated.IdentityVerification, nil
}

// prepare normalizes a staged image, registering the output for cleanup.
func (s *identityService) prepare(ctx context.Context, src, field string, staged *[]string) (string, error) {
	if s.preprocess == nil {
		return src, nil
	}

	out, err := s.preprocess.Prepare(ctx, src)
	if err != nil {
		return "", domainerrors.ErrValidationFailed.WithMessagef("%s is not a readable image", field)
	}
	if out != src {
		*staged = append(*staged, out)
	}

	return out, nil
}

func (s *identityService) removeStaged(ctx context.Context, paths []string) {
	for _, p := range paths {
		if err := os.Remove(p); err != nil && !os.IsNotExist(err) {
			s.loggerFor(ctx).Warn("failed to remove staged evidence file",
				slog.String("path", p),
				slog.Any("error", err),
			)
		}
	}
}
