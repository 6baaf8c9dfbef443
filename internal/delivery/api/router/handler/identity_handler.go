package handler

import (
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"

	"rentflow/config"
	"rentflow/internal/delivery/api/response"
	deliverycontext "rentflow/internal/delivery/context"
	"rentflow/internal/domain/constants"
	"rentflow/internal/domain/entity"
	domainerrors "rentflow/internal/domain/errors"
	"rentflow/internal/errors"
	"rentflow/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// IdentityHandlerParams holds dependencies for IdentityHandler, injected by Fx.
type IdentityHandlerParams struct {
	fx.In

	IdentityUC usecase.IdentityUsecase
	Config     *config.Config
	Logger     *slog.Logger
}

// IdentityHandler accepts eKYC evidence uploads.
type IdentityHandler struct {
	identityUC usecase.IdentityUsecase
	stagingDir string
	logger     *slog.Logger
}

// NewIdentityHandler is the constructor for IdentityHandler
func NewIdentityHandler(params IdentityHandlerParams) *IdentityHandler {
	stagingDir := os.TempDir()
	if params.Config.Storage != nil && params.Config.Storage.StagingDir != "" {
		stagingDir = params.Config.Storage.StagingDir
	}

	return &IdentityHandler{
		identityUC: params.IdentityUC,
		stagingDir: stagingDir,
		logger:     params.Logger,
	}
}

// Submit stages the multipart evidence files and runs the verification.
// Missing parts are passed through empty so the use case can name them.
func (h *IdentityHandler) Submit(c echo.Context) error {
	actor, err := actorOf(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var evidence usecase.IdentityEvidence
	targets := []struct {
		field string
		path  *string
	}{
		{field: constants.FieldIDFront, path: &evidence.IDFrontPath},
		{field: constants.FieldIDBack, path: &evidence.IDBackPath},
		{field: constants.FieldSelfie, path: &evidence.SelfiePath},
	}

	for _, target := range targets {
		header, err := c.FormFile(target.field)
		if errors.Is(err, http.ErrMissingFile) {
			continue
		}
		if err != nil {
			h.discard(c, evidence)

			return domainerrors.ErrValidationFailed.WithMessagef("invalid multipart field %s", target.field)
		}

		staged, err := h.stage(header)
		if err != nil {
			h.discard(c, evidence)

			return response.AppError(c, err)
		}
		*target.path = staged
	}

	verification, err := h.identityUC.SubmitEvidence(c.Request().Context(), actor, id, evidence)
	if err != nil {
		return response.AppError(c, err)
	}

	message := "identity verified"
	if verification.Status != entity.VerificationStatusVerified {
		message = "identity verification failed"
	}

	return response.Success(c, http.StatusOK, &IdentityResponse{Message: message, IdentityVerification: verification})
}

func (h *IdentityHandler) stage(header *multipart.FileHeader) (string, error) {
	src, err := header.Open()
	if err != nil {
		return "", errors.Wrap(err, "failed to open upload")
	}
	defer src.Close()

	if err := os.MkdirAll(h.stagingDir, 0o750); err != nil {
		return "", errors.Wrap(err, "failed to create staging dir")
	}

	dst, err := os.CreateTemp(h.stagingDir, "evidence-*"+filepath.Ext(header.Filename))
	if err != nil {
		return "", errors.Wrap(err, "failed to create staged file")
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		_ = os.Remove(dst.Name())

		return "", errors.Wrap(err, "failed to stage upload")
	}

	return dst.Name(), nil
}

func (h *IdentityHandler) discard(c echo.Context, evidence usecase.IdentityEvidence) {
	logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger)
	for _, path := range evidence.Paths() {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			logger.Warn("Failed to remove staged evidence", slog.String("path", path), slog.Any("error", err))
		}
	}
}
