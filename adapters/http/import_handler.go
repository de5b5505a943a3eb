package http

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	importerUC "github.com/khoahotran/network-os/internal/application/usecase/importer"
	"github.com/khoahotran/network-os/pkg/apperror"
	"github.com/khoahotran/network-os/pkg/logger"
)

// Keeps a runaway upload from buffering unbounded bytes in memory.
const maxImportSize = 64 << 20

type ImportHandler struct {
	importUseCase *importerUC.ImportUseCase
	logger        logger.Logger
}

func NewImportHandler(uc *importerUC.ImportUseCase, log logger.Logger) *ImportHandler {
	return &ImportHandler{
		importUseCase: uc,
		logger:        log,
	}
}

// ImportContacts accepts either a multipart upload (field "file") or the raw
// export bytes as the request body. The bytes are handed to the pipeline
// untouched; the pipeline decides whether they are a ZIP bundle or a bare
// Connections CSV.
func (h *ImportHandler) ImportContacts(c *gin.Context) {
	payload, filename, err := readImportPayload(c)
	if err != nil {
		c.Error(apperror.NewInvalidInput("could not read import payload", err))
		return
	}
	if len(payload) == 0 {
		c.Error(apperror.NewInvalidInput("import payload is empty", nil))
		return
	}

	input := importerUC.ImportInput{Payload: payload, Filename: filename}
	outcome, err := h.importUseCase.Execute(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}

	h.logger.Info("Import finished",
		zap.Int("created", outcome.CreatedCount),
		zap.Int("skipped", outcome.SkippedCount),
		zap.Int("failed", outcome.FailedCount),
	)
	c.JSON(http.StatusOK, outcome)
}

func readImportPayload(c *gin.Context) ([]byte, string, error) {
	file, header, err := c.Request.FormFile("file")
	if err == nil {
		defer file.Close()
		payload, err := io.ReadAll(io.LimitReader(file, maxImportSize))
		if err != nil {
			return nil, "", err
		}
		return payload, header.Filename, nil
	}

	payload, err := io.ReadAll(io.LimitReader(c.Request.Body, maxImportSize))
	if err != nil {
		return nil, "", err
	}
	return payload, "", nil
}
